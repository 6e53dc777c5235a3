package step

import (
	"fmt"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/tessellate"
)

// meshConverter walks a welded triangle mesh into a STEP AP214 entity
// graph (MANIFOLD_SOLID_BREP / ADVANCED_FACE / EDGE_LOOP / EDGE_CURVE /
// CARTESIAN_POINT), caching shared points, directions and edges so
// coincident mesh vertices collapse onto one CARTESIAN_POINT.
type meshConverter struct {
	entities  []Entity
	idCounter int

	pointCache  map[geom.Vec]int
	edgeCache   map[edgeKey]int
	normalCache map[geom.Vec]int
}

type edgeKey struct {
	v1, v2 geom.Vec
}

func newEdgeKey(v1, v2 geom.Vec) edgeKey {
	if v1.X < v2.X || (v1.X == v2.X && v1.Y < v2.Y) || (v1.X == v2.X && v1.Y == v2.Y && v1.Z < v2.Z) {
		return edgeKey{v1, v2}
	}
	return edgeKey{v2, v1}
}

func newMeshConverter() *meshConverter {
	return &meshConverter{
		entities:    make([]Entity, 0),
		idCounter:   1,
		pointCache:  make(map[geom.Vec]int),
		edgeCache:   make(map[edgeKey]int),
		normalCache: make(map[geom.Vec]int),
	}
}

func (c *meshConverter) addEntity(e Entity) int {
	e.SetID(c.idCounter)
	c.entities = append(c.entities, e)
	c.idCounter++
	return e.ID()
}

func (c *meshConverter) getOrCreatePoint(p geom.Vec) int {
	if id, ok := c.pointCache[p]; ok {
		return id
	}
	id := c.addEntity(&CartesianPoint{Coordinates: []float64{p.X, p.Y, p.Z}})
	c.pointCache[p] = id
	return id
}

func (c *meshConverter) getOrCreateDirection(d geom.Vec) int {
	d = d.Normalize()
	if id, ok := c.normalCache[d]; ok {
		return id
	}
	id := c.addEntity(&Direction{DirectionRatios: []float64{d.X, d.Y, d.Z}})
	c.normalCache[d] = id
	return id
}

func (c *meshConverter) createAxis2Placement(origin, zAxis, xAxis geom.Vec) int {
	return c.addEntity(&Axis2Placement3D{
		Location:     c.getOrCreatePoint(origin),
		Axis:         c.getOrCreateDirection(zAxis),
		RefDirection: c.getOrCreateDirection(xAxis),
	})
}

func (c *meshConverter) createVertexPoint(p geom.Vec) int {
	return c.addEntity(&VertexPoint{VertexGeometry: c.getOrCreatePoint(p)})
}

func (c *meshConverter) createEdgeCurve(v1, v2 geom.Vec) int {
	key := newEdgeKey(v1, v2)
	if id, ok := c.edgeCache[key]; ok {
		return id
	}

	vertex1ID := c.createVertexPoint(v1)
	vertex2ID := c.createVertexPoint(v2)

	startPointID := c.getOrCreatePoint(v1)
	direction := v2.Sub(v1).Normalize()
	dirID := c.getOrCreateDirection(direction)
	magnitude := v2.Sub(v1).Length()

	vectorID := c.addEntity(&Vector{Orientation: dirID, Magnitude: magnitude})
	lineID := c.addEntity(&Line{Pnt: startPointID, Dir: vectorID})

	edgeID := c.addEntity(&EdgeCurve{
		EdgeStart:    vertex1ID,
		EdgeEnd:      vertex2ID,
		EdgeGeometry: lineID,
		SameSense:    true,
	})
	c.edgeCache[key] = edgeID
	return edgeID
}

// createTriangleFace turns one mesh triangle into an ADVANCED_FACE bounded
// by a three-edge EDGE_LOOP over a PLANE, since a welded triangle is flat
// by construction.
func (c *meshConverter) createTriangleFace(mesh *tessellate.Mesh, t tessellate.Triangle) int {
	v0, v1, v2 := mesh.Vertices[t.A], mesh.Vertices[t.B], mesh.Vertices[t.C]

	edge1ID := c.createEdgeCurve(v0, v1)
	edge2ID := c.createEdgeCurve(v1, v2)
	edge3ID := c.createEdgeCurve(v2, v0)

	oe1ID := c.addEntity(&OrientedEdge{EdgeElement: edge1ID, Orientation: true})
	oe2ID := c.addEntity(&OrientedEdge{EdgeElement: edge2ID, Orientation: true})
	oe3ID := c.addEntity(&OrientedEdge{EdgeElement: edge3ID, Orientation: true})

	loopID := c.addEntity(&EdgeLoop{EdgeList: []int{oe1ID, oe2ID, oe3ID}})
	boundID := c.addEntity(&FaceOuterBound{Bound: loopID, Orientation: true})

	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	xAxis := v1.Sub(v0).Normalize()
	planeAxisID := c.createAxis2Placement(v0, normal, xAxis)
	planeID := c.addEntity(&Plane{Position: planeAxisID})

	return c.addEntity(&AdvancedFace{
		Bounds:       []int{boundID},
		FaceGeometry: planeID,
		SameSense:    true,
	})
}

// convertMesh builds the full STEP entity list for mesh under the given
// product name, following the header/units/product/shape skeleton the
// AP214 schema requires around the BREP itself.
func (c *meshConverter) convertMesh(mesh *tessellate.Mesh, name string) []Entity {
	appContextID := c.addEntity(&ApplicationContext{Application: "waffle-iron kernel"})

	lengthUnitID := c.addEntity(&LengthUnit{})
	planeAngleUnitID := c.addEntity(&PlaneAngleUnit{})
	solidAngleUnitID := c.addEntity(&SolidAngleUnit{})

	uncertaintyID := c.addEntity(&UncertaintyMeasureWithUnit{
		Value:       1e-6,
		Unit:        lengthUnitID,
		Name:        "DISTANCE_ACCURACY_VALUE",
		Description: "Maximum model space distance between geometric entities",
	})

	geomContextID := c.addEntity(&GeometricRepresentationContext{
		ContextType:              "3D",
		CoordinateSpaceDimension: 3,
		Uncertainty:              []int{uncertaintyID},
		Units:                    []int{lengthUnitID, planeAngleUnitID, solidAngleUnitID},
	})

	productContextID := c.addEntity(&ProductContext{FrameOfReference: appContextID, DisciplineType: "mechanical"})
	productID := c.addEntity(&Product{Name: name, Description: "Generated by waffle-iron", FrameOfReference: []int{productContextID}})
	pdfID := c.addEntity(&ProductDefinitionFormation{OfProduct: productID})
	pdcID := c.addEntity(&ProductDefinitionContext{FrameOfReference: appContextID, LifeCycleStage: "design"})
	pdID := c.addEntity(&ProductDefinition{Formation: pdfID, FrameOfReference: pdcID})
	pdsID := c.addEntity(&ProductDefinitionShape{Definition: pdID})

	faceIDs := make([]int, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		faceIDs = append(faceIDs, c.createTriangleFace(mesh, t))
	}

	shellID := c.addEntity(&ClosedShell{Faces: faceIDs})
	brepID := c.addEntity(&ManifoldSolidBrep{Outer: shellID})

	mainPlacementID := c.createAxis2Placement(geom.Vec{}, geom.Vec{Z: 1}, geom.Vec{X: 1})

	advBrepID := c.addEntity(&AdvancedBrepShapeRepresentation{
		Items:          []int{brepID, mainPlacementID},
		ContextOfItems: geomContextID,
	})
	c.addEntity(&ShapeDefinitionRepresentation{Definition: pdsID, UsedRepresentation: advBrepID})

	return c.entities
}

func degenerate(mesh *tessellate.Mesh, t tessellate.Triangle) bool {
	v0, v1, v2 := mesh.Vertices[t.A], mesh.Vertices[t.B], mesh.Vertices[t.C]
	return v1.Sub(v0).Cross(v2.Sub(v0)).Length2() < 1e-18
}

// optimizeMesh drops degenerate (zero-area) triangles before conversion;
// welding and winding repair have already run by the time a tessellate.Mesh
// reaches this package, so no vertex deduplication is needed here.
func optimizeMesh(mesh *tessellate.Mesh) *tessellate.Mesh {
	kept := make([]tessellate.Triangle, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		if !degenerate(mesh, t) {
			kept = append(kept, t)
		}
	}
	return &tessellate.Mesh{Vertices: mesh.Vertices, Normals: mesh.Normals, Triangles: kept}
}

// errDegenerate is returned by Writer.WriteMesh when a mesh collapses
// to nothing after degenerate-triangle removal.
var errDegenerate = fmt.Errorf("step: mesh has no non-degenerate triangles")
