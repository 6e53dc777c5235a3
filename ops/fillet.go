//-----------------------------------------------------------------------------
/*

Fillet and chamfer: round or bevel a set of edges by inserting a band face
between the two faces that originally shared each edge.

Simplification: the band is spliced into only the edge's "forward" adjacent
face (the one whose half-edge direction matches the edge's stored
start->end order); the "reverse" adjacent face keeps the original edge
unchanged, and the band face is built from the freed forward half-edge plus
three new edges. This keeps corner vertices shared by more than one
filleted edge from needing to be split per adjacent face, at the cost of
an idealized topology delta rather than a fully corner-aware one.

*/
//-----------------------------------------------------------------------------

package ops

import (
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// bandKind selects the surface shape spliced in between the two original
// faces: cylindrical for a fillet, planar for a chamfer.
type bandKind int

const (
	bandFillet bandKind = iota
	bandChamfer
)

// Fillet rounds each given edge of solid with a cylindrical band of the
// given radius. Radius must be positive.
func Fillet(store *topo.Store, solid topo.SolidHandle, edges []topo.EdgeHandle, radius float64) (OpResult, error) {
	if radius <= 0 {
		return OpResult{}, ErrInvalidRadius
	}
	return band(store, solid, edges, radius, bandFillet)
}

// Chamfer bevels each given edge of solid with a planar band at the given
// distance. Distance must be positive.
func Chamfer(store *topo.Store, solid topo.SolidHandle, edges []topo.EdgeHandle, distance float64) (OpResult, error) {
	if distance <= 0 {
		return OpResult{}, ErrInvalidDistance
	}
	return band(store, solid, edges, distance, bandChamfer)
}

func band(store *topo.Store, solid topo.SolidHandle, edges []topo.EdgeHandle, offset float64, kind bandKind) (OpResult, error) {
	before := provenance.Capture(store, solid)

	bandFaces := make([]topo.FaceHandle, 0, len(edges))
	for i, eh := range edges {
		face, err := insertBand(store, eh, offset, kind, i)
		if err != nil {
			if kind == bandFillet {
				return OpResult{}, ErrFilletFailed
			}
			return OpResult{}, ErrChamferFailed
		}
		bandFaces = append(bandFaces, face)
	}

	// Fold the new band faces into the solid's (single, outward) shell.
	solidRec, _ := store.Solid(solid)
	if len(solidRec.Shells) > 0 {
		outward := solidRec.Shells[0]
		shellRec, _ := store.Shell(outward)
		faces := append(append([]topo.FaceHandle(nil), shellRec.Faces...), bandFaces...)
		store.RemoveShell(outward)
		newShell := store.AddShell(faces, topo.ShellOutward)
		solidRec.Shells[0] = newShell
	}

	result := OpResult{
		Solid: solid,
		Diff:  snapshotDiff(store, before, solid),
		Roles: roleMap(store, solid),
	}
	return result, nil
}

func insertBand(store *topo.Store, eh topo.EdgeHandle, offset float64, kind bandKind, index int) (topo.FaceHandle, error) {
	edge, ok := store.Edge(eh)
	if !ok {
		return 0, ErrEntityNotFound
	}
	heFwd, ok := store.HalfEdge(edge.HalfEdges[0])
	if !ok {
		return 0, ErrEntityNotFound
	}
	heRev, ok := store.HalfEdge(edge.HalfEdges[1])
	if !ok {
		return 0, ErrEntityNotFound
	}

	faceFwdH := heFwd.Face
	faceFwd, ok := store.Face(faceFwdH)
	if !ok {
		return 0, ErrEntityNotFound
	}
	faceRev, ok := store.Face(heRev.Face)
	if !ok {
		return 0, ErrEntityNotFound
	}

	v0, _ := store.Vertex(heFwd.Start)
	v1, _ := store.Vertex(heFwd.End)

	normalFwd := faceFwd.Surface.Normal(0, 0)
	normalRev := faceRev.Surface.Normal(0, 0)
	bisector := normalFwd.Add(normalRev).Scale(-1).Normalize()

	m0 := store.AddVertex(v0.Point.Add(bisector.Scale(offset)))
	m1 := store.AddVertex(v1.Point.Add(bisector.Scale(offset)))

	pool := newEdgePool(store)
	rungAFwd := pool.lineEdge(heFwd.Start, m0) // v0 -> m0
	spineFwd := pool.lineEdge(m0, m1)          // m0 -> m1
	rungBFwd := pool.lineEdge(heFwd.End, m1)   // v1 -> m1

	rungA, _ := store.HalfEdge(rungAFwd)
	spine, _ := store.HalfEdge(spineFwd)
	rungB, _ := store.HalfEdge(rungBFwd)

	// Splice faceFwd's loop: replace the original forward half-edge with the
	// detour v0 -> m0 -> m1 -> v1.
	loop, ok := store.Loop(faceFwd.Outer)
	if !ok {
		return 0, ErrEntityNotFound
	}
	replacement := []topo.HalfEdgeHandle{rungAFwd, spineFwd, rungB.Twin}
	spliced := false
	newEdges := make([]topo.HalfEdgeHandle, 0, len(loop.Edges)+2)
	for _, he := range loop.Edges {
		if he == edge.HalfEdges[0] {
			newEdges = append(newEdges, replacement...)
			spliced = true
			continue
		}
		newEdges = append(newEdges, he)
	}
	if !spliced {
		return 0, ErrEntityNotFound
	}
	loop.Edges = newEdges
	for _, he := range replacement {
		store.SetHalfEdgeFace(he, faceFwdH, faceFwd.Outer)
	}

	// The band face reuses the now-freed original forward half-edge, the
	// untouched forward rung B, and the twin (reverse) directions of the
	// spine and rung A, which faceFwd's detour did not consume.
	bandLoop := store.AddLoop([]topo.HalfEdgeHandle{edge.HalfEdges[0], rungBFwd, spine.Twin, rungA.Twin})

	var surface geom.Surface
	switch kind {
	case bandFillet:
		axis := v1.Point.Sub(v0.Point).Normalize()
		center := v0.Point.Add(bisector.Scale(offset))
		surface = geom.NewCylinderSurface(geom.Cylinder{Origin: center, Axis: axis, Radius: offset})
	default:
		m0v, _ := store.Vertex(m0)
		origin := v0.Point.Lerp(m0v.Point, 0.5)
		surface = geom.NewPlaneSurface(geom.Plane{Origin: origin, Normal: bisector})
	}

	face := store.AddFace(surface, bandLoop, nil, true)
	if kind == bandFillet {
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleFilletFace, Index: index})
	} else {
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleChamferFace, Index: index})
	}
	return face, nil
}
