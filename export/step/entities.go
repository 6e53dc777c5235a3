// Package step implements STEP AP214 file generation for the kernel's
// tessellated B-Rep output.
package step

import (
	"fmt"
	"strings"
)

// Entity is one numbered STEP line: "#id=KEYWORD(...);".
type Entity interface {
	ID() int
	SetID(int)
	String() string
}

// BaseEntity carries the entity numbering every concrete entity embeds.
type BaseEntity struct {
	id int
}

func (e *BaseEntity) ID() int      { return e.id }
func (e *BaseEntity) SetID(id int) { e.id = id }

// ApplicationContext is APPLICATION_CONTEXT.
type ApplicationContext struct {
	BaseEntity
	Application string
}

func (e *ApplicationContext) String() string {
	return fmt.Sprintf("#%d=APPLICATION_CONTEXT('%s');", e.id, e.Application)
}

// Product is PRODUCT.
type Product struct {
	BaseEntity
	Name             string
	Description      string
	FrameOfReference []int // refs to ProductContext
}

func (e *Product) String() string {
	return fmt.Sprintf("#%d=PRODUCT('','%s','%s',(%s));", e.id, e.Name, e.Description, formatRefs(e.FrameOfReference))
}

// ProductContext is PRODUCT_CONTEXT.
type ProductContext struct {
	BaseEntity
	Name             string
	FrameOfReference int // ref to ApplicationContext
	DisciplineType   string
}

func (e *ProductContext) String() string {
	return fmt.Sprintf("#%d=PRODUCT_CONTEXT('%s',#%d,'%s');", e.id, e.Name, e.FrameOfReference, e.DisciplineType)
}

// ProductDefinitionFormation is PRODUCT_DEFINITION_FORMATION.
type ProductDefinitionFormation struct {
	BaseEntity
	Description string
	OfProduct   int // ref to Product
}

func (e *ProductDefinitionFormation) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION_FORMATION('','%s',#%d);", e.id, e.Description, e.OfProduct)
}

// ProductDefinitionContext is PRODUCT_DEFINITION_CONTEXT.
type ProductDefinitionContext struct {
	BaseEntity
	Name             string
	FrameOfReference int // ref to ApplicationContext
	LifeCycleStage   string
}

func (e *ProductDefinitionContext) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION_CONTEXT('%s',#%d,'%s');", e.id, e.Name, e.FrameOfReference, e.LifeCycleStage)
}

// ProductDefinition is PRODUCT_DEFINITION.
type ProductDefinition struct {
	BaseEntity
	Description      string
	Formation        int // ref to ProductDefinitionFormation
	FrameOfReference int // ref to ProductDefinitionContext
}

func (e *ProductDefinition) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION('','%s',#%d,#%d);", e.id, e.Description, e.Formation, e.FrameOfReference)
}

// ProductDefinitionShape is PRODUCT_DEFINITION_SHAPE.
type ProductDefinitionShape struct {
	BaseEntity
	Name        string
	Description string
	Definition  int // ref to ProductDefinition
}

func (e *ProductDefinitionShape) String() string {
	return fmt.Sprintf("#%d=PRODUCT_DEFINITION_SHAPE('%s','%s',#%d);", e.id, e.Name, e.Description, e.Definition)
}

// ShapeDefinitionRepresentation is SHAPE_DEFINITION_REPRESENTATION.
type ShapeDefinitionRepresentation struct {
	BaseEntity
	Definition         int // ref to ProductDefinitionShape
	UsedRepresentation int // ref to AdvancedBrepShapeRepresentation
}

func (e *ShapeDefinitionRepresentation) String() string {
	return fmt.Sprintf("#%d=SHAPE_DEFINITION_REPRESENTATION(#%d,#%d);", e.id, e.Definition, e.UsedRepresentation)
}

// AdvancedBrepShapeRepresentation is ADVANCED_BREP_SHAPE_REPRESENTATION.
type AdvancedBrepShapeRepresentation struct {
	BaseEntity
	Name           string
	Items          []int // refs to representation items
	ContextOfItems int   // ref to GeometricRepresentationContext
}

func (e *AdvancedBrepShapeRepresentation) String() string {
	return fmt.Sprintf("#%d=ADVANCED_BREP_SHAPE_REPRESENTATION('%s',(%s),#%d);",
		e.id, e.Name, formatRefs(e.Items), e.ContextOfItems)
}

// ManifoldSolidBrep is MANIFOLD_SOLID_BREP.
type ManifoldSolidBrep struct {
	BaseEntity
	Name  string
	Outer int // ref to ClosedShell
}

func (e *ManifoldSolidBrep) String() string {
	return fmt.Sprintf("#%d=MANIFOLD_SOLID_BREP('%s',#%d);", e.id, e.Name, e.Outer)
}

// ClosedShell is CLOSED_SHELL.
type ClosedShell struct {
	BaseEntity
	Name  string
	Faces []int // refs to AdvancedFace
}

func (e *ClosedShell) String() string {
	return fmt.Sprintf("#%d=CLOSED_SHELL('%s',(%s));", e.id, e.Name, formatRefs(e.Faces))
}

// AdvancedFace is ADVANCED_FACE.
type AdvancedFace struct {
	BaseEntity
	Name         string
	Bounds       []int // refs to FaceOuterBound
	FaceGeometry int   // ref to Plane
	SameSense    bool
}

func (e *AdvancedFace) String() string {
	return fmt.Sprintf("#%d=ADVANCED_FACE('%s',(%s),#%d,%s);",
		e.id, e.Name, formatRefs(e.Bounds), e.FaceGeometry, formatBool(e.SameSense))
}

// FaceOuterBound is FACE_OUTER_BOUND.
type FaceOuterBound struct {
	BaseEntity
	Name        string
	Bound       int // ref to EdgeLoop
	Orientation bool
}

func (e *FaceOuterBound) String() string {
	return fmt.Sprintf("#%d=FACE_OUTER_BOUND('%s',#%d,%s);", e.id, e.Name, e.Bound, formatBool(e.Orientation))
}

// EdgeLoop is EDGE_LOOP.
type EdgeLoop struct {
	BaseEntity
	Name     string
	EdgeList []int // refs to OrientedEdge
}

func (e *EdgeLoop) String() string {
	return fmt.Sprintf("#%d=EDGE_LOOP('%s',(%s));", e.id, e.Name, formatRefs(e.EdgeList))
}

// OrientedEdge is ORIENTED_EDGE.
type OrientedEdge struct {
	BaseEntity
	Name        string
	EdgeElement int // ref to EdgeCurve
	Orientation bool
}

func (e *OrientedEdge) String() string {
	return fmt.Sprintf("#%d=ORIENTED_EDGE('%s',*,*,#%d,%s);", e.id, e.Name, e.EdgeElement, formatBool(e.Orientation))
}

// EdgeCurve is EDGE_CURVE.
type EdgeCurve struct {
	BaseEntity
	Name         string
	EdgeStart    int // ref to VertexPoint
	EdgeEnd      int // ref to VertexPoint
	EdgeGeometry int // ref to Line
	SameSense    bool
}

func (e *EdgeCurve) String() string {
	return fmt.Sprintf("#%d=EDGE_CURVE('%s',#%d,#%d,#%d,%s);",
		e.id, e.Name, e.EdgeStart, e.EdgeEnd, e.EdgeGeometry, formatBool(e.SameSense))
}

// VertexPoint is VERTEX_POINT.
type VertexPoint struct {
	BaseEntity
	Name           string
	VertexGeometry int // ref to CartesianPoint
}

func (e *VertexPoint) String() string {
	return fmt.Sprintf("#%d=VERTEX_POINT('%s',#%d);", e.id, e.Name, e.VertexGeometry)
}

// CartesianPoint is CARTESIAN_POINT.
type CartesianPoint struct {
	BaseEntity
	Name        string
	Coordinates []float64
}

func (e *CartesianPoint) String() string {
	return fmt.Sprintf("#%d=CARTESIAN_POINT('%s',(%s));", e.id, e.Name, formatFloats(e.Coordinates))
}

// Direction is DIRECTION.
type Direction struct {
	BaseEntity
	Name            string
	DirectionRatios []float64
}

func (e *Direction) String() string {
	return fmt.Sprintf("#%d=DIRECTION('%s',(%s));", e.id, e.Name, formatFloats(e.DirectionRatios))
}

// Vector is VECTOR.
type Vector struct {
	BaseEntity
	Name        string
	Orientation int // ref to Direction
	Magnitude   float64
}

func (e *Vector) String() string {
	return fmt.Sprintf("#%d=VECTOR('%s',#%d,%.6f);", e.id, e.Name, e.Orientation, e.Magnitude)
}

// Axis2Placement3D is AXIS2_PLACEMENT_3D.
type Axis2Placement3D struct {
	BaseEntity
	Name         string
	Location     int // ref to CartesianPoint
	Axis         int // ref to Direction
	RefDirection int // ref to Direction
}

func (e *Axis2Placement3D) String() string {
	return fmt.Sprintf("#%d=AXIS2_PLACEMENT_3D('%s',#%d,#%d,#%d);", e.id, e.Name, e.Location, e.Axis, e.RefDirection)
}

// Line is LINE.
type Line struct {
	BaseEntity
	Name string
	Pnt  int // ref to CartesianPoint
	Dir  int // ref to Vector
}

func (e *Line) String() string {
	return fmt.Sprintf("#%d=LINE('%s',#%d,#%d);", e.id, e.Name, e.Pnt, e.Dir)
}

// Plane is PLANE, the only face-geometry surface this exporter emits:
// every output face comes from a welded triangle mesh, so each face is
// flat by construction.
type Plane struct {
	BaseEntity
	Name     string
	Position int // ref to Axis2Placement3D
}

func (e *Plane) String() string {
	return fmt.Sprintf("#%d=PLANE('%s',#%d);", e.id, e.Name, e.Position)
}

// GeometricRepresentationContext is a complex entity combining
// GEOMETRIC_REPRESENTATION_CONTEXT / GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT /
// GLOBAL_UNIT_ASSIGNED_CONTEXT / REPRESENTATION_CONTEXT.
type GeometricRepresentationContext struct {
	BaseEntity
	ContextIdentifier        string
	ContextType              string
	CoordinateSpaceDimension int
	Uncertainty              []int // refs to UncertaintyMeasureWithUnit
	Units                    []int // refs to unit entities
}

func (e *GeometricRepresentationContext) String() string {
	parts := []string{
		fmt.Sprintf("GEOMETRIC_REPRESENTATION_CONTEXT(%d)", e.CoordinateSpaceDimension),
		fmt.Sprintf("GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((%s))", formatRefs(e.Uncertainty)),
		fmt.Sprintf("GLOBAL_UNIT_ASSIGNED_CONTEXT((%s))", formatRefs(e.Units)),
		fmt.Sprintf("REPRESENTATION_CONTEXT('%s','%s')", e.ContextIdentifier, e.ContextType),
	}
	return fmt.Sprintf("#%d=(%s);", e.id, strings.Join(parts, "\n"))
}

// UncertaintyMeasureWithUnit is UNCERTAINTY_MEASURE_WITH_UNIT.
type UncertaintyMeasureWithUnit struct {
	BaseEntity
	Value       float64
	Unit        int // ref to LengthUnit
	Name        string
	Description string
}

func (e *UncertaintyMeasureWithUnit) String() string {
	return fmt.Sprintf("#%d=UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(%.6E),#%d,'%s','%s');",
		e.id, e.Value, e.Unit, e.Name, e.Description)
}

// LengthUnit is the LENGTH_UNIT / NAMED_UNIT / SI_UNIT(millimetre) complex entity.
type LengthUnit struct{ BaseEntity }

func (e *LengthUnit) String() string {
	return fmt.Sprintf("#%d=(LENGTH_UNIT()\nNAMED_UNIT(*)\nSI_UNIT(.MILLI.,.METRE.));", e.id)
}

// PlaneAngleUnit is the NAMED_UNIT / PLANE_ANGLE_UNIT / SI_UNIT(radian) complex entity.
type PlaneAngleUnit struct{ BaseEntity }

func (e *PlaneAngleUnit) String() string {
	return fmt.Sprintf("#%d=(NAMED_UNIT(*)\nPLANE_ANGLE_UNIT()\nSI_UNIT($,.RADIAN.));", e.id)
}

// SolidAngleUnit is the NAMED_UNIT / SI_UNIT(steradian) / SOLID_ANGLE_UNIT complex entity.
type SolidAngleUnit struct{ BaseEntity }

func (e *SolidAngleUnit) String() string {
	return fmt.Sprintf("#%d=(NAMED_UNIT(*)\nSI_UNIT($,.STERADIAN.)\nSOLID_ANGLE_UNIT());", e.id)
}

func formatRefs(refs []int) string {
	strs := make([]string, len(refs))
	for i, ref := range refs {
		strs[i] = fmt.Sprintf("#%d", ref)
	}
	return strings.Join(strs, ",")
}

func formatFloats(vals []float64) string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = fmt.Sprintf("%.6f", val)
	}
	return strings.Join(strs, ",")
}

func formatBool(b bool) string {
	if b {
		return ".T."
	}
	return ".F."
}
