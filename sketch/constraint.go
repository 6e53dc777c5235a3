//-----------------------------------------------------------------------------
/*

Sketch constraints (spec.md §6). Constraints are passed through to the
external solver unchanged; this package only carries the type surface the
solver adapter needs, not the numerical solving itself (Non-goal).

*/
//-----------------------------------------------------------------------------

package sketch

// ConstraintKind discriminates the variants of Constraint.
type ConstraintKind int

const (
	ConstraintCoincident ConstraintKind = iota
	ConstraintHorizontal
	ConstraintVertical
	ConstraintParallel
	ConstraintPerpendicular
	ConstraintTangent
	ConstraintEqual
	ConstraintSymmetric
	ConstraintSymmetricH
	ConstraintSymmetricV
	ConstraintMidpoint
	ConstraintDistance
	ConstraintAngle
	ConstraintRadius
	ConstraintDiameter
	ConstraintOnEntity
	ConstraintDragged
	ConstraintEqualAngle
	ConstraintRatio
	ConstraintEqualPointToLine
	ConstraintSameOrientation
)

// Constraint is a single sketch constraint. Like Entity it is a tagged
// union: which operand fields are meaningful depends on Kind. Operand
// names are generic (A/B) rather than per-kind because the same shape
// (two point ids, two line ids, an entity id plus a value, ...) recurs
// across most kinds.
type Constraint struct {
	Kind ConstraintKind

	// Generic point operands (Coincident, Symmetric, SymmetricH/V, Midpoint,
	// OnEntity's point, Dragged).
	PointA, PointB EntityID

	// Generic entity operands (Horizontal/Vertical's entity, Equal's pair,
	// Tangent's line+curve, EqualAngle/Ratio/EqualPointToLine's operands,
	// OnEntity's entity, SameOrientation's pair).
	EntityA, EntityB EntityID

	// Line about a midpoint, or OnEntity's target entity when EntityB is
	// unused.
	Line EntityID

	// Scalar payload (Distance, Angle, Radius, Diameter, Ratio).
	Value float64

	// Symmetric's line-of-symmetry id.
	SymmetryLine EntityID
}
