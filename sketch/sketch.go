//-----------------------------------------------------------------------------
/*

Sketch and the solver boundary (spec.md §6). A Sketch is the plane plus the
entities and constraints BeginSketch/AddSketchEntity accumulate; Solve is
the seam the dispatch layer calls across to reach an external geometric
constraint solver. This package supplies the input/output types and the
profile-extraction geometry; the constraint solver's numerical
implementation is out of scope and lives behind the Solver interface.

*/
//-----------------------------------------------------------------------------

package sketch

import "github.com/sequoia-hope/waffle-iron/geom"

// Plane anchors a sketch's 2D coordinate system in 3D space.
type Plane struct {
	Origin geom.Vec
	XAxis  geom.Vec
	YAxis  geom.Vec
	Normal geom.Vec
}

// Sketch is the accumulated state of one BeginSketch/AddSketchEntity
// session, ready to hand to a Solver.
type Sketch struct {
	Plane       Plane
	Entities    []Entity
	Constraints []Constraint
}

// AddEntity appends an entity.
func (s *Sketch) AddEntity(e Entity) {
	s.Entities = append(s.Entities, e)
}

// AddConstraint appends a constraint.
func (s *Sketch) AddConstraint(c Constraint) {
	s.Constraints = append(s.Constraints, c)
}

// SolveStatusKind classifies the outcome of a solve.
type SolveStatusKind int

const (
	FullyConstrained SolveStatusKind = iota
	UnderConstrained
	OverConstrained
	SolveFailed
)

// SolveStatus reports the outcome of a Solver.Solve call.
type SolveStatus struct {
	Kind SolveStatusKind

	// UnderConstrained: remaining degrees of freedom.
	DOF int

	// OverConstrained: entities involved in the conflicting constraint set,
	// when the solver can identify them.
	Conflicts []EntityID

	// SolveFailed: a human-readable diagnostic from the solver.
	Reason string
}

// SolvedSketch is what FinishSketch receives back across the solver
// boundary: solved 2D positions for every point entity, plus the closed
// profiles derived from them.
type SolvedSketch struct {
	Positions map[EntityID]geom.Vec2
	Profiles  []ClosedProfile
	Status    SolveStatus
}

// ClosedProfile is one closed region of a solved sketch: an ordered chain
// of entity ids (lines and arcs; a standalone circle is its own
// single-entity profile) plus whether it is an outer boundary or a hole.
type ClosedProfile struct {
	EntityIDs []EntityID
	IsOuter   bool
}

// Solver is the seam to an external geometric constraint solver. Its
// numerical implementation is not part of this kernel (spec.md §6
// Non-goals); callers wire in whatever solver backend they use and the
// dispatch layer only depends on this interface.
type Solver interface {
	Solve(s Sketch) SolvedSketch
}
