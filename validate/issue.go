//-----------------------------------------------------------------------------
/*

Typed validation findings shared by every leveled pass (spec.md §4.11).

*/
//-----------------------------------------------------------------------------

package validate

import "github.com/sequoia-hope/waffle-iron/topo"

// Kind discriminates the category of a validation finding.
type Kind int

// Finding kinds, grouped by the pass that produces them.
const (
	KindNonClosedLoop Kind = iota
	KindBadTwin
	KindDanglingVertex
	KindEulerMismatch

	KindSameParameterGap
	KindDegenerateEdge
	KindDegenerateFace

	KindFreeEdge
	KindNonManifoldEdge
	KindSelfIntersection

	KindG0Gap
	KindG1Angle
)

// Issue is one typed finding: what went wrong, on which entity, the
// measured value, and the tolerance it was checked against.
type Issue struct {
	Kind      Kind
	Entity    topo.KernelID
	Message   string
	Value     float64
	Tolerance float64
}
