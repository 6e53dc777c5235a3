package boolean

import "fmt"

// Op names the boolean operation being performed, used in error messages.
type Op int

// Boolean operations.
const (
	OpUnion Op = iota
	OpIntersection
	OpDifference
)

func (o Op) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// ErrNoOverlap is returned by intersection when the two solids' bounding
// boxes do not overlap at all.
var ErrNoOverlap = fmt.Errorf("boolean: no overlap between operands")

// ErrDegenerateResult is returned when a boolean operation selects zero
// faces, or the AABB intersection fast path finds an empty overlap region.
var ErrDegenerateResult = fmt.Errorf("boolean: result is degenerate (no faces selected)")

// ClassificationAmbiguousError is returned when ray-cast point-in-solid
// classification cannot resolve a face's containment with confidence.
type ClassificationAmbiguousError struct {
	Samples int
}

func (e *ClassificationAmbiguousError) Error() string {
	return fmt.Sprintf("boolean: classification ambiguous after %d samples", e.Samples)
}

// TopologyCorruptedError wraps a downstream topology audit failure
// discovered mid-operation.
type TopologyCorruptedError struct {
	Audit string
}

func (e *TopologyCorruptedError) Error() string {
	return fmt.Sprintf("boolean: topology corrupted: %s", e.Audit)
}

// IntersectionFailedError is returned when face-splitting or plane
// intersection cannot proceed for a geometric reason.
type IntersectionFailedError struct {
	Reason string
}

func (e *IntersectionFailedError) Error() string {
	return fmt.Sprintf("boolean: intersection failed: %s", e.Reason)
}
