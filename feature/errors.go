package feature

import "fmt"

// ErrFeatureNotFound is returned when a feature uuid is not present in the tree.
var ErrFeatureNotFound = fmt.Errorf("feature: not found")

// ErrEmptyTree is returned by operations that require at least one feature.
var ErrEmptyTree = fmt.Errorf("feature: tree is empty")

// ErrNothingToUndo / ErrNothingToRedo guard empty-stack pops.
var (
	ErrNothingToUndo = fmt.Errorf("feature: nothing to undo")
	ErrNothingToRedo = fmt.Errorf("feature: nothing to redo")
)

// ResolutionError reports a GeomRef that could not be resolved to a
// concrete entity, carrying the human-readable reason from spec.md §4.9.
type ResolutionError struct {
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("feature: resolution failed: %s", e.Reason)
}

// ResolutionFailed builds a ResolutionError with the given reason.
func ResolutionFailed(reason string) error {
	return &ResolutionError{Reason: reason}
}

// FeatureError pairs a failing feature's id with the operation error
// message, accumulated into Engine.Errors without aborting the rebuild.
type FeatureError struct {
	FeatureID UUID
	Message   string
}
