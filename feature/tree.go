//-----------------------------------------------------------------------------
/*

Feature tree mutations: add, remove, reorder, suppress, each recorded as an
undo command before its effect per spec.md §4.7. The active_index shift
rule on insertion/removal is the Open Question this kernel resolves as:
insert at or before active_index bumps it forward; remove at or before it
decrements it, clamping to nil only when the tree becomes empty.

*/
//-----------------------------------------------------------------------------

package feature

// Tree owns the ordered feature list, the rollback marker, named
// parameters, and the undo/redo stacks.
type Tree struct {
	Features    []*Feature
	ActiveIndex *int
	Parameters  map[string]float64

	undo []Command
	redo []Command
}

// Option configures a Tree at construction, mirroring tol.Option.
type Option func(*Tree)

// WithParameters seeds the tree's named parameter table.
func WithParameters(params map[string]float64) Option {
	return func(t *Tree) {
		for k, v := range params {
			t.Parameters[k] = v
		}
	}
}

// NewTree builds an empty feature tree.
func NewTree(opts ...Option) *Tree {
	t := &Tree{Parameters: map[string]float64{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree) indexOf(id UUID) int {
	for i, f := range t.Features {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// shiftOnInsert applies the active_index shift rule for an insertion at index i.
func (t *Tree) shiftOnInsert(i int) {
	if t.ActiveIndex != nil && i <= *t.ActiveIndex {
		next := *t.ActiveIndex + 1
		t.ActiveIndex = &next
	}
}

// shiftOnRemove applies the active_index shift rule for a removal at index i.
func (t *Tree) shiftOnRemove(i int) {
	if t.ActiveIndex == nil {
		return
	}
	if i > *t.ActiveIndex {
		return
	}
	if len(t.Features) == 0 {
		t.ActiveIndex = nil
		return
	}
	next := *t.ActiveIndex - 1
	if next < 0 {
		next = 0
	}
	t.ActiveIndex = &next
}

func (t *Tree) record(cmd Command) {
	t.undo = append(t.undo, cmd)
	t.redo = nil
}

// Add appends a feature (or inserts it at the rollback position, when
// ActiveIndex is set and the tree is mid-rollback) and records an undo
// command.
func (t *Tree) Add(f *Feature) {
	i := len(t.Features)
	if t.ActiveIndex != nil && *t.ActiveIndex+1 < len(t.Features) {
		i = *t.ActiveIndex + 1
	}
	t.insertAt(i, f)
	t.record(&addCommand{index: i, feature: f.Clone()})
}

func (t *Tree) insertAt(i int, f *Feature) {
	t.Features = append(t.Features, nil)
	copy(t.Features[i+1:], t.Features[i:])
	t.Features[i] = f
	t.shiftOnInsert(i)
}

// Remove deletes the feature with the given uuid, returning
// ErrFeatureNotFound if absent.
func (t *Tree) Remove(id UUID) error {
	i := t.indexOf(id)
	if i < 0 {
		return ErrFeatureNotFound
	}
	removed := t.Features[i].Clone()
	t.removeAt(i)
	t.record(&removeCommand{index: i, feature: removed})
	return nil
}

func (t *Tree) removeAt(i int) {
	t.Features = append(t.Features[:i], t.Features[i+1:]...)
	t.shiftOnRemove(i)
}

// Reorder moves the feature with the given uuid to newIndex.
func (t *Tree) Reorder(id UUID, newIndex int) error {
	oldIndex := t.indexOf(id)
	if oldIndex < 0 {
		return ErrFeatureNotFound
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex >= len(t.Features) {
		newIndex = len(t.Features) - 1
	}
	t.moveFeature(oldIndex, newIndex)
	t.record(&reorderCommand{oldIndex: oldIndex, newIndex: newIndex, featureID: id})
	return nil
}

func (t *Tree) moveFeature(oldIndex, newIndex int) {
	f := t.Features[oldIndex]
	t.Features = append(t.Features[:oldIndex], t.Features[oldIndex+1:]...)
	t.Features = append(t.Features, nil)
	copy(t.Features[newIndex+1:], t.Features[newIndex:])
	t.Features[newIndex] = f
}

// Suppress flips the suppressed flag of the feature with the given uuid.
func (t *Tree) Suppress(id UUID, suppressed bool) error {
	i := t.indexOf(id)
	if i < 0 {
		return ErrFeatureNotFound
	}
	old := t.Features[i].Suppressed
	t.Features[i].Suppressed = suppressed
	t.record(&suppressCommand{featureID: id, oldSuppressed: old, newSuppressed: suppressed})
	return nil
}

// Edit replaces the operation and parameters of the feature with the given
// uuid, recording an undo command that restores the prior operation.
func (t *Tree) Edit(id UUID, op OpVariant, params FeatureParams) error {
	i := t.indexOf(id)
	if i < 0 {
		return ErrFeatureNotFound
	}
	oldOp, oldParams := t.Features[i].Op, t.Features[i].Params
	t.Features[i].Op = op
	t.Features[i].Params = params
	t.record(&editCommand{featureID: id, oldOp: oldOp, oldParams: oldParams, newOp: op, newParams: params})
	return nil
}

// Rename replaces the name of the feature with the given uuid. Per
// spec.md §6, RenameFeature is a pure metadata update: it is recorded as
// an undo command but never triggers a rebuild.
func (t *Tree) Rename(id UUID, newName string) error {
	i := t.indexOf(id)
	if i < 0 {
		return ErrFeatureNotFound
	}
	oldName := t.Features[i].Name
	t.Features[i].Name = newName
	t.record(&renameCommand{featureID: id, oldName: oldName, newName: newName})
	return nil
}

// ActiveCount reports how many leading features are within the rollback
// window (all of them, if ActiveIndex is nil).
func (t *Tree) ActiveCount() int {
	if t.ActiveIndex == nil {
		return len(t.Features)
	}
	n := *t.ActiveIndex + 1
	if n > len(t.Features) {
		n = len(t.Features)
	}
	if n < 0 {
		n = 0
	}
	return n
}

// IsActive reports whether the feature at index i participates in rebuild:
// within the rollback window and not suppressed.
func (t *Tree) IsActive(i int) bool {
	if i < 0 || i >= len(t.Features) {
		return false
	}
	if t.ActiveIndex != nil && i > *t.ActiveIndex {
		return false
	}
	return !t.Features[i].Suppressed
}
