//-----------------------------------------------------------------------------
/*

Undo/redo command stack: a standard single-undo/redo discipline where a
new forward command clears the redo stack, per spec.md §4.7.

*/
//-----------------------------------------------------------------------------

package feature

// Command is an inverse-applicable record of a single tree mutation.
type Command interface {
	// apply performs the forward mutation without going through Tree's
	// public record-emitting methods (used by Redo).
	apply(t *Tree)
	// undo reverses the mutation.
	undo(t *Tree)
	// affectedIndex names the earliest feature index a rebuild must start
	// from after this command is applied or undone.
	affectedIndex() int
}

type addCommand struct {
	index   int
	feature *Feature
}

func (c *addCommand) apply(t *Tree) { t.insertAt(c.index, c.feature.Clone()) }
func (c *addCommand) undo(t *Tree)  { t.removeAt(c.index) }
func (c *addCommand) affectedIndex() int { return c.index }

type removeCommand struct {
	index   int
	feature *Feature
}

func (c *removeCommand) apply(t *Tree) { t.removeAt(c.index) }
func (c *removeCommand) undo(t *Tree)  { t.insertAt(c.index, c.feature.Clone()) }
func (c *removeCommand) affectedIndex() int { return c.index }

type reorderCommand struct {
	oldIndex, newIndex int
	featureID          UUID
}

func (c *reorderCommand) apply(t *Tree) { t.moveFeature(c.oldIndex, c.newIndex) }
func (c *reorderCommand) undo(t *Tree)  { t.moveFeature(c.newIndex, c.oldIndex) }
func (c *reorderCommand) affectedIndex() int {
	if c.oldIndex < c.newIndex {
		return c.oldIndex
	}
	return c.newIndex
}

type suppressCommand struct {
	featureID                     UUID
	oldSuppressed, newSuppressed bool
}

func (c *suppressCommand) apply(t *Tree) {
	if i := t.indexOf(c.featureID); i >= 0 {
		t.Features[i].Suppressed = c.newSuppressed
	}
}
func (c *suppressCommand) undo(t *Tree) {
	if i := t.indexOf(c.featureID); i >= 0 {
		t.Features[i].Suppressed = c.oldSuppressed
	}
}
func (c *suppressCommand) affectedIndex() int {
	return 0 // suppression can change a downstream reference's validity anywhere
}

type editCommand struct {
	featureID          UUID
	oldOp, newOp       OpVariant
	oldParams, newParams FeatureParams
}

func (c *editCommand) apply(t *Tree) {
	if i := t.indexOf(c.featureID); i >= 0 {
		t.Features[i].Op = c.newOp
		t.Features[i].Params = c.newParams
	}
}
func (c *editCommand) undo(t *Tree) {
	if i := t.indexOf(c.featureID); i >= 0 {
		t.Features[i].Op = c.oldOp
		t.Features[i].Params = c.oldParams
	}
}
func (c *editCommand) affectedIndex() int {
	return 0 // a changed operation can invalidate any downstream reference
}

type renameCommand struct {
	featureID          UUID
	oldName, newName string
}

func (c *renameCommand) apply(t *Tree) {
	if i := t.indexOf(c.featureID); i >= 0 {
		t.Features[i].Name = c.newName
	}
}
func (c *renameCommand) undo(t *Tree) {
	if i := t.indexOf(c.featureID); i >= 0 {
		t.Features[i].Name = c.oldName
	}
}
func (c *renameCommand) affectedIndex() int {
	return -1 // renaming never triggers a rebuild
}

// Undo pops the top of the undo stack, applies its inverse, and pushes it
// onto the redo stack. It returns the index a subsequent rebuild should
// start from.
func (t *Tree) Undo() (int, error) {
	if len(t.undo) == 0 {
		return 0, ErrNothingToUndo
	}
	cmd := t.undo[len(t.undo)-1]
	t.undo = t.undo[:len(t.undo)-1]
	cmd.undo(t)
	t.redo = append(t.redo, cmd)
	return cmd.affectedIndex(), nil
}

// Redo re-applies the most recently undone command via push_undo_only,
// preserving the rest of the redo stack below it.
func (t *Tree) Redo() (int, error) {
	if len(t.redo) == 0 {
		return 0, ErrNothingToRedo
	}
	cmd := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]
	cmd.apply(t)
	t.undo = append(t.undo, cmd)
	return cmd.affectedIndex(), nil
}
