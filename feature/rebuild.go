//-----------------------------------------------------------------------------
/*

Rebuild scheduler: replay active features from a given index, resolving
each feature's references against previously cached results, invoking the
matching modeling operation, and caching its OpResult, per spec.md §4.7.

*/
//-----------------------------------------------------------------------------

package feature

import (
	"fmt"

	"github.com/sequoia-hope/waffle-iron/boolean"
	"github.com/sequoia-hope/waffle-iron/ops"
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Engine couples a feature tree to the topology store it rebuilds against,
// the per-feature cached results, and the engine-visible warning/error
// lists spec.md §4.7 describes.
type Engine struct {
	Store   *topo.Store
	Tree    *Tree
	Results map[UUID]*ops.OpResult

	Warnings []string
	Errors   []FeatureError
}

// NewEngine wires a tree to the store it rebuilds against.
func NewEngine(store *topo.Store, tree *Tree) *Engine {
	return &Engine{Store: store, Tree: tree, Results: map[UUID]*ops.OpResult{}}
}

// Rebuild replays active features starting at fromIndex. Cached results at
// or after fromIndex (and for any feature past the rollback point) are
// dropped first. Each feature's operation error is recorded and does not
// abort the rebuild; the full warnings/errors lists are replaced by this
// pass's accumulation.
func (e *Engine) Rebuild(fromIndex int) {
	for i := fromIndex; i < len(e.Tree.Features); i++ {
		delete(e.Results, e.Tree.Features[i].ID)
	}
	if e.Tree.ActiveIndex != nil {
		for i := *e.Tree.ActiveIndex + 1; i < len(e.Tree.Features); i++ {
			delete(e.Results, e.Tree.Features[i].ID)
		}
	}

	var warnings []string
	var errs []FeatureError

	for i := fromIndex; i < len(e.Tree.Features); i++ {
		if !e.Tree.IsActive(i) {
			continue
		}
		f := e.Tree.Features[i]
		result, ws, err := e.execute(f)
		if err != nil {
			errs = append(errs, FeatureError{FeatureID: f.ID, Message: err.Error()})
			continue
		}
		warnings = append(warnings, ws...)
		if result != nil {
			e.Results[f.ID] = result
		}
	}

	e.Warnings = warnings
	e.Errors = errs
}

func (e *Engine) execute(f *Feature) (*ops.OpResult, []string, error) {
	switch f.Op {
	case OpSketch:
		return nil, nil, nil // a sketch produces no cached solid; its profile is consumed directly by name

	case OpExtrude:
		return e.executeExtrude(f)
	case OpRevolve:
		return e.executeRevolve(f)
	case OpFillet:
		return e.executeFillet(f)
	case OpChamfer:
		return e.executeChamfer(f)
	case OpShell:
		return e.executeShell(f)
	case OpBoolean:
		return e.executeBoolean(f)
	default:
		return nil, nil, fmt.Errorf("feature: unknown operation variant %d", f.Op)
	}
}

func (e *Engine) resolveAll(refs []GeomRef) ([]topo.KernelID, []string, error) {
	ids := make([]topo.KernelID, 0, len(refs))
	var warnings []string
	for _, ref := range refs {
		resolved, err := Resolve(ref, e.Results, e.Store)
		if err != nil {
			return nil, warnings, err
		}
		ids = append(ids, resolved.KernelID)
		warnings = append(warnings, resolved.Warnings...)
	}
	return ids, warnings, nil
}

func (e *Engine) bodySolid(id UUID) (topo.SolidHandle, error) {
	result, ok := e.Results[id]
	if !ok || result == nil {
		return 0, ResolutionFailed(fmt.Sprintf("feature %s not found in results", id))
	}
	return result.Solid, nil
}

func (e *Engine) executeExtrude(f *Feature) (*ops.OpResult, []string, error) {
	p := f.Params
	result, err := ops.Extrude(e.Store, ops.ExtrudeParams{
		Profile:   p.Profile,
		Direction: p.Direction,
		Depth:     p.Depth.Resolve(e.Tree.Parameters),
		Symmetric: p.Symmetric,
	})
	if err != nil {
		return nil, nil, err
	}
	if p.Cut && p.TargetBody != "" {
		target, err := e.bodySolid(p.TargetBody)
		if err != nil {
			return nil, nil, err
		}
		combined, err := boolean.Combine(e.Store, target, result.Solid, boolean.OpDifference)
		if err != nil {
			return nil, nil, err
		}
		result.Solid = combined
	}
	return &result, nil, nil
}

func (e *Engine) executeRevolve(f *Feature) (*ops.OpResult, []string, error) {
	p := f.Params
	result, err := ops.Revolve(e.Store, ops.RevolveParams{
		Profile:    p.Profile,
		AxisOrigin: p.AxisOrigin,
		AxisDir:    p.AxisDir,
		TotalAngle: p.TotalAngle.Resolve(e.Tree.Parameters),
		Segments:   p.Segments,
	})
	if err != nil {
		return nil, nil, err
	}
	return &result, nil, nil
}

func (e *Engine) executeFillet(f *Feature) (*ops.OpResult, []string, error) {
	return e.executeBand(f, false)
}

func (e *Engine) executeChamfer(f *Feature) (*ops.OpResult, []string, error) {
	return e.executeBand(f, true)
}

func (e *Engine) executeBand(f *Feature, chamfer bool) (*ops.OpResult, []string, error) {
	p := f.Params
	solid, err := e.bodySolid(p.Body)
	if err != nil {
		return nil, nil, err
	}
	ids, warnings, err := e.resolveAll(p.EdgeSelectors)
	if err != nil {
		return nil, warnings, err
	}
	edges := make([]topo.EdgeHandle, 0, len(ids))
	for _, id := range ids {
		eh, ok := e.Store.EdgeByKernelID(id)
		if !ok {
			return nil, warnings, ResolutionFailed("resolved edge kernel-id not present in store")
		}
		edges = append(edges, eh)
	}

	var result ops.OpResult
	if chamfer {
		result, err = ops.Chamfer(e.Store, solid, edges, p.Distance.Resolve(e.Tree.Parameters))
	} else {
		result, err = ops.Fillet(e.Store, solid, edges, p.Radius.Resolve(e.Tree.Parameters))
	}
	if err != nil {
		return nil, warnings, err
	}
	return &result, warnings, nil
}

func (e *Engine) executeShell(f *Feature) (*ops.OpResult, []string, error) {
	p := f.Params
	solid, err := e.bodySolid(p.Body)
	if err != nil {
		return nil, nil, err
	}
	ids, warnings, err := e.resolveAll(p.RemoveFaces)
	if err != nil {
		return nil, warnings, err
	}
	faces := make([]topo.FaceHandle, 0, len(ids))
	for _, id := range ids {
		fh, ok := e.Store.FaceByKernelID(id)
		if !ok {
			return nil, warnings, ResolutionFailed("resolved face kernel-id not present in store")
		}
		faces = append(faces, fh)
	}
	result, err := ops.Shell(e.Store, solid, faces, p.Thickness.Resolve(e.Tree.Parameters))
	if err != nil {
		return nil, warnings, err
	}
	return &result, warnings, nil
}

func (e *Engine) executeBoolean(f *Feature) (*ops.OpResult, []string, error) {
	p := f.Params
	a, err := e.bodySolid(p.BodyA)
	if err != nil {
		return nil, nil, err
	}
	b, err := e.bodySolid(p.BodyB)
	if err != nil {
		return nil, nil, err
	}
	before := provenance.Capture(e.Store, a)
	solid, err := boolean.Combine(e.Store, a, b, toBooleanOp(p.BoolOp))
	if err != nil {
		return nil, nil, err
	}
	after := provenance.Capture(e.Store, solid)
	return &ops.OpResult{
		Solid: solid,
		Diff:  provenance.Compute(before, after),
		Roles: roleMapOf(e.Store, solid),
	}, nil, nil
}

func toBooleanOp(k BoolKind) boolean.Op {
	switch k {
	case BoolIntersection:
		return boolean.OpIntersection
	case BoolDifference:
		return boolean.OpDifference
	default:
		return boolean.OpUnion
	}
}

func roleMapOf(store *topo.Store, solid topo.SolidHandle) map[topo.KernelID]topo.Role {
	out := map[topo.KernelID]topo.Role{}
	for _, fh := range store.SolidFaces(solid) {
		face, ok := store.Face(fh)
		if !ok {
			continue
		}
		out[face.ID] = face.Role
	}
	return out
}

// Undo applies the top undo command and rebuilds from the earliest
// affected index.
func (e *Engine) Undo() error {
	idx, err := e.Tree.Undo()
	if err != nil {
		return err
	}
	if idx >= 0 {
		e.Rebuild(idx)
	}
	return nil
}

// Redo reapplies the most recently undone command and rebuilds from the
// earliest affected index. A negative index (a pure metadata command, such
// as rename) never triggers a rebuild.
func (e *Engine) Redo() error {
	idx, err := e.Tree.Redo()
	if err != nil {
		return err
	}
	if idx >= 0 {
		e.Rebuild(idx)
	}
	return nil
}
