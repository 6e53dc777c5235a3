//-----------------------------------------------------------------------------
/*

Dispatch engine: the single entry point a host drives (spec.md §6). It
owns the feature engine, the active (in-progress) sketch, and the solver
seam; Dispatch routes a Request to the matching handler and returns one
Response, mutating state only on success per spec.md §7's propagation
policy (dispatch-level errors never mutate state).

*/
//-----------------------------------------------------------------------------

package dispatch

import (
	"github.com/sequoia-hope/waffle-iron/feature"
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/ops"
	"github.com/sequoia-hope/waffle-iron/persist"
	"github.com/sequoia-hope/waffle-iron/sketch"
)

// Engine is the dispatch-level wrapper around a feature engine: it adds
// the in-progress sketch session and the external solver seam the
// feature engine itself has no notion of.
type Engine struct {
	Feature *feature.Engine
	Solver  sketch.Solver

	activeSketch *sketch.Sketch
}

// NewEngine wires a feature engine and a sketch solver into a dispatch
// engine ready to receive requests.
func NewEngine(featureEngine *feature.Engine, solver sketch.Solver) *Engine {
	return &Engine{Feature: featureEngine, Solver: solver}
}

// Dispatch routes req to its handler and returns the matching response.
// On any dispatch-level error (malformed request, no active sketch) no
// state is mutated.
func (e *Engine) Dispatch(req Request) Response {
	switch req.Kind {
	case ReqBeginSketch:
		return e.beginSketch(req)
	case ReqAddSketchEntity:
		return e.addSketchEntity(req)
	case ReqFinishSketch:
		return e.finishSketch(req)
	case ReqAddFeature:
		return e.addFeature(req)
	case ReqDeleteFeature:
		return e.deleteFeature(req)
	case ReqEditFeature:
		return e.editFeature(req)
	case ReqSuppressFeature:
		return e.suppressFeature(req)
	case ReqReorderFeature:
		return e.reorderFeature(req)
	case ReqRenameFeature:
		return e.renameFeature(req)
	case ReqSetRollback:
		return e.setRollback(req)
	case ReqUndo:
		return e.undo()
	case ReqRedo:
		return e.redo()
	case ReqSaveProject:
		return e.saveProject()
	case ReqLoadProject:
		return e.loadProject(req)
	default:
		return errorResponse(ErrUnknownRequestKind)
	}
}

func (e *Engine) beginSketch(req Request) Response {
	e.activeSketch = &sketch.Sketch{Plane: req.Plane}
	return modelUpdated()
}

func (e *Engine) addSketchEntity(req Request) Response {
	if e.activeSketch == nil {
		return errorResponse(ErrNoActiveSketch)
	}
	e.activeSketch.AddEntity(req.Entity)
	return acknowledgement()
}

// finishSketch commits the active sketch as a new OpSketch feature,
// flattening the solved profiles (spec.md §6's FinishSketch payload) into
// an ops.Profile: the largest-area outer profile becomes Outer, and every
// remaining profile, outer or hole, that is not that profile's own
// unbounded complement (see sketch.ExtractProfiles / sketch.SameEntitySet)
// becomes an Inner loop.
func (e *Engine) finishSketch(req Request) Response {
	if e.activeSketch == nil {
		return errorResponse(ErrNoActiveSketch)
	}

	byID := make(map[sketch.EntityID]sketch.Entity, len(e.activeSketch.Entities))
	for _, ent := range e.activeSketch.Entities {
		byID[ent.ID] = ent
	}

	outerIdx, outerArea := -1, -1.0
	for i, p := range req.Profiles {
		if !p.IsOuter {
			continue
		}
		area := loopArea(sketch.Loop(p, byID, req.Positions, 0))
		if area > outerArea {
			outerArea = area
			outerIdx = i
		}
	}

	profile := ops.Profile{
		Plane: geom.Plane{Origin: req.Origin, Normal: req.Normal},
	}
	if outerIdx >= 0 {
		profile.Outer = sketch.Loop(req.Profiles[outerIdx], byID, req.Positions, 0)
		for i, p := range req.Profiles {
			if i == outerIdx {
				continue
			}
			if sketch.SameEntitySet(p.EntityIDs, req.Profiles[outerIdx].EntityIDs) {
				continue // the outer loop's own unbounded complement, not a hole
			}
			profile.Inner = append(profile.Inner, sketch.Loop(p, byID, req.Positions, 0))
		}
	}

	e.Feature.Tree.Add(&feature.Feature{
		ID:   feature.NewUUID(),
		Name: "Sketch",
		Op:   feature.OpSketch,
		Params: feature.FeatureParams{
			Profile: profile,
		},
	})
	e.Feature.Rebuild(0)
	e.activeSketch = nil
	return modelUpdated()
}

func loopArea(loop []geom.Vec2) float64 {
	if len(loop) < 3 {
		return 0
	}
	area := 0.0
	n := len(loop)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += loop[i].X*loop[j].Y - loop[j].X*loop[i].Y
	}
	if area < 0 {
		area = -area
	}
	return area / 2
}

func (e *Engine) addFeature(req Request) Response {
	e.Feature.Tree.Add(&feature.Feature{
		ID:     feature.NewUUID(),
		Name:   req.NewName,
		Op:     req.Operation,
		Params: req.Params,
	})
	e.Feature.Rebuild(0)
	return modelUpdated()
}

func (e *Engine) deleteFeature(req Request) Response {
	if err := e.Feature.Tree.Remove(req.FeatureID); err != nil {
		return errorResponse(err)
	}
	e.Feature.Rebuild(0)
	return modelUpdated()
}

func (e *Engine) editFeature(req Request) Response {
	if err := e.Feature.Tree.Edit(req.FeatureID, req.Operation, req.Params); err != nil {
		return errorResponse(err)
	}
	e.Feature.Rebuild(0)
	return modelUpdated()
}

func (e *Engine) suppressFeature(req Request) Response {
	if err := e.Feature.Tree.Suppress(req.FeatureID, req.Suppressed); err != nil {
		return errorResponse(err)
	}
	e.Feature.Rebuild(0)
	return modelUpdated()
}

func (e *Engine) reorderFeature(req Request) Response {
	if err := e.Feature.Tree.Reorder(req.FeatureID, req.NewIndex); err != nil {
		return errorResponse(err)
	}
	e.Feature.Rebuild(0)
	return modelUpdated()
}

func (e *Engine) renameFeature(req Request) Response {
	if err := e.Feature.Tree.Rename(req.FeatureID, req.NewName); err != nil {
		return errorResponse(err)
	}
	return modelUpdated() // pure metadata update: no rebuild, per spec.md §6
}

func (e *Engine) setRollback(req Request) Response {
	e.Feature.Tree.ActiveIndex = req.RollbackIndex
	e.Feature.Rebuild(0)
	return modelUpdated()
}

func (e *Engine) undo() Response {
	if err := e.Feature.Undo(); err != nil {
		return errorResponse(err)
	}
	return modelUpdated()
}

func (e *Engine) redo() Response {
	if err := e.Feature.Redo(); err != nil {
		return errorResponse(err)
	}
	return modelUpdated()
}

func (e *Engine) saveProject() Response {
	out, err := persist.Save(e.Feature.Tree)
	if err != nil {
		return errorResponse(err)
	}
	return saveReady(out)
}

func (e *Engine) loadProject(req Request) Response {
	tree, err := persist.Load(req.ProjectJSON)
	if err != nil {
		return errorResponse(err)
	}
	e.Feature.Tree = tree
	e.Feature.Results = map[feature.UUID]*ops.OpResult{}
	e.Feature.Rebuild(0)
	return modelUpdated()
}
