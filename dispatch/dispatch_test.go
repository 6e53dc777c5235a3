package dispatch

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sequoia-hope/waffle-iron/feature"
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/ops"
	"github.com/sequoia-hope/waffle-iron/sketch"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

type fakeSolver struct{}

func (fakeSolver) Solve(s sketch.Sketch) sketch.SolvedSketch {
	return sketch.SolvedSketch{Status: sketch.SolveStatus{Kind: sketch.FullyConstrained}}
}

type DispatchSuite struct {
	suite.Suite
	engine *Engine
}

func (s *DispatchSuite) SetupTest() {
	store := topo.NewStore(tol.Default())
	tree := feature.NewTree()
	s.engine = NewEngine(feature.NewEngine(store, tree), fakeSolver{})
}

func rectSquare() (map[sketch.EntityID]geom.Vec2, []sketch.ClosedProfile) {
	positions := map[sketch.EntityID]geom.Vec2{
		0: {X: 0, Y: 0},
		1: {X: 1, Y: 0},
		2: {X: 1, Y: 1},
		3: {X: 0, Y: 1},
	}
	profiles := []sketch.ClosedProfile{
		{EntityIDs: []sketch.EntityID{100, 101, 102, 103}, IsOuter: true},
		{EntityIDs: []sketch.EntityID{103, 102, 101, 100}, IsOuter: false},
	}
	return positions, profiles
}

func (s *DispatchSuite) TestBeginAddFinishSketchCommitsOneFeature() {
	resp := s.engine.Dispatch(Request{Kind: ReqBeginSketch, Plane: sketch.Plane{Normal: geom.Vec{Z: 1}}})
	s.Require().Equal(RespModelUpdated, resp.Kind)

	entities := []sketch.Entity{
		sketch.NewPoint(0, 0, 0), sketch.NewPoint(1, 1, 0), sketch.NewPoint(2, 1, 1), sketch.NewPoint(3, 0, 1),
		sketch.NewLine(100, 0, 1), sketch.NewLine(101, 1, 2), sketch.NewLine(102, 2, 3), sketch.NewLine(103, 3, 0),
	}
	for _, e := range entities {
		resp := s.engine.Dispatch(Request{Kind: ReqAddSketchEntity, Entity: e})
		s.Require().Equal(RespAcknowledgement, resp.Kind)
	}

	positions, profiles := rectSquare()
	resp = s.engine.Dispatch(Request{
		Kind:      ReqFinishSketch,
		Positions: positions,
		Profiles:  profiles,
		Normal:    geom.Vec{Z: 1},
	})
	s.Require().Equal(RespModelUpdated, resp.Kind)
	s.Require().Len(s.engine.Feature.Tree.Features, 1)
	s.Require().Equal(feature.OpSketch, s.engine.Feature.Tree.Features[0].Op)
	s.Require().Len(s.engine.Feature.Tree.Features[0].Params.Profile.Outer, 4)
	s.Require().Empty(s.engine.Feature.Tree.Features[0].Params.Profile.Inner)
}

func (s *DispatchSuite) TestAddSketchEntityWithoutActiveSketchErrors() {
	resp := s.engine.Dispatch(Request{Kind: ReqAddSketchEntity, Entity: sketch.NewPoint(0, 0, 0)})
	s.Require().Equal(RespError, resp.Kind)
	s.Require().ErrorIs(resp.Err, ErrNoActiveSketch)
}

func (s *DispatchSuite) TestAddFeatureRebuildsAndCachesResult() {
	resp := s.engine.Dispatch(Request{
		Kind:      ReqAddFeature,
		Operation: feature.OpExtrude,
		NewName:   "Extrude1",
		Params: feature.FeatureParams{
			Profile: ops.Profile{
				Plane: geom.Plane{Normal: geom.Vec{Z: 1}},
				Outer: []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			},
			Direction: geom.Vec{Z: 1},
			Depth:     feature.ParamValue{Literal: 2},
		},
	})
	s.Require().Equal(RespModelUpdated, resp.Kind)
	s.Require().Len(s.engine.Feature.Tree.Features, 1)
	id := s.engine.Feature.Tree.Features[0].ID
	s.Require().Contains(s.engine.Feature.Results, id)
}

func (s *DispatchSuite) TestDeleteUnknownFeatureErrors() {
	resp := s.engine.Dispatch(Request{Kind: ReqDeleteFeature, FeatureID: feature.UUID("missing")})
	s.Require().Equal(RespError, resp.Kind)
}

func (s *DispatchSuite) TestRenameFeatureDoesNotRebuild() {
	s.engine.Dispatch(Request{
		Kind:      ReqAddFeature,
		Operation: feature.OpExtrude,
		Params: feature.FeatureParams{
			Profile: ops.Profile{
				Plane: geom.Plane{Normal: geom.Vec{Z: 1}},
				Outer: []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			},
			Direction: geom.Vec{Z: 1},
			Depth:     feature.ParamValue{Literal: 2},
		},
	})
	id := s.engine.Feature.Tree.Features[0].ID

	resp := s.engine.Dispatch(Request{Kind: ReqRenameFeature, FeatureID: id, NewName: "Boss"})
	s.Require().Equal(RespModelUpdated, resp.Kind)
	s.Require().Equal("Boss", s.engine.Feature.Tree.Features[0].Name)
}

func (s *DispatchSuite) TestUndoWithNothingToUndoErrors() {
	resp := s.engine.Dispatch(Request{Kind: ReqUndo})
	s.Require().Equal(RespError, resp.Kind)
}

func (s *DispatchSuite) TestSaveThenLoadProjectRoundTrips() {
	s.engine.Dispatch(Request{
		Kind:      ReqAddFeature,
		Operation: feature.OpExtrude,
		Params: feature.FeatureParams{
			Profile: ops.Profile{
				Plane: geom.Plane{Normal: geom.Vec{Z: 1}},
				Outer: []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			},
			Direction: geom.Vec{Z: 1},
			Depth:     feature.ParamValue{Literal: 2},
		},
	})

	saveResp := s.engine.Dispatch(Request{Kind: ReqSaveProject})
	s.Require().Equal(RespSaveReady, saveResp.Kind)
	s.Require().NotEmpty(saveResp.SaveJSON)

	loadResp := s.engine.Dispatch(Request{Kind: ReqLoadProject, ProjectJSON: saveResp.SaveJSON})
	s.Require().Equal(RespModelUpdated, loadResp.Kind)
	s.Require().Len(s.engine.Feature.Tree.Features, 1)
	s.Require().Equal(feature.OpExtrude, s.engine.Feature.Tree.Features[0].Op)
}

func TestDispatchSuite(t *testing.T) {
	suite.Run(t, new(DispatchSuite))
}
