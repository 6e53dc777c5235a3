package feature

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/ops"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

type FeatureSuite struct {
	suite.Suite
}

func TestFeatureSuite(t *testing.T) {
	suite.Run(t, new(FeatureSuite))
}

func rectProfile() ops.Profile {
	return ops.Profile{
		Plane: geom.Plane{Origin: geom.Vec{}, Normal: geom.Vec{Z: 1}},
		XAxis: geom.Vec{X: 1},
		Outer: []geom.Vec2{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
	}
}

func (s *FeatureSuite) TestAddAppendsAndRecordsUndo() {
	tree := NewTree()
	f := &Feature{ID: NewUUID(), Name: "extrude1", Op: OpExtrude}
	tree.Add(f)

	s.Len(tree.Features, 1)
	s.Equal(f.ID, tree.Features[0].ID)
	s.Len(tree.undo, 1)
}

func (s *FeatureSuite) TestRemoveUnknownFails() {
	tree := NewTree()
	err := tree.Remove(UUID("missing"))
	s.Equal(ErrFeatureNotFound, err)
}

func (s *FeatureSuite) TestUndoReversesAdd() {
	tree := NewTree()
	f := &Feature{ID: NewUUID(), Op: OpExtrude}
	tree.Add(f)
	s.Len(tree.Features, 1)

	_, err := tree.Undo()
	s.Require().NoError(err)
	s.Len(tree.Features, 0)

	_, err = tree.Redo()
	s.Require().NoError(err)
	s.Len(tree.Features, 1)
}

func (s *FeatureSuite) TestActiveIndexShiftsOnInsertBeforeIt() {
	tree := NewTree()
	a := &Feature{ID: NewUUID()}
	b := &Feature{ID: NewUUID()}
	tree.Add(a)
	tree.Add(b)
	idx := 1
	tree.ActiveIndex = &idx

	c := &Feature{ID: NewUUID()}
	// Directly exercise the insertion-before-active-index shift rule
	// without relying on Add's own rollback-aware insertion point.
	tree.insertAt(0, c)
	s.Require().NotNil(tree.ActiveIndex)
	s.Equal(2, *tree.ActiveIndex)
}

func (s *FeatureSuite) TestActiveIndexClampsToNilWhenTreeEmptied() {
	tree := NewTree()
	a := &Feature{ID: NewUUID()}
	tree.Add(a)
	idx := 0
	tree.ActiveIndex = &idx

	tree.removeAt(0)
	s.Nil(tree.ActiveIndex)
}

func (s *FeatureSuite) TestRebuildExecutesExtrudeAndCachesResult() {
	store := topo.NewStore(tol.Default())
	tree := NewTree()
	f := &Feature{
		ID: NewUUID(),
		Op: OpExtrude,
		Params: FeatureParams{
			Profile: rectProfile(),
			Depth:   ParamValue{Literal: 2},
		},
	}
	tree.Add(f)

	engine := NewEngine(store, tree)
	engine.Rebuild(0)

	s.Empty(engine.Errors)
	result, ok := engine.Results[f.ID]
	s.Require().True(ok)
	s.NotZero(result.Solid)
}

func (s *FeatureSuite) TestRebuildRecordsErrorWithoutAborting() {
	store := topo.NewStore(tol.Default())
	tree := NewTree()
	bad := &Feature{ID: NewUUID(), Op: OpExtrude, Params: FeatureParams{Profile: rectProfile(), Depth: ParamValue{Literal: 0}}}
	good := &Feature{ID: NewUUID(), Op: OpExtrude, Params: FeatureParams{Profile: rectProfile(), Depth: ParamValue{Literal: 1}}}
	tree.Add(bad)
	tree.Add(good)

	engine := NewEngine(store, tree)
	engine.Rebuild(0)

	s.Len(engine.Errors, 1)
	s.Equal(bad.ID, engine.Errors[0].FeatureID)
	_, ok := engine.Results[good.ID]
	s.True(ok)
}

func (s *FeatureSuite) TestResolveByRoleReturnsEndCapPositive() {
	store := topo.NewStore(tol.Default())
	tree := NewTree()
	f := &Feature{ID: NewUUID(), Op: OpExtrude, Params: FeatureParams{Profile: rectProfile(), Depth: ParamValue{Literal: 2}}}
	tree.Add(f)

	engine := NewEngine(store, tree)
	engine.Rebuild(0)

	ref := GeomRef{
		Kind:   EntityFace,
		Anchor: Anchor{Kind: AnchorFeatureOutput, FeatureID: f.ID},
		Selector: Selector{
			Kind: SelectorRole,
			Role: topo.RoleEndCapPositive,
		},
		Policy: PolicyStrict,
	}
	resolved, err := Resolve(ref, engine.Results, store)
	s.Require().NoError(err)
	s.NotZero(resolved.KernelID)
}

func (s *FeatureSuite) TestResolveUnknownFeatureFails() {
	store := topo.NewStore(tol.Default())
	ref := GeomRef{Anchor: Anchor{Kind: AnchorFeatureOutput, FeatureID: UUID("nope")}}
	_, err := Resolve(ref, map[UUID]*ops.OpResult{}, store)
	s.Error(err)
}
