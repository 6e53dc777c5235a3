package persist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sequoia-hope/waffle-iron/feature"
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/ops"
)

func sampleTree() *feature.Tree {
	tree := feature.NewTree(feature.WithParameters(map[string]float64{"wall": 2.5}))
	tree.Add(&feature.Feature{
		ID:   feature.NewUUID(),
		Name: "Extrude1",
		Op:   feature.OpExtrude,
		Params: feature.FeatureParams{
			Profile: ops.Profile{
				Plane: geom.Plane{Normal: geom.Vec{Z: 1}},
				Outer: []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			},
			Direction: geom.Vec{Z: 1},
			Depth:     feature.ParamValue{Name: "wall", Literal: 1},
		},
	})
	return tree
}

func TestSaveProducesTaggedDocument(t *testing.T) {
	tree := sampleTree()

	out, err := Save(tree)
	require.NoError(t, err)
	require.Contains(t, out, `"format": "waffle-iron"`)
	require.Contains(t, out, `"op": "extrude"`)
	require.Contains(t, out, `"wall"`)
}

func TestSaveLoadRoundTripPreservesUUIDsAndParameters(t *testing.T) {
	tree := sampleTree()
	original := tree.Features[0].ID

	out, err := Save(tree)
	require.NoError(t, err)

	loaded, err := Load(out)
	require.NoError(t, err)
	require.Len(t, loaded.Features, 1)
	require.Equal(t, original, loaded.Features[0].ID)
	require.Equal(t, feature.OpExtrude, loaded.Features[0].Op)
	require.Equal(t, "wall", loaded.Features[0].Params.Depth.Name)
	require.Equal(t, 2.5, loaded.Parameters["wall"])
	require.Nil(t, loaded.ActiveIndex)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load(`{"format":"something-else","version":1}`)
	require.Error(t, err)
}

func TestLoadRejectsFutureVersion(t *testing.T) {
	_, err := Load(`{"format":"waffle-iron","version":999}`)
	require.Error(t, err)
}

func TestDebugYAMLRendersSameDocumentAsSave(t *testing.T) {
	tree := sampleTree()

	out, err := DebugYAML(tree)
	require.NoError(t, err)
	require.Contains(t, out, "format: waffle-iron")
	require.Contains(t, out, "op: extrude")
	require.Contains(t, out, "wall")
}
