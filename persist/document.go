//-----------------------------------------------------------------------------
/*

Project persistence (spec.md §6): JSON save/load of the feature tree plus
its named parameters. The on-disk shape is a plain data document rather
than a live Tree/Engine, so a load never depends on any cached OpResult
that a rebuild will recompute anyway.

*/
//-----------------------------------------------------------------------------

package persist

import (
	"encoding/json"
	"fmt"

	"github.com/sequoia-hope/waffle-iron/feature"
)

// Format is the fixed "format" discriminator spec.md §6 requires.
const Format = "waffle-iron"

// Version is the current persistence schema version this package writes
// and the newest version it reads.
const Version = 1

// Document is the top-level persisted shape:
// { "format": "waffle-iron", "version": N, "features": [...], "parameters": [...] }.
type Document struct {
	Format     string      `json:"format" yaml:"format"`
	Version    int         `json:"version" yaml:"version"`
	Features   []Feature   `json:"features" yaml:"features"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// Feature is a persisted feature-tree entry. It embeds feature.Feature
// directly since that type's fields already carry the json tags the
// persisted shape needs.
type Feature = feature.Feature

// Parameter is one tree-level named scalar: { name, value, optional expression }.
type Parameter struct {
	Name       string  `json:"name" yaml:"name"`
	Value      float64 `json:"value" yaml:"value"`
	Expression string  `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// buildDocument flattens tree into the persisted document shape shared by
// the JSON and debug-YAML renderings.
func buildDocument(tree *feature.Tree) Document {
	doc := Document{
		Format:   Format,
		Version:  Version,
		Features: make([]Feature, 0, len(tree.Features)),
	}
	for _, f := range tree.Features {
		doc.Features = append(doc.Features, *f)
	}
	for name, value := range tree.Parameters {
		doc.Parameters = append(doc.Parameters, Parameter{Name: name, Value: value})
	}
	return doc
}

// Save serializes tree into the persisted JSON document shape.
func Save(tree *feature.Tree) (string, error) {
	data, err := json.MarshalIndent(buildDocument(tree), "", "  ")
	if err != nil {
		return "", fmt.Errorf("persist: marshal: %w", err)
	}
	return string(data), nil
}

// Load parses a persisted JSON document and rebuilds a fresh feature.Tree
// from it. Uuids are preserved so external references remain valid, per
// spec.md §6. The returned tree's rollback point (ActiveIndex) is always
// nil: persistence does not carry rollback state, only the committed
// feature list.
func Load(data string) (*feature.Tree, error) {
	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("persist: unmarshal: %w", err)
	}
	if doc.Format != Format {
		return nil, fmt.Errorf("persist: unrecognized format %q", doc.Format)
	}
	if doc.Version > Version {
		return nil, fmt.Errorf("persist: unsupported version %d (newest known is %d)", doc.Version, Version)
	}

	params := make(map[string]float64, len(doc.Parameters))
	for _, p := range doc.Parameters {
		params[p.Name] = p.Value
	}

	tree := feature.NewTree(feature.WithParameters(params))
	for i := range doc.Features {
		f := doc.Features[i]
		tree.Features = append(tree.Features, &f)
	}
	return tree, nil
}
