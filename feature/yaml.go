//-----------------------------------------------------------------------------
/*

YAML tagging for the feature tree's enum types, mirroring json.go's string
tags so persist.DebugYAML's diagnostic dump reads the same operation and
selector names a saved JSON project does, rather than bare iota integers.

*/
//-----------------------------------------------------------------------------

package feature

// MarshalYAML renders the operation variant as its tag string.
func (o OpVariant) MarshalYAML() (interface{}, error) { return o.String(), nil }

// MarshalYAML renders the boolean op kind as its tag string.
func (k BoolKind) MarshalYAML() (interface{}, error) { return k.String(), nil }

// MarshalYAML renders the anchor kind as its tag string.
func (k AnchorKind) MarshalYAML() (interface{}, error) { return k.String(), nil }

// MarshalYAML renders the selector kind as its tag string.
func (k SelectorKind) MarshalYAML() (interface{}, error) { return k.String(), nil }

// MarshalYAML renders the resolution policy as its tag string.
func (p Policy) MarshalYAML() (interface{}, error) { return p.String(), nil }

// MarshalYAML renders the entity-ref kind as its tag string.
func (k EntityKind) MarshalYAML() (interface{}, error) { return k.String(), nil }
