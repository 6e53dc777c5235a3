//-----------------------------------------------------------------------------
/*

JSON tagging for the feature tree's enum types. Persisted documents name
operation variants and selector/anchor kinds as strings (spec.md §6: "every
operation variant is tagged") rather than bare integers, so a saved project
stays readable and stable even if the Go iota ordering is ever reshuffled.

*/
//-----------------------------------------------------------------------------

package feature

import (
	"encoding/json"
	"fmt"
)

var opVariantNames = map[OpVariant]string{
	OpSketch:  "sketch",
	OpExtrude: "extrude",
	OpRevolve: "revolve",
	OpFillet:  "fillet",
	OpChamfer: "chamfer",
	OpShell:   "shell",
	OpBoolean: "boolean",
}

func (o OpVariant) String() string {
	if name, ok := opVariantNames[o]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON renders the operation variant as its tag string.
func (o OpVariant) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON parses an operation variant tag string.
func (o *OpVariant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for k, v := range opVariantNames {
		if v == s {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("feature: unknown operation tag %q", s)
}

var boolKindNames = map[BoolKind]string{
	BoolUnion:        "union",
	BoolIntersection: "intersection",
	BoolDifference:   "difference",
}

func (k BoolKind) String() string {
	if name, ok := boolKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k BoolKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *BoolKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range boolKindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("feature: unknown boolean op tag %q", s)
}

var anchorKindNames = map[AnchorKind]string{
	AnchorFeatureOutput: "feature_output",
	AnchorDatum:         "datum",
}

func (k AnchorKind) String() string {
	if name, ok := anchorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k AnchorKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *AnchorKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range anchorKindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("feature: unknown anchor tag %q", s)
}

var selectorKindNames = map[SelectorKind]string{
	SelectorRole:      "role",
	SelectorSignature: "signature",
	SelectorQuery:     "query",
}

func (k SelectorKind) String() string {
	if name, ok := selectorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k SelectorKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *SelectorKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range selectorKindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("feature: unknown selector tag %q", s)
}

var policyNames = map[Policy]string{
	PolicyStrict:     "strict",
	PolicyBestEffort: "best_effort",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p Policy) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Policy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for policy, name := range policyNames {
		if name == s {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("feature: unknown policy tag %q", s)
}

var entityKindNames = map[EntityKind]string{
	EntityFace:   "face",
	EntityEdge:   "edge",
	EntityVertex: "vertex",
	EntitySolid:  "solid",
}

func (k EntityKind) String() string {
	if name, ok := entityKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k EntityKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *EntityKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range entityKindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("feature: unknown entity-ref kind tag %q", s)
}
