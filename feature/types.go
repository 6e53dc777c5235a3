//-----------------------------------------------------------------------------
/*

Feature tree data model: an ordered list of parametric operations, symbolic
references from one feature's inputs to another's outputs, and the
rollback/undo bookkeeping spec.md §3-§4.7 describes.

*/
//-----------------------------------------------------------------------------

package feature

import (
	"github.com/rs/xid"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/ops"
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// UUID identifies a feature or datum stably across the tree's lifetime.
type UUID string

// NewUUID allocates a fresh, sortable, globally-unique feature identifier.
func NewUUID() UUID {
	return UUID(xid.New().String())
}

// OpVariant discriminates which modeling operation a feature carries.
type OpVariant int

// Operation variants.
const (
	OpSketch OpVariant = iota
	OpExtrude
	OpRevolve
	OpFillet
	OpChamfer
	OpShell
	OpBoolean
)

// BoolKind mirrors boolean.Op without importing the boolean package, which
// itself does not depend on feature.
type BoolKind int

// Boolean operation kinds, matching boolean.Op's ordering.
const (
	BoolUnion BoolKind = iota
	BoolIntersection
	BoolDifference
)

// ParamValue is a named-or-literal scalar: a feature's parametric input may
// reference a tree-level parameter by name, falling back to its own
// literal value if the name is unset or absent from the tree. Expression
// is carried through save/load per spec.md §6's persistence format but is
// not evaluated: formula evaluation is not implemented by this kernel.
type ParamValue struct {
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Literal    float64 `json:"value" yaml:"value"`
	Expression string  `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// Resolve returns the tree parameter named by v.Name if present, else v.Literal.
func (v ParamValue) Resolve(params map[string]float64) float64 {
	if v.Name != "" {
		if val, ok := params[v.Name]; ok {
			return val
		}
	}
	return v.Literal
}

// Feature is one entry in the ordered feature tree.
type Feature struct {
	ID         UUID          `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	Op         OpVariant     `json:"op" yaml:"op"`
	Params     FeatureParams `json:"params" yaml:"params"`
	Suppressed bool          `json:"suppressed" yaml:"suppressed"`
	References []GeomRef     `json:"references,omitempty" yaml:"references,omitempty"`
}

// Clone deep-copies a feature, used by the undo stack so a popped command
// always carries an independent snapshot.
func (f *Feature) Clone() *Feature {
	clone := *f
	clone.References = append([]GeomRef(nil), f.References...)
	return &clone
}

// FeatureParams carries the union of parameters any operation variant
// might need; only the fields relevant to Feature.Op are consulted at
// rebuild time.
type FeatureParams struct {
	// Sketch / Extrude / Revolve
	Profile    ops.Profile `json:"profile" yaml:"profile"`
	Direction  geom.Vec    `json:"direction" yaml:"direction"`
	Depth      ParamValue  `json:"depth" yaml:"depth"`
	Symmetric  bool        `json:"symmetric" yaml:"symmetric"`
	Cut        bool        `json:"cut" yaml:"cut"`
	TargetBody UUID        `json:"target_body,omitempty" yaml:"target_body,omitempty"`

	AxisOrigin geom.Vec   `json:"axis_origin" yaml:"axis_origin"`
	AxisDir    geom.Vec   `json:"axis_dir" yaml:"axis_dir"`
	TotalAngle ParamValue `json:"total_angle" yaml:"total_angle"`
	Segments   int        `json:"segments" yaml:"segments"`

	// Fillet / Chamfer
	EdgeSelectors []GeomRef  `json:"edge_selectors,omitempty" yaml:"edge_selectors,omitempty"`
	Radius        ParamValue `json:"radius" yaml:"radius"`
	Distance      ParamValue `json:"distance" yaml:"distance"`

	// Fillet / Chamfer / Shell: the feature whose cached solid this
	// operation consumes and replaces.
	Body UUID `json:"body,omitempty" yaml:"body,omitempty"`

	// Shell
	RemoveFaces []GeomRef  `json:"remove_faces,omitempty" yaml:"remove_faces,omitempty"`
	Thickness   ParamValue `json:"thickness" yaml:"thickness"`

	// Boolean combine
	BodyA  UUID     `json:"body_a,omitempty" yaml:"body_a,omitempty"`
	BodyB  UUID     `json:"body_b,omitempty" yaml:"body_b,omitempty"`
	BoolOp BoolKind `json:"bool_op" yaml:"bool_op"`
}

// AnchorKind discriminates a GeomRef's anchor.
type AnchorKind int

// Anchor kinds.
const (
	AnchorFeatureOutput AnchorKind = iota
	AnchorDatum
)

// Anchor identifies where a GeomRef's selector is evaluated against.
type Anchor struct {
	Kind      AnchorKind `json:"kind" yaml:"kind"`
	FeatureID UUID       `json:"feature_id,omitempty" yaml:"feature_id,omitempty"`
	OutputKey string     `json:"output_key,omitempty" yaml:"output_key,omitempty"`
	DatumID   string     `json:"datum_id,omitempty" yaml:"datum_id,omitempty"`
}

// SelectorKind discriminates a GeomRef's selector.
type SelectorKind int

// Selector kinds.
const (
	SelectorRole SelectorKind = iota
	SelectorSignature
	SelectorQuery
)

// Selector picks a concrete entity out of an anchor's output.
type Selector struct {
	Kind SelectorKind `json:"kind" yaml:"kind"`

	Role      topo.RoleKind `json:"role,omitempty" yaml:"role,omitempty"`
	RoleIndex int           `json:"role_index,omitempty" yaml:"role_index,omitempty"`

	TargetSignature provenance.Signature `json:"target_signature" yaml:"target_signature"`

	QueryFilters  map[string]string `json:"query_filters,omitempty" yaml:"query_filters,omitempty"`
	QueryTieBreak string            `json:"query_tie_break,omitempty" yaml:"query_tie_break,omitempty"`
}

// Policy governs resolution fallback behavior.
type Policy int

// Resolution policies.
const (
	PolicyStrict Policy = iota
	PolicyBestEffort
)

// EntityKind names the topology kind a GeomRef targets.
type EntityKind int

// Entity kinds a GeomRef may target.
const (
	EntityFace EntityKind = iota
	EntityEdge
	EntityVertex
	EntitySolid
)

// GeomRef is a symbolic reference from a feature's input to a concrete
// topology entity, resolved fresh on every rebuild.
type GeomRef struct {
	Kind     EntityKind `json:"kind" yaml:"kind"`
	Anchor   Anchor     `json:"anchor" yaml:"anchor"`
	Selector Selector   `json:"selector" yaml:"selector"`
	Policy   Policy     `json:"policy" yaml:"policy"`
}
