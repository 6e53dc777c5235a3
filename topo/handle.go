// Package topo implements the topology store: the single owning arena that
// holds vertices, edges, half-edges, loops, faces, shells and solids,
// keyed by stable opaque handles. No topology entity outlives its store.
package topo

import "fmt"

// KernelID is the 64-bit identifier used externally (in provenance records
// and selectors) to name a topology entity across rebuilds. Unlike a
// Handle, a KernelID is assigned once per entity creation and is what
// survives into role assignments and signature records.
type KernelID uint64

// VertexHandle addresses a Vertex in a Store. It remains valid until the
// vertex is explicitly removed and is never reused.
type VertexHandle uint64

// EdgeHandle addresses an Edge in a Store.
type EdgeHandle uint64

// HalfEdgeHandle addresses a HalfEdge in a Store.
type HalfEdgeHandle uint64

// LoopHandle addresses a Loop in a Store.
type LoopHandle uint64

// FaceHandle addresses a Face in a Store.
type FaceHandle uint64

// ShellHandle addresses a Shell in a Store.
type ShellHandle uint64

// SolidHandle addresses a Solid in a Store.
type SolidHandle uint64

// Kind enumerates the topology entity kinds, used by GeomRef selectors and
// provenance signatures.
type Kind int

// Topology entity kinds.
const (
	KindVertex Kind = iota
	KindEdge
	KindHalfEdge
	KindLoop
	KindFace
	KindShell
	KindSolid
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindEdge:
		return "edge"
	case KindHalfEdge:
		return "half-edge"
	case KindLoop:
		return "loop"
	case KindFace:
		return "face"
	case KindShell:
		return "shell"
	case KindSolid:
		return "solid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
