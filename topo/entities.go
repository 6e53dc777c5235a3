package topo

import "github.com/sequoia-hope/waffle-iron/geom"

// Vertex is a single point in space, owned exclusively by a Store.
type Vertex struct {
	ID        KernelID
	Point     geom.Vec
	Tolerance float64 // per-vertex tolerance override; 0 means "use the store's bundle"
}

// Edge is a curve bounded by two vertices, with two twinned half-edges.
//
// Invariant: its start/end vertices match the curve endpoints within
// coincidence tolerance, and its two half-edges are twins of each other.
type Edge struct {
	ID         KernelID
	Curve      geom.Curve
	HalfEdges  [2]HalfEdgeHandle // twin pair
	StartVert  VertexHandle
	EndVert    VertexHandle
}

// HalfEdge is one directed use of an Edge, belonging to one Loop/Face.
//
// Invariant: Twin's Start equals this End, Twin's End equals this Start,
// and both reference the same Edge.
type HalfEdge struct {
	ID        KernelID
	Edge      EdgeHandle
	Twin      HalfEdgeHandle
	Face      FaceHandle
	Loop      LoopHandle
	Start     VertexHandle
	End       VertexHandle
	ParamLo   float64
	ParamHi   float64
	Forward   bool
}

// Loop is an ordered, closed cycle of half-edges bounding one side of a
// Face (the outer boundary, or a hole).
//
// Invariant: the last half-edge's end vertex equals the first's start
// vertex, and every half-edge in Edges references this loop.
type Loop struct {
	ID    KernelID
	Edges []HalfEdgeHandle
	Face  FaceHandle
}

// Face is a bounded region of a Surface: one outer Loop plus zero or more
// inner Loops (holes).
//
// Invariant: loops are non-self-intersecting in the surface's 2D
// parameters, and inner loops lie strictly inside the outer loop.
type Face struct {
	ID         KernelID
	Surface    geom.Surface
	Outer      LoopHandle
	Inner      []LoopHandle
	SameSense  bool
	Shell      ShellHandle
	Role       Role
}

// ShellOrientation distinguishes an outward-facing hull shell from an
// inward-facing cavity shell.
type ShellOrientation int

// Shell orientations.
const (
	ShellOutward ShellOrientation = iota
	ShellInward
)

// Shell is a connected set of faces forming one watertight boundary
// component of a Solid.
//
// Invariant: every face's Shell back-pointer equals this shell's handle.
type Shell struct {
	ID          KernelID
	Faces       []FaceHandle
	Orientation ShellOrientation
	Solid       SolidHandle
}

// Solid is an ordered list of shells: exactly one outward shell plus zero
// or more inward shells (cavities).
type Solid struct {
	ID     KernelID
	Shells []ShellHandle
}

// Role is the stable semantic label attached to an output face so that
// feature references survive rebuilds. The zero value RoleNone means
// "unassigned".
type Role struct {
	Kind  RoleKind
	Index int // meaningful for SideFace/FilletFace/ChamferFace/ShellInnerFace/BooleanXFace
}

// RoleKind enumerates the role taxonomy from spec.md §3.
type RoleKind int

// Role kinds.
const (
	RoleNone RoleKind = iota
	RoleEndCapPositive
	RoleEndCapNegative
	RoleSideFace
	RoleRevStartFace
	RoleRevEndFace
	RoleFilletFace
	RoleChamferFace
	RoleShellInnerFace
	RoleBooleanBodyAFace
	RoleBooleanBodyBFace
	RoleProfileFace
)
