//-----------------------------------------------------------------------------
/*

Topology store

A single owning arena per engine instance (there is no global topology
state — see spec.md §5). All cross-references between entities are
expressed as opaque handles into this arena, never as direct pointers, so
that cyclic topology (half-edge <-> twin, face <-> loop <-> half-edge) can
be mutated without aliasing hazards and removal stays local.

*/
//-----------------------------------------------------------------------------

package topo

import (
	"fmt"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/tol"
)

// Store owns every topology entity for one engine session. It is a value
// owned by the caller; there is no global topology state.
type Store struct {
	tolerance tol.Bundle

	nextHandle uint64
	nextID     uint64

	vertices  map[VertexHandle]*Vertex
	edges     map[EdgeHandle]*Edge
	halfEdges map[HalfEdgeHandle]*HalfEdge
	loops     map[LoopHandle]*Loop
	faces     map[FaceHandle]*Face
	shells    map[ShellHandle]*Shell
	solids    map[SolidHandle]*Solid
}

// NewStore creates an empty topology store using the given tolerance
// bundle.
func NewStore(tolerance tol.Bundle) *Store {
	return &Store{
		tolerance: tolerance,
		vertices:  make(map[VertexHandle]*Vertex),
		edges:     make(map[EdgeHandle]*Edge),
		halfEdges: make(map[HalfEdgeHandle]*HalfEdge),
		loops:     make(map[LoopHandle]*Loop),
		faces:     make(map[FaceHandle]*Face),
		shells:    make(map[ShellHandle]*Shell),
		solids:    make(map[SolidHandle]*Solid),
	}
}

// Tolerance returns the store's tolerance bundle.
func (s *Store) Tolerance() tol.Bundle { return s.tolerance }

func (s *Store) allocHandle() uint64 {
	s.nextHandle++
	return s.nextHandle
}

func (s *Store) allocID() KernelID {
	s.nextID++
	return KernelID(s.nextID)
}

//-----------------------------------------------------------------------------
// Vertex

// AddVertex inserts a new vertex at the given point and returns its handle.
func (s *Store) AddVertex(p geom.Vec) VertexHandle {
	h := VertexHandle(s.allocHandle())
	s.vertices[h] = &Vertex{ID: s.allocID(), Point: p}
	return h
}

// Vertex looks up a vertex by handle. The second return is false if the
// handle is absent (never populated, or removed).
func (s *Store) Vertex(h VertexHandle) (*Vertex, bool) {
	v, ok := s.vertices[h]
	return v, ok
}

// RemoveVertex deletes a vertex from the store. It does not touch any
// edges that reference it; callers are responsible for topology-consistent
// removal order (the modeling operations always remove in safe order).
func (s *Store) RemoveVertex(h VertexHandle) {
	delete(s.vertices, h)
}

// Vertices returns the handles of all vertices currently in the store, in
// unspecified order.
func (s *Store) Vertices() []VertexHandle {
	out := make([]VertexHandle, 0, len(s.vertices))
	for h := range s.vertices {
		out = append(out, h)
	}
	return out
}

//-----------------------------------------------------------------------------
// Edge

// AddEdge inserts a new edge with the given curve and endpoints, along
// with its two twinned half-edges: the forward one runs start->end, the
// reverse one end->start, both over parameter range [0, 1] and not yet
// attached to any face or loop. AddEdge wires the twin linkage and edge
// back-reference.
func (s *Store) AddEdge(curve geom.Curve, start, end VertexHandle) (EdgeHandle, HalfEdgeHandle, HalfEdgeHandle) {
	eh := EdgeHandle(s.allocHandle())
	heFwd := HalfEdgeHandle(s.allocHandle())
	heRev := HalfEdgeHandle(s.allocHandle())

	s.halfEdges[heFwd] = &HalfEdge{ID: s.allocID(), Edge: eh, Twin: heRev, Start: start, End: end, ParamLo: 0, ParamHi: 1, Forward: true}
	s.halfEdges[heRev] = &HalfEdge{ID: s.allocID(), Edge: eh, Twin: heFwd, Start: end, End: start, ParamLo: 0, ParamHi: 1, Forward: false}

	s.edges[eh] = &Edge{ID: s.allocID(), Curve: curve, HalfEdges: [2]HalfEdgeHandle{heFwd, heRev}, StartVert: start, EndVert: end}

	return eh, heFwd, heRev
}

// Edge looks up an edge by handle.
func (s *Store) Edge(h EdgeHandle) (*Edge, bool) {
	e, ok := s.edges[h]
	return e, ok
}

// RemoveEdge deletes an edge and its two half-edges.
func (s *Store) RemoveEdge(h EdgeHandle) {
	if e, ok := s.edges[h]; ok {
		delete(s.halfEdges, e.HalfEdges[0])
		delete(s.halfEdges, e.HalfEdges[1])
		delete(s.edges, h)
	}
}

// Edges returns the handles of all edges currently in the store.
func (s *Store) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, len(s.edges))
	for h := range s.edges {
		out = append(out, h)
	}
	return out
}

//-----------------------------------------------------------------------------
// HalfEdge

// HalfEdge looks up a half-edge by handle.
func (s *Store) HalfEdge(h HalfEdgeHandle) (*HalfEdge, bool) {
	he, ok := s.halfEdges[h]
	return he, ok
}

// SetHalfEdgeFace assigns the owning face/loop of a half-edge. Used while
// assembling loops and faces, where the half-edge is created before its
// owning face exists.
func (s *Store) SetHalfEdgeFace(h HalfEdgeHandle, face FaceHandle, loop LoopHandle) {
	if he, ok := s.halfEdges[h]; ok {
		he.Face = face
		he.Loop = loop
	}
}

//-----------------------------------------------------------------------------
// Loop

// AddLoop inserts a new loop from an ordered, closed sequence of
// half-edges. It does not validate closure; the validate package's
// topology pass audits it.
func (s *Store) AddLoop(edges []HalfEdgeHandle) LoopHandle {
	h := LoopHandle(s.allocHandle())
	loop := &Loop{ID: s.allocID(), Edges: append([]HalfEdgeHandle(nil), edges...)}
	s.loops[h] = loop
	for _, he := range edges {
		if e, ok := s.halfEdges[he]; ok {
			e.Loop = h
		}
	}
	return h
}

// Loop looks up a loop by handle.
func (s *Store) Loop(h LoopHandle) (*Loop, bool) {
	l, ok := s.loops[h]
	return l, ok
}

// RemoveLoop deletes a loop record (not its half-edges).
func (s *Store) RemoveLoop(h LoopHandle) {
	delete(s.loops, h)
}

//-----------------------------------------------------------------------------
// Face

// AddFace inserts a new face over the given surface, outer loop, and
// optional inner (hole) loops.
func (s *Store) AddFace(surface geom.Surface, outer LoopHandle, inner []LoopHandle, sameSense bool) FaceHandle {
	h := FaceHandle(s.allocHandle())
	s.faces[h] = &Face{
		ID:        s.allocID(),
		Surface:   surface,
		Outer:     outer,
		Inner:     append([]LoopHandle(nil), inner...),
		SameSense: sameSense,
	}
	if l, ok := s.loops[outer]; ok {
		l.Face = h
	}
	for _, lh := range inner {
		if l, ok := s.loops[lh]; ok {
			l.Face = h
		}
	}
	for _, lh := range append([]LoopHandle{outer}, inner...) {
		if l, ok := s.loops[lh]; ok {
			for _, he := range l.Edges {
				s.SetHalfEdgeFace(he, h, lh)
			}
		}
	}
	return h
}

func (s *Store) faceHalfEdges(h FaceHandle) []HalfEdgeHandle {
	f, ok := s.faces[h]
	if !ok {
		return nil
	}
	var out []HalfEdgeHandle
	if l, ok := s.loops[f.Outer]; ok {
		out = append(out, l.Edges...)
	}
	for _, ih := range f.Inner {
		if l, ok := s.loops[ih]; ok {
			out = append(out, l.Edges...)
		}
	}
	return out
}

// Face looks up a face by handle.
func (s *Store) Face(h FaceHandle) (*Face, bool) {
	f, ok := s.faces[h]
	return f, ok
}

// SetFaceRole assigns the semantic role of a face.
func (s *Store) SetFaceRole(h FaceHandle, role Role) {
	if f, ok := s.faces[h]; ok {
		f.Role = role
	}
}

// SetFaceShell assigns the owning shell back-reference of a face.
func (s *Store) SetFaceShell(h FaceHandle, shell ShellHandle) {
	if f, ok := s.faces[h]; ok {
		f.Shell = shell
	}
}

// RemoveFace deletes a face record (not its loops).
func (s *Store) RemoveFace(h FaceHandle) {
	delete(s.faces, h)
}

// Faces returns the handles of all faces currently in the store.
func (s *Store) Faces() []FaceHandle {
	out := make([]FaceHandle, 0, len(s.faces))
	for h := range s.faces {
		out = append(out, h)
	}
	return out
}

//-----------------------------------------------------------------------------
// Shell

// AddShell inserts a new shell over the given faces, wiring each face's
// shell back-reference to the new handle.
func (s *Store) AddShell(faces []FaceHandle, orientation ShellOrientation) ShellHandle {
	h := ShellHandle(s.allocHandle())
	s.shells[h] = &Shell{ID: s.allocID(), Faces: append([]FaceHandle(nil), faces...), Orientation: orientation}
	for _, fh := range faces {
		s.SetFaceShell(fh, h)
	}
	return h
}

// Shell looks up a shell by handle.
func (s *Store) Shell(h ShellHandle) (*Shell, bool) {
	sh, ok := s.shells[h]
	return sh, ok
}

// RemoveShell deletes a shell record (not its faces).
func (s *Store) RemoveShell(h ShellHandle) {
	delete(s.shells, h)
}

//-----------------------------------------------------------------------------
// Solid

// AddSolid inserts a new solid over the given shells, wiring each shell's
// solid back-reference to the new handle. The first shell is conventionally
// the outward hull; later shells are cavities.
func (s *Store) AddSolid(shells []ShellHandle) SolidHandle {
	h := SolidHandle(s.allocHandle())
	s.solids[h] = &Solid{ID: s.allocID(), Shells: append([]ShellHandle(nil), shells...)}
	for _, sh := range shells {
		if shell, ok := s.shells[sh]; ok {
			shell.Solid = h
		}
	}
	return h
}

// Solid looks up a solid by handle.
func (s *Store) Solid(h SolidHandle) (*Solid, bool) {
	so, ok := s.solids[h]
	return so, ok
}

// RemoveSolid deletes a solid record (not its shells).
func (s *Store) RemoveSolid(h SolidHandle) {
	delete(s.solids, h)
}

// Solids returns the handles of all solids currently in the store.
func (s *Store) Solids() []SolidHandle {
	out := make([]SolidHandle, 0, len(s.solids))
	for h := range s.solids {
		out = append(out, h)
	}
	return out
}

//-----------------------------------------------------------------------------
// Queries

// BoundingBox computes the axis-aligned bounding box of a solid by
// traversing its shells, faces, loops, and vertices.
func (s *Store) BoundingBox(h SolidHandle) (geom.Box3, error) {
	solid, ok := s.solids[h]
	if !ok {
		return geom.Box3{}, fmt.Errorf("topo: solid %d not found", h)
	}
	box := geom.EmptyBox3()
	for _, sh := range solid.Shells {
		shell, ok := s.shells[sh]
		if !ok {
			continue
		}
		for _, fh := range shell.Faces {
			face, ok := s.faces[fh]
			if !ok {
				continue
			}
			for _, v := range s.faceVertices(face) {
				box = box.Extend(v)
			}
		}
	}
	return box, nil
}

func (s *Store) faceVertices(f *Face) []geom.Vec {
	var out []geom.Vec
	loops := append([]LoopHandle{f.Outer}, f.Inner...)
	for _, lh := range loops {
		l, ok := s.loops[lh]
		if !ok {
			continue
		}
		for _, heh := range l.Edges {
			he, ok := s.halfEdges[heh]
			if !ok {
				continue
			}
			if v, ok := s.vertices[he.Start]; ok {
				out = append(out, v.Point)
			}
		}
	}
	return out
}

// LoopVertices returns, in loop order, the 3D positions of each half-edge's
// start vertex.
func (s *Store) LoopVertices(lh LoopHandle) []geom.Vec {
	l, ok := s.loops[lh]
	if !ok {
		return nil
	}
	out := make([]geom.Vec, 0, len(l.Edges))
	for _, heh := range l.Edges {
		he, ok := s.halfEdges[heh]
		if !ok {
			continue
		}
		if v, ok := s.vertices[he.Start]; ok {
			out = append(out, v.Point)
		}
	}
	return out
}

// FaceLoops returns the outer loop followed by the inner (hole) loops of a
// face.
func (s *Store) FaceLoops(fh FaceHandle) []LoopHandle {
	f, ok := s.faces[fh]
	if !ok {
		return nil
	}
	return append([]LoopHandle{f.Outer}, f.Inner...)
}

// SolidFaces returns every face handle belonging to any shell of a solid.
func (s *Store) SolidFaces(h SolidHandle) []FaceHandle {
	solid, ok := s.solids[h]
	if !ok {
		return nil
	}
	var out []FaceHandle
	for _, sh := range solid.Shells {
		if shell, ok := s.shells[sh]; ok {
			out = append(out, shell.Faces...)
		}
	}
	return out
}

// FaceByKernelID scans for the face carrying the given externally-visible
// kernel-id. Used by reference resolution, which works in kernel-ids, to
// recover the handle modeling operations expect.
func (s *Store) FaceByKernelID(id KernelID) (FaceHandle, bool) {
	for h, f := range s.faces {
		if f.ID == id {
			return h, true
		}
	}
	return 0, false
}

// EdgeByKernelID scans for the edge carrying the given kernel-id.
func (s *Store) EdgeByKernelID(id KernelID) (EdgeHandle, bool) {
	for h, e := range s.edges {
		if e.ID == id {
			return h, true
		}
	}
	return 0, false
}

// VertexByKernelID scans for the vertex carrying the given kernel-id.
func (s *Store) VertexByKernelID(id KernelID) (VertexHandle, bool) {
	for h, v := range s.vertices {
		if v.ID == id {
			return h, true
		}
	}
	return 0, false
}

// SolidByKernelID scans for the solid carrying the given kernel-id.
func (s *Store) SolidByKernelID(id KernelID) (SolidHandle, bool) {
	for h, so := range s.solids {
		if so.ID == id {
			return h, true
		}
	}
	return 0, false
}
