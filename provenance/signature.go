//-----------------------------------------------------------------------------
/*

Topology signatures

A signature is a lightweight summary of one topology entity, cheap enough
to recompute on every rebuild, used to match "before" and "after" entities
that do not share a handle (because the operation rebuilt them from
scratch) but are plausibly the same feature output across rebuilds.

*/
//-----------------------------------------------------------------------------

package provenance

import (
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Kind discriminates which topology entity a Signature was computed from.
type Kind int

// Signature kinds.
const (
	KindFace Kind = iota
	KindEdge
	KindVertex
)

// Signature is the per-entity summary consulted by similarity matching.
// Not every field is meaningful for every Kind: Area/Normal apply to faces,
// Length to edges.
type Signature struct {
	Kind        Kind
	SurfaceTag  geom.SurfaceKind
	HasSurface  bool
	Area        float64
	Length      float64
	Centroid    geom.Vec
	Normal      geom.Vec
	Box         geom.Box3
	AdjacencyID uint64 // hash of the outer loop's half-edge endpoint vertex handles, in loop order
}

// FaceSignature computes the signature of a face from the store.
func FaceSignature(store *topo.Store, fh topo.FaceHandle) Signature {
	face, ok := store.Face(fh)
	if !ok {
		return Signature{Kind: KindFace}
	}
	verts := store.LoopVertices(face.Outer)
	centroid, area, normal := polygonCentroidAreaNormal(verts)

	box := geom.EmptyBox3()
	for _, v := range verts {
		box = box.Extend(v)
	}

	return Signature{
		Kind:        KindFace,
		SurfaceTag:  face.Surface.Kind,
		HasSurface:  true,
		Area:        area,
		Centroid:    centroid,
		Normal:      normal,
		Box:         box,
		AdjacencyID: adjacencyHash(store, face.Outer),
	}
}

// EdgeSignature computes the signature of an edge from the store.
func EdgeSignature(store *topo.Store, eh topo.EdgeHandle) Signature {
	edge, ok := store.Edge(eh)
	if !ok {
		return Signature{Kind: KindEdge}
	}
	sv, _ := store.Vertex(edge.StartVert)
	ev, _ := store.Vertex(edge.EndVert)
	length := 0.0
	centroid := geom.Vec{}
	if sv != nil && ev != nil {
		length = ev.Point.Sub(sv.Point).Length()
		centroid = sv.Point.Lerp(ev.Point, 0.5)
	}
	box := geom.EmptyBox3()
	if sv != nil {
		box = box.Extend(sv.Point)
	}
	if ev != nil {
		box = box.Extend(ev.Point)
	}
	return Signature{Kind: KindEdge, Length: length, Centroid: centroid, Box: box}
}

// VertexSignature computes the signature of a vertex from the store.
func VertexSignature(store *topo.Store, vh topo.VertexHandle) Signature {
	v, ok := store.Vertex(vh)
	if !ok {
		return Signature{Kind: KindVertex}
	}
	return Signature{Kind: KindVertex, Centroid: v.Point, Box: geom.NewBox3(v.Point, v.Point)}
}

// polygonCentroidAreaNormal returns the centroid, unsigned Newell area, and
// unit normal of a planar polygon given in loop order.
func polygonCentroidAreaNormal(verts []geom.Vec) (centroid geom.Vec, area float64, normal geom.Vec) {
	n := len(verts)
	if n < 3 {
		return
	}
	var normalSum geom.Vec
	var centroidSum geom.Vec
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		normalSum = normalSum.Add(a.Cross(b))
		centroidSum = centroidSum.Add(a)
	}
	area = normalSum.Length() / 2
	normal = normalSum.Normalize()
	centroid = centroidSum.Scale(1.0 / float64(n))
	return
}

// adjacencyHash is a cheap FNV-style hash of a loop's half-edge endpoint
// vertex handles, taken in loop order (so it depends on where the loop
// starts). It is recorded in the signature; Similarity and the greedy
// matcher do not read it.
func adjacencyHash(store *topo.Store, lh topo.LoopHandle) uint64 {
	loop, ok := store.Loop(lh)
	if !ok {
		return 0
	}
	var h uint64 = 14695981039346656037
	for _, heh := range loop.Edges {
		he, ok := store.HalfEdge(heh)
		if !ok {
			continue
		}
		h ^= uint64(he.Start)
		h *= 1099511628211
		h ^= uint64(he.End)
		h *= 1099511628211
	}
	return h
}
