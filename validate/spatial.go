//-----------------------------------------------------------------------------
/*

Spatial pass (spec.md §4.11): free (boundary) edges, non-manifold edges,
and an optional triangle-based self-intersection check over the solid's
tessellation (sweep-and-prune broad phase, Moeller-Trumbore narrow phase).

*/
//-----------------------------------------------------------------------------

package validate

import (
	"fmt"
	"sort"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/tessellate"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Spatial audits solid for edges shared by the wrong number of faces. Set
// checkSelfIntersection to additionally run the (more expensive)
// triangle-pair self-intersection check.
func Spatial(store *topo.Store, solid topo.SolidHandle, checkSelfIntersection bool) []Issue {
	var issues []Issue

	faceCount := map[topo.EdgeHandle]map[topo.FaceHandle]bool{}
	for _, fh := range store.SolidFaces(solid) {
		for _, lh := range store.FaceLoops(fh) {
			loop, ok := store.Loop(lh)
			if !ok {
				continue
			}
			for _, heh := range loop.Edges {
				he, ok := store.HalfEdge(heh)
				if !ok {
					continue
				}
				set, ok := faceCount[he.Edge]
				if !ok {
					set = map[topo.FaceHandle]bool{}
					faceCount[he.Edge] = set
				}
				set[fh] = true
			}
		}
	}

	for eh, faces := range faceCount {
		edge, ok := store.Edge(eh)
		if !ok {
			continue
		}
		switch len(faces) {
		case 2:
			// normal manifold edge
		case 1:
			issues = append(issues, Issue{Kind: KindFreeEdge, Entity: edge.ID, Message: "edge is used by only one face"})
		default:
			issues = append(issues, Issue{
				Kind:    KindNonManifoldEdge,
				Entity:  edge.ID,
				Message: fmt.Sprintf("edge is used by %d faces, expected 2", len(faces)),
				Value:   float64(len(faces)),
			})
		}
	}

	if checkSelfIntersection {
		issues = append(issues, checkSelfIntersections(store, solid)...)
	}

	return issues
}

type boundedTriangle struct {
	a, b, c geom.Vec
	box     geom.Box3
}

func checkSelfIntersections(store *topo.Store, solid topo.SolidHandle) []Issue {
	mesh, err := tessellate.Tessellate(store, solid)
	if err != nil {
		return nil
	}

	tris := make([]boundedTriangle, len(mesh.Triangles))
	for i, t := range mesh.Triangles {
		a, b, c := mesh.Vertices[t.A], mesh.Vertices[t.B], mesh.Vertices[t.C]
		tris[i] = boundedTriangle{a: a, b: b, c: c, box: geom.NewBox3(a, a).Union(geom.NewBox3(b, b)).Union(geom.NewBox3(c, c))}
	}

	sort.Slice(tris, func(i, j int) bool { return tris[i].box.Min.X < tris[j].box.Min.X })

	var issues []Issue
	for i := range tris {
		for j := i + 1; j < len(tris); j++ {
			if tris[j].box.Min.X > tris[i].box.Max.X {
				break
			}
			if !sharesVertex(tris[i], tris[j]) && tris[i].box.Overlaps(tris[j].box, 0) &&
				trianglesIntersect(tris[i], tris[j]) {
				issues = append(issues, Issue{
					Kind:    KindSelfIntersection,
					Message: fmt.Sprintf("tessellated triangles %d and %d intersect", i, j),
				})
			}
		}
	}
	return issues
}

func sharesVertex(a, b boundedTriangle) bool {
	const eps = 1e-9
	pts := [3]geom.Vec{a.a, a.b, a.c}
	others := [3]geom.Vec{b.a, b.b, b.c}
	for _, p := range pts {
		for _, q := range others {
			if p.Equals(q, eps) {
				return true
			}
		}
	}
	return false
}

// trianglesIntersect tests triangle b's three edges against triangle a
// using the Moeller-Trumbore ray-triangle intersection, segment-bounded.
func trianglesIntersect(a, b boundedTriangle) bool {
	edges := [][2]geom.Vec{{b.a, b.b}, {b.b, b.c}, {b.c, b.a}}
	for _, e := range edges {
		if segmentIntersectsTriangle(e[0], e[1], a.a, a.b, a.c) {
			return true
		}
	}
	return false
}

func segmentIntersectsTriangle(p0, p1, v0, v1, v2 geom.Vec) bool {
	const eps = 1e-12
	dir := p1.Sub(p0)
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := dir.Cross(edge2)
	det := edge1.Dot(h)
	if det > -eps && det < eps {
		return false
	}
	invDet := 1 / det
	s := p0.Sub(v0)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return false
	}
	q := s.Cross(edge1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return false
	}
	t := edge2.Dot(q) * invDet
	return t > eps && t < 1-eps
}
