//-----------------------------------------------------------------------------
/*

Geometry pass (spec.md §4.11): same-parameter sampling between an edge's
curve and its adjacent face surfaces, plus degenerate edge/face detection.

*/
//-----------------------------------------------------------------------------

package validate

import (
	"fmt"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

const sameParameterSamples = 5

// Geometry audits every edge and face of solid for curve/surface agreement
// and degeneracy.
func Geometry(store *topo.Store, solid topo.SolidHandle) []Issue {
	var issues []Issue
	tolerance := store.Tolerance()

	seen := map[topo.EdgeHandle]bool{}
	for _, fh := range store.SolidFaces(solid) {
		face, ok := store.Face(fh)
		if !ok {
			continue
		}
		issues = append(issues, checkDegenerateFace(store, face, tolerance.Coincidence)...)

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
				if seen[he.Edge] {
					continue
				}
				seen[he.Edge] = true
				edge, ok := store.Edge(he.Edge)
				if !ok {
					continue
				}
				issues = append(issues, checkDegenerateEdge(store, edge, tolerance.Coincidence)...)
				issues = append(issues, checkSameParameter(store, he, face, tolerance.EdgeGap)...)
			}
		}
	}
	return issues
}

func checkDegenerateEdge(store *topo.Store, edge *topo.Edge, coincidence float64) []Issue {
	sv, okS := store.Vertex(edge.StartVert)
	ev, okE := store.Vertex(edge.EndVert)
	if !okS || !okE {
		return nil
	}
	length := ev.Point.Sub(sv.Point).Length()
	if length < coincidence {
		return []Issue{{
			Kind:      KindDegenerateEdge,
			Entity:    edge.ID,
			Message:   fmt.Sprintf("edge length %.9g below coincidence tolerance", length),
			Value:     length,
			Tolerance: coincidence,
		}}
	}
	return nil
}

func checkDegenerateFace(store *topo.Store, face *topo.Face, coincidence float64) []Issue {
	verts := store.LoopVertices(face.Outer)
	area := newellArea(verts)
	threshold := coincidence * coincidence
	if area < threshold {
		return []Issue{{
			Kind:      KindDegenerateFace,
			Entity:    face.ID,
			Message:   fmt.Sprintf("Newell-area %.9g below coincidence^2", area),
			Value:     area,
			Tolerance: threshold,
		}}
	}
	return nil
}

// newellArea returns a planar polygon's unsigned Newell area given its
// vertices in loop order.
func newellArea(verts []geom.Vec) float64 {
	n := len(verts)
	if n < 3 {
		return 0
	}
	var sum geom.Vec
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		sum = sum.Add(a.Cross(b))
	}
	return sum.Length() / 2
}

func checkSameParameter(store *topo.Store, he *topo.HalfEdge, face *topo.Face, edgeGap float64) []Issue {
	var issues []Issue
	edge, ok := store.Edge(he.Edge)
	if !ok {
		return nil
	}
	lo, hi := he.ParamLo, he.ParamHi
	for i := 0; i < sameParameterSamples; i++ {
		t := lo + (hi-lo)*float64(i)/float64(sameParameterSamples-1)
		p := edge.Curve.Evaluate(t)
		d := face.Surface.Distance(p)
		if d > edgeGap {
			issues = append(issues, Issue{
				Kind:      KindSameParameterGap,
				Entity:    face.ID,
				Message:   fmt.Sprintf("edge curve sample at t=%.4f is %.9g from face surface, exceeding edge-gap tolerance", t, d),
				Value:     d,
				Tolerance: edgeGap,
			})
		}
	}
	return issues
}
