//-----------------------------------------------------------------------------
/*

Continuity pass (spec.md §4.11, optional): sample across each shared edge
and report G0 position gap and G1 normal-angle mismatch between its two
adjacent faces.

*/
//-----------------------------------------------------------------------------

package validate

import (
	"fmt"
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

func angleBetween(a, b geom.Vec) float64 {
	dot := a.Normalize().Dot(b.Normalize())
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

const continuitySamples = 3

// Continuity samples every shared edge of solid and flags a G0Gap issue
// whenever the two adjacent faces disagree on position beyond edgeGap. G1
// normal-angle mismatch is computed but not itself treated as an error,
// since a sharp edge between two faces is ordinary kernel output, not a
// defect; it is exposed so a caller checking a specific continuity
// contract (e.g. a fillet band) can inspect it.
func Continuity(store *topo.Store, solid topo.SolidHandle, edgeGap float64) []Issue {
	var issues []Issue

	type pair struct {
		heh   topo.HalfEdgeHandle
		faceA topo.FaceHandle
	}
	byEdge := map[topo.EdgeHandle][]pair{}

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
				byEdge[he.Edge] = append(byEdge[he.Edge], pair{heh: heh, faceA: fh})
			}
		}
	}

	for eh, pairs := range byEdge {
		if len(pairs) != 2 {
			continue
		}
		edge, ok := store.Edge(eh)
		if !ok {
			continue
		}
		faceA, okA := store.Face(pairs[0].faceA)
		faceB, okB := store.Face(pairs[1].faceA)
		if !okA || !okB {
			continue
		}
		he, _ := store.HalfEdge(pairs[0].heh)
		lo, hi := he.ParamLo, he.ParamHi
		for i := 0; i < continuitySamples; i++ {
			t := lo + (hi-lo)*float64(i)/float64(continuitySamples-1)
			p := edge.Curve.Evaluate(t)
			gap := faceA.Surface.Distance(p) + faceB.Surface.Distance(p)

			ua, va, _ := faceA.Surface.ClosestPoint(p)
			ub, vb, _ := faceB.Surface.ClosestPoint(p)
			na := faceA.Surface.Normal(ua, va)
			nb := faceB.Surface.Normal(ub, vb)
			if !faceA.SameSense {
				na = na.Neg()
			}
			if !faceB.SameSense {
				nb = nb.Neg()
			}
			angle := angleBetween(na, nb)

			if gap > edgeGap {
				issues = append(issues, Issue{
					Kind:      KindG0Gap,
					Entity:    edge.ID,
					Message:   fmt.Sprintf("shared edge sample at t=%.4f has combined face gap %.9g (G1 angle %.4f rad)", t, gap, angle),
					Value:     gap,
					Tolerance: edgeGap,
				})
			}
		}
	}
	return issues
}
