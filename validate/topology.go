//-----------------------------------------------------------------------------
/*

Topology pass (spec.md §4.11, fast / always-fatal level): Euler formula per
shell, closed loops, proper half-edge twins, no dangling vertices.

*/
//-----------------------------------------------------------------------------

package validate

import (
	"fmt"

	"github.com/sequoia-hope/waffle-iron/topo"
)

// Topology audits solid's shells for the structural invariants every
// downstream pass assumes.
func Topology(store *topo.Store, solid topo.SolidHandle) []Issue {
	var issues []Issue

	s, ok := store.Solid(solid)
	if !ok {
		return []Issue{{Kind: KindEulerMismatch, Message: "solid handle not found"}}
	}

	referenced := map[topo.VertexHandle]bool{}

	for _, sh := range s.Shells {
		shell, ok := store.Shell(sh)
		if !ok {
			continue
		}
		issues = append(issues, checkShellEuler(store, shell)...)
		for _, fh := range shell.Faces {
			issues = append(issues, checkFaceLoops(store, fh, referenced)...)
		}
	}

	for _, vh := range store.Vertices() {
		if !referenced[vh] {
			issues = append(issues, Issue{
				Kind:    KindDanglingVertex,
				Message: fmt.Sprintf("vertex handle %d is not referenced by any half-edge", vh),
			})
		}
	}

	return issues
}

func checkShellEuler(store *topo.Store, shell *topo.Shell) []Issue {
	vertSet := map[topo.VertexHandle]bool{}
	edgeSet := map[topo.EdgeHandle]bool{}
	faceSet := map[topo.FaceHandle]bool{}

	for _, fh := range shell.Faces {
		faceSet[fh] = true
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
				edgeSet[he.Edge] = true
				vertSet[he.Start] = true
			}
		}
	}

	v, e, f := len(vertSet), len(edgeSet), len(faceSet)
	chi := v - e + f
	if chi != 2 {
		return []Issue{{
			Kind:    KindEulerMismatch,
			Entity:  shell.ID,
			Message: fmt.Sprintf("shell Euler characteristic V-E+F = %d, expected 2 (V=%d E=%d F=%d)", chi, v, e, f),
			Value:   float64(chi),
			Tolerance: 2,
		}}
	}
	return nil
}

func checkFaceLoops(store *topo.Store, fh topo.FaceHandle, referenced map[topo.VertexHandle]bool) []Issue {
	var issues []Issue
	face, ok := store.Face(fh)
	if !ok {
		return nil
	}
	for _, lh := range store.FaceLoops(fh) {
		loop, ok := store.Loop(lh)
		if !ok {
			continue
		}
		issues = append(issues, checkLoopClosed(store, loop, face.ID, referenced)...)
	}
	return issues
}

func checkLoopClosed(store *topo.Store, loop *topo.Loop, faceID topo.KernelID, referenced map[topo.VertexHandle]bool) []Issue {
	var issues []Issue
	n := len(loop.Edges)
	if n == 0 {
		return []Issue{{Kind: KindNonClosedLoop, Entity: faceID, Message: "loop has no half-edges"}}
	}
	for i, heh := range loop.Edges {
		he, ok := store.HalfEdge(heh)
		if !ok {
			issues = append(issues, Issue{Kind: KindNonClosedLoop, Entity: faceID, Message: "loop references a missing half-edge"})
			continue
		}
		referenced[he.Start] = true
		referenced[he.End] = true

		next, ok := store.HalfEdge(loop.Edges[(i+1)%n])
		if ok && he.End != next.Start {
			issues = append(issues, Issue{
				Kind:    KindNonClosedLoop,
				Entity:  faceID,
				Message: "loop is not a closed chain: half-edge end does not match next half-edge start",
			})
		}

		twin, ok := store.HalfEdge(he.Twin)
		if !ok {
			issues = append(issues, Issue{Kind: KindBadTwin, Entity: faceID, Message: "half-edge's twin is missing"})
			continue
		}
		if twin.Twin != heh || twin.Start != he.End || twin.End != he.Start {
			issues = append(issues, Issue{
				Kind:    KindBadTwin,
				Entity:  faceID,
				Message: "half-edge and its twin are not a proper reciprocal pair",
			})
		}
		edge, ok := store.Edge(he.Edge)
		if !ok || (edge.HalfEdges[0] != heh && edge.HalfEdges[1] != heh) {
			issues = append(issues, Issue{Kind: KindBadTwin, Entity: faceID, Message: "half-edge does not belong to its own edge's half-edge pair"})
		}
	}
	return issues
}
