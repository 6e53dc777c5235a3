//-----------------------------------------------------------------------------
/*

Provenance diff

Snapshot captures every face/edge/vertex signature, keyed by kernel-id, at
one instant. Diff compares a before/after pair of snapshots and classifies
each entity as survived, deleted, or created, using the greedy
signature-similarity matcher from spec.md §4.8.

*/
//-----------------------------------------------------------------------------

package provenance

import (
	"sort"

	"github.com/sequoia-hope/waffle-iron/topo"
)

// survivalThreshold is the minimum similarity score for the greedy matcher
// to mark a deleted/created pair as "survived" instead.
const survivalThreshold = 0.7

// Snapshot is a signature capture of a store at one instant, keyed by
// kernel-id.
type Snapshot struct {
	Faces    map[topo.KernelID]Signature
	Edges    map[topo.KernelID]Signature
	Vertices map[topo.KernelID]Signature
}

// Capture walks every face, edge, and vertex reachable from the given
// solid and records its signature.
func Capture(store *topo.Store, solid topo.SolidHandle) Snapshot {
	snap := Snapshot{
		Faces:    map[topo.KernelID]Signature{},
		Edges:    map[topo.KernelID]Signature{},
		Vertices: map[topo.KernelID]Signature{},
	}
	for _, fh := range store.SolidFaces(solid) {
		face, ok := store.Face(fh)
		if !ok {
			continue
		}
		snap.Faces[face.ID] = FaceSignature(store, fh)
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
				if edge, ok := store.Edge(he.Edge); ok {
					if _, seen := snap.Edges[edge.ID]; !seen {
						snap.Edges[edge.ID] = EdgeSignature(store, he.Edge)
					}
				}
				if v, ok := store.Vertex(he.Start); ok {
					if _, seen := snap.Vertices[v.ID]; !seen {
						snap.Vertices[v.ID] = VertexSignature(store, he.Start)
					}
				}
			}
		}
	}
	return snap
}

// EntityKindSet classifies kernel-ids of one entity kind after comparing
// two snapshots.
type EntityKindSet struct {
	Created  []topo.KernelID
	Deleted  []topo.KernelID
	Survived []SurvivedPair
}

// SurvivedPair records a before/after kernel-id considered the same logical
// entity across the operation, plus the similarity score when matched by
// signature instead of by shared kernel-id.
type SurvivedPair struct {
	Before topo.KernelID
	After  topo.KernelID
	Score  float64
}

// Diff is the full created/deleted/survived classification across all
// three entity kinds.
type Diff struct {
	Faces    EntityKindSet
	Edges    EntityKindSet
	Vertices EntityKindSet
}

// Compute classifies before/after snapshots per spec.md §4.8: entities
// whose kernel-id appears in both snapshots survive trivially (score 1);
// remaining before-entities and after-entities run through the greedy
// signature matcher.
func Compute(before, after Snapshot) Diff {
	return Diff{
		Faces:    diffKind(before.Faces, after.Faces),
		Edges:    diffKind(before.Edges, after.Edges),
		Vertices: diffKind(before.Vertices, after.Vertices),
	}
}

func diffKind(before, after map[topo.KernelID]Signature) EntityKindSet {
	var set EntityKindSet

	remainingBefore := map[topo.KernelID]Signature{}
	remainingAfter := map[topo.KernelID]Signature{}

	for id, sig := range before {
		if _, ok := after[id]; ok {
			set.Survived = append(set.Survived, SurvivedPair{Before: id, After: id, Score: 1})
			continue
		}
		remainingBefore[id] = sig
	}
	for id, sig := range after {
		if _, ok := before[id]; ok {
			continue // already recorded as a trivial survival above
		}
		remainingAfter[id] = sig
	}

	greedyMatch(remainingBefore, remainingAfter, &set)
	return set
}

// greedyMatch repeatedly picks the highest-scoring remaining (before,
// after) pair above survivalThreshold, marks it survived, and removes both
// from further consideration, until no pair clears the threshold. Anything
// left over is reported as deleted/created.
func greedyMatch(before, after map[topo.KernelID]Signature, set *EntityKindSet) {
	type candidate struct {
		beforeID topo.KernelID
		afterID  topo.KernelID
		score    float64
	}

	for {
		var best *candidate
		for bID, bSig := range before {
			for aID, aSig := range after {
				score := Similarity(bSig, aSig)
				if score <= survivalThreshold {
					continue
				}
				if best == nil || score > best.score {
					best = &candidate{beforeID: bID, afterID: aID, score: score}
				}
			}
		}
		if best == nil {
			break
		}
		set.Survived = append(set.Survived, SurvivedPair{Before: best.beforeID, After: best.afterID, Score: best.score})
		delete(before, best.beforeID)
		delete(after, best.afterID)
	}

	for id := range before {
		set.Deleted = append(set.Deleted, id)
	}
	for id := range after {
		set.Created = append(set.Created, id)
	}
	sort.Slice(set.Deleted, func(i, j int) bool { return set.Deleted[i] < set.Deleted[j] })
	sort.Slice(set.Created, func(i, j int) bool { return set.Created[i] < set.Created[j] })
	sort.Slice(set.Survived, func(i, j int) bool { return set.Survived[i].Before < set.Survived[j].Before })
}
