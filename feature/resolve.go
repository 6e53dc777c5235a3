//-----------------------------------------------------------------------------
/*

Reference resolution, per spec.md §4.9: turn a symbolic GeomRef into a
concrete kernel-id against a particular anchor feature's cached OpResult.

*/
//-----------------------------------------------------------------------------

package feature

import (
	"fmt"
	"sort"

	"github.com/sequoia-hope/waffle-iron/ops"
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Resolved is the outcome of a successful reference resolution.
type Resolved struct {
	KernelID topo.KernelID
	Warnings []string
}

// Resolve turns ref into a concrete kernel-id, consulting results for the
// anchor feature's cached OpResult and store for signature computation.
func Resolve(ref GeomRef, results map[UUID]*ops.OpResult, store *topo.Store) (Resolved, error) {
	if ref.Anchor.Kind != AnchorFeatureOutput {
		return Resolved{}, ResolutionFailed("datum anchors are not yet implemented")
	}
	result, ok := results[ref.Anchor.FeatureID]
	if !ok || result == nil {
		return Resolved{}, ResolutionFailed(fmt.Sprintf("feature %s not found in results", ref.Anchor.FeatureID))
	}

	switch ref.Selector.Kind {
	case SelectorRole:
		return resolveByRole(ref, result)
	case SelectorSignature:
		return resolveBySignature(ref, result, store)
	default:
		return Resolved{}, ResolutionFailed("not yet implemented")
	}
}

func resolveByRole(ref GeomRef, result *ops.OpResult) (Resolved, error) {
	var matches []topo.KernelID
	for id, role := range result.Roles {
		if role.Kind == ref.Selector.Role {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		return Resolved{}, ResolutionFailed("no entities with the requested role")
	}
	sort.Slice(matches, func(i, j int) bool {
		ri := result.Roles[matches[i]]
		rj := result.Roles[matches[j]]
		if ri.Index != rj.Index {
			return ri.Index < rj.Index
		}
		return matches[i] < matches[j]
	})

	idx := ref.Selector.RoleIndex
	if idx < len(matches) {
		return Resolved{KernelID: matches[idx]}, nil
	}
	if ref.Policy == PolicyStrict {
		return Resolved{}, ResolutionFailed("role index out of range")
	}
	last := matches[len(matches)-1]
	return Resolved{
		KernelID: last,
		Warnings: []string{fmt.Sprintf("role index %d clamped to %d", idx, len(matches)-1)},
	}, nil
}

func resolveBySignature(ref GeomRef, result *ops.OpResult, store *topo.Store) (Resolved, error) {
	created := result.Diff.Faces.Created
	created = append(append([]topo.KernelID(nil), created...), result.Diff.Edges.Created...)
	created = append(created, result.Diff.Vertices.Created...)
	if len(created) == 0 {
		return Resolved{}, ResolutionFailed("no created entities to match against")
	}

	snapshot := provenance.Capture(store, result.Solid)
	best := topo.KernelID(0)
	bestScore := -1.0
	for _, id := range created {
		sig, ok := lookupSignature(snapshot, id)
		if !ok {
			continue
		}
		score := provenance.Similarity(ref.Selector.TargetSignature, sig)
		if score > bestScore {
			bestScore = score
			best = id
		}
	}
	if bestScore < 0 {
		return Resolved{}, ResolutionFailed("no created entities to match against")
	}

	if bestScore > 0.5 {
		if bestScore < 0.9 {
			return Resolved{KernelID: best, Warnings: []string{"low-confidence signature match"}}, nil
		}
		return Resolved{KernelID: best}, nil
	}
	if ref.Policy == PolicyStrict {
		return Resolved{}, ResolutionFailed("signature match below threshold")
	}
	return Resolved{KernelID: best, Warnings: []string{"low-confidence match"}}, nil
}

func lookupSignature(snap provenance.Snapshot, id topo.KernelID) (provenance.Signature, bool) {
	if sig, ok := snap.Faces[id]; ok {
		return sig, true
	}
	if sig, ok := snap.Edges[id]; ok {
		return sig, true
	}
	if sig, ok := snap.Vertices[id]; ok {
		return sig, true
	}
	return provenance.Signature{}, false
}
