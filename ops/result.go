//-----------------------------------------------------------------------------
/*

OpResult: the uniform output of every modeling operation, carrying the new
solid handle, the before/after topology diff, and role assignments.

*/
//-----------------------------------------------------------------------------

package ops

import (
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// OpResult is the output of a modeling operation: a new solid handle, the
// created/deleted/survived diff against the pre-operation topology, and the
// role assigned to each new face.
type OpResult struct {
	Solid     topo.SolidHandle
	Diff      provenance.Diff
	Roles     map[topo.KernelID]topo.Role
	Warnings  []string
}

// snapshotDiff wraps the common "snapshot before, run, snapshot after,
// diff" sequence every operation follows. before may be an empty snapshot
// when the operation creates a solid from scratch (no target body).
func snapshotDiff(store *topo.Store, before provenance.Snapshot, result topo.SolidHandle) provenance.Diff {
	after := provenance.Capture(store, result)
	return provenance.Compute(before, after)
}

// roleMap collects the Role currently assigned to every face of a solid,
// keyed by the face's kernel-id, for embedding in an OpResult.
func roleMap(store *topo.Store, solid topo.SolidHandle) map[topo.KernelID]topo.Role {
	out := map[topo.KernelID]topo.Role{}
	for _, fh := range store.SolidFaces(solid) {
		face, ok := store.Face(fh)
		if !ok {
			continue
		}
		out[face.ID] = face.Role
	}
	return out
}
