//-----------------------------------------------------------------------------
/*

Canonical box primitive

Builds 8 vertices, 12 edges, 6 planar faces, one outward shell, one solid;
all half-edges are twinned and loops are closed, satisfying the topology
audit unconditionally.

*/
//-----------------------------------------------------------------------------

package primitives

import (
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Box builds an axis-aligned box solid from two opposite corners.
func Box(store *topo.Store, a, b geom.Vec) topo.SolidHandle {
	box := geom.NewBox3(a, b)
	corners := box.Corners()

	verts := make([]topo.VertexHandle, 8)
	for i, c := range corners {
		verts[i] = store.AddVertex(c)
	}

	pool := newEdgePool(store)

	// Each entry: (loop vertex indices in CCW order as seen from outside,
	// plane origin index, plane normal).
	type faceDef struct {
		idx    [4]int
		normal geom.Vec
	}
	faces := []faceDef{
		{[4]int{0, 4, 6, 2}, geom.Vec{X: -1}},
		{[4]int{1, 3, 7, 5}, geom.Vec{X: 1}},
		{[4]int{0, 1, 5, 4}, geom.Vec{Y: -1}},
		{[4]int{2, 6, 7, 3}, geom.Vec{Y: 1}},
		{[4]int{0, 2, 3, 1}, geom.Vec{Z: -1}},
		{[4]int{4, 5, 7, 6}, geom.Vec{Z: 1}},
	}

	faceHandles := make([]topo.FaceHandle, 0, 6)
	for i, fd := range faces {
		loopVerts := [4]topo.VertexHandle{verts[fd.idx[0]], verts[fd.idx[1]], verts[fd.idx[2]], verts[fd.idx[3]]}
		var half [4]topo.HalfEdgeHandle
		for k := 0; k < 4; k++ {
			from := loopVerts[k]
			to := loopVerts[(k+1)%4]
			half[k] = pool.lineEdge(store, from, to)
		}
		loop := store.AddLoop(half[:])
		origin, _ := store.Vertex(loopVerts[0])
		surface := geom.NewPlaneSurface(geom.Plane{Origin: origin.Point, Normal: fd.normal})
		face := store.AddFace(surface, loop, nil, true)
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleSideFace, Index: i})
		faceHandles = append(faceHandles, face)
	}

	shell := store.AddShell(faceHandles, topo.ShellOutward)
	return store.AddSolid([]topo.ShellHandle{shell})
}
