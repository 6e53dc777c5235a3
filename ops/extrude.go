//-----------------------------------------------------------------------------
/*

Extrude: sweep a planar profile linearly along a direction.

*/
//-----------------------------------------------------------------------------

package ops

import (
	"fmt"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// ExtrudeParams carries Extrude's inputs.
type ExtrudeParams struct {
	Profile   Profile
	Direction geom.Vec
	Depth     float64
	Symmetric bool
}

// Extrude builds one face from the profile's outer (and inner) loops and
// sweeps it linearly by Depth*normalize(Direction) to produce side faces
// and a top cap mirroring the bottom. If Symmetric, the sweep runs
// depth/2 in both directions from the profile plane.
func Extrude(store *topo.Store, p ExtrudeParams) (OpResult, error) {
	if p.Depth <= 0 {
		return OpResult{}, ErrInvalidDepth
	}
	if len(p.Profile.Outer) < 3 {
		return OpResult{}, ErrEmptyProfile
	}
	dir := p.Profile.Plane.Normal
	if p.Direction != (geom.Vec{}) {
		dir = p.Direction.Normalize()
	}
	if dir == (geom.Vec{}) {
		return OpResult{}, fmt.Errorf("ops: extrude direction is degenerate")
	}

	before := provenance.Capture(store, 0)

	var bottomOffset, topOffset float64
	if p.Symmetric {
		bottomOffset = -p.Depth / 2
		topOffset = p.Depth / 2
	} else {
		bottomOffset = 0
		topOffset = p.Depth
	}

	outer3 := p.Profile.outerPoints3()
	inner3 := p.Profile.innerPoints3()

	bottomOuter := offsetRing(outer3, dir, bottomOffset)
	topOuter := offsetRing(outer3, dir, topOffset)

	bottomInner := make([][]geom.Vec, len(inner3))
	topInner := make([][]geom.Vec, len(inner3))
	for i, loop := range inner3 {
		bottomInner[i] = offsetRing(loop, dir, bottomOffset)
		topInner[i] = offsetRing(loop, dir, topOffset)
	}

	pool := newEdgePool(store)

	bottomOuterV := addRingVertices(store, bottomOuter)
	topOuterV := addRingVertices(store, topOuter)
	bottomInnerV := make([][]topo.VertexHandle, len(bottomInner))
	topInnerV := make([][]topo.VertexHandle, len(topInner))
	for i := range bottomInner {
		bottomInnerV[i] = addRingVertices(store, bottomInner[i])
		topInnerV[i] = addRingVertices(store, topInner[i])
	}

	sideFaces := []topo.FaceHandle{}
	nextIdx := 0
	outerSide := sweepRing(store, pool, bottomOuterV, topOuterV, dir, &nextIdx)
	sideFaces = append(sideFaces, outerSide...)
	for i := range bottomInnerV {
		innerSide := sweepRing(store, pool, bottomInnerV[i], topInnerV[i], dir, &nextIdx)
		sideFaces = append(sideFaces, innerSide...)
	}

	bottomLoopOuter := ringLoopReversed(store, pool, bottomOuterV)
	bottomLoopInners := make([]topo.LoopHandle, len(bottomInnerV))
	for i := range bottomInnerV {
		bottomLoopInners[i] = ringLoop(store, pool, bottomInnerV[i])
	}
	bottomSurface := geom.NewPlaneSurface(geom.Plane{Origin: bottomOuter[0], Normal: dir.Neg()})
	bottomFace := store.AddFace(bottomSurface, bottomLoopOuter, bottomLoopInners, true)

	topLoopOuter := ringLoop(store, pool, topOuterV)
	topLoopInners := make([]topo.LoopHandle, len(topInnerV))
	for i := range topInnerV {
		topLoopInners[i] = ringLoopReversed(store, pool, topInnerV[i])
	}
	topSurface := geom.NewPlaneSurface(geom.Plane{Origin: topOuter[0], Normal: dir})
	topFace := store.AddFace(topSurface, topLoopOuter, topLoopInners, true)

	allFaces := append([]topo.FaceHandle{bottomFace, topFace}, sideFaces...)
	shell := store.AddShell(allFaces, topo.ShellOutward)
	solid := store.AddSolid([]topo.ShellHandle{shell})

	assignExtrudeRoles(store, bottomFace, topFace, sideFaces, dir)

	result := OpResult{
		Solid: solid,
		Diff:  snapshotDiff(store, before, solid),
		Roles: roleMap(store, solid),
	}
	return result, nil
}

// offsetRing offsets every point in ring by dist along dir.
func offsetRing(ring []geom.Vec, dir geom.Vec, dist float64) []geom.Vec {
	out := make([]geom.Vec, len(ring))
	offset := dir.Scale(dist)
	for i, p := range ring {
		out[i] = p.Add(offset)
	}
	return out
}

func addRingVertices(store *topo.Store, ring []geom.Vec) []topo.VertexHandle {
	out := make([]topo.VertexHandle, len(ring))
	for i, p := range ring {
		out[i] = store.AddVertex(p)
	}
	return out
}

// sweepRing builds the n side quad faces joining a bottom ring to its
// corresponding top ring, in the ring's own traversal order; nextIdx
// supplies sequential SideFace indices across multiple rings (outer plus
// any holes) within one Extrude call.
func sweepRing(store *topo.Store, pool *edgePool, bottom, top []topo.VertexHandle, axis geom.Vec, nextIdx *int) []topo.FaceHandle {
	n := len(bottom)
	faces := make([]topo.FaceHandle, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		bi, bj := bottom[i], bottom[j]
		ti, tj := top[i], top[j]

		heBottom := pool.lineEdge(bi, bj)
		heRight := pool.lineEdge(bj, tj)
		heTop := pool.lineEdge(tj, ti)
		heLeft := pool.lineEdge(ti, bi)

		loop := store.AddLoop([]topo.HalfEdgeHandle{heBottom, heRight, heTop, heLeft})
		origin, _ := store.Vertex(bi)
		dest, _ := store.Vertex(bj)
		edgeDir := dest.Point.Sub(origin.Point).Normalize()
		normal := edgeDir.Cross(axis).Normalize()
		surface := geom.NewPlaneSurface(geom.Plane{Origin: origin.Point, Normal: normal})
		face := store.AddFace(surface, loop, nil, true)
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleSideFace, Index: *nextIdx})
		*nextIdx++
		faces = append(faces, face)
	}
	return faces
}

// ringLoop builds a loop walking the ring vertices forward in the order
// given.
func ringLoop(store *topo.Store, pool *edgePool, ring []topo.VertexHandle) topo.LoopHandle {
	n := len(ring)
	half := make([]topo.HalfEdgeHandle, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		half[i] = pool.lineEdge(ring[i], ring[j])
	}
	return store.AddLoop(half)
}

// ringLoopReversed builds a loop walking the ring vertices in reverse, by
// taking the twin of each forward half-edge.
func ringLoopReversed(store *topo.Store, pool *edgePool, ring []topo.VertexHandle) topo.LoopHandle {
	n := len(ring)
	half := make([]topo.HalfEdgeHandle, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		fwd := pool.lineEdge(ring[i], ring[j])
		he, _ := store.HalfEdge(fwd)
		half[n-1-i] = he.Twin
	}
	return store.AddLoop(half)
}

// assignExtrudeRoles labels the bottom/top caps EndCapNegative/EndCapPositive
// by alignment with the sweep direction, per spec.md §4.4.
func assignExtrudeRoles(store *topo.Store, bottomFace, topFace topo.FaceHandle, sideFaces []topo.FaceHandle, dir geom.Vec) {
	bf, _ := store.Face(bottomFace)
	tf, _ := store.Face(topFace)
	bottomAligned := bf.Surface.Normal(0, 0).Dot(dir)
	topAligned := tf.Surface.Normal(0, 0).Dot(dir)
	if topAligned >= bottomAligned {
		store.SetFaceRole(topFace, topo.Role{Kind: topo.RoleEndCapPositive})
		store.SetFaceRole(bottomFace, topo.Role{Kind: topo.RoleEndCapNegative})
	} else {
		store.SetFaceRole(bottomFace, topo.Role{Kind: topo.RoleEndCapPositive})
		store.SetFaceRole(topFace, topo.Role{Kind: topo.RoleEndCapNegative})
	}
}
