//-----------------------------------------------------------------------------
/*

Planar face splitting, per spec.md §4.6: cut a planar face's loop along an
infinite line lying in its plane, producing two new faces that share a new
splitting edge.

Simplification: sub-edges produced by splitting a crossed boundary
half-edge are rebuilt as straight line segments regardless of the original
edge's curve kind. This matches the polyhedral edges the boolean engine's
mixed-solid path actually encounters (box, extrude and revolve side faces);
a curved edge split by a planar cut would need an exact curve restriction,
which this kernel does not attempt.

*/
//-----------------------------------------------------------------------------

package boolean

import (
	"sort"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

type crossing struct {
	heh   topo.HalfEdgeHandle
	u     float64
	point geom.Vec
}

// findCrossings locates the (at most a handful of) points where the
// infinite line (lineOrigin, lineDir) crosses the boundary of face fh's
// outer loop, deduplicating hits that land on a shared vertex.
func findCrossings(store *topo.Store, fh topo.FaceHandle, lineOrigin, lineDir geom.Vec, tolerance float64) []crossing {
	face, ok := store.Face(fh)
	if !ok {
		return nil
	}
	loop, ok := store.Loop(face.Outer)
	if !ok {
		return nil
	}
	normal := face.Surface.Normal(0, 0)
	xAxis, yAxis := geom.Basis(normal, geom.Vec{X: 1})
	project := func(v geom.Vec) (float64, float64) {
		rel := v.Sub(lineOrigin)
		return rel.Dot(xAxis), rel.Dot(yAxis)
	}
	dx, dy := lineDir.Dot(xAxis), lineDir.Dot(yAxis)

	var hits []crossing
	for _, heh := range loop.Edges {
		he, ok := store.HalfEdge(heh)
		if !ok {
			continue
		}
		sv, _ := store.Vertex(he.Start)
		ev, _ := store.Vertex(he.End)
		sx, sy := project(sv.Point)
		ex, ey := project(ev.Point)
		ex, ey = ex-sx, ey-sy // segment direction in line-relative coords

		denom := ex*dy - ey*dx
		if tol64Abs(denom) < 1e-12 {
			continue // segment parallel to the line
		}
		// Solve (s + u*e - o) x d = 0 for u, with o already subtracted via project.
		u := -(sx*dy - sy*dx) / denom
		if u < -1e-9 || u > 1+1e-9 {
			continue
		}
		point := sv.Point.Lerp(ev.Point, clamp01(u))
		hits = append(hits, crossing{heh: heh, u: u, point: point})
	}

	var deduped []crossing
	for _, h := range hits {
		dup := false
		for _, d := range deduped {
			if d.point.Sub(h.point).Length() <= tolerance {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, h)
		}
	}
	return deduped
}

func tol64Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(u float64) float64 {
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// splitFace attempts to cut face fh along the infinite line (lineOrigin,
// lineDir), which must lie in fh's plane. It reports ok=false ("no split")
// when the boundary does not cross the line at exactly two points.
func splitFace(store *topo.Store, fh topo.FaceHandle, lineOrigin, lineDir geom.Vec, tolerance float64) (a, b topo.FaceHandle, ok bool, err error) {
	crossings := findCrossings(store, fh, lineOrigin, lineDir, tolerance)
	if len(crossings) != 2 {
		return 0, 0, false, nil
	}

	face, _ := store.Face(fh)
	midA := splitAt(store, crossings[0], tolerance)
	midB := splitAt(store, crossings[1], tolerance)

	loop, _ := store.Loop(face.Outer)
	startIdx, endIdx := -1, -1
	for i, heh := range loop.Edges {
		he, _ := store.HalfEdge(heh)
		if he.Start == midA {
			startIdx = i
		}
		if he.Start == midB {
			endIdx = i
		}
	}
	if startIdx < 0 || endIdx < 0 {
		return 0, 0, false, &IntersectionFailedError{Reason: "split vertex not found on rebuilt loop"}
	}

	arc := func(from, to int) []topo.HalfEdgeHandle {
		var out []topo.HalfEdgeHandle
		for i := from; i != to; i = (i + 1) % len(loop.Edges) {
			out = append(out, loop.Edges[i])
		}
		return out
	}
	arcAB := arc(startIdx, endIdx)
	arcBA := arc(endIdx, startIdx)
	if len(arcAB) == 0 || len(arcBA) == 0 {
		return 0, 0, false, nil
	}

	mav, _ := store.Vertex(midA)
	mbv, _ := store.Vertex(midB)
	dir := mbv.Point.Sub(mav.Point).Normalize()
	_, splitFwd, splitRev := store.AddEdge(geom.NewLineCurve(geom.Line{Origin: mav.Point, Dir: dir}), midA, midB)

	loopA := store.AddLoop(append(append([]topo.HalfEdgeHandle(nil), arcAB...), splitRev))
	loopB := store.AddLoop(append(append([]topo.HalfEdgeHandle(nil), arcBA...), splitFwd))

	faceA := store.AddFace(face.Surface, loopA, nil, face.SameSense)
	faceB := store.AddFace(face.Surface, loopB, nil, face.SameSense)
	store.SetFaceRole(faceA, face.Role)
	store.SetFaceRole(faceB, face.Role)

	store.RemoveFace(fh)
	store.RemoveLoop(face.Outer)
	return faceA, faceB, true, nil
}

// splitAt ensures the crossing's point exists as a vertex in the store,
// splitting its half-edge (and the twin's half-edge, in the neighboring
// face's loop) if the point falls strictly inside the segment.
func splitAt(store *topo.Store, c crossing, tolerance float64) topo.VertexHandle {
	he, _ := store.HalfEdge(c.heh)
	sv, _ := store.Vertex(he.Start)
	ev, _ := store.Vertex(he.End)

	if sv.Point.Sub(c.point).Length() <= tolerance {
		return he.Start
	}
	if ev.Point.Sub(c.point).Length() <= tolerance {
		return he.End
	}

	mid := store.AddVertex(c.point)
	splitHalfEdgePair(store, c.heh, mid)
	return mid
}

// splitHalfEdgePair replaces the edge owning heh with two sub-edges meeting
// at mid, splicing both the half-edge's own loop and its twin's loop.
func splitHalfEdgePair(store *topo.Store, heh topo.HalfEdgeHandle, mid topo.VertexHandle) {
	he, _ := store.HalfEdge(heh)
	twin, _ := store.HalfEdge(he.Twin)
	s, e := he.Start, he.End
	loopF, loopR := he.Loop, twin.Loop
	faceF, faceR := he.Face, twin.Face

	sv, _ := store.Vertex(s)
	ev, _ := store.Vertex(e)
	dir1 := (func() geom.Vec {
		mv, _ := store.Vertex(mid)
		return mv.Point.Sub(sv.Point).Normalize()
	})()
	dir2 := ev.Point.Sub((func() geom.Vec { mv, _ := store.Vertex(mid); return mv.Point })()).Normalize()

	_, h1Fwd, h1Rev := store.AddEdge(geom.NewLineCurve(geom.Line{Origin: sv.Point, Dir: dir1}), s, mid)
	_, h2Fwd, h2Rev := store.AddEdge(geom.NewLineCurve(geom.Line{Origin: ev.Point, Dir: dir2.Neg()}), mid, e)

	store.SetHalfEdgeFace(h1Fwd, faceF, loopF)
	store.SetHalfEdgeFace(h2Fwd, faceF, loopF)
	store.SetHalfEdgeFace(h1Rev, faceR, loopR)
	store.SetHalfEdgeFace(h2Rev, faceR, loopR)

	replaceInLoop(store, loopF, heh, []topo.HalfEdgeHandle{h1Fwd, h2Fwd})
	replaceInLoop(store, loopR, he.Twin, []topo.HalfEdgeHandle{h2Rev, h1Rev})
}

func replaceInLoop(store *topo.Store, lh topo.LoopHandle, old topo.HalfEdgeHandle, with []topo.HalfEdgeHandle) {
	loop, ok := store.Loop(lh)
	if !ok {
		return
	}
	out := make([]topo.HalfEdgeHandle, 0, len(loop.Edges)+len(with))
	for _, heh := range loop.Edges {
		if heh == old {
			out = append(out, with...)
			continue
		}
		out = append(out, heh)
	}
	loop.Edges = out
}

// splitAgainstOther tries splitting every face of solid along the line of
// intersection of its plane with every planar face of other, up to a
// safety bound on total splits, per spec.md §4.5 step 3.
func splitAgainstOther(store *topo.Store, faces []topo.FaceHandle, other []topo.FaceHandle, tolerance float64) []topo.FaceHandle {
	const maxSplits = 10000
	splits := 0
	work := append([]topo.FaceHandle(nil), faces...)

	for i := 0; i < len(work) && splits < maxSplits; i++ {
		fh := work[i]
		face, ok := store.Face(fh)
		if !ok || face.Surface.Kind != geom.SurfaceKindPlane {
			continue
		}
		for _, ofh := range other {
			oface, ok := store.Face(ofh)
			if !ok || oface.Surface.Kind != geom.SurfaceKindPlane {
				continue
			}
			origin, dir, parallel := planeIntersectionLine(*face.Surface.Plane, *oface.Surface.Plane)
			if parallel {
				continue
			}
			a, b, ok, _ := splitFace(store, fh, origin, dir, tolerance)
			if !ok {
				continue
			}
			work[i] = a
			work = append(work, b)
			splits++
			face, _ = store.Face(work[i])
		}
	}
	sort.Slice(work, func(i, j int) bool { return work[i] < work[j] })
	return work
}

// planeIntersectionLine returns a point and direction spanning the
// intersection line of two planes, or parallel=true if they do not meet.
func planeIntersectionLine(p1, p2 geom.Plane) (origin, dir geom.Vec, parallel bool) {
	dir = p1.Normal.Cross(p2.Normal)
	if dir.Length() < 1e-12 {
		return geom.Vec{}, geom.Vec{}, true
	}
	dir = dir.Normalize()

	n1, n2 := p1.Normal, p2.Normal
	d1 := n1.Dot(p1.Origin)
	d2 := n2.Dot(p2.Origin)
	n1n2 := n1.Dot(n2)
	denom := 1 - n1n2*n1n2
	c1 := (d1 - d2*n1n2) / denom
	c2 := (d2 - d1*n1n2) / denom
	origin = n1.Scale(c1).Add(n2.Scale(c2))
	return origin, dir, false
}
