//-----------------------------------------------------------------------------
/*

Grid decomposition: the AABB/AABB fast path for two solids that are each a
single axis-aligned box. Builds a rectilinear grid from the sorted-unique
coordinates of both boxes, classifies each cell against the requested
operation, and emits a boundary quad wherever two face-adjacent cells
disagree on "in result" status.

*/
//-----------------------------------------------------------------------------

package boolean

import (
	"sort"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

func uniqueSorted(values []float64, tolerance float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	out := sorted[:0:0]
	for _, v := range sorted {
		if len(out) == 0 || v-out[len(out)-1] > tolerance {
			out = append(out, v)
		}
	}
	return out
}

// cellIn reports whether the boolean op keeps a cell whose center lies
// (strictly, beyond tolerance) inside a and/or inside b.
func cellIn(op Op, inA, inB bool) bool {
	switch op {
	case OpUnion:
		return inA || inB
	case OpIntersection:
		return inA && inB
	case OpDifference:
		return inA && !inB
	default:
		return false
	}
}

// gridUnionDifference computes a union/difference/intersection of two
// axis-aligned boxes via grid decomposition, per spec.md §4.5 step 2. It
// returns the resulting solid, possibly spanning more than one shell (an
// enclosed cavity becomes its own inward shell).
func gridUnionDifference(store *topo.Store, boxA, boxB geom.Box3, op Op, coincidence float64) (topo.SolidHandle, error) {
	xs := uniqueSorted([]float64{boxA.Min.X, boxA.Max.X, boxB.Min.X, boxB.Max.X}, coincidence)
	ys := uniqueSorted([]float64{boxA.Min.Y, boxA.Max.Y, boxB.Min.Y, boxB.Max.Y}, coincidence)
	zs := uniqueSorted([]float64{boxA.Min.Z, boxA.Max.Z, boxB.Min.Z, boxB.Max.Z}, coincidence)
	if len(xs) < 2 || len(ys) < 2 || len(zs) < 2 {
		return 0, &IntersectionFailedError{Reason: "degenerate grid axis"}
	}

	nx, ny, nz := len(xs)-1, len(ys)-1, len(zs)-1
	in := make([][][]bool, nx)
	for i := 0; i < nx; i++ {
		in[i] = make([][]bool, ny)
		for j := 0; j < ny; j++ {
			in[i][j] = make([]bool, nz)
			for k := 0; k < nz; k++ {
				center := geom.Vec{
					X: (xs[i] + xs[i+1]) / 2,
					Y: (ys[j] + ys[j+1]) / 2,
					Z: (zs[k] + zs[k+1]) / 2,
				}
				inA := boxA.Contains(center, -coincidence)
				inB := boxB.Contains(center, -coincidence)
				in[i][j][k] = cellIn(op, inA, inB)
			}
		}
	}

	lattice := map[[3]int]topo.VertexHandle{}
	vertexAt := func(i, j, k int) topo.VertexHandle {
		key := [3]int{i, j, k}
		if v, ok := lattice[key]; ok {
			return v
		}
		v := store.AddVertex(geom.Vec{X: xs[i], Y: ys[j], Z: zs[k]})
		lattice[key] = v
		return v
	}

	pool := newGridEdgePool(store)
	var faces []topo.FaceHandle
	idx := 0

	// emitQuad builds a face whose outward normal is `outward`, walking the
	// four lattice corners in a consistent winding for that normal.
	emitQuad := func(corners [4][3]int, outward geom.Vec) {
		verts := [4]topo.VertexHandle{}
		for i, c := range corners {
			verts[i] = vertexAt(c[0], c[1], c[2])
		}
		heh := make([]topo.HalfEdgeHandle, 4)
		for i := 0; i < 4; i++ {
			heh[i] = pool.lineEdge(verts[i], verts[(i+1)%4])
		}
		loop := store.AddLoop(heh)
		p0, _ := store.Vertex(verts[0])
		surface := geom.NewPlaneSurface(geom.Plane{Origin: p0.Point, Normal: outward})
		face := store.AddFace(surface, loop, nil, true)
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleBooleanBodyAFace, Index: idx})
		idx++
		faces = append(faces, face)
	}

	// X-boundaries: faces between (i-1,j,k) and (i,j,k).
	for i := 0; i <= nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				left := i > 0 && in[i-1][j][k]
				right := i < nx && in[i][j][k]
				if left == right {
					continue
				}
				corners := [4][3]int{{i, j, k}, {i, j, k + 1}, {i, j + 1, k + 1}, {i, j + 1, k}}
				normal := geom.Vec{X: 1}
				if left {
					normal = geom.Vec{X: -1}
				}
				emitQuad(corners, normal)
			}
		}
	}
	// Y-boundaries.
	for j := 0; j <= ny; j++ {
		for i := 0; i < nx; i++ {
			for k := 0; k < nz; k++ {
				lo := j > 0 && in[i][j-1][k]
				hi := j < ny && in[i][j][k]
				if lo == hi {
					continue
				}
				corners := [4][3]int{{i, j, k}, {i + 1, j, k}, {i + 1, j, k + 1}, {i, j, k + 1}}
				normal := geom.Vec{Y: 1}
				if lo {
					normal = geom.Vec{Y: -1}
				}
				emitQuad(corners, normal)
			}
		}
	}
	// Z-boundaries.
	for k := 0; k <= nz; k++ {
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				lo := k > 0 && in[i][j][k-1]
				hi := k < nz && in[i][j][k]
				if lo == hi {
					continue
				}
				corners := [4][3]int{{i, j, k}, {i, j + 1, k}, {i + 1, j + 1, k}, {i + 1, j, k}}
				normal := geom.Vec{Z: 1}
				if lo {
					normal = geom.Vec{Z: -1}
				}
				emitQuad(corners, normal)
			}
		}
	}

	if len(faces) == 0 {
		return 0, ErrDegenerateResult
	}

	shellGroups := connectedComponents(store, faces)
	shells := make([]topo.ShellHandle, 0, len(shellGroups))
	for gi, group := range shellGroups {
		orientation := topo.ShellOutward
		if gi > 0 {
			orientation = topo.ShellInward
			flipGroupOrientation(store, group)
		}
		shells = append(shells, store.AddShell(group, orientation))
	}
	return store.AddSolid(shells), nil
}

// connectedComponents partitions faces into shells by BFS over shared
// twin half-edges. The component with the larger bounding-box volume is
// placed first (conventionally the outward hull); any remaining components
// are enclosed cavities.
func connectedComponents(store *topo.Store, faces []topo.FaceHandle) [][]topo.FaceHandle {
	visited := map[topo.FaceHandle]bool{}
	var groups [][]topo.FaceHandle

	neighborsOf := func(fh topo.FaceHandle) []topo.FaceHandle {
		var out []topo.FaceHandle
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
				twin, ok := store.HalfEdge(he.Twin)
				if !ok {
					continue
				}
				out = append(out, twin.Face)
			}
		}
		return out
	}

	for _, start := range faces {
		if visited[start] {
			continue
		}
		queue := []topo.FaceHandle{start}
		visited[start] = true
		var group []topo.FaceHandle
		for len(queue) > 0 {
			fh := queue[0]
			queue = queue[1:]
			group = append(group, fh)
			for _, nb := range neighborsOf(fh) {
				if nb != 0 && !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groupVolume(store, groups[i]) > groupVolume(store, groups[j])
	})
	return groups
}

func groupVolume(store *topo.Store, faces []topo.FaceHandle) float64 {
	box := geom.EmptyBox3()
	for _, fh := range faces {
		for _, lh := range store.FaceLoops(fh) {
			for _, p := range store.LoopVertices(lh) {
				box = box.Extend(p)
			}
		}
	}
	return box.Volume()
}

// flipGroupOrientation reverses every face's winding in an enclosed-cavity
// shell so its geometric normal points into the cavity, matching the
// inward orientation convention used by multi-shell solids.
func flipGroupOrientation(store *topo.Store, faces []topo.FaceHandle) {
	for _, fh := range faces {
		face, ok := store.Face(fh)
		if !ok {
			continue
		}
		face.SameSense = !face.SameSense
		for _, lh := range store.FaceLoops(fh) {
			loop, ok := store.Loop(lh)
			if !ok {
				continue
			}
			reversed := make([]topo.HalfEdgeHandle, len(loop.Edges))
			for i, heh := range loop.Edges {
				he, ok := store.HalfEdge(heh)
				if !ok {
					continue
				}
				reversed[len(loop.Edges)-1-i] = he.Twin
			}
			loop.Edges = reversed
			for _, heh := range loop.Edges {
				store.SetHalfEdgeFace(heh, fh, lh)
			}
		}
	}
}

// gridIntersectionBox computes the coordinate-wise intersection of two
// boxes directly, per spec.md §4.5 step 2's intersection shortcut.
func gridIntersectionBox(boxA, boxB geom.Box3) (geom.Box3, error) {
	result := boxA.Intersection(boxB)
	if result.Empty() {
		return geom.Box3{}, ErrDegenerateResult
	}
	return result, nil
}
