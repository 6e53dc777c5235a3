//-----------------------------------------------------------------------------
/*

Solid tessellation: tessellate every face, weld shared vertices, repair
winding consistency by BFS from the most outward-facing triangle, and flip
the whole mesh if its net signed volume comes out negative (spec.md §4.10).

*/
//-----------------------------------------------------------------------------

package tessellate

import (
	"fmt"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// DefaultWeldTolerance is the default vertex-welding distance, per spec.md §4.10.
const DefaultWeldTolerance = 1e-5

// DefaultGridSegments is the default u/v sample count for a parametric
// face with no other hint.
const DefaultGridSegments = 16

// Tessellate builds a single welded, winding-repaired, volume-correct
// triangle mesh for every face of solid.
func Tessellate(store *topo.Store, solid topo.SolidHandle) (*Mesh, error) {
	mesh := &Mesh{}
	faces := store.SolidFaces(solid)
	for _, fh := range faces {
		face, ok := store.Face(fh)
		if !ok {
			continue
		}
		boundary := store.LoopVertices(face.Outer)
		if len(boundary) < 3 {
			continue
		}

		var faceMesh *Mesh
		if face.Surface.Kind == geom.SurfaceKindPlane {
			normal := face.Surface.Plane.Normal
			if !face.SameSense {
				normal = normal.Neg()
			}
			loop := boundary
			if !face.SameSense {
				loop = reverseLoop(boundary)
			}
			faceMesh = TessellatePlanarLoop(loop, normal)
		} else {
			faceMesh = TessellateParametricFace(face.Surface, boundary, face.SameSense, DefaultGridSegments)
		}
		mesh.append(faceMesh)
	}

	weld(mesh, DefaultWeldTolerance)
	repairWinding(mesh)
	if signedVolume(mesh) < 0 {
		flipAll(mesh)
	}
	if len(mesh.Triangles) == 0 {
		return mesh, fmt.Errorf("tessellate: solid produced no triangles")
	}
	return mesh, nil
}

func reverseLoop(loop []geom.Vec) []geom.Vec {
	out := make([]geom.Vec, len(loop))
	for i, p := range loop {
		out[len(loop)-1-i] = p
	}
	return out
}

type weldKey struct {
	x, y, z int64
}

func keyOf(p geom.Vec, tolerance float64) weldKey {
	inv := 1.0 / tolerance
	return weldKey{
		x: int64(p.X * inv),
		y: int64(p.Y * inv),
		z: int64(p.Z * inv),
	}
}

// weld merges vertices at the same position within tolerance, averages
// their normals, remaps triangle indices, and drops any triangle that
// becomes degenerate (two or more identical indices) as a result.
func weld(mesh *Mesh, tolerance float64) {
	remap := make([]int, len(mesh.Vertices))
	buckets := map[weldKey]int{}
	var positions []geom.Vec
	var normals []geom.Vec
	var counts []int

	for i, p := range mesh.Vertices {
		k := keyOf(p, tolerance)
		if j, ok := buckets[k]; ok {
			normals[j] = normals[j].Add(mesh.Normals[i])
			counts[j]++
			remap[i] = j
			continue
		}
		j := len(positions)
		buckets[k] = j
		positions = append(positions, p)
		normals = append(normals, mesh.Normals[i])
		counts = append(counts, 1)
		remap[i] = j
	}
	for i := range normals {
		normals[i] = normals[i].Scale(1.0 / float64(counts[i])).Normalize()
	}

	var triangles []Triangle
	for _, t := range mesh.Triangles {
		a, b, c := remap[t.A], remap[t.B], remap[t.C]
		if a == b || b == c || a == c {
			continue
		}
		triangles = append(triangles, Triangle{A: a, B: b, C: c, FallbackFan: t.FallbackFan})
	}

	mesh.Vertices = positions
	mesh.Normals = normals
	mesh.Triangles = triangles
}

func undirected(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// repairWinding performs a BFS from the most outward-facing triangle
// (maximal centroid·normal), flipping any neighbour that shares a directed
// edge with its visited neighbour (indicating inverted winding relative to
// it) instead of the required opposite-direction pairing.
func repairWinding(mesh *Mesh) {
	n := len(mesh.Triangles)
	if n == 0 {
		return
	}

	type edgeOwner struct {
		tri       int
		a, b      int
	}
	adjacency := map[[2]int][]edgeOwner{}
	for i, t := range mesh.Triangles {
		for _, e := range [][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			u, v := undirected(e[0], e[1])
			adjacency[[2]int{u, v}] = append(adjacency[[2]int{u, v}], edgeOwner{tri: i, a: e[0], b: e[1]})
		}
	}

	seed := seedTriangle(mesh)
	visited := make([]bool, n)
	visited[seed] = true
	queue := []int{seed}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t := mesh.Triangles[cur]
		for _, e := range [][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			u, v := undirected(e[0], e[1])
			for _, owner := range adjacency[[2]int{u, v}] {
				if owner.tri == cur || visited[owner.tri] {
					continue
				}
				if owner.a == e[0] && owner.b == e[1] {
					flipTriangle(mesh, owner.tri)
				}
				visited[owner.tri] = true
				queue = append(queue, owner.tri)
			}
		}
	}
}

func seedTriangle(mesh *Mesh) int {
	best := 0
	bestScore := -1e300
	for i, t := range mesh.Triangles {
		centroid := mesh.Vertices[t.A].Add(mesh.Vertices[t.B]).Add(mesh.Vertices[t.C]).Scale(1.0 / 3)
		normal := faceNormal(mesh, t)
		score := centroid.Dot(normal)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

func faceNormal(mesh *Mesh, t Triangle) geom.Vec {
	ab := mesh.Vertices[t.B].Sub(mesh.Vertices[t.A])
	ac := mesh.Vertices[t.C].Sub(mesh.Vertices[t.A])
	return ab.Cross(ac).Normalize()
}

func flipTriangle(mesh *Mesh, i int) {
	t := mesh.Triangles[i]
	mesh.Triangles[i] = Triangle{A: t.A, B: t.C, C: t.B, FallbackFan: t.FallbackFan}
}

func signedVolume(mesh *Mesh) float64 {
	var total float64
	for _, t := range mesh.Triangles {
		a, b, c := mesh.Vertices[t.A], mesh.Vertices[t.B], mesh.Vertices[t.C]
		total += a.Dot(b.Cross(c))
	}
	return total / 6
}

func flipAll(mesh *Mesh) {
	for i := range mesh.Triangles {
		flipTriangle(mesh, i)
	}
	for i := range mesh.Normals {
		mesh.Normals[i] = mesh.Normals[i].Neg()
	}
}
