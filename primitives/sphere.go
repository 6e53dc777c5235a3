//-----------------------------------------------------------------------------
/*

Canonical sphere primitive

Builds a uv-grid polyhedral approximation: u longitude segments, v latitude
slices, with the two poles collapsed to single shared vertices so the mesh
has no degenerate zero-area quads at the caps. Edges are straight chords
between grid vertices; faces still carry the true spherical surface so
downstream validation can distinguish topological closure (always holds)
from exact surface/edge coincidence (only holds in the limit of fine
tessellation, consistent with this being an approximation).

*/
//-----------------------------------------------------------------------------

package primitives

import (
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Sphere builds a uv-grid polyhedral approximation of a sphere centered at
// center with the given radius, u longitude segments, and v latitude
// slices. u must be >= 3 and v must be >= 2.
func Sphere(store *topo.Store, center geom.Vec, radius float64, u, v int) topo.SolidHandle {
	surface := geom.NewSphereSurface(geom.Sphere{Center: center, Radius: radius})

	northPole := store.AddVertex(center.Add(geom.Vec{Z: radius}))
	southPole := store.AddVertex(center.Add(geom.Vec{Z: -radius}))

	// ring[i][j]: vertex at longitude i (0..u-1), latitude ring j (1..v-1)
	rings := make([][]topo.VertexHandle, v-1)
	for j := 1; j < v; j++ {
		phi := math.Pi/2 - math.Pi*float64(j)/float64(v) // latitude, +pi/2 at pole
		row := make([]topo.VertexHandle, u)
		for i := 0; i < u; i++ {
			theta := 2 * math.Pi * float64(i) / float64(u)
			p := center.Add(geom.Vec{
				X: radius * math.Cos(phi) * math.Cos(theta),
				Y: radius * math.Cos(phi) * math.Sin(theta),
				Z: radius * math.Sin(phi),
			})
			row[i] = store.AddVertex(p)
		}
		rings[j-1] = row
	}

	pool := newEdgePool(store)
	faces := make([]topo.FaceHandle, 0, u*v)

	// North cap: triangular faces between northPole and the first ring.
	firstRing := rings[0]
	for i := 0; i < u; i++ {
		j := (i + 1) % u
		heA := pool.lineEdge(store, northPole, firstRing[i])
		heB := pool.lineEdge(store, firstRing[i], firstRing[j])
		heC := pool.lineEdge(store, firstRing[j], northPole)
		loop := store.AddLoop([]topo.HalfEdgeHandle{heA, heB, heC})
		face := store.AddFace(surface, loop, nil, true)
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleSideFace, Index: i})
		faces = append(faces, face)
	}

	// Quad bands between consecutive interior rings.
	for j := 0; j < len(rings)-1; j++ {
		top := rings[j]
		bot := rings[j+1]
		for i := 0; i < u; i++ {
			k := (i + 1) % u
			heTop := pool.lineEdge(store, top[i], top[k])
			heRight := pool.lineEdge(store, top[k], bot[k])
			heBot := pool.lineEdge(store, bot[k], bot[i])
			heLeft := pool.lineEdge(store, bot[i], top[i])
			loop := store.AddLoop([]topo.HalfEdgeHandle{heTop, heRight, heBot, heLeft})
			face := store.AddFace(surface, loop, nil, true)
			store.SetFaceRole(face, topo.Role{Kind: topo.RoleSideFace, Index: j*u + i})
			faces = append(faces, face)
		}
	}

	// South cap: triangular faces between the last ring and southPole.
	lastRing := rings[len(rings)-1]
	for i := 0; i < u; i++ {
		j := (i + 1) % u
		heA := pool.lineEdge(store, lastRing[i], lastRing[j])
		heB := pool.lineEdge(store, lastRing[j], southPole)
		heC := pool.lineEdge(store, southPole, lastRing[i])
		loop := store.AddLoop([]topo.HalfEdgeHandle{heA, heB, heC})
		face := store.AddFace(surface, loop, nil, true)
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleSideFace, Index: len(rings)*u + i})
		faces = append(faces, face)
	}

	shell := store.AddShell(faces, topo.ShellOutward)
	return store.AddSolid([]topo.ShellHandle{shell})
}
