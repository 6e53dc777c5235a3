//-----------------------------------------------------------------------------
/*

Parametric surface tessellation: sample a u x v grid and emit two
triangles per cell, per spec.md §4.10.

*/
//-----------------------------------------------------------------------------

package tessellate

import (
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
)

// uvBounds finds the parameter-space bounding box a face's boundary
// vertices project to under ClosestPoint. On a periodic (non-plane,
// non-NURBS) surface whose u span exceeds pi, the face is taken to straddle
// the u = ±pi seam and u is measured on [0, 2pi) instead.
func uvBounds(surface geom.Surface, boundary []geom.Vec) (u0, u1, v0, v1 float64) {
	u0, v0 = math.Inf(1), math.Inf(1)
	u1, v1 = math.Inf(-1), math.Inf(-1)
	for _, p := range boundary {
		u, v, _ := surface.ClosestPoint(p)
		u0, u1 = math.Min(u0, u), math.Max(u1, u)
		v0, v1 = math.Min(v0, v), math.Max(v1, v)
	}
	if surface.Kind != geom.SurfaceKindPlane && surface.Kind != geom.SurfaceKindNURBS && u1-u0 > math.Pi {
		u0, u1 = math.Inf(1), math.Inf(-1)
		for _, p := range boundary {
			u, _, _ := surface.ClosestPoint(p)
			if u < 0 {
				u += 2 * math.Pi
			}
			u0, u1 = math.Min(u0, u), math.Max(u1, u)
		}
	}
	return
}

// TessellateParametricFace samples surface on a segments x segments grid
// spanning the parameter bounds implied by boundary, and triangulates each
// cell with two triangles.
func TessellateParametricFace(surface geom.Surface, boundary []geom.Vec, sameSense bool, segments int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	u0, u1, v0, v1 := uvBounds(surface, boundary)

	mesh := &Mesh{}
	idx := make([][]int, segments+1)
	for i := 0; i <= segments; i++ {
		idx[i] = make([]int, segments+1)
		u := u0 + (u1-u0)*float64(i)/float64(segments)
		for j := 0; j <= segments; j++ {
			v := v0 + (v1-v0)*float64(j)/float64(segments)
			p := surface.Evaluate(u, v)
			n := surface.Normal(u, v)
			if !sameSense {
				n = n.Neg()
			}
			idx[i][j] = mesh.addVertex(p, n)
		}
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			a, b := idx[i][j], idx[i+1][j]
			c, d := idx[i+1][j+1], idx[i][j+1]
			if sameSense {
				mesh.appendTriangle(Triangle{A: a, B: b, C: c})
				mesh.appendTriangle(Triangle{A: a, B: c, C: d})
			} else {
				mesh.appendTriangle(Triangle{A: a, B: c, C: b})
				mesh.appendTriangle(Triangle{A: a, B: d, C: c})
			}
		}
	}
	return mesh
}
