//-----------------------------------------------------------------------------
/*

Planar face tessellation: project the outer loop into a 2D basis and
triangulate by ear-clipping, per spec.md §4.10.

Ear-clipping policy: reflex vertices are never ears; a candidate ear's
triangle must not contain any other polygon vertex; if a full pass finds no
ear (a malformed, typically self-intersecting polygon), the remaining
polygon is emitted as a fan and every triangle from that point on is
tagged FallbackFan, per SPEC_FULL.md Open Question 2.

*/
//-----------------------------------------------------------------------------

package tessellate

import "github.com/sequoia-hope/waffle-iron/geom"

// TessellatePlanarLoop triangulates the outer loop of a planar face given
// its 3D boundary vertices (in loop order) and outward normal. It returns a
// Mesh with one vertex per loop vertex (no welding across faces yet) and
// one triangle per ear.
func TessellatePlanarLoop(loop []geom.Vec, normal geom.Vec) *Mesh {
	mesh := &Mesh{}
	if len(loop) < 3 {
		return mesh
	}

	xAxis, yAxis := geom.Basis(normal, loop[1].Sub(loop[0]))
	origin := loop[0]
	pts2 := make([]geom.Vec2, len(loop))
	for i, p := range loop {
		d := p.Sub(origin)
		pts2[i] = geom.Vec2{X: d.Dot(xAxis), Y: d.Dot(yAxis)}
	}

	for _, p := range loop {
		mesh.addVertex(p, normal)
	}

	indices := earClip(pts2)
	for _, tri := range indices {
		mesh.appendTriangle(tri)
	}
	return mesh
}

func polygonArea2(pts []geom.Vec2) float64 {
	area := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].Cross(pts[j])
	}
	return area / 2
}

// earClip returns triangles (as index triples into pts) covering the
// simple polygon pts, assumed to be a single outer loop with no holes.
func earClip(pts []geom.Vec2) []Triangle {
	n := len(pts)
	if n < 3 {
		return nil
	}

	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	ccw := polygonArea2(pts) > 0

	var tris []Triangle
	fallback := false

	for len(ring) > 3 {
		earFound := false
		for i := 0; i < len(ring); i++ {
			prev := ring[(i-1+len(ring))%len(ring)]
			cur := ring[i]
			next := ring[(i+1)%len(ring)]
			if !isEar(pts, ring, prev, cur, next, ccw) {
				continue
			}
			tris = append(tris, Triangle{A: prev, B: cur, C: next, FallbackFan: fallback})
			ring = append(append([]int(nil), ring[:i]...), ring[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			fallback = true
			break
		}
	}

	if len(ring) >= 3 {
		apex := ring[0]
		for i := 1; i+1 < len(ring); i++ {
			tris = append(tris, Triangle{A: apex, B: ring[i], C: ring[i+1], FallbackFan: fallback})
		}
	}
	return tris
}

func isEar(pts []geom.Vec2, ring []int, prev, cur, next int, ccw bool) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	cross := b.Sub(a).Cross(c.Sub(b))
	if ccw && cross <= 0 {
		return false
	}
	if !ccw && cross >= 0 {
		return false
	}
	for _, idx := range ring {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		if pointInTriangle2(pts[idx], a, b, c) {
			return false
		}
	}
	return true
}

func pointInTriangle2(p, a, b, c geom.Vec2) bool {
	d1 := p.Sub(a).Cross(b.Sub(a))
	d2 := p.Sub(b).Cross(c.Sub(b))
	d3 := p.Sub(c).Cross(a.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
