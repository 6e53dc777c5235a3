//-----------------------------------------------------------------------------
/*

Triangle mesh output type, shared by ear-clipping, UV-grid sampling,
welding, winding repair and validation (spec.md §4.10).

*/
//-----------------------------------------------------------------------------

package tessellate

import "github.com/sequoia-hope/waffle-iron/geom"

// Triangle is one output triangle: three indices into a Mesh's Vertices
// (and, before welding, into its per-vertex Normals).
type Triangle struct {
	A, B, C int

	// FallbackFan marks a triangle produced by the ear-clipping fallback
	// fan rather than a genuine ear, per SPEC_FULL.md Open Question 2.
	FallbackFan bool
}

// Mesh is a welded triangle soup: one position and one (averaged) normal
// per vertex, referenced by index from each Triangle.
type Mesh struct {
	Vertices  []geom.Vec
	Normals   []geom.Vec
	Triangles []Triangle
}

func (m *Mesh) addVertex(p, n geom.Vec) int {
	idx := len(m.Vertices)
	m.Vertices = append(m.Vertices, p)
	m.Normals = append(m.Normals, n)
	return idx
}

func (m *Mesh) appendTriangle(t Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// append merges other's vertices and triangles into m, offsetting indices.
func (m *Mesh) append(other *Mesh) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Normals = append(m.Normals, other.Normals...)
	for _, t := range other.Triangles {
		m.appendTriangle(Triangle{A: t.A + offset, B: t.B + offset, C: t.C + offset, FallbackFan: t.FallbackFan})
	}
}
