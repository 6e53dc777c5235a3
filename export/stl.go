//-----------------------------------------------------------------------------
/*

Binary STL export (spec.md §6): 80-byte header, a little-endian uint32
triangle count, then 50 bytes per triangle (facet normal, three vertices,
a 2-byte attribute count left at zero). Coordinates are written exactly
as they appear in the mesh; the kernel itself carries no notion of units.

*/
//-----------------------------------------------------------------------------

package export

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/tessellate"
)

const stlHeaderSize = 80

// WriteSTL writes mesh to w in binary STL format.
func WriteSTL(w io.Writer, mesh *tessellate.Mesh) error {
	header := make([]byte, stlHeaderSize)
	copy(header, "waffle-iron binary STL export")
	if _, err := w.Write(header); err != nil {
		return err
	}

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(mesh.Triangles)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}

	var facet [50]byte
	for _, t := range mesh.Triangles {
		a, b, c := mesh.Vertices[t.A], mesh.Vertices[t.B], mesh.Vertices[t.C]
		normal := facetNormal(mesh, t)

		putVec(facet[0:12], normal)
		putVec(facet[12:24], a)
		putVec(facet[24:36], b)
		putVec(facet[36:48], c)
		facet[48] = 0
		facet[49] = 0

		if _, err := w.Write(facet[:]); err != nil {
			return err
		}
	}
	return nil
}

func putVec(dst []byte, v geom.Vec) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(float32(v.Z)))
}

// facetNormal returns the triangle's own averaged vertex normals, summed
// and renormalized, falling back to the geometric face normal if the
// mesh carries no usable vertex normals (all zero, pre-shading).
func facetNormal(mesh *tessellate.Mesh, t tessellate.Triangle) geom.Vec {
	n := mesh.Normals[t.A].Add(mesh.Normals[t.B]).Add(mesh.Normals[t.C])
	if n.Length2() > 1e-18 {
		return n.Normalize()
	}
	a, b, c := mesh.Vertices[t.A], mesh.Vertices[t.B], mesh.Vertices[t.C]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
