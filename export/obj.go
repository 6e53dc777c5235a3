//-----------------------------------------------------------------------------
/*

Text OBJ export (spec.md §6): one "v x y z" line per vertex, one
"vn nx ny nz" line per normal, and one "f i//ni j//nj k//nk" line per
triangle, 1-indexed as OBJ requires.

*/
//-----------------------------------------------------------------------------

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sequoia-hope/waffle-iron/tessellate"
)

// WriteOBJ writes mesh to w in Wavefront OBJ format.
func WriteOBJ(w io.Writer, mesh *tessellate.Mesh) error {
	bw := bufio.NewWriter(w)

	for _, v := range mesh.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, n := range mesh.Normals {
		if _, err := fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for _, t := range mesh.Triangles {
		i, j, k := t.A+1, t.B+1, t.C+1
		if _, err := fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", i, i, j, j, k, k); err != nil {
			return err
		}
	}
	return bw.Flush()
}
