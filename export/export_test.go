package export

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/primitives"
	"github.com/sequoia-hope/waffle-iron/tessellate"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

func unitBoxMesh(t *testing.T) *tessellate.Mesh {
	t.Helper()
	store := topo.NewStore(tol.Default())
	solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	mesh, err := tessellate.Tessellate(store, solid)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	return mesh
}

func Test_WriteSTL_HeaderAndTriangleCount(t *testing.T) {
	mesh := unitBoxMesh(t)

	var buf bytes.Buffer
	if err := WriteSTL(&buf, mesh); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	data := buf.Bytes()
	wantLen := stlHeaderSize + 4 + 50*len(mesh.Triangles)
	if len(data) != wantLen {
		t.Fatalf("expected %d bytes, got %d", wantLen, len(data))
	}

	count := binary.LittleEndian.Uint32(data[stlHeaderSize : stlHeaderSize+4])
	if int(count) != len(mesh.Triangles) {
		t.Errorf("expected triangle count %d, got %d", len(mesh.Triangles), count)
	}
}

func Test_WriteSTL_NormalsAreUnitLength(t *testing.T) {
	mesh := unitBoxMesh(t)

	var buf bytes.Buffer
	if err := WriteSTL(&buf, mesh); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	data := buf.Bytes()

	facetStart := stlHeaderSize + 4
	for i := 0; i < len(mesh.Triangles); i++ {
		off := facetStart + i*50
		nx := readFloat32(data[off : off+4])
		ny := readFloat32(data[off+4 : off+8])
		nz := readFloat32(data[off+8 : off+12])
		length2 := float64(nx*nx + ny*ny + nz*nz)
		if length2 < 0.98 || length2 > 1.02 {
			t.Errorf("triangle %d: expected unit normal, got length^2=%f", i, length2)
		}
	}
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func Test_WriteOBJ_ProducesOneIndexedFaces(t *testing.T) {
	mesh := unitBoxMesh(t)

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, mesh); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := buf.String()

	vCount := strings.Count(out, "\nv ") + boolToInt(strings.HasPrefix(out, "v "))
	if vCount != len(mesh.Vertices) {
		t.Errorf("expected %d vertex lines, got %d", len(mesh.Vertices), vCount)
	}

	fCount := strings.Count(out, "\nf ") + boolToInt(strings.HasPrefix(out, "f "))
	if fCount != len(mesh.Triangles) {
		t.Errorf("expected %d face lines, got %d", len(mesh.Triangles), fCount)
	}

	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "f ") {
			continue
		}
		if strings.Contains(line, " 0/") || strings.HasSuffix(line, "/0") {
			t.Errorf("OBJ face indices must be 1-indexed, got line %q", line)
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
