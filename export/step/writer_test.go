package step

import (
	"bytes"
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

func Test_WriteMesh_ProducesWellFormedStepFile(t *testing.T) {
	mesh := unitBoxMesh(t)

	var buf bytes.Buffer
	w := NewWriter(&buf, "box.step")
	if err := w.WriteMesh(mesh, "TestBox"); err != nil {
		t.Fatalf("WriteMesh: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"ISO-10303-21;", "HEADER;", "FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));", "ENDSEC;", "DATA;", "END-ISO-10303-21;"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected STEP output to contain %q", want)
		}
	}
	if !strings.Contains(out, "MANIFOLD_SOLID_BREP") {
		t.Errorf("expected a MANIFOLD_SOLID_BREP entity")
	}
	if !strings.Contains(out, "ADVANCED_FACE") {
		t.Errorf("expected ADVANCED_FACE entities, one per mesh triangle")
	}
}

func Test_WriteMesh_OneAdvancedFacePerTriangle(t *testing.T) {
	mesh := unitBoxMesh(t)

	var buf bytes.Buffer
	w := NewWriter(&buf, "box.step")
	if err := w.WriteMesh(mesh, "TestBox"); err != nil {
		t.Fatalf("WriteMesh: %v", err)
	}

	got := strings.Count(buf.String(), "=ADVANCED_FACE(")
	if got != len(mesh.Triangles) {
		t.Errorf("expected %d ADVANCED_FACE entities, got %d", len(mesh.Triangles), got)
	}
}

func Test_WriteMesh_SharesCartesianPointsAcrossTriangles(t *testing.T) {
	mesh := unitBoxMesh(t)

	var buf bytes.Buffer
	w := NewWriter(&buf, "box.step")
	if err := w.WriteMesh(mesh, "TestBox"); err != nil {
		t.Fatalf("WriteMesh: %v", err)
	}

	pointCount := strings.Count(buf.String(), "=CARTESIAN_POINT(")
	if pointCount > len(mesh.Vertices)+1 {
		t.Errorf("expected cached CARTESIAN_POINT entities close to vertex count %d, got %d", len(mesh.Vertices), pointCount)
	}
}

func Test_WriteMesh_EmptyMeshReturnsError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "empty.step")
	err := w.WriteMesh(&tessellate.Mesh{}, "Empty")
	if err == nil {
		t.Fatal("expected an error for an empty mesh")
	}
}

func Test_SetAuthor_AppearsInFileNameRecord(t *testing.T) {
	mesh := unitBoxMesh(t)

	var buf bytes.Buffer
	w := NewWriter(&buf, "box.step")
	w.SetAuthor("Ada Lovelace", "Analytical Engines Ltd")
	if err := w.WriteMesh(mesh, "TestBox"); err != nil {
		t.Fatalf("WriteMesh: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Ada Lovelace") || !strings.Contains(out, "Analytical Engines Ltd") {
		t.Errorf("expected FILE_NAME record to carry the author/org set via SetAuthor")
	}
}
