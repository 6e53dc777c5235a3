package tessellate

import (
	"testing"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/primitives"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

func Test_EarClip_Square(t *testing.T) {
	square := []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tris := earClip(square)
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
	for _, tr := range tris {
		if tr.FallbackFan {
			t.Errorf("square should not require the fallback fan")
		}
	}
}

func Test_EarClip_ConcaveL(t *testing.T) {
	// An L-shape: concave at vertex 3.
	poly := []geom.Vec2{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}
	tris := earClip(poly)
	area := 0.0
	for _, tr := range tris {
		a, b, c := poly[tr.A], poly[tr.B], poly[tr.C]
		area += (b.Sub(a).Cross(c.Sub(a))) / 2
	}
	if area < 2.9 || area > 3.1 {
		t.Errorf("expected triangulated area ~3, got %f", area)
	}
}

func Test_Tessellate_Box_IsWatertightAndPrintable(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})

	mesh, err := Tessellate(store, solid)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	report := Validate(mesh)
	if !report.Watertight() {
		t.Errorf("expected watertight box mesh, got boundary=%d nonManifold=%d", report.BoundaryEdges, report.NonManifoldEdges)
	}
	if !report.Printable() {
		t.Errorf("expected printable box mesh: %+v", report)
	}
	if report.EulerCharacteristic != 2 {
		t.Errorf("expected Euler characteristic 2, got %d", report.EulerCharacteristic)
	}
	if report.SignedVolume < 0.9 || report.SignedVolume > 1.1 {
		t.Errorf("expected unit box volume ~1, got %f", report.SignedVolume)
	}
}

func Test_Tessellate_Cylinder_IsWatertight(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := primitives.Cylinder(store, geom.Vec{}, geom.Vec{Z: 1}, 1, 2, 16)

	mesh, err := Tessellate(store, solid)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	report := Validate(mesh)
	if !report.Watertight() {
		t.Errorf("expected watertight cylinder mesh, got boundary=%d nonManifold=%d", report.BoundaryEdges, report.NonManifoldEdges)
	}
	if report.SignedVolume <= 0 {
		t.Errorf("expected positive signed volume, got %f", report.SignedVolume)
	}
}

func Test_Weld_MergesCoincidentVertices(t *testing.T) {
	mesh := &Mesh{}
	a := mesh.addVertex(geom.Vec{X: 0, Y: 0, Z: 0}, geom.Vec{Z: 1})
	b := mesh.addVertex(geom.Vec{X: 1, Y: 0, Z: 0}, geom.Vec{Z: 1})
	c := mesh.addVertex(geom.Vec{X: 0, Y: 1, Z: 0}, geom.Vec{Z: 1})
	d := mesh.addVertex(geom.Vec{X: 0, Y: 0, Z: 0}, geom.Vec{Z: 1}) // coincident with a
	mesh.appendTriangle(Triangle{A: a, B: b, C: c})
	mesh.appendTriangle(Triangle{A: d, B: b, C: c})

	weld(mesh, DefaultWeldTolerance)
	if len(mesh.Vertices) != 3 {
		t.Fatalf("expected 3 welded vertices, got %d", len(mesh.Vertices))
	}
}
