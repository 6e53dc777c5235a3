package primitives

import (
	"testing"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// eulerCounts walks a solid's shells and returns the distinct vertex, edge,
// and face counts visible from it, plus a report of any half-edge whose
// twin is not itself twinned back (a direct check of the "twin(twin(h)) ==
// h" invariant restricted to the primitive's own topology).
func eulerCounts(t *testing.T, store *topo.Store, solid topo.SolidHandle) (verts, edges, faces int) {
	t.Helper()
	vertSet := map[topo.VertexHandle]bool{}
	edgeSet := map[topo.EdgeHandle]bool{}
	faceSet := map[topo.FaceHandle]bool{}

	for _, fh := range store.SolidFaces(solid) {
		faceSet[fh] = true
		for _, lh := range store.FaceLoops(fh) {
			loop, ok := store.Loop(lh)
			if !ok {
				t.Fatalf("loop %d missing", lh)
			}
			for _, heh := range loop.Edges {
				he, ok := store.HalfEdge(heh)
				if !ok {
					t.Fatalf("half-edge %d missing", heh)
				}
				twin, ok := store.HalfEdge(he.Twin)
				if !ok {
					t.Fatalf("twin of %d missing", heh)
				}
				if twin.Twin != heh {
					t.Errorf("twin(twin(%d)) != %d", heh, heh)
				}
				if twin.Start != he.End || twin.End != he.Start {
					t.Errorf("half-edge %d and its twin have mismatched endpoints", heh)
				}
				edgeSet[he.Edge] = true
				vertSet[he.Start] = true
			}
		}
	}
	return len(vertSet), len(edgeSet), len(faceSet)
}

func Test_Box_EulerCharacteristic(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})

	v, e, f := eulerCounts(t, store, solid)
	if v != 8 {
		t.Errorf("expected 8 vertices, got %d", v)
	}
	if e != 12 {
		t.Errorf("expected 12 edges, got %d", e)
	}
	if f != 6 {
		t.Errorf("expected 6 faces, got %d", f)
	}
	if v-e+f != 2 {
		t.Errorf("expected Euler characteristic 2, got %d", v-e+f)
	}
}

func Test_Cylinder_EulerCharacteristic(t *testing.T) {
	store := topo.NewStore(tol.Default())
	const n = 8
	solid := Cylinder(store, geom.Vec{}, geom.Vec{Z: 1}, 1.0, 2.0, n)

	v, e, f := eulerCounts(t, store, solid)
	wantV := 2 * n
	wantE := 3 * n
	wantF := n + 2
	if v != wantV {
		t.Errorf("expected %d vertices, got %d", wantV, v)
	}
	if e != wantE {
		t.Errorf("expected %d edges, got %d", wantE, e)
	}
	if f != wantF {
		t.Errorf("expected %d faces, got %d", wantF, f)
	}
	if v-e+f != 2 {
		t.Errorf("expected Euler characteristic 2, got %d", v-e+f)
	}
}

func Test_Sphere_EulerCharacteristic(t *testing.T) {
	store := topo.NewStore(tol.Default())
	const u, v = 8, 4
	solid := Sphere(store, geom.Vec{}, 1.0, u, v)

	nv, ne, nf := eulerCounts(t, store, solid)
	wantV := u*(v-1) + 2
	wantF := 2*u + (v-2)*u
	wantE := (wantV + wantF - 2)
	if nv != wantV {
		t.Errorf("expected %d vertices, got %d", wantV, nv)
	}
	if nf != wantF {
		t.Errorf("expected %d faces, got %d", wantF, nf)
	}
	if ne != wantE {
		t.Errorf("expected %d edges (from Euler relation), got %d", wantE, ne)
	}
	if nv-ne+nf != 2 {
		t.Errorf("expected Euler characteristic 2, got %d", nv-ne+nf)
	}
}

func Test_Sphere_MinimalBipyramid(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := Sphere(store, geom.Vec{}, 1.0, 6, 2)

	v, e, f := eulerCounts(t, store, solid)
	if v-e+f != 2 {
		t.Errorf("expected Euler characteristic 2, got %d", v-e+f)
	}
	if f != 12 {
		t.Errorf("expected 12 triangular faces for a hexagonal bipyramid, got %d", f)
	}
}

func Test_Box_BoundingBox(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := Box(store, geom.Vec{X: -1, Y: -1, Z: -1}, geom.Vec{X: 1, Y: 1, Z: 1})

	box, err := store.BoundingBox(solid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if box.Min != (geom.Vec{X: -1, Y: -1, Z: -1}) {
		t.Errorf("unexpected min: %v", box.Min)
	}
	if box.Max != (geom.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("unexpected max: %v", box.Max)
	}
}
