package topo

import (
	"testing"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/tol"
)

func Test_HandleStability(t *testing.T) {
	s := NewStore(tol.Default())
	h := s.AddVertex(geom.Vec{X: 1, Y: 2, Z: 3})
	v, ok := s.Vertex(h)
	if !ok {
		t.Fatalf("expected vertex to be found")
	}
	if v.Point != (geom.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("unexpected point: %v", v.Point)
	}

	s.AddVertex(geom.Vec{})
	s.AddVertex(geom.Vec{})

	// original handle must still resolve to the same entity
	v2, ok := s.Vertex(h)
	if !ok || v2 != v {
		t.Errorf("expected handle to remain stable across further insertions")
	}
}

func Test_TwinConsistency(t *testing.T) {
	s := NewStore(tol.Default())
	v1 := s.AddVertex(geom.Vec{X: 0})
	v2 := s.AddVertex(geom.Vec{X: 1})
	line := geom.NewLineCurve(geom.Line{Origin: geom.Vec{X: 0}, Dir: geom.Vec{X: 1}})
	_, heFwd, heRev := s.AddEdge(line, v1, v2)

	fwd, _ := s.HalfEdge(heFwd)
	rev, _ := s.HalfEdge(heRev)

	if fwd.Twin != heRev || rev.Twin != heFwd {
		t.Errorf("expected twin(twin(h)) == h")
	}
	if fwd.Start != rev.End || fwd.End != rev.Start {
		t.Errorf("expected twin endpoints to be swapped")
	}
	if fwd.Edge != rev.Edge {
		t.Errorf("expected twin half-edges to reference the same edge")
	}
}

func Test_AbsentHandle(t *testing.T) {
	s := NewStore(tol.Default())
	if _, ok := s.Vertex(VertexHandle(9999)); ok {
		t.Errorf("expected absent handle to report not-found")
	}
}

func Test_RemoveVertex(t *testing.T) {
	s := NewStore(tol.Default())
	h := s.AddVertex(geom.Vec{})
	s.RemoveVertex(h)
	if _, ok := s.Vertex(h); ok {
		t.Errorf("expected removed vertex to be absent")
	}
}
