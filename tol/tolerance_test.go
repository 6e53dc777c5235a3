package tol

import "testing"

func TestDefault(t *testing.T) {
	b := Default()
	if b.Coincidence != 1e-7 {
		t.Errorf("expected coincidence 1e-7, got %v", b.Coincidence)
	}
	if b.Angular <= 0 {
		t.Errorf("expected positive angular tolerance, got %v", b.Angular)
	}
}

func TestOptions(t *testing.T) {
	b := New(WithCoincidence(1e-3), WithAngular(0.1))
	if b.Coincidence != 1e-3 {
		t.Errorf("expected coincidence 1e-3, got %v", b.Coincidence)
	}
	if b.Angular != 0.1 {
		t.Errorf("expected angular 0.1, got %v", b.Angular)
	}
}

func TestCoincidentAndAligned(t *testing.T) {
	b := Default()
	if !b.Coincident(1.0, 1.0+1e-8) {
		t.Errorf("expected coincident values to compare equal")
	}
	if b.Coincident(1.0, 1.1) {
		t.Errorf("expected distant values to compare unequal")
	}
	if !b.Aligned(0.001) {
		t.Errorf("expected small angle to be aligned")
	}
	if b.Aligned(1.0) {
		t.Errorf("expected large angle to not be aligned")
	}
}
