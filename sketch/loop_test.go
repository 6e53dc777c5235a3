package sketch

import (
	"math"
	"testing"

	"github.com/sequoia-hope/waffle-iron/geom"
)

func Test_Loop_LineChain(t *testing.T) {
	positions := map[EntityID]geom.Vec2{
		0: {X: 0, Y: 0},
		1: {X: 1, Y: 0},
		2: {X: 1, Y: 1},
		3: {X: 0, Y: 1},
	}
	entities := square([4]EntityID{0, 1, 2, 3})
	byID := map[EntityID]Entity{}
	for _, e := range entities {
		byID[e.ID] = e
	}
	profile := ClosedProfile{EntityIDs: []EntityID{100, 101, 102, 103}, IsOuter: true}

	loop := Loop(profile, byID, positions, 0)
	if len(loop) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(loop))
	}
	if loop[0] != (geom.Vec2{X: 0, Y: 0}) {
		t.Fatalf("expected first vertex at origin, got %v", loop[0])
	}
}

func Test_Loop_StandaloneCircle(t *testing.T) {
	positions := map[EntityID]geom.Vec2{0: {X: 2, Y: 3}}
	circle := NewCircle(1, 0, 5)
	byID := map[EntityID]Entity{1: circle}
	profile := ClosedProfile{EntityIDs: []EntityID{1}, IsOuter: true}

	loop := Loop(profile, byID, positions, 8)
	if len(loop) != 32 {
		t.Fatalf("expected 32 sampled points (8*4), got %d", len(loop))
	}
	for _, p := range loop {
		got := p.Sub(positions[0]).Length()
		if math.Abs(got-5) > 1e-9 {
			t.Fatalf("expected all samples at radius 5 from center, got %v", got)
		}
	}
}

func Test_SameEntitySet(t *testing.T) {
	a := []EntityID{1, 2, 3}
	b := []EntityID{3, 1, 2}
	c := []EntityID{1, 2, 4}

	if !SameEntitySet(a, b) {
		t.Fatalf("expected permutations to be recognized as the same set")
	}
	if SameEntitySet(a, c) {
		t.Fatalf("expected differing sets to be reported as different")
	}
}
