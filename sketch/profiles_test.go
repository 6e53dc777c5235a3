package sketch

import (
	"testing"

	"github.com/sequoia-hope/waffle-iron/geom"
)

func square(ids [4]EntityID) []Entity {
	return []Entity{
		NewLine(100, ids[0], ids[1]),
		NewLine(101, ids[1], ids[2]),
		NewLine(102, ids[2], ids[3]),
		NewLine(103, ids[3], ids[0]),
	}
}

// A single closed loop's directed-edge graph yields two minimal faces: the
// bounded CCW interior and its CW complement (the unbounded exterior, which
// a real sketch with only one loop has no companion outer face to be
// nested inside, so the removal pass never triggers: the largest-area
// profile by strict-greater comparison is always the first-walked one,
// which for a CCW-wound input is the outer face).
func Test_ExtractProfiles_Square_CcwAndCwFaces(t *testing.T) {
	positions := map[EntityID]geom.Vec2{
		0: {X: 0, Y: 0},
		1: {X: 1, Y: 0},
		2: {X: 1, Y: 1},
		3: {X: 0, Y: 1},
	}
	entities := square([4]EntityID{0, 1, 2, 3})

	profiles := ExtractProfiles(entities, positions)
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles (CCW interior + CW complement), got %d", len(profiles))
	}
	if !profiles[0].IsOuter {
		t.Fatalf("expected the first-walked (CCW) face to be outer")
	}
	if profiles[1].IsOuter {
		t.Fatalf("expected the second-walked (CW) face to be flagged as a hole")
	}
	for _, p := range profiles {
		if len(p.EntityIDs) != 4 {
			t.Fatalf("expected 4 entities per face, got %d", len(p.EntityIDs))
		}
	}
}

func Test_ExtractProfiles_StandaloneCircle(t *testing.T) {
	positions := map[EntityID]geom.Vec2{0: {X: 0, Y: 0}}
	entities := []Entity{NewPoint(0, 0, 0), NewCircle(1, 0, 2.5)}

	profiles := ExtractProfiles(entities, positions)
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if !profiles[0].IsOuter {
		t.Fatalf("expected a standalone circle to be outer")
	}
	if len(profiles[0].EntityIDs) != 1 || profiles[0].EntityIDs[0] != 1 {
		t.Fatalf("expected profile to reference only the circle entity, got %v", profiles[0].EntityIDs)
	}
}

func Test_ExtractProfiles_CircleAlongsideLoop(t *testing.T) {
	positions := map[EntityID]geom.Vec2{
		0: {X: 0, Y: 0},
		1: {X: 1, Y: 0},
		2: {X: 1, Y: 1},
		3: {X: 0, Y: 1},
		4: {X: 5, Y: 5},
	}
	entities := append(square([4]EntityID{0, 1, 2, 3}), NewPoint(4, 5, 5), NewCircle(104, 4, 1))

	profiles := ExtractProfiles(entities, positions)
	circleProfiles := 0
	for _, p := range profiles {
		if len(p.EntityIDs) == 1 && p.EntityIDs[0] == 104 {
			circleProfiles++
		}
	}
	if circleProfiles != 1 {
		t.Fatalf("expected exactly one profile for the standalone circle, got %d", circleProfiles)
	}
}

func Test_ExtractProfiles_ConstructionLineExcluded(t *testing.T) {
	positions := map[EntityID]geom.Vec2{
		0: {X: 0, Y: 0},
		1: {X: 1, Y: 0},
		2: {X: 1, Y: 1},
		3: {X: 0, Y: 1},
	}
	entities := square([4]EntityID{0, 1, 2, 3})
	entities = append(entities, Entity{ID: 200, Kind: EntityLine, StartID: 0, EndID: 2, Construction: true})

	profiles := ExtractProfiles(entities, positions)
	for _, p := range profiles {
		for _, id := range p.EntityIDs {
			if id == 200 {
				t.Fatalf("construction entity leaked into a profile")
			}
		}
	}
}
