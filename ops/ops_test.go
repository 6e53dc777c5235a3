package ops

import (
	"testing"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/primitives"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

func rectProfile() Profile {
	return Profile{
		Plane: geom.Plane{Origin: geom.Vec{}, Normal: geom.Vec{Z: 1}},
		XAxis: geom.Vec{X: 1},
		Outer: []geom.Vec2{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
	}
}

func Test_Extrude_RejectsNonPositiveDepth(t *testing.T) {
	store := topo.NewStore(tol.Default())
	_, err := Extrude(store, ExtrudeParams{Profile: rectProfile(), Depth: 0})
	if err != ErrInvalidDepth {
		t.Fatalf("expected ErrInvalidDepth, got %v", err)
	}
}

func Test_Extrude_RectangleProducesBoxLikeSolid(t *testing.T) {
	store := topo.NewStore(tol.Default())
	result, err := Extrude(store, ExtrudeParams{Profile: rectProfile(), Depth: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	faces := store.SolidFaces(result.Solid)
	if len(faces) != 6 {
		t.Errorf("expected 6 faces (2 caps + 4 sides), got %d", len(faces))
	}

	var capPos, capNeg, sides int
	for _, fh := range faces {
		face, _ := store.Face(fh)
		switch face.Role.Kind {
		case topo.RoleEndCapPositive:
			capPos++
		case topo.RoleEndCapNegative:
			capNeg++
		case topo.RoleSideFace:
			sides++
		}
	}
	if capPos != 1 || capNeg != 1 || sides != 4 {
		t.Errorf("expected 1 positive cap, 1 negative cap, 4 side faces; got %d/%d/%d", capPos, capNeg, sides)
	}
}

func Test_Extrude_SymmetricStraddlesPlane(t *testing.T) {
	store := topo.NewStore(tol.Default())
	result, err := Extrude(store, ExtrudeParams{Profile: rectProfile(), Depth: 2, Symmetric: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	box, err := store.BoundingBox(result.Solid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if box.Min.Z != -1 || box.Max.Z != 1 {
		t.Errorf("expected symmetric extrusion to straddle z=0, got min %v max %v", box.Min, box.Max)
	}
}

func Test_Revolve_FullRevolutionTagsAllSideFaces(t *testing.T) {
	store := topo.NewStore(tol.Default())
	profile := Profile{
		Outer: []geom.Vec2{
			{X: 1, Y: 0},
			{X: 2, Y: 0},
			{X: 2, Y: 1},
			{X: 1, Y: 1},
		},
	}
	result, err := Revolve(store, RevolveParams{
		Profile:    profile,
		AxisOrigin: geom.Vec{},
		AxisDir:    geom.Vec{Z: 1},
		TotalAngle: 2 * 3.14159265358979,
		Segments:   8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	faces := store.SolidFaces(result.Solid)
	for _, fh := range faces {
		face, _ := store.Face(fh)
		if face.Role.Kind != topo.RoleSideFace {
			t.Errorf("expected every face of a full revolution to be a SideFace, got %v", face.Role.Kind)
		}
	}
}

func Test_Revolve_PartialTagsStartAndEnd(t *testing.T) {
	store := topo.NewStore(tol.Default())
	profile := Profile{
		Outer: []geom.Vec2{
			{X: 1, Y: 0},
			{X: 2, Y: 0},
			{X: 2, Y: 1},
			{X: 1, Y: 1},
		},
	}
	result, err := Revolve(store, RevolveParams{
		Profile:    profile,
		AxisOrigin: geom.Vec{},
		AxisDir:    geom.Vec{Z: 1},
		TotalAngle: 1.5707963267948966, // pi/2
		Segments:   4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var starts, ends int
	for _, fh := range store.SolidFaces(result.Solid) {
		face, _ := store.Face(fh)
		switch face.Role.Kind {
		case topo.RoleRevStartFace:
			starts++
		case topo.RoleRevEndFace:
			ends++
		}
	}
	if starts != 1 || ends != 1 {
		t.Errorf("expected exactly one start and one end face, got %d/%d", starts, ends)
	}
}

func Test_Fillet_RejectsNonPositiveRadius(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	_, err := Fillet(store, solid, nil, 0)
	if err != ErrInvalidRadius {
		t.Fatalf("expected ErrInvalidRadius, got %v", err)
	}
}

func Test_Fillet_AddsOneFacePerEdge(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	before := len(store.SolidFaces(solid))

	edges := store.Edges()
	if len(edges) == 0 {
		t.Fatalf("expected box to have edges")
	}
	result, err := Fillet(store, solid, edges[:1], 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := len(store.SolidFaces(result.Solid))
	if after != before+1 {
		t.Errorf("expected exactly one new face from filleting one edge, got %d -> %d", before, after)
	}
}

func Test_Shell_RejectsNonPositiveThickness(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	_, err := Shell(store, solid, nil, 0)
	if err != ErrInvalidThickness {
		t.Fatalf("expected ErrInvalidThickness, got %v", err)
	}
}

func Test_Shell_OpensRemovedFaceAndKeepsRest(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	faces := store.SolidFaces(solid)

	result, err := Shell(store, solid, faces[:1], 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5 retained outer faces + 5 inner offset faces + at least 4 bridge
	// faces around the opening.
	got := len(store.SolidFaces(result.Solid))
	if got < 5+5+4 {
		t.Errorf("expected at least 14 faces after shelling one face off a box, got %d", got)
	}
}

func Test_Shell_FailsWhenFaceNotInSolid(t *testing.T) {
	store := topo.NewStore(tol.Default())
	solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})

	const bogusFace topo.FaceHandle = 999999
	if _, err := Shell(store, solid, []topo.FaceHandle{bogusFace}, 0.1); err != ErrShellFailed {
		t.Errorf("expected ErrShellFailed for a face handle absent from the solid, got %v", err)
	}
}
