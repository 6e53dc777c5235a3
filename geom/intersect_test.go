package geom

import (
	"math"
	"testing"
)

func Test_IntersectPlanePlane(t *testing.T) {
	a := Plane{Origin: Vec{}, Normal: Vec{X: 0, Y: 0, Z: 1}}
	b := Plane{Origin: Vec{}, Normal: Vec{X: 1, Y: 0, Z: 0}}
	result := IntersectPlanePlane(a, b, 1e-7, 0.017)
	if result.Kind != IntersectionCurve {
		t.Fatalf("expected a curve result, got %v", result.Kind)
	}
	if result.Curve.Kind != CurveKindLine {
		t.Fatalf("expected a line, got %v", result.Curve.Kind)
	}

	// parallel, coincident
	c := Plane{Origin: Vec{Z: 0}, Normal: Vec{Z: 1}}
	d := Plane{Origin: Vec{Z: 1e-10}, Normal: Vec{Z: 1}}
	result = IntersectPlanePlane(c, d, 1e-7, 0.017)
	if result.Kind != IntersectionCoincident {
		t.Fatalf("expected coincident, got %v", result.Kind)
	}

	// parallel, distinct
	e := Plane{Origin: Vec{Z: 5}, Normal: Vec{Z: 1}}
	result = IntersectPlanePlane(c, e, 1e-7, 0.017)
	if result.Kind != IntersectionNone {
		t.Fatalf("expected none, got %v", result.Kind)
	}
}

func Test_IntersectPlaneCylinder_Circle(t *testing.T) {
	pl := Plane{Origin: Vec{Z: 3}, Normal: Vec{Z: 1}}
	cyl := Cylinder{Origin: Vec{}, Axis: Vec{Z: 1}, Radius: 2}
	result := IntersectPlaneCylinder(pl, cyl, 1e-7, 0.017)
	if result.Kind != IntersectionCurve || result.Curve.Kind != CurveKindCircle {
		t.Fatalf("expected a circle, got %v", result.Kind)
	}
	if math.Abs(result.Curve.Circle.Radius-2) > 1e-9 {
		t.Errorf("expected radius 2, got %v", result.Curve.Circle.Radius)
	}
	if math.Abs(result.Curve.Circle.Center.Z-3) > 1e-9 {
		t.Errorf("expected center.z 3, got %v", result.Curve.Circle.Center.Z)
	}
}

func Test_IntersectPlaneCylinder_Lines(t *testing.T) {
	cyl := Cylinder{Origin: Vec{}, Axis: Vec{Z: 1}, Radius: 2}

	// plane parallel to axis, tangent
	pl := Plane{Origin: Vec{X: 2}, Normal: Vec{X: 1}}
	result := IntersectPlaneCylinder(pl, cyl, 1e-7, 0.017)
	if result.Kind != IntersectionCurve {
		t.Fatalf("expected tangent line, got %v", result.Kind)
	}

	// plane parallel to axis, two lines
	pl2 := Plane{Origin: Vec{X: 1}, Normal: Vec{X: 1}}
	result = IntersectPlaneCylinder(pl2, cyl, 1e-7, 0.017)
	if result.Kind != IntersectionTwoCurves {
		t.Fatalf("expected two lines, got %v", result.Kind)
	}

	// plane parallel to axis, beyond radius
	pl3 := Plane{Origin: Vec{X: 5}, Normal: Vec{X: 1}}
	result = IntersectPlaneCylinder(pl3, cyl, 1e-7, 0.017)
	if result.Kind != IntersectionNone {
		t.Fatalf("expected none, got %v", result.Kind)
	}
}

func Test_IntersectPlaneSphere(t *testing.T) {
	sph := Sphere{Center: Vec{}, Radius: 5}

	pl := Plane{Origin: Vec{Z: 2}, Normal: Vec{Z: 1}}
	result := IntersectPlaneSphere(pl, sph, 1e-7)
	if result.Kind != IntersectionCurve || result.Curve.Kind != CurveKindCircle {
		t.Fatalf("expected a circle, got %v", result.Kind)
	}
	expectedR := math.Sqrt(25 - 4)
	if math.Abs(result.Curve.Circle.Radius-expectedR) > 1e-9 {
		t.Errorf("expected radius %v, got %v", expectedR, result.Curve.Circle.Radius)
	}

	// tangent
	pl2 := Plane{Origin: Vec{Z: 5}, Normal: Vec{Z: 1}}
	result = IntersectPlaneSphere(pl2, sph, 1e-7)
	if result.Kind != IntersectionPoint {
		t.Fatalf("expected tangent point, got %v", result.Kind)
	}

	// beyond
	pl3 := Plane{Origin: Vec{Z: 10}, Normal: Vec{Z: 1}}
	result = IntersectPlaneSphere(pl3, sph, 1e-7)
	if result.Kind != IntersectionNone {
		t.Fatalf("expected none, got %v", result.Kind)
	}
}
