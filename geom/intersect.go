//-----------------------------------------------------------------------------
/*

Surface-surface intersection

Implements the three cases the boolean engine and face-splitter consume:
plane-plane, plane-cylinder, plane-sphere. Higher-order surface pairs are
out of scope (see spec.md §4.2).

*/
//-----------------------------------------------------------------------------

package geom

import "math"

// IntersectionKind tags the shape of a surface-surface intersection result.
type IntersectionKind int

// Intersection kinds.
const (
	IntersectionNone IntersectionKind = iota
	IntersectionCoincident
	IntersectionPoint
	IntersectionCurve
	IntersectionTwoCurves
)

// Intersection is the tagged union result of intersecting two surfaces.
type Intersection struct {
	Kind    IntersectionKind
	Point   Vec
	Curve   Curve
	Curve2  Curve // only valid when Kind == IntersectionTwoCurves
}

// IntersectPlanePlane intersects two planes.
//
// Normals parallel within the angular tolerance produce Coincident (if the
// planes are within the coincidence tolerance of each other) or None.
// Otherwise the result is a Line whose direction is n1 x n2 and whose
// origin solves both plane equations in the span of n1 and n2.
func IntersectPlanePlane(a, b Plane, tolerance float64, angular float64) Intersection {
	n1 := a.Normal.Normalize()
	n2 := b.Normal.Normalize()
	cross := n1.Cross(n2)
	sinAngle := cross.Length()

	if sinAngle <= angular {
		// parallel: coincident iff point-to-plane distance is within tolerance
		d := math.Abs(b.Origin.Sub(a.Origin).Dot(n1))
		if d < tolerance {
			return Intersection{Kind: IntersectionCoincident}
		}
		return Intersection{Kind: IntersectionNone}
	}

	dir := cross.Normalize()

	// Solve for a point on the line: it lies in the span of n1 and n2
	// through the world origin, i.e. p = s*n1 + t*n2 with
	// n1.p = n1.a.Origin, n2.p = n2.b.Origin.
	d1 := n1.Dot(a.Origin)
	d2 := n2.Dot(b.Origin)
	n1n2 := n1.Dot(n2)
	denom := 1 - n1n2*n1n2
	s := (d1 - d2*n1n2) / denom
	t := (d2 - d1*n1n2) / denom
	origin := n1.Scale(s).Add(n2.Scale(t))

	return Intersection{
		Kind:  IntersectionCurve,
		Curve: NewLineCurve(Line{Origin: origin, Dir: dir}),
	}
}

// IntersectPlaneCylinder intersects a plane and an infinite cylinder.
//
// Let theta be the angle between the plane normal and the cylinder axis.
// sin(theta) < angular -> a circle. cos(theta) < angular -> zero, one, or
// two parallel lines depending on the axis-to-plane distance versus the
// cylinder radius. Otherwise an ellipse.
func IntersectPlaneCylinder(pl Plane, cyl Cylinder, tolerance, angular float64) Intersection {
	n := pl.Normal.Normalize()
	axis := cyl.Axis.Normalize()
	cosTheta := n.Dot(axis)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	if sinTheta < angular {
		// plane perpendicular to axis: circle
		t := pl.Origin.Sub(cyl.Origin).Dot(n) / axis.Dot(n)
		center := cyl.Origin.Add(axis.Scale(t))
		xAxis, _ := Basis(n, Vec{X: 1})
		return Intersection{
			Kind: IntersectionCurve,
			Curve: NewCircleCurve(Circle{
				Center: center, Normal: n, XAxis: xAxis, Radius: cyl.Radius,
			}),
		}
	}

	if math.Abs(cosTheta) < angular {
		// plane parallel to axis: zero, one, or two lines
		local := pl.Origin.Sub(cyl.Origin)
		// distance from axis to the plane, measured in the plane's normal direction
		// project the axis origin onto the plane to find the offset.
		d := local.Dot(n)
		d = math.Abs(d)
		r := cyl.Radius
		if d > r+tolerance {
			return Intersection{Kind: IntersectionNone}
		}
		// direction of the lines is the cylinder axis
		// offset direction within the plane, perpendicular to axis
		perp := n.Scale(local.Dot(n) / n.Dot(n))
		basePoint := cyl.Origin.Add(perp)
		if math.Abs(d-r) < tolerance {
			return Intersection{
				Kind:  IntersectionCurve,
				Curve: NewLineCurve(Line{Origin: basePoint, Dir: axis}),
			}
		}
		offset := math.Sqrt(r*r - d*d)
		// offset direction orthogonal to both axis and n
		side := axis.Cross(n).Normalize()
		l1 := Line{Origin: basePoint.Add(side.Scale(offset)), Dir: axis}
		l2 := Line{Origin: basePoint.Sub(side.Scale(offset)), Dir: axis}
		return Intersection{
			Kind:   IntersectionTwoCurves,
			Curve:  NewLineCurve(l1),
			Curve2: NewLineCurve(l2),
		}
	}

	// general case: ellipse, minor radius r, major radius r/cos(theta)
	t := pl.Origin.Sub(cyl.Origin).Dot(n) / axis.Dot(n)
	center := cyl.Origin.Add(axis.Scale(t))
	majorAxis := axis.Cross(n).Cross(n).Normalize() // axis projected into plane
	if majorAxis.Length2() < 1e-20 {
		majorAxis, _ = Basis(n, axis)
	}
	return Intersection{
		Kind: IntersectionCurve,
		Curve: NewEllipseCurve(Ellipse{
			Center:      center,
			Normal:      n,
			MajorAxis:   majorAxis,
			MajorRadius: cyl.Radius / math.Abs(cosTheta),
			MinorRadius: cyl.Radius,
		}),
	}
}

// IntersectPlaneSphere intersects a plane and a sphere.
//
// |s| > r+tolerance -> none. ||s|-r| < tolerance -> a tangent point.
// Otherwise a circle of radius sqrt(r^2 - s^2) centered at
// sphere.Center - n*s, where s is the signed distance from the sphere
// center to the plane.
func IntersectPlaneSphere(pl Plane, sph Sphere, tolerance float64) Intersection {
	n := pl.Normal.Normalize()
	s := sph.Center.Sub(pl.Origin).Dot(n)
	r := sph.Radius

	if math.Abs(s) > r+tolerance {
		return Intersection{Kind: IntersectionNone}
	}
	if math.Abs(math.Abs(s)-r) < tolerance {
		point := sph.Center.Sub(n.Scale(s))
		return Intersection{Kind: IntersectionPoint, Point: point}
	}
	radius := math.Sqrt(math.Max(0, r*r-s*s))
	center := sph.Center.Sub(n.Scale(s))
	xAxis, _ := Basis(n, Vec{X: 1})
	return Intersection{
		Kind:  IntersectionCurve,
		Curve: NewCircleCurve(Circle{Center: center, Normal: n, XAxis: xAxis, Radius: radius}),
	}
}
