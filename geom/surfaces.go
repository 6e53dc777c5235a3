//-----------------------------------------------------------------------------
/*

Analytic surfaces

Each surface exposes evaluation at parameters (u,v), closest-point
projection, distance to a point, and a well-defined outward normal.
Surface is the tagged union embedded in topo.Face.

*/
//-----------------------------------------------------------------------------

package geom

import "math"

// SurfaceKind discriminates the analytic surface carried by a Surface value.
type SurfaceKind int

// Surface kinds.
const (
	SurfaceKindPlane SurfaceKind = iota
	SurfaceKindCylinder
	SurfaceKindSphere
	SurfaceKindCone
	SurfaceKindTorus
	SurfaceKindNURBS
)

// Plane is an infinite plane given by an origin and a unit outward normal.
type Plane struct {
	Origin Vec
	Normal Vec // unit
}

// Cylinder is an infinite circular cylinder about an axis.
type Cylinder struct {
	Origin Vec
	Axis   Vec // unit
	Radius float64
}

// Sphere is centered at Center with the given Radius.
type Sphere struct {
	Center Vec
	Radius float64
}

// Cone is a right circular cone with apex at Origin, opening along Axis.
type Cone struct {
	Origin    Vec
	Axis      Vec // unit
	Radius    float64 // radius at one unit along axis
	SemiAngle float64 // half-angle, radians
}

// Torus revolves a tube of MinorRadius about Axis at MajorRadius from
// Center.
type Torus struct {
	Center      Vec
	Axis        Vec // unit
	MajorRadius float64
	MinorRadius float64
}

// NURBSSurface is a tensor-product rational B-spline surface.
type NURBSSurface struct {
	ControlPoints [][]Vec
	Weights       [][]float64
	UKnots        []float64
	VKnots        []float64
	UDegree       int
	VDegree       int
}

// Surface is a tagged union over the analytic surface kinds.
type Surface struct {
	Kind     SurfaceKind
	Plane    *Plane
	Cylinder *Cylinder
	Sphere   *Sphere
	Cone     *Cone
	Torus    *Torus
	NURBS    *NURBSSurface
}

// NewPlaneSurface wraps a Plane as a Surface.
func NewPlaneSurface(p Plane) Surface { return Surface{Kind: SurfaceKindPlane, Plane: &p} }

// NewCylinderSurface wraps a Cylinder as a Surface.
func NewCylinderSurface(c Cylinder) Surface { return Surface{Kind: SurfaceKindCylinder, Cylinder: &c} }

// NewSphereSurface wraps a Sphere as a Surface.
func NewSphereSurface(s Sphere) Surface { return Surface{Kind: SurfaceKindSphere, Sphere: &s} }

// NewConeSurface wraps a Cone as a Surface.
func NewConeSurface(c Cone) Surface { return Surface{Kind: SurfaceKindCone, Cone: &c} }

// NewTorusSurface wraps a Torus as a Surface.
func NewTorusSurface(t Torus) Surface { return Surface{Kind: SurfaceKindTorus, Torus: &t} }

// Evaluate returns the 3D point at surface parameters (u, v).
//
// Plane: u, v are in-plane coordinates from an arbitrary orthonormal basis.
// Cylinder: u is angle about Axis, v is distance along Axis.
// Sphere: u is longitude, v is latitude from the equator (±pi/2 at the poles).
// Cone: u is angle about Axis, v is distance along Axis.
// Torus: u is angle about the major circle, v is angle about the tube.
func (s Surface) Evaluate(u, v float64) Vec {
	switch s.Kind {
	case SurfaceKindPlane:
		xAxis, yAxis := Basis(s.Plane.Normal, Vec{X: 1})
		return s.Plane.Origin.Add(xAxis.Scale(u)).Add(yAxis.Scale(v))
	case SurfaceKindCylinder:
		xAxis, yAxis := Basis(s.Cylinder.Axis, Vec{X: 1})
		radial := xAxis.Scale(math.Cos(u) * s.Cylinder.Radius).Add(yAxis.Scale(math.Sin(u) * s.Cylinder.Radius))
		return s.Cylinder.Origin.Add(radial).Add(s.Cylinder.Axis.Scale(v))
	case SurfaceKindSphere:
		x := s.Sphere.Radius * math.Cos(v) * math.Cos(u)
		y := s.Sphere.Radius * math.Cos(v) * math.Sin(u)
		z := s.Sphere.Radius * math.Sin(v)
		return s.Sphere.Center.Add(Vec{X: x, Y: y, Z: z})
	case SurfaceKindCone:
		xAxis, yAxis := Basis(s.Cone.Axis, Vec{X: 1})
		r := s.Cone.Radius * v
		radial := xAxis.Scale(math.Cos(u) * r).Add(yAxis.Scale(math.Sin(u) * r))
		return s.Cone.Origin.Add(radial).Add(s.Cone.Axis.Scale(v))
	case SurfaceKindTorus:
		xAxis, yAxis := Basis(s.Torus.Axis, Vec{X: 1})
		ringCenter := s.Torus.Center.
			Add(xAxis.Scale(math.Cos(u) * s.Torus.MajorRadius)).
			Add(yAxis.Scale(math.Sin(u) * s.Torus.MajorRadius))
		radialDir := xAxis.Scale(math.Cos(u)).Add(yAxis.Scale(math.Sin(u)))
		return ringCenter.
			Add(radialDir.Scale(s.Torus.MinorRadius * math.Cos(v))).
			Add(s.Torus.Axis.Scale(s.Torus.MinorRadius * math.Sin(v)))
	case SurfaceKindNURBS:
		return evaluateNURBSSurface(s.NURBS, u, v)
	default:
		return Vec{}
	}
}

// Normal returns the outward unit normal at surface parameters (u, v).
func (s Surface) Normal(u, v float64) Vec {
	switch s.Kind {
	case SurfaceKindPlane:
		return s.Plane.Normal
	case SurfaceKindCylinder:
		xAxis, yAxis := Basis(s.Cylinder.Axis, Vec{X: 1})
		return xAxis.Scale(math.Cos(u)).Add(yAxis.Scale(math.Sin(u))).Normalize()
	case SurfaceKindSphere:
		return s.Evaluate(u, v).Sub(s.Sphere.Center).Normalize()
	case SurfaceKindCone:
		xAxis, yAxis := Basis(s.Cone.Axis, Vec{X: 1})
		radial := xAxis.Scale(math.Cos(u)).Add(yAxis.Scale(math.Sin(u)))
		slope := math.Tan(s.Cone.SemiAngle)
		n := radial.Sub(s.Cone.Axis.Scale(slope))
		return n.Normalize()
	case SurfaceKindTorus:
		center := s.Evaluate(u, 0).Sub(s.Torus.Axis.Scale(0))
		xAxis, yAxis := Basis(s.Torus.Axis, Vec{X: 1})
		ringCenter := s.Torus.Center.
			Add(xAxis.Scale(math.Cos(u) * s.Torus.MajorRadius)).
			Add(yAxis.Scale(math.Sin(u) * s.Torus.MajorRadius))
		_ = center
		return s.Evaluate(u, v).Sub(ringCenter).Normalize()
	default:
		const h = 1e-5
		du := s.Evaluate(u+h, v).Sub(s.Evaluate(u-h, v))
		dv := s.Evaluate(u, v+h).Sub(s.Evaluate(u, v-h))
		return du.Cross(dv).Normalize()
	}
}

// Distance returns the distance from p to the surface, computed in closed
// form for planes, cylinders and spheres; other kinds measure the distance
// to ClosestPoint's projection.
func (s Surface) Distance(p Vec) float64 {
	switch s.Kind {
	case SurfaceKindPlane:
		return math.Abs(p.Sub(s.Plane.Origin).Dot(s.Plane.Normal))
	case SurfaceKindCylinder:
		local := p.Sub(s.Cylinder.Origin)
		axial := local.Dot(s.Cylinder.Axis)
		radial := local.Sub(s.Cylinder.Axis.Scale(axial))
		return math.Abs(radial.Length() - s.Cylinder.Radius)
	case SurfaceKindSphere:
		return math.Abs(p.Sub(s.Sphere.Center).Length() - s.Sphere.Radius)
	default:
		u, v, closest := s.ClosestPoint(p)
		_ = u
		_ = v
		return p.Sub(closest).Length()
	}
}

// ClosestPoint projects p onto the surface, returning its parameters and
// the projected point. Planes, cylinders and spheres use closed-form
// projection; every other kind (cone, torus, NURBS) falls back to a coarse
// grid search.
func (s Surface) ClosestPoint(p Vec) (u, v float64, point Vec) {
	switch s.Kind {
	case SurfaceKindPlane:
		xAxis, yAxis := Basis(s.Plane.Normal, Vec{X: 1})
		local := p.Sub(s.Plane.Origin)
		u = local.Dot(xAxis)
		v = local.Dot(yAxis)
		point = s.Plane.Origin.Add(xAxis.Scale(u)).Add(yAxis.Scale(v))
		return
	case SurfaceKindCylinder:
		xAxis, yAxis := Basis(s.Cylinder.Axis, Vec{X: 1})
		local := p.Sub(s.Cylinder.Origin)
		axial := local.Dot(s.Cylinder.Axis)
		radial := local.Sub(s.Cylinder.Axis.Scale(axial))
		u = math.Atan2(radial.Dot(yAxis), radial.Dot(xAxis))
		v = axial
		point = s.Evaluate(u, v)
		return
	case SurfaceKindSphere:
		dir := p.Sub(s.Sphere.Center).Normalize()
		v = math.Asin(clamp(dir.Z, -1, 1))
		u = math.Atan2(dir.Y, dir.X)
		point = s.Evaluate(u, v)
		return
	default:
		best := math.MaxFloat64
		const n = 48
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				uu := 2 * math.Pi * float64(i) / n
				vv := 2 * math.Pi * float64(j) / n
				pt := s.Evaluate(uu, vv)
				d := p.Sub(pt).Length2()
				if d < best {
					best = d
					u, v, point = uu, vv, pt
				}
			}
		}
		return
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func evaluateNURBSSurface(s *NURBSSurface, u, v float64) Vec {
	if len(s.ControlPoints) == 0 {
		return Vec{}
	}
	nu := len(s.ControlPoints)
	ku := findSpan(s.UKnots, s.UDegree, nu, u)
	bu := basisFuncs(s.UKnots, s.UDegree, ku, u)

	var num Vec
	den := 0.0
	for i := 0; i <= s.UDegree; i++ {
		ui := ku - s.UDegree + i
		if ui < 0 || ui >= nu {
			continue
		}
		row := s.ControlPoints[ui]
		nv := len(row)
		kv := findSpan(s.VKnots, s.VDegree, nv, v)
		bv := basisFuncs(s.VKnots, s.VDegree, kv, v)
		for j := 0; j <= s.VDegree; j++ {
			vi := kv - s.VDegree + j
			if vi < 0 || vi >= nv {
				continue
			}
			w := 1.0
			if ui < len(s.Weights) && vi < len(s.Weights[ui]) {
				w = s.Weights[ui][vi]
			}
			weight := bu[i] * bv[j] * w
			num = num.Add(row[vi].Scale(weight))
			den += weight
		}
	}
	if den == 0 {
		return Vec{}
	}
	return num.Scale(1 / den)
}
