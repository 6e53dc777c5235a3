//-----------------------------------------------------------------------------
/*

3D vector type shared by every geometry and topology entity in the kernel.

Modeled on ajsb85-sdfx/vec/v3.Vec: a plain value type with X, Y, Z fields
so it can be used as a map key and compared by value.

*/
//-----------------------------------------------------------------------------

package geom

import "math"

// Vec is a 3D vector / point.
type Vec struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v x w.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Length2 returns the squared Euclidean norm of v.
func (v Vec) Length2() float64 { return v.Dot(v) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1.0 / l)
}

// Lerp linearly interpolates between v and w at parameter t in [0,1].
func (v Vec) Lerp(w Vec, t float64) Vec {
	return v.Add(w.Sub(v).Scale(t))
}

// Equals reports whether v and w are within tolerance of each other.
func (v Vec) Equals(w Vec, tolerance float64) bool {
	return v.Sub(w).Length2() <= tolerance*tolerance
}

// MinComponent returns the component-wise minimum of v and w.
func MinComponent(v, w Vec) Vec {
	return Vec{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

// MaxComponent returns the component-wise maximum of v and w.
func MaxComponent(v, w Vec) Vec {
	return Vec{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

// Basis builds an orthonormal (xAxis, yAxis) basis for the plane whose
// normal is n. xHint, if non-zero and not parallel to n, is projected into
// the plane and used as the preferred x-axis.
func Basis(n Vec, xHint Vec) (xAxis, yAxis Vec) {
	n = n.Normalize()
	x := xHint.Sub(n.Scale(xHint.Dot(n)))
	if x.Length2() < 1e-20 {
		// xHint was parallel (or zero); pick an arbitrary perpendicular.
		ref := Vec{X: 1, Y: 0, Z: 0}
		if math.Abs(n.X) > 0.9 {
			ref = Vec{X: 0, Y: 1, Z: 0}
		}
		x = ref.Sub(n.Scale(ref.Dot(n)))
	}
	x = x.Normalize()
	y := n.Cross(x).Normalize()
	return x, y
}
