package geom

import "math"

// Vec2 is a 2D vector / point, used for sketch profiles and surface
// parameter coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the 2D scalar cross product (z-component of the 3D cross).
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Equals reports whether v and w are within tolerance of each other.
func (v Vec2) Equals(w Vec2, tolerance float64) bool {
	d := v.Sub(w)
	return d.Dot(d) <= tolerance*tolerance
}

// To3 maps a 2D point into 3D using the plane basis (origin, xAxis, yAxis).
func (v Vec2) To3(origin, xAxis, yAxis Vec) Vec {
	return origin.Add(xAxis.Scale(v.X)).Add(yAxis.Scale(v.Y))
}
