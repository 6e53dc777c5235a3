//-----------------------------------------------------------------------------
/*

Planar profiles

A Profile is the 2D input to Extrude and Revolve: an outer loop plus
optional hole loops, each a closed polygon in the profile's own plane.
Plane carries the mapping from the profile's 2D coordinates into 3D.

*/
//-----------------------------------------------------------------------------

package ops

import "github.com/sequoia-hope/waffle-iron/geom"

// Profile is a planar sketch outline: an outer boundary plus optional
// holes, expressed in 2D coordinates of its own plane.
type Profile struct {
	Plane geom.Plane
	XAxis geom.Vec // unit in-plane x direction; y = Plane.Normal x XAxis
	Outer []geom.Vec2
	Inner [][]geom.Vec2
}

// basis returns the profile's orthonormal in-plane axes, deriving a default
// XAxis via geom.Basis when none was supplied.
func (p Profile) basis() (xAxis, yAxis geom.Vec) {
	hint := p.XAxis
	if hint == (geom.Vec{}) {
		hint = geom.Vec{X: 1}
	}
	xAxis, yAxis = geom.Basis(p.Plane.Normal, hint)
	return
}

// to3 maps a 2D profile-local point into 3D world space.
func (p Profile) to3(pt geom.Vec2) geom.Vec {
	xAxis, yAxis := p.basis()
	return p.Plane.Origin.Add(xAxis.Scale(pt.X)).Add(yAxis.Scale(pt.Y))
}

// outerPoints3 returns the outer loop mapped into 3D.
func (p Profile) outerPoints3() []geom.Vec {
	out := make([]geom.Vec, len(p.Outer))
	for i, pt := range p.Outer {
		out[i] = p.to3(pt)
	}
	return out
}

// innerPoints3 returns the hole loops mapped into 3D.
func (p Profile) innerPoints3() [][]geom.Vec {
	out := make([][]geom.Vec, len(p.Inner))
	for i, loop := range p.Inner {
		pts := make([]geom.Vec, len(loop))
		for j, pt := range loop {
			pts[j] = p.to3(pt)
		}
		out[i] = pts
	}
	return out
}
