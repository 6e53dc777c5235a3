package geom

// Box3 is an axis-aligned bounding box, given by two opposite corners with
// Min <= Max componentwise.
type Box3 struct {
	Min, Max Vec
}

// NewBox3 builds a Box3 from two arbitrary corners, normalizing min/max.
func NewBox3(a, b Vec) Box3 {
	return Box3{Min: MinComponent(a, b), Max: MaxComponent(a, b)}
}

// Empty reports whether the box has no extent (used as a zero-value sentinel
// during incremental accumulation).
func (b Box3) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// EmptyBox3 returns a box with inverted bounds, suitable as the seed for
// Extend accumulation.
func EmptyBox3() Box3 {
	const inf = 1e300
	return Box3{Min: Vec{X: inf, Y: inf, Z: inf}, Max: Vec{X: -inf, Y: -inf, Z: -inf}}
}

// Extend grows b to also contain p.
func (b Box3) Extend(p Vec) Box3 {
	return Box3{Min: MinComponent(b.Min, p), Max: MaxComponent(b.Max, p)}
}

// Union returns the smallest box containing both b and o.
func (b Box3) Union(o Box3) Box3 {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box3{Min: MinComponent(b.Min, o.Min), Max: MaxComponent(b.Max, o.Max)}
}

// Center returns the box's midpoint.
func (b Box3) Center() Vec {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box's extent along each axis.
func (b Box3) Size() Vec {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies within the box, expanded by tolerance on
// every side.
func (b Box3) Contains(p Vec, tolerance float64) bool {
	return p.X >= b.Min.X-tolerance && p.X <= b.Max.X+tolerance &&
		p.Y >= b.Min.Y-tolerance && p.Y <= b.Max.Y+tolerance &&
		p.Z >= b.Min.Z-tolerance && p.Z <= b.Max.Z+tolerance
}

// Overlaps reports whether b and o intersect, expanded by tolerance.
func (b Box3) Overlaps(o Box3, tolerance float64) bool {
	return b.Min.X-tolerance <= o.Max.X && b.Max.X+tolerance >= o.Min.X &&
		b.Min.Y-tolerance <= o.Max.Y && b.Max.Y+tolerance >= o.Min.Y &&
		b.Min.Z-tolerance <= o.Max.Z && b.Max.Z+tolerance >= o.Min.Z
}

// Intersection returns the overlapping region of b and o. The caller should
// check Empty() on the result.
func (b Box3) Intersection(o Box3) Box3 {
	return Box3{Min: MaxComponent(b.Min, o.Min), Max: MinComponent(b.Max, o.Max)}
}

// Volume returns the box's volume (zero or negative if degenerate/empty).
func (b Box3) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Corners returns the 8 corner points of the box in a fixed, deterministic
// order: the binary counting order over (x,y,z) with Min=0, Max=1.
func (b Box3) Corners() [8]Vec {
	var c [8]Vec
	for i := 0; i < 8; i++ {
		x, y, z := b.Min.X, b.Min.Y, b.Min.Z
		if i&1 != 0 {
			x = b.Max.X
		}
		if i&2 != 0 {
			y = b.Max.Y
		}
		if i&4 != 0 {
			z = b.Max.Z
		}
		c[i] = Vec{X: x, Y: y, Z: z}
	}
	return c
}
