// Package tol carries the scalar tolerance policy consulted by the
// kernel's geometric comparisons. The raw "== 0" checks that remain on
// geometric values guard divisions (a zero vector length, a zero rational
// weight sum, a zero area or weight total) rather than compare geometry.
package tol

import "math"

// Bundle is a process-wide (or pluggable) tolerance policy. It is sampled
// once at engine construction and held constant for the session.
type Bundle struct {
	// Coincidence is the distance threshold below which two points are
	// considered equal.
	Coincidence float64

	// Angular is the radian threshold below which two directions are
	// considered aligned.
	Angular float64

	// EdgeGap bounds the allowed same-parameter deviation between an edge
	// curve and its adjacent face surfaces.
	EdgeGap float64

	// VertexGrowth scales Coincidence when an operation (e.g. fillet)
	// introduces new vertices near existing ones.
	VertexGrowth float64
}

// Option configures a Bundle before construction, mirroring the
// functional-options pattern used for graph construction elsewhere in the
// corpus (core.GraphOption).
type Option func(*Bundle)

// WithCoincidence overrides the coincidence distance threshold.
func WithCoincidence(d float64) Option {
	return func(b *Bundle) { b.Coincidence = d }
}

// WithAngular overrides the angular alignment threshold, in radians.
func WithAngular(a float64) Option {
	return func(b *Bundle) { b.Angular = a }
}

// WithEdgeGap overrides the same-parameter edge/surface gap threshold.
func WithEdgeGap(d float64) Option {
	return func(b *Bundle) { b.EdgeGap = d }
}

// WithVertexGrowth overrides the vertex growth factor.
func WithVertexGrowth(f float64) Option {
	return func(b *Bundle) { b.VertexGrowth = f }
}

// Default returns the kernel's default tolerance bundle: 1e-7 coincidence,
// ~0.017 rad (~1 degree) angular.
func Default() Bundle {
	return Bundle{
		Coincidence:  1e-7,
		Angular:      0.017,
		EdgeGap:      1e-5,
		VertexGrowth: 1.5,
	}
}

// New builds a Bundle starting from Default and applying opts in order.
func New(opts ...Option) Bundle {
	b := Default()
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// EqualFloat64 reports whether a and b are within the given tolerance.
func EqualFloat64(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Zero reports whether v is within tolerance of zero.
func (b Bundle) Zero(v float64) bool {
	return math.Abs(v) <= b.Coincidence
}

// Coincident reports whether two scalar distances are within the
// coincidence tolerance of each other.
func (b Bundle) Coincident(a, c float64) bool {
	return math.Abs(a-c) <= b.Coincidence
}

// Aligned reports whether an angle (radians) is within the angular
// tolerance of zero — i.e. two directions whose angle is this are
// considered parallel/aligned.
func (b Bundle) Aligned(angle float64) bool {
	return math.Abs(angle) <= b.Angular
}
