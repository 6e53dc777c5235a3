//-----------------------------------------------------------------------------
/*

Revolve: sweep a planar profile around an axis.

The profile is remapped from its sketch plane into a plane containing the
axis: a point's first sketch coordinate becomes radial distance from the
axis, its second becomes position along the axis, per spec.md §4.4.

*/
//-----------------------------------------------------------------------------

package ops

import (
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// RevolveParams carries Revolve's inputs.
type RevolveParams struct {
	Profile     Profile
	AxisOrigin  geom.Vec
	AxisDir     geom.Vec
	TotalAngle  float64 // radians; full revolution at |angle| >= 2*pi - 1e-6
	Segments    int
}

const fullRevolutionEpsilon = 1e-6

// Revolve generates Segments wedges approximating the sweep of the profile
// around (AxisOrigin, AxisDir) through TotalAngle radians.
func Revolve(store *topo.Store, p RevolveParams) (OpResult, error) {
	if p.Segments < 1 {
		return OpResult{}, ErrInvalidSegments
	}
	if math.Abs(p.TotalAngle) < 1e-9 {
		return OpResult{}, ErrInvalidAngle
	}
	if len(p.Profile.Outer) < 3 {
		return OpResult{}, ErrEmptyProfile
	}

	axis := p.AxisDir.Normalize()
	xAxis, yAxis := geom.Basis(axis, geom.Vec{X: 1})
	full := math.Abs(p.TotalAngle) >= 2*math.Pi-fullRevolutionEpsilon

	before := provenance.Capture(store, 0)

	numRings := p.Segments + 1
	if full {
		numRings = p.Segments // wraps: ring[Segments] == ring[0]
	}

	ringAt := func(theta float64) []topo.VertexHandle {
		out := make([]topo.VertexHandle, len(p.Profile.Outer))
		for i, pt := range p.Profile.Outer {
			r, z := pt.X, pt.Y
			radial := xAxis.Scale(r * math.Cos(theta)).Add(yAxis.Scale(r * math.Sin(theta)))
			world := p.AxisOrigin.Add(axis.Scale(z)).Add(radial)
			out[i] = store.AddVertex(world)
		}
		return out
	}

	rings := make([][]topo.VertexHandle, numRings)
	for k := 0; k < numRings; k++ {
		theta := p.TotalAngle * float64(k) / float64(p.Segments)
		rings[k] = ringAt(theta)
	}

	pool := newEdgePool(store)
	var sideFaces []topo.FaceHandle
	idx := 0
	segCount := p.Segments
	for k := 0; k < segCount; k++ {
		a := rings[k]
		b := rings[(k+1)%numRings]
		theta := p.TotalAngle * (float64(k) + 0.5) / float64(p.Segments)
		wedgeAxis := xAxis.Scale(math.Cos(theta)).Add(yAxis.Scale(math.Sin(theta)))
		faces := sweepRing(store, pool, a, b, wedgeAxis, &idx)
		sideFaces = append(sideFaces, faces...)
	}

	var startFace, endFace topo.FaceHandle
	if !full {
		startLoop := ringLoopReversed(store, pool, rings[0])
		startNormal := xAxis.Scale(math.Sin(0)).Sub(yAxis.Scale(math.Cos(0))) // outward from the solid at theta=0
		startFace = store.AddFace(geom.NewPlaneSurface(geom.Plane{Origin: p.AxisOrigin, Normal: startNormal.Normalize()}), startLoop, nil, true)
		store.SetFaceRole(startFace, topo.Role{Kind: topo.RoleRevStartFace})

		last := numRings - 1
		endLoop := ringLoop(store, pool, rings[last])
		thetaEnd := p.TotalAngle
		endNormal := yAxis.Scale(math.Cos(thetaEnd)).Sub(xAxis.Scale(math.Sin(thetaEnd)))
		endFace = store.AddFace(geom.NewPlaneSurface(geom.Plane{Origin: p.AxisOrigin, Normal: endNormal.Normalize()}), endLoop, nil, true)
		store.SetFaceRole(endFace, topo.Role{Kind: topo.RoleRevEndFace})
	}

	allFaces := append([]topo.FaceHandle(nil), sideFaces...)
	if !full {
		allFaces = append(allFaces, startFace, endFace)
	}
	for i, fh := range sideFaces {
		store.SetFaceRole(fh, topo.Role{Kind: topo.RoleSideFace, Index: i})
	}

	shell := store.AddShell(allFaces, topo.ShellOutward)
	solid := store.AddSolid([]topo.ShellHandle{shell})

	result := OpResult{
		Solid: solid,
		Diff:  snapshotDiff(store, before, solid),
		Roles: roleMap(store, solid),
	}
	return result, nil
}
