//-----------------------------------------------------------------------------
/*

Canonical cylinder primitive

Builds two circular end caps and n side faces on the true cylindrical
surface, each side face bounded by two circular arcs (top/bottom) and two
straight generators, so side-face boundaries are literal rectangles in the
surface's (angle, height) parameterization.

*/
//-----------------------------------------------------------------------------

package primitives

import (
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Cylinder builds a circular cylinder solid: origin is the center of the
// bottom cap, height extends along axis, and the radial frame is derived
// from axis alone (geom.Basis), with n circumferential segments.
func Cylinder(store *topo.Store, origin, axis geom.Vec, radius, height float64, n int) topo.SolidHandle {
	axis = axis.Normalize()
	xAxis, yAxis := geom.Basis(axis, geom.Vec{X: 1})

	bottomCenter := origin
	topCenter := origin.Add(axis.Scale(height))

	bottomVerts := make([]topo.VertexHandle, n)
	topVerts := make([]topo.VertexHandle, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		radial := xAxis.Scale(radius * math.Cos(theta)).Add(yAxis.Scale(radius * math.Sin(theta)))
		bottomVerts[i] = store.AddVertex(bottomCenter.Add(radial))
		topVerts[i] = store.AddVertex(topCenter.Add(radial))
	}

	pool := newEdgePool(store)

	bottomCircle := geom.Circle{Center: bottomCenter, Normal: axis.Neg(), XAxis: xAxis, Radius: radius}
	topCircle := geom.Circle{Center: topCenter, Normal: axis, XAxis: xAxis, Radius: radius}

	bottomArc := func(i int) topo.HalfEdgeHandle {
		return pool.halfEdge(bottomVerts[i], bottomVerts[(i+1)%n], func() geom.Curve {
			return geom.NewCircleCurve(bottomCircle)
		})
	}
	topArc := func(i int) topo.HalfEdgeHandle {
		return pool.halfEdge(topVerts[i], topVerts[(i+1)%n], func() geom.Curve {
			return geom.NewCircleCurve(topCircle)
		})
	}
	sideGen := func(i int) topo.HalfEdgeHandle {
		return pool.lineEdge(store, bottomVerts[i], topVerts[i])
	}

	sideFaces := make([]topo.FaceHandle, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n

		loBottom := bottomArc(i)
		upRight := sideGen(j)

		topFwd := topArc(i)
		topHE, _ := store.HalfEdge(topFwd)
		topRev := topHE.Twin

		leftDown := sideGen(i)
		leftDownHE, _ := store.HalfEdge(leftDown)
		leftRev := leftDownHE.Twin

		loop := store.AddLoop([]topo.HalfEdgeHandle{loBottom, upRight, topRev, leftRev})
		surface := geom.NewCylinderSurface(geom.Cylinder{Origin: bottomCenter, Axis: axis, Radius: radius})
		face := store.AddFace(surface, loop, nil, true)
		store.SetFaceRole(face, topo.Role{Kind: topo.RoleSideFace, Index: i})
		sideFaces[i] = face
	}

	// bottom cap: outward normal -axis, traverse arcs in reverse (twin of bottomArc)
	bottomHalf := make([]topo.HalfEdgeHandle, n)
	for i := 0; i < n; i++ {
		fwd := bottomArc(n - 1 - i)
		he, _ := store.HalfEdge(fwd)
		bottomHalf[i] = he.Twin
	}
	bottomLoop := store.AddLoop(bottomHalf)
	bottomSurface := geom.NewPlaneSurface(geom.Plane{Origin: bottomCenter, Normal: axis.Neg()})
	bottomFace := store.AddFace(bottomSurface, bottomLoop, nil, true)
	store.SetFaceRole(bottomFace, topo.Role{Kind: topo.RoleEndCapNegative})

	// top cap: outward normal +axis, traverse arcs forward
	topHalf := make([]topo.HalfEdgeHandle, n)
	for i := 0; i < n; i++ {
		topHalf[i] = topArc(i)
	}
	topLoop := store.AddLoop(topHalf)
	topSurface := geom.NewPlaneSurface(geom.Plane{Origin: topCenter, Normal: axis})
	topFace := store.AddFace(topSurface, topLoop, nil, true)
	store.SetFaceRole(topFace, topo.Role{Kind: topo.RoleEndCapPositive})

	allFaces := append([]topo.FaceHandle{bottomFace, topFace}, sideFaces...)
	shell := store.AddShell(allFaces, topo.ShellOutward)
	return store.AddSolid([]topo.ShellHandle{shell})
}
