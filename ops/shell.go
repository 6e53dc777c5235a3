//-----------------------------------------------------------------------------
/*

Shell: hollow out a solid, keeping a thin wall behind each retained face
and opening the removed faces as the hollow's mouth.

*/
//-----------------------------------------------------------------------------

package ops

import (
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/provenance"
	"github.com/sequoia-hope/waffle-iron/topo"
)

type faceVertKey struct {
	face topo.FaceHandle
	vert topo.VertexHandle
}

// Shell removes the given faces from solid and, for each retained face,
// adds an inner offset face displaced by -thickness along that face's
// outward normal, connected by bridge faces through the gaps left by the
// removed faces. Thickness must be positive; every removed face must
// belong to solid's outward shell.
func Shell(store *topo.Store, solid topo.SolidHandle, removeFaces []topo.FaceHandle, thickness float64) (OpResult, error) {
	if thickness <= 0 {
		return OpResult{}, ErrInvalidThickness
	}

	solidRec, ok := store.Solid(solid)
	if !ok || len(solidRec.Shells) == 0 {
		return OpResult{}, ErrShellFailed
	}
	outward := solidRec.Shells[0]
	shellRec, ok := store.Shell(outward)
	if !ok {
		return OpResult{}, ErrShellFailed
	}

	removed := map[topo.FaceHandle]bool{}
	for _, fh := range removeFaces {
		removed[fh] = true
	}
	var retained []topo.FaceHandle
	for _, fh := range shellRec.Faces {
		if !removed[fh] {
			retained = append(retained, fh)
		}
	}
	for fh := range removed {
		found := false
		for _, f := range shellRec.Faces {
			if f == fh {
				found = true
				break
			}
		}
		if !found {
			return OpResult{}, ErrShellFailed
		}
	}
	if len(retained) == 0 {
		return OpResult{}, ErrShellFailed
	}

	before := provenance.Capture(store, solid)

	pool := newEdgePool(store)
	innerVert := map[faceVertKey]topo.VertexHandle{}

	innerVertexFor := func(fh topo.FaceHandle, normal geom.Vec, vh topo.VertexHandle) topo.VertexHandle {
		key := faceVertKey{fh, vh}
		if iv, ok := innerVert[key]; ok {
			return iv
		}
		v, _ := store.Vertex(vh)
		iv := store.AddVertex(v.Point.Sub(normal.Scale(thickness)))
		innerVert[key] = iv
		return iv
	}

	var innerFaces []topo.FaceHandle
	var bridgeFaces []topo.FaceHandle
	bridgeIdx := 0

	for idx, fh := range retained {
		face, ok := store.Face(fh)
		if !ok {
			continue
		}
		normal := face.Surface.Normal(0, 0)
		loop, ok := store.Loop(face.Outer)
		if !ok {
			continue
		}

		innerHalf := make([]topo.HalfEdgeHandle, len(loop.Edges))
		for i := len(loop.Edges) - 1; i >= 0; i-- {
			he, ok := store.HalfEdge(loop.Edges[i])
			if !ok {
				continue
			}
			startInner := innerVertexFor(fh, normal, he.Start)
			endInner := innerVertexFor(fh, normal, he.End)
			// Reversed traversal: inner loop walks end->start so the
			// offset face's normal points opposite the original.
			innerHalf[len(loop.Edges)-1-i] = pool.lineEdge(endInner, startInner)
		}
		innerLoopHandle := store.AddLoop(innerHalf)

		innerSurface := offsetSurface(face.Surface, normal, thickness)
		innerFace := store.AddFace(innerSurface, innerLoopHandle, nil, true)
		store.SetFaceRole(innerFace, topo.Role{Kind: topo.RoleShellInnerFace, Index: idx})
		innerFaces = append(innerFaces, innerFace)

		for _, heh := range loop.Edges {
			he, ok := store.HalfEdge(heh)
			if !ok {
				continue
			}
			twin, ok := store.HalfEdge(he.Twin)
			if !ok || !removed[twin.Face] {
				continue
			}
			innerStart := innerVertexFor(fh, normal, he.Start)
			innerEnd := innerVertexFor(fh, normal, he.End)

			heOuter := pool.lineEdge(he.Start, he.End)
			heDown := pool.lineEdge(he.End, innerEnd)
			heInner := pool.lineEdge(innerEnd, innerStart)
			heUp := pool.lineEdge(innerStart, he.Start)
			bridgeLoop := store.AddLoop([]topo.HalfEdgeHandle{heOuter, heDown, heInner, heUp})

			sv, _ := store.Vertex(he.Start)
			ev, _ := store.Vertex(he.End)
			edgeDir := ev.Point.Sub(sv.Point).Normalize()
			bridgeNormal := edgeDir.Cross(normal).Normalize()
			bridgeSurface := geom.NewPlaneSurface(geom.Plane{Origin: sv.Point, Normal: bridgeNormal})
			bridgeFace := store.AddFace(bridgeSurface, bridgeLoop, nil, true)
			store.SetFaceRole(bridgeFace, topo.Role{Kind: topo.RoleShellInnerFace, Index: len(retained) + bridgeIdx})
			bridgeIdx++
			bridgeFaces = append(bridgeFaces, bridgeFace)
		}
	}

	allFaces := append(append(append([]topo.FaceHandle(nil), retained...), innerFaces...), bridgeFaces...)
	store.RemoveShell(outward)
	newShell := store.AddShell(allFaces, topo.ShellOutward)
	solidRec.Shells[0] = newShell

	result := OpResult{
		Solid: solid,
		Diff:  snapshotDiff(store, before, solid),
		Roles: roleMap(store, solid),
	}
	return result, nil
}

// offsetSurface builds the offset counterpart of surface displaced by
// -thickness along normal. Planar surfaces get an exact offset plane;
// every other surface kind is returned unchanged, so the inner face of a
// curved face lies on the original surface rather than an offset one.
func offsetSurface(surface geom.Surface, normal geom.Vec, thickness float64) geom.Surface {
	if surface.Kind == geom.SurfaceKindPlane {
		return geom.NewPlaneSurface(geom.Plane{
			Origin: surface.Plane.Origin.Sub(normal.Scale(thickness)),
			Normal: surface.Plane.Normal,
		})
	}
	return surface
}
