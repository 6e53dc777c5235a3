//-----------------------------------------------------------------------------
/*

Classification: detecting axis-aligned box solids for the grid fast path,
and ray-cast point-in-solid tests for the general path.

*/
//-----------------------------------------------------------------------------

package boolean

import (
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

// Containment is the result of testing a point (or face) against a solid.
type Containment int

// Containment results.
const (
	Outside Containment = iota
	Inside
	OnBoundary
)

// isAxisAlignedBox reports whether solid is a single-shell, six-face solid
// whose every vertex sits at a corner of its own bounding box within
// coincidence tolerance — the condition spec.md §4.5 uses to gate the grid
// decomposition fast path.
func isAxisAlignedBox(store *topo.Store, solid topo.SolidHandle, coincidence float64) (geom.Box3, bool) {
	rec, ok := store.Solid(solid)
	if !ok || len(rec.Shells) != 1 {
		return geom.Box3{}, false
	}
	shell, ok := store.Shell(rec.Shells[0])
	if !ok || len(shell.Faces) != 6 {
		return geom.Box3{}, false
	}

	box, err := store.BoundingBox(solid)
	if err != nil || box.Empty() {
		return geom.Box3{}, false
	}

	for _, fh := range shell.Faces {
		face, ok := store.Face(fh)
		if !ok {
			return geom.Box3{}, false
		}
		if face.Surface.Kind != geom.SurfaceKindPlane {
			return geom.Box3{}, false
		}
		for _, lh := range store.FaceLoops(fh) {
			for _, p := range store.LoopVertices(lh) {
				if !onBoxCorner(p, box, coincidence) {
					return geom.Box3{}, false
				}
			}
		}
	}
	return box, true
}

func onBoxCorner(p geom.Vec, box geom.Box3, tolerance float64) bool {
	onAxis := func(v, lo, hi float64) bool {
		return math.Abs(v-lo) <= tolerance || math.Abs(v-hi) <= tolerance
	}
	return onAxis(p.X, box.Min.X, box.Max.X) &&
		onAxis(p.Y, box.Min.Y, box.Max.Y) &&
		onAxis(p.Z, box.Min.Z, box.Max.Z)
}

// rayCastSamples lists the independent ray directions tried before a
// classification is declared ambiguous.
var rayCastSamples = []geom.Vec{
	{X: 1, Y: 0.0131, Z: 0.0271},
	{X: 0.0174, Y: 1, Z: 0.0332},
	{X: 0.0213, Y: 0.0391, Z: 1},
}

// classifyPoint tests whether p lies inside, outside, or on the boundary of
// solid using ray casting: a ray is cast from p in a sample direction, every
// crossing of a planar face in front of p counts once, and an odd count
// means inside, an even count outside (parity classification).
// Multiple independent directions are tried; if they disagree the point is
// reported ambiguous.
func classifyPoint(store *topo.Store, solid topo.SolidHandle, p geom.Vec, tolerance float64) (Containment, error) {
	faces := store.SolidFaces(solid)

	votes := make([]Containment, 0, len(rayCastSamples))
	for _, dir := range rayCastSamples {
		c, onBoundary := castOnce(store, faces, p, dir, tolerance)
		if onBoundary {
			return OnBoundary, nil
		}
		votes = append(votes, c)
	}
	for _, v := range votes[1:] {
		if v != votes[0] {
			return Outside, &ClassificationAmbiguousError{Samples: len(votes)}
		}
	}
	return votes[0], nil
}

func castOnce(store *topo.Store, faces []topo.FaceHandle, origin, dir geom.Vec, tolerance float64) (Containment, bool) {
	dir = dir.Normalize()
	count := 0
	for _, fh := range faces {
		face, ok := store.Face(fh)
		if !ok || face.Surface.Kind != geom.SurfaceKindPlane {
			continue
		}
		plane := face.Surface.Plane
		denom := plane.Normal.Dot(dir)
		if math.Abs(denom) < 1e-12 {
			continue // ray parallel to this face's plane
		}
		t := plane.Normal.Dot(plane.Origin.Sub(origin)) / denom
		if math.Abs(t) <= tolerance {
			return OnBoundary, true
		}
		if t <= tolerance {
			continue // intersection behind the origin
		}
		hit := origin.Add(dir.Scale(t))
		if !pointInFacePolygon(store, fh, hit, tolerance) {
			continue
		}
		count++
	}
	if count%2 == 1 {
		return Inside, false
	}
	return Outside, false
}

// pointInFacePolygon tests whether p (assumed to lie in the face's plane)
// falls within its outer loop using a 2D winding test projected onto the
// plane's own basis, ignoring holes (holes are rare on the boolean engine's
// planar-only faces and are treated conservatively as part of the face).
func pointInFacePolygon(store *topo.Store, fh topo.FaceHandle, p geom.Vec, tolerance float64) bool {
	face, ok := store.Face(fh)
	if !ok {
		return false
	}
	verts := store.LoopVertices(face.Outer)
	if len(verts) < 3 {
		return false
	}
	normal := face.Surface.Normal(0, 0)
	xAxis, yAxis := geom.Basis(normal, geom.Vec{X: 1})
	origin := verts[0]

	project := func(v geom.Vec) (float64, float64) {
		rel := v.Sub(origin)
		return rel.Dot(xAxis), rel.Dot(yAxis)
	}
	px, py := project(p)

	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := project(verts[i])
		xj, yj := project(verts[j])
		if (yi > py) != (yj > py) {
			xCross := xi + (py-yi)/(yj-yi)*(xj-xi)
			if px < xCross+tolerance {
				inside = !inside
			}
		}
	}
	return inside
}
