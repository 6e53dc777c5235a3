//-----------------------------------------------------------------------------
/*

Boolean engine: union, intersection, and difference of two solids, per
spec.md §4.5. Two solids that are each a single axis-aligned box take the
grid-decomposition fast path; everything else falls back to face-splitting
plus ray-cast classification, which only supports planar-faced solids (the
general trimmed-NURBS case is out of scope, per spec.md's non-goals).

*/
//-----------------------------------------------------------------------------

package boolean

import (
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

const coincidence = 1e-7

// Combine performs op on solids a and b within store, returning the result
// solid. The result is not always a new, independent entity set: a
// difference of disjoint operands returns a itself, a union of disjoint
// operands builds a solid over both operands' existing shells, and the
// general path splits and removes operand faces in place.
func Combine(store *topo.Store, a, b topo.SolidHandle, op Op) (topo.SolidHandle, error) {
	boxA, err := store.BoundingBox(a)
	if err != nil {
		return 0, &IntersectionFailedError{Reason: "operand A has no geometry"}
	}
	boxB, err := store.BoundingBox(b)
	if err != nil {
		return 0, &IntersectionFailedError{Reason: "operand B has no geometry"}
	}

	if !boxA.Overlaps(boxB, coincidence) {
		switch op {
		case OpUnion:
			return unionDisjoint(store, a, b)
		case OpIntersection:
			return 0, ErrNoOverlap
		default: // difference
			return a, nil
		}
	}

	if aabbA, okA := isAxisAlignedBox(store, a, coincidence); okA {
		if aabbB, okB := isAxisAlignedBox(store, b, coincidence); okB {
			if op == OpIntersection {
				resultBox, err := gridIntersectionBox(aabbA, aabbB)
				if err != nil {
					return 0, err
				}
				return buildBoxSolid(store, resultBox), nil
			}
			return gridUnionDifference(store, aabbA, aabbB, op, coincidence)
		}
	}

	return generalCombine(store, a, b, op)
}

// unionDisjoint merges two solids whose bounding boxes do not overlap into
// a single multi-shell solid (each operand contributes its own shell).
func unionDisjoint(store *topo.Store, a, b topo.SolidHandle) (topo.SolidHandle, error) {
	recA, _ := store.Solid(a)
	recB, _ := store.Solid(b)
	shells := append(append([]topo.ShellHandle(nil), recA.Shells...), recB.Shells...)
	return store.AddSolid(shells), nil
}

// buildBoxSolid emits a canonical 6-face box solid spanning box, used for
// the AABB/AABB intersection shortcut.
func buildBoxSolid(store *topo.Store, box geom.Box3) topo.SolidHandle {
	c := box.Corners()
	verts := make([]topo.VertexHandle, 8)
	for i, p := range c {
		verts[i] = store.AddVertex(p)
	}
	pool := newGridEdgePool(store)

	type face struct {
		idx    [4]int
		normal geom.Vec
	}
	// Corner indices follow Box3.Corners' binary (x,y,z) bit order.
	faces := []face{
		{[4]int{0, 2, 6, 4}, geom.Vec{X: -1}},
		{[4]int{1, 5, 7, 3}, geom.Vec{X: 1}},
		{[4]int{0, 1, 3, 2}, geom.Vec{Y: -1}},
		{[4]int{4, 6, 7, 5}, geom.Vec{Y: 1}},
		{[4]int{0, 4, 5, 1}, geom.Vec{Z: -1}},
		{[4]int{2, 3, 7, 6}, geom.Vec{Z: 1}},
	}
	var handles []topo.FaceHandle
	for i, f := range faces {
		heh := make([]topo.HalfEdgeHandle, 4)
		for k := 0; k < 4; k++ {
			heh[k] = pool.lineEdge(verts[f.idx[k]], verts[f.idx[(k+1)%4]])
		}
		loop := store.AddLoop(heh)
		origin, _ := store.Vertex(verts[f.idx[0]])
		surface := geom.NewPlaneSurface(geom.Plane{Origin: origin.Point, Normal: f.normal})
		fh := store.AddFace(surface, loop, nil, true)
		store.SetFaceRole(fh, topo.Role{Kind: topo.RoleBooleanBodyAFace, Index: i})
		handles = append(handles, fh)
	}
	shell := store.AddShell(handles, topo.ShellOutward)
	return store.AddSolid([]topo.ShellHandle{shell})
}

// generalCombine implements steps 3-6 of spec.md §4.5 for arbitrary
// planar-faced solids: split faces of each operand where the other
// operand's face planes cross them, classify each resulting face center
// against the other solid, then select and assemble faces per op.
func generalCombine(store *topo.Store, a, b topo.SolidHandle, op Op) (topo.SolidHandle, error) {
	facesA := store.SolidFaces(a)
	facesB := store.SolidFaces(b)

	splitA := splitAgainstOther(store, facesA, facesB, coincidence)
	splitB := splitAgainstOther(store, facesB, facesA, coincidence)

	var selected []topo.FaceHandle
	for i, fh := range splitA {
		c, err := classifyFaceContainment(store, fh, b)
		if err != nil {
			return 0, err
		}
		if keepFaceA(op, c) {
			store.SetFaceRole(fh, topo.Role{Kind: topo.RoleBooleanBodyAFace, Index: i})
			selected = append(selected, fh)
		}
	}
	for i, fh := range splitB {
		c, err := classifyFaceContainment(store, fh, a)
		if err != nil {
			return 0, err
		}
		if keepFaceB(op, c) {
			if op == OpDifference && c == Inside {
				flipGroupOrientation(store, []topo.FaceHandle{fh})
			}
			store.SetFaceRole(fh, topo.Role{Kind: topo.RoleBooleanBodyBFace, Index: i})
			selected = append(selected, fh)
		}
	}

	if len(selected) == 0 {
		return 0, ErrDegenerateResult
	}

	groups := connectedComponents(store, selected)
	shells := make([]topo.ShellHandle, 0, len(groups))
	for gi, group := range groups {
		orientation := topo.ShellOutward
		if gi > 0 {
			orientation = topo.ShellInward
		}
		shells = append(shells, store.AddShell(group, orientation))
	}
	return store.AddSolid(shells), nil
}

// classifyFaceContainment tests the centroid of face fh's outer loop
// against solid, translating the centroid slightly off the surface along
// its own normal so the ray-cast origin is unambiguously interior or
// exterior rather than sitting on fh itself.
func classifyFaceContainment(store *topo.Store, fh topo.FaceHandle, solid topo.SolidHandle) (Containment, error) {
	face, ok := store.Face(fh)
	if !ok {
		return Outside, &IntersectionFailedError{Reason: "face vanished mid-classification"}
	}
	verts := store.LoopVertices(face.Outer)
	if len(verts) == 0 {
		return Outside, &IntersectionFailedError{Reason: "face has no boundary"}
	}
	centroid := geom.Vec{}
	for _, v := range verts {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Scale(1 / float64(len(verts)))
	return classifyPoint(store, solid, centroid, coincidence)
}

func keepFaceA(op Op, c Containment) bool {
	switch op {
	case OpUnion:
		return c != Inside
	case OpIntersection:
		return c != Outside
	case OpDifference:
		return c != Inside
	default:
		return false
	}
}

func keepFaceB(op Op, c Containment) bool {
	switch op {
	case OpUnion:
		return c != Inside
	case OpIntersection:
		return c != Outside
	case OpDifference:
		return c == Inside
	default:
		return false
	}
}
