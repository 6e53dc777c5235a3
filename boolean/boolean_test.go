package boolean

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/primitives"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

type BooleanSuite struct {
	suite.Suite
	store *topo.Store
}

func (s *BooleanSuite) SetupTest() {
	s.store = topo.NewStore(tol.Default())
}

func TestBooleanSuite(t *testing.T) {
	suite.Run(t, new(BooleanSuite))
}

func (s *BooleanSuite) TestDisjointUnionCombinesShells() {
	a := primitives.Box(s.store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	b := primitives.Box(s.store, geom.Vec{X: 10}, geom.Vec{X: 11, Y: 1, Z: 1})

	result, err := Combine(s.store, a, b, OpUnion)
	s.Require().NoError(err)

	rec, ok := s.store.Solid(result)
	s.Require().True(ok)
	s.Len(rec.Shells, 2)
}

func (s *BooleanSuite) TestDisjointIntersectionFails() {
	a := primitives.Box(s.store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	b := primitives.Box(s.store, geom.Vec{X: 10}, geom.Vec{X: 11, Y: 1, Z: 1})

	_, err := Combine(s.store, a, b, OpIntersection)
	s.Equal(ErrNoOverlap, err)
}

func (s *BooleanSuite) TestDisjointDifferenceReturnsFirstOperand() {
	a := primitives.Box(s.store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
	b := primitives.Box(s.store, geom.Vec{X: 10}, geom.Vec{X: 11, Y: 1, Z: 1})

	result, err := Combine(s.store, a, b, OpDifference)
	s.Require().NoError(err)
	s.Equal(a, result)
}

func (s *BooleanSuite) TestOverlappingBoxUnionIsGridFastPath() {
	a := primitives.Box(s.store, geom.Vec{}, geom.Vec{X: 2, Y: 2, Z: 2})
	b := primitives.Box(s.store, geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{X: 3, Y: 3, Z: 3})

	result, err := Combine(s.store, a, b, OpUnion)
	s.Require().NoError(err)

	box, err := s.store.BoundingBox(result)
	s.Require().NoError(err)
	s.InDelta(0, box.Min.X, 1e-9)
	s.InDelta(3, box.Max.X, 1e-9)
}

func (s *BooleanSuite) TestOverlappingBoxIntersectionShortcut() {
	a := primitives.Box(s.store, geom.Vec{}, geom.Vec{X: 2, Y: 2, Z: 2})
	b := primitives.Box(s.store, geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{X: 3, Y: 3, Z: 3})

	result, err := Combine(s.store, a, b, OpIntersection)
	s.Require().NoError(err)

	box, err := s.store.BoundingBox(result)
	s.Require().NoError(err)
	s.InDelta(1, box.Min.X, 1e-9)
	s.InDelta(2, box.Max.X, 1e-9)
}

func (s *BooleanSuite) TestOverlappingBoxDifferenceOpensCavity() {
	outer := primitives.Box(s.store, geom.Vec{}, geom.Vec{X: 4, Y: 4, Z: 4})
	inner := primitives.Box(s.store, geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{X: 2, Y: 2, Z: 2})

	result, err := Combine(s.store, outer, inner, OpDifference)
	s.Require().NoError(err)

	rec, ok := s.store.Solid(result)
	s.Require().True(ok)
	if s.GreaterOrEqual(len(rec.Shells), 1) {
		outward, _ := s.store.Shell(rec.Shells[0])
		s.Equal(topo.ShellOutward, outward.Orientation)
	}
}

func (s *BooleanSuite) TestNoOverlapIntersectionOfDisjointBoxesIsDegenerate() {
	_, err := gridIntersectionBox(
		geom.NewBox3(geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1}),
		geom.NewBox3(geom.Vec{X: 5}, geom.Vec{X: 6, Y: 1, Z: 1}),
	)
	s.Equal(ErrDegenerateResult, err)
}

func (s *BooleanSuite) TestIsAxisAlignedBoxDetectsCanonicalBox() {
	box := primitives.Box(s.store, geom.Vec{}, geom.Vec{X: 1, Y: 2, Z: 3})
	_, ok := isAxisAlignedBox(s.store, box, coincidence)
	s.True(ok)
}

func (s *BooleanSuite) TestIsAxisAlignedBoxRejectsCylinder() {
	cyl := primitives.Cylinder(s.store, geom.Vec{}, geom.Vec{Z: 1}, 1, 2, 12)
	_, ok := isAxisAlignedBox(s.store, cyl, coincidence)
	s.False(ok)
}

func TestClassifyPointInsideBox(t *testing.T) {
	store := topo.NewStore(tol.Default())
	box := primitives.Box(store, geom.Vec{}, geom.Vec{X: 2, Y: 2, Z: 2})

	c, err := classifyPoint(store, box, geom.Vec{X: 1, Y: 1, Z: 1}, coincidence)
	require.NoError(t, err)
	require.Equal(t, Inside, c)

	c, err = classifyPoint(store, box, geom.Vec{X: 5, Y: 5, Z: 5}, coincidence)
	require.NoError(t, err)
	require.Equal(t, Outside, c)
}

func TestSplitFaceAlongMidline(t *testing.T) {
	store := topo.NewStore(tol.Default())
	box := primitives.Box(store, geom.Vec{}, geom.Vec{X: 2, Y: 2, Z: 2})

	var bottom topo.FaceHandle
	for _, fh := range store.SolidFaces(box) {
		face, _ := store.Face(fh)
		if face.Surface.Kind == geom.SurfaceKindPlane && face.Surface.Plane.Normal.Z < -0.5 {
			bottom = fh
			break
		}
	}
	require.NotZero(t, bottom)

	a, b, ok, err := splitFace(store, bottom, geom.Vec{X: 1}, geom.Vec{Y: 1}, coincidence)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEqual(t, a, b)
}
