package validate

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/primitives"
	"github.com/sequoia-hope/waffle-iron/tol"
	"github.com/sequoia-hope/waffle-iron/topo"
)

var _ = Describe("B-Rep validation", func() {
	var store *topo.Store

	BeforeEach(func() {
		store = topo.NewStore(tol.Default())
	})

	Describe("a canonical box", func() {
		var solid topo.SolidHandle

		BeforeEach(func() {
			solid = primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
		})

		It("has no topology issues", func() {
			Expect(Topology(store, solid)).To(BeEmpty())
		})

		It("has no geometry issues", func() {
			Expect(Geometry(store, solid)).To(BeEmpty())
		})

		It("has no spatial issues", func() {
			Expect(Spatial(store, solid, false)).To(BeEmpty())
		})

		It("is not fatal", func() {
			report := Run(store, solid, Options{})
			Expect(report.Fatal()).To(BeFalse())
		})
	})

	Describe("a canonical cylinder", func() {
		var solid topo.SolidHandle

		BeforeEach(func() {
			solid = primitives.Cylinder(store, geom.Vec{}, geom.Vec{Z: 1}, 1, 2, 16)
		})

		It("has no topology issues", func() {
			Expect(Topology(store, solid)).To(BeEmpty())
		})

		It("has no same-parameter gaps", func() {
			issues := Geometry(store, solid)
			for _, issue := range issues {
				Expect(issue.Kind).NotTo(Equal(KindSameParameterGap))
			}
		})

		It("has no free or non-manifold edges", func() {
			Expect(Spatial(store, solid, false)).To(BeEmpty())
		})
	})

	Describe("a solid with a dangling vertex", func() {
		It("reports it in the topology pass", func() {
			solid := primitives.Box(store, geom.Vec{}, geom.Vec{X: 1, Y: 1, Z: 1})
			store.AddVertex(geom.Vec{X: 99, Y: 99, Z: 99})

			issues := Topology(store, solid)
			found := false
			for _, issue := range issues {
				if issue.Kind == KindDanglingVertex {
					found = true
				}
			}
			Expect(found).To(BeTrue())
		})
	})
})
