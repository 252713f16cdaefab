package extent_test

import (
	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/extent"
	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/transfo"
	"github.com/airbusgeo/geokernel/internal/utils"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func precondition(f func()) (err error) {
	defer utils.RecoverPrecondition(&err)
	f()
	return nil
}

func expectPrecondition(f func()) {
	err := precondition(f)
	ExpectWithOffset(1, geokernel.IsError(err, geokernel.PreconditionViolation)).To(BeTrue(), "%v", err)
}

func expectBounds(e *extent.Extent, xMin, yMin, xMax, yMax, tol float64) {
	ExpectWithOffset(1, e.IsDefined()).To(BeTrue())
	ExpectWithOffset(1, e.XMin()).To(BeNumerically("~", xMin, tol))
	ExpectWithOffset(1, e.YMin()).To(BeNumerically("~", yMin, tol))
	ExpectWithOffset(1, e.XMax()).To(BeNumerically("~", xMax, tol))
	ExpectWithOffset(1, e.YMax()).To(BeNumerically("~", yMax, tol))
}

var (
	world  = coordsys.New("world")
	scaled = coordsys.NewDerived("scaled", world, transfo.NewStretch(2, -4, 10, 20))
)

var _ = Describe("Definedness", func() {
	var e *extent.Extent

	BeforeEach(func() {
		e = extent.NewExtent(world)
	})

	It("should be undefined", func() {
		Expect(e.IsDefined()).To(BeFalse())
		Expect(e.IsXDefined()).To(BeFalse())
		Expect(e.IsEmpty()).To(BeTrue())
		Expect(e.String()).To(Equal("undefinedxundefined@world"))
		expectPrecondition(func() { e.XMin() })
	})

	It("should be the identity of the union", func() {
		e.Add(coordsys.NewLocation(3, -2, world))
		Expect(e.IsDefined()).To(BeTrue())
		Expect(e.XMin()).To(Equal(3.0))
		Expect(e.XMax()).To(Equal(3.0))
		Expect(e.YMin()).To(Equal(-2.0))
		Expect(e.YMax()).To(Equal(-2.0))
		Expect(e.IsEmpty()).To(BeTrue())
	})

	It("should define each axis independently", func() {
		e.SetXMin(5)
		Expect(e.IsXDefined()).To(BeTrue())
		Expect(e.IsYDefined()).To(BeFalse())
		Expect(e.XMax()).To(Equal(5.0))
		e.SetXMax(7)
		Expect(e.Width()).To(Equal(2.0))
		expectPrecondition(func() { e.SetXMin(8) })
		expectPrecondition(func() { e.SetXMax(4) })
		e.SetYMax(1)
		e.SetYMin(-1)
		Expect(e.Height()).To(Equal(2.0))
		expectPrecondition(func() { e.SetYMin(2) })
		expectPrecondition(func() { e.SetYMax(-2) })
		Expect(e.String()).To(Equal("[5, 7]x[-1, 1]@world"))
		e.Clear()
		Expect(e.IsDefined()).To(BeFalse())
		Expect(e.CoordSys()).To(BeIdenticalTo(world))
	})

	It("should build from locations", func() {
		e = extent.NewExtentFromLocations(coordsys.NewLocation(1, 2, world), coordsys.NewLocation(-3, 4, scaled))
		// scaled(-3, 4) = world(4, 4)
		expectBounds(e, 1, 2, 4, 4, 0)
		Expect(e.CoordSys()).To(BeIdenticalTo(world))
		Expect(e.Center().X).To(Equal(2.5))
		Expect(e.Origin().Y).To(Equal(2.0))
		Expect(e.Corner().X).To(Equal(4.0))
		expectPrecondition(func() {
			extent.NewExtentFromLocations(coordsys.NewLocation(5, 2, world), coordsys.NewLocation(4, 4, world))
		})
	})

	It("should require ordered bounds", func() {
		expectPrecondition(func() { extent.NewExtentFromMinMax(1, 0, 0, 1, world) })
		expectPrecondition(func() { extent.NewExtent(nil) })
	})
})

var _ = Describe("Algebra", func() {
	var a, b *extent.Extent

	BeforeEach(func() {
		a = extent.NewExtentFromMinMax(0, 0, 10, 10, world)
		b = extent.NewExtentFromMinMax(2, 3, 4, 5, world)
	})

	It("should be idempotent on repeated union", func() {
		c := extent.NewExtentFromMinMax(5, 5, 20, 7, world)
		a.AddExtent(c)
		once := a.Clone()
		a.AddExtent(c)
		Expect(a.Equal(once)).To(BeTrue())
		expectBounds(a, 0, 0, 20, 10, 0)
	})

	It("should merge axes independently", func() {
		c := extent.NewExtent(world)
		c.SetYMax(-5)
		a.AddExtent(c)
		expectBounds(a, 0, -5, 10, 10, 0)
		c.AddExtent(b)
		expectBounds(c, 2, -5, 4, 5, 0)
	})

	It("should be the contained extent after intersection", func() {
		Expect(a.Contains(b)).To(BeTrue())
		a.Intersect(b)
		Expect(a.Equal(b)).To(BeTrue())
	})

	It("should be undefined after intersection with a disjoint extent", func() {
		a.Intersect(extent.NewExtentFromMinMax(11, 0, 12, 10, world))
		Expect(a.IsDefined()).To(BeFalse())
		Expect(a.IsXDefined()).To(BeFalse())
		Expect(a.IsYDefined()).To(BeFalse())
	})

	It("should be undefined after intersection with an undefined extent", func() {
		a.Intersect(extent.NewExtent(world))
		Expect(a.IsDefined()).To(BeFalse())
	})

	It("should intersect on a shared edge", func() {
		a.Intersect(extent.NewExtentFromMinMax(10, 2, 12, 3, world))
		expectBounds(a, 10, 2, 10, 3, 0)
	})

	It("should add and intersect extents expressed in other coordinate systems", func() {
		// scaled [-5, 0]x[0, 5] = world [0, 10]x[0, 20]
		c := extent.NewExtentFromMinMax(-5, 0, 0, 5, scaled)
		a.Intersect(c)
		expectBounds(a, 0, 0, 10, 10, 1e-12)
		Expect(c.CoordSys()).To(BeIdenticalTo(scaled))
		expectBounds(c, -5, 0, 0, 5, 0)
		a.AddExtent(c)
		expectBounds(a, 0, 0, 10, 20, 1e-12)
		a.Add(coordsys.NewLocation(-10, 0, scaled))
		expectBounds(a, -10, 0, 10, 20, 1e-12)
	})

	Describe("Equality", func() {
		It("should compare exactly", func() {
			Expect(a.Equal(extent.NewExtentFromMinMax(0, 0, 10, 10, world))).To(BeTrue())
			Expect(a.Equal(extent.NewExtentFromMinMax(0, 0, 10, 10+1e-12, world))).To(BeFalse())
			Expect(a.Equal(extent.NewExtent(world))).To(BeFalse())
			Expect(extent.NewExtent(world).Equal(extent.NewExtent(scaled))).To(BeTrue())
		})
		It("should compare with a tolerance", func() {
			Expect(a.IsEqualTo(extent.NewExtentFromMinMax(0, 0, 10, 10+1e-12, world))).To(BeTrue())
			Expect(a.IsEqualTo(extent.NewExtentFromMinMax(0, 0, 10, 10.1, world))).To(BeFalse())
			Expect(a.IsEqualToEps(extent.NewExtentFromMinMax(0, 0, 10, 10.1, world), 0.2)).To(BeTrue())
		})
		It("should compare across coordinate systems", func() {
			Expect(a.IsEqualTo(extent.NewExtentFromMinMax(-5, 2.5, 0, 5, scaled))).To(BeTrue())
		})
	})

	Describe("Differentiate", func() {
		var other *extent.Extent

		JustBeforeEach(func() {
			a.Differentiate(other)
		})

		Context("inside other", func() {
			BeforeEach(func() {
				other = extent.NewExtentFromMinMax(-1, -1, 11, 11, world)
			})
			It("should be undefined", func() {
				Expect(a.IsDefined()).To(BeFalse())
			})
		})
		Context("other cuts the right side", func() {
			BeforeEach(func() {
				other = extent.NewExtentFromMinMax(5, -1, 15, 11, world)
			})
			It("should clip XMax", func() {
				expectBounds(a, 0, 0, 5, 10, 0)
			})
		})
		Context("other cuts the left side", func() {
			BeforeEach(func() {
				other = extent.NewExtentFromMinMax(-5, -1, 3, 11, world)
			})
			It("should clip XMin", func() {
				expectBounds(a, 3, 0, 10, 10, 0)
			})
		})
		Context("other crosses in X", func() {
			BeforeEach(func() {
				other = extent.NewExtentFromMinMax(3, -1, 6, 11, world)
			})
			It("should only clip XMax", func() {
				expectBounds(a, 0, 0, 3, 10, 0)
			})
		})
		Context("other cuts the top side", func() {
			BeforeEach(func() {
				other = extent.NewExtentFromMinMax(0, 8, 10, 12, world)
			})
			It("should clip YMax", func() {
				expectBounds(a, 0, 0, 10, 8, 0)
			})
		})
		Context("other cuts the bottom side", func() {
			BeforeEach(func() {
				other = extent.NewExtentFromMinMax(-1, -1, 11, 2, world)
			})
			It("should clip YMin", func() {
				expectBounds(a, 0, 2, 10, 10, 0)
			})
		})
		Context("other cuts a corner", func() {
			BeforeEach(func() {
				other = extent.NewExtentFromMinMax(5, 5, 15, 15, world)
			})
			It("should be unchanged", func() {
				expectBounds(a, 0, 0, 10, 10, 0)
			})
		})
		Context("other is undefined", func() {
			BeforeEach(func() {
				other = extent.NewExtent(world)
			})
			It("should be unchanged", func() {
				expectBounds(a, 0, 0, 10, 10, 0)
			})
		})
	})
})

var _ = Describe("Predicates", func() {
	var (
		a, b, c *extent.Extent
	)

	BeforeEach(func() {
		a = extent.NewExtentFromMinMax(0, 0, 1, 1, world)
		b = extent.NewExtentFromMinMax(1, 0, 2, 1, world)
		c = extent.NewExtentFromMinMax(0.5, 0.5, 2, 2, world)
	})

	It("should not overlap on a shared edge", func() {
		Expect(a.DoTheyOverlap(b)).To(BeFalse())
		Expect(a.OuterOverlaps(b)).To(BeTrue())
		Expect(a.InnerOverlaps(b)).To(BeFalse())
	})

	It("should overlap", func() {
		Expect(a.DoTheyOverlap(c)).To(BeTrue())
		Expect(a.InnerOverlaps(c)).To(BeTrue())
		Expect(a.InnerOverlapsEps(c, 0.6)).To(BeFalse())
		Expect(a.OuterOverlaps(c)).To(BeTrue())
	})

	It("should outer overlap a near extent", func() {
		d := extent.NewExtentFromMinMax(1+1e-9, 0, 2, 1, world)
		Expect(a.DoTheyOverlap(d)).To(BeFalse())
		Expect(a.OuterOverlaps(d)).To(BeTrue())
		Expect(a.OuterOverlapsEps(d, 1e-10)).To(BeFalse())
	})

	It("should not overlap undefined extents", func() {
		Expect(a.DoTheyOverlap(extent.NewExtent(world))).To(BeFalse())
		Expect(a.OuterOverlaps(extent.NewExtent(world))).To(BeFalse())
		Expect(extent.NewExtent(world).InnerOverlaps(a)).To(BeFalse())
	})

	It("should check containment", func() {
		inner := extent.NewExtentFromMinMax(0.25, 0.25, 0.75, 0.75, world)
		touching := extent.NewExtentFromMinMax(0, 0.25, 0.75, 0.75, world)
		Expect(a.Contains(inner)).To(BeTrue())
		Expect(a.Contains(touching)).To(BeFalse())
		Expect(a.Contains(a)).To(BeFalse())
		Expect(a.OuterContains(touching)).To(BeTrue())
		Expect(a.OuterContains(a)).To(BeTrue())
		Expect(a.InnerContains(inner)).To(BeTrue())
		Expect(a.InnerContains(touching)).To(BeFalse())
		Expect(a.InnerContainsEps(inner, 0.3)).To(BeFalse())
		Expect(a.OuterContainsEps(c, 1)).To(BeTrue())
		Expect(a.Contains(extent.NewExtent(world))).To(BeFalse())
	})

	It("should check containment across coordinate systems", func() {
		// scaled [-4.5, -4]x[4, 4.5] = world [1, 2]x[2, 4]
		Expect(extent.NewExtentFromMinMax(0, 0, 3, 5, world).Contains(extent.NewExtentFromMinMax(-4.5, 4, -4, 4.5, scaled))).To(BeTrue())
	})

	It("should check points", func() {
		Expect(a.IsPointIn(coordsys.NewLocation(1, 0.5, world))).To(BeTrue())
		Expect(a.IsPointIn(coordsys.NewLocation(1+1e-9, 0.5, world))).To(BeFalse())
		Expect(a.IsPointOuterIn(coordsys.NewLocation(1+1e-9, 0.5, world), utils.Epsilon)).To(BeTrue())
		Expect(a.IsPointInnerIn(coordsys.NewLocation(1, 0.5, world), utils.Epsilon)).To(BeFalse())
		Expect(a.IsPointInnerIn(coordsys.NewLocation(0.5, 0.5, world), utils.Epsilon)).To(BeTrue())
		// scaled(-4.75, 4.875) = world(0.5, 0.5)
		Expect(a.IsPointInnerIn(coordsys.NewLocation(-4.75, 4.875, scaled), utils.Epsilon)).To(BeTrue())
	})

	It("should panic without transform path", func() {
		expectPrecondition(func() { a.Contains(extent.NewExtentFromMinMax(0, 0, 1, 1, coordsys.New("elsewhere"))) })
	})
})
