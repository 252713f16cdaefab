package barycentric_test

import (
	"github.com/airbusgeo/geokernel/internal/barycentric"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"
)

func area(t barycentric.Triangle) float64 {
	return r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))) / 2
}

var _ = Describe("SplitForIntegration", func() {
	var (
		v0 = r3.Vec{X: 0, Y: 0, Z: 0}
		v1 = r3.Vec{X: 4, Y: 0, Z: 0}
		v2 = r3.Vec{X: 0, Y: 4, Z: 0}

		q         r3.Vec
		triangles []barycentric.Triangle
		ok        bool
	)

	var (
		itShouldCoverTheTriangle = func() {
			It("should cover the triangle", func() {
				Expect(ok).To(BeTrue())
				total := 0.
				for _, t := range triangles {
					total += area(t)
				}
				Expect(total).To(BeNumerically("~", 8, 1e-12))
			})
		}
		itShouldStartWith = func(closest r3.Vec, n int) {
			It("should start with the closest point", func() {
				Expect(triangles).To(HaveLen(n))
				for _, t := range triangles {
					Expect(t[0]).To(Equal(closest))
				}
			})
		}
	)

	JustBeforeEach(func() {
		triangles, ok = barycentric.SplitForIntegration(q, v0, v1, v2)
	})

	Context("point above the triangle", func() {
		BeforeEach(func() {
			q = r3.Vec{X: 1, Y: 1, Z: 3}
		})
		itShouldCoverTheTriangle()
		itShouldStartWith(r3.Vec{X: 1, Y: 1}, 3)
	})

	Context("point beyond an edge", func() {
		BeforeEach(func() {
			q = r3.Vec{X: 2, Y: -1, Z: 5}
		})
		itShouldCoverTheTriangle()
		itShouldStartWith(r3.Vec{X: 2}, 2)
	})

	Context("point beyond the hypotenuse", func() {
		BeforeEach(func() {
			q = r3.Vec{X: 3, Y: 3, Z: 1}
		})
		itShouldCoverTheTriangle()
		itShouldStartWith(r3.Vec{X: 2, Y: 2}, 2)
	})

	Context("point beyond a vertex", func() {
		BeforeEach(func() {
			q = r3.Vec{X: -1, Y: -2, Z: 0}
		})
		itShouldCoverTheTriangle()
		itShouldStartWith(v0, 1)
	})

	Context("point beyond an acute vertex", func() {
		BeforeEach(func() {
			q = r3.Vec{X: 5, Y: -1, Z: 0}
		})
		itShouldCoverTheTriangle()
		itShouldStartWith(v1, 1)
		It("should keep the orientation", func() {
			Expect(triangles[0]).To(Equal(barycentric.Triangle{v1, v2, v0}))
		})
	})

	Context("point in the wedge of an obtuse vertex", func() {
		BeforeEach(func() {
			v0, v1, v2 = r3.Vec{X: 0, Y: 0}, r3.Vec{X: 4, Y: 0}, r3.Vec{X: -4, Y: 1}
			// outside both edges of v0, closest to the edge (v0, v1)
			q = r3.Vec{X: 1, Y: -5}
		})
		AfterEach(func() {
			v0, v1, v2 = r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 4, Y: 0, Z: 0}, r3.Vec{X: 0, Y: 4, Z: 0}
		})
		It("should split on the edge", func() {
			Expect(ok).To(BeTrue())
			Expect(triangles).To(HaveLen(2))
			Expect(triangles[0][0]).To(Equal(r3.Vec{X: 1}))
		})
	})

	Context("flat triangle", func() {
		BeforeEach(func() {
			q = r3.Vec{X: 1, Y: 1, Z: 1}
			v2 = r3.Vec{X: 8, Y: 0, Z: 0}
		})
		AfterEach(func() {
			v2 = r3.Vec{X: 0, Y: 4, Z: 0}
		})
		It("should fail", func() {
			Expect(ok).To(BeFalse())
			Expect(triangles).To(BeNil())
		})
	})
})
