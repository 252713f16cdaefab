package extent_test

import (
	"math"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/coordsys/mocks"
	"github.com/airbusgeo/geokernel/internal/extent"
	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/transfo"
	"github.com/airbusgeo/geokernel/internal/utils/affine"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
)

var _ = Describe("ChangeCoordSys", func() {
	var (
		rotated = coordsys.NewDerived("rotated", world, transfo.NewSimilitude(1, math.Pi/4, 0, 0))
		pixel   = coordsys.NewPixelFrame("pixel", world, affine.Translation(100, 200).Multiply(affine.Scale(0.5, -0.5)))

		e *extent.Extent
	)

	BeforeEach(func() {
		e = extent.NewExtentFromMinMax(1.5, 3.25, 2.75, 7.125, world)
	})

	It("should come back to the same bounds through a stretch", func() {
		Expect(e.ChangeCoordSys(scaled)).To(Succeed())
		Expect(e.CoordSys()).To(BeIdenticalTo(scaled))
		expectBounds(e, -4.25, 3.21875, -3.625, 4.1875, 1e-12)
		Expect(e.ChangeCoordSys(world)).To(Succeed())
		expectBounds(e, 1.5, 3.25, 2.75, 7.125, 1e-12)
	})

	It("should come back to the same bounds through a pixel frame", func() {
		Expect(e.ChangeCoordSys(pixel)).To(Succeed())
		expectBounds(e, -197, 385.75, -194.5, 393.5, 1e-9)
		Expect(e.ChangeCoordSys(world)).To(Succeed())
		Expect(e.IsEqualTo(extent.NewExtentFromMinMax(1.5, 3.25, 2.75, 7.125, world))).To(BeTrue())
	})

	It("should bound the rotated corners", func() {
		r := extent.NewExtentFromMinMax(0, 0, 1, 1, rotated)
		Expect(r.ChangeCoordSys(world)).To(Succeed())
		expectBounds(r, -math.Sqrt2/2, 0, math.Sqrt2/2, math.Sqrt2, 1e-12)
	})

	It("should rebind an undefined extent", func() {
		u := extent.NewExtent(world)
		Expect(u.ChangeCoordSys(coordsys.New("elsewhere"))).To(Succeed())
		Expect(u.CoordSys().Name()).To(Equal("elsewhere"))
		Expect(u.IsDefined()).To(BeFalse())
	})

	It("should require both axes", func() {
		u := extent.NewExtent(world)
		u.SetXMin(1)
		expectPrecondition(func() { u.ChangeCoordSys(scaled) })
	})

	It("should fail without transform path and be unchanged", func() {
		err := e.ChangeCoordSys(coordsys.New("elsewhere"))
		Expect(geokernel.IsError(err, geokernel.NoTransformPath)).To(BeTrue())
		Expect(e.CoordSys()).To(BeIdenticalTo(world))
		expectBounds(e, 1.5, 3.25, 2.75, 7.125, 0)
	})

	It("should approximate the extent", func() {
		r := extent.NewExtentFromMinMax(0, 0, 2, 2, rotated)
		approx, err := r.CalculateApproxExtentIn(world)
		Expect(err).To(BeNil())
		Expect(approx.CoordSys()).To(BeIdenticalTo(world))
		expectBounds(approx, -1, math.Sqrt2-1, 1, math.Sqrt2+1, 1e-12)
		// unchanged
		expectBounds(r, 0, 0, 2, 2, 0)
		Expect(r.CoordSys()).To(BeIdenticalTo(rotated))
	})

	It("should approximate through a stretch as the exact conversion", func() {
		approx, err := e.CalculateApproxExtentIn(scaled)
		Expect(err).To(BeNil())
		expectBounds(approx, -4.25, 3.21875, -3.625, 4.1875, 1e-12)
	})
})

var _ = Describe("ChangeCoordSys dispatch", func() {
	var (
		other         = coordsys.New("other")
		mockTr        *mocks.Transformer
		mockTransform *mocks.Transform

		preservesLinearity bool
		isIdentity         bool
		transformBetweenErr error

		e   *extent.Extent
		err error
	)

	BeforeEach(func() {
		mockTr = new(mocks.Transformer)
		mockTransform = new(mocks.Transform)
		preservesLinearity = true
		isIdentity = false
		transformBetweenErr = nil
		e = extent.NewExtentFromMinMax(-1, 0, 1, 1, world, extent.WithTransformer(mockTr))
	})

	JustBeforeEach(func() {
		if transformBetweenErr != nil {
			mockTr.On("TransformBetween", world, other).Return(nil, transformBetweenErr)
		} else {
			mockTr.On("TransformBetween", world, other).Return(mockTransform, nil)
		}
		mockTransform.On("IsIdentity").Return(isIdentity)
		mockTransform.On("PreservesLinearity").Return(preservesLinearity)
		mockTransform.On("TransformFlat", mock.Anything).Return(func(flat []float64) error {
			for i := 0; i < len(flat); i += 2 {
				flat[i+1] += flat[i] * flat[i]
			}
			return nil
		})
		mockTransform.On("Transform", mock.Anything, mock.Anything).Return(func(x, y float64) (float64, float64, error) {
			return x, y + x*x, nil
		})
		err = e.ChangeCoordSys(other)
	})

	Context("linear transform", func() {
		It("should transform the four corners only", func() {
			Expect(err).To(BeNil())
			mockTransform.AssertNumberOfCalls(GinkgoT(), "TransformFlat", 1)
			mockTransform.AssertNotCalled(GinkgoT(), "Transform", mock.Anything, mock.Anything)
			// the bottom of the parabola is missed
			expectBounds(e, -1, 1, 1, 2, 0)
			Expect(e.CoordSys()).To(BeIdenticalTo(other))
		})
	})

	Context("non linear transform", func() {
		BeforeEach(func() {
			preservesLinearity = false
		})
		It("should follow the images of the edges", func() {
			Expect(err).To(BeNil())
			mockTransform.AssertNotCalled(GinkgoT(), "TransformFlat", mock.Anything)
			Expect(len(mockTransform.Calls)).To(BeNumerically(">", 8))
			expectBounds(e, -1, 0, 1, 2, 0)
		})
	})

	Context("identity", func() {
		BeforeEach(func() {
			isIdentity = true
		})
		It("should only rebind", func() {
			Expect(err).To(BeNil())
			mockTransform.AssertNotCalled(GinkgoT(), "TransformFlat", mock.Anything)
			mockTransform.AssertNotCalled(GinkgoT(), "Transform", mock.Anything, mock.Anything)
			expectBounds(e, -1, 0, 1, 1, 0)
			Expect(e.CoordSys()).To(BeIdenticalTo(other))
		})
	})

	Context("no transform", func() {
		BeforeEach(func() {
			transformBetweenErr = geokernel.NewNoTransformPath("world", "other")
		})
		It("should return the error", func() {
			Expect(geokernel.IsError(err, geokernel.NoTransformPath)).To(BeTrue())
			Expect(e.CoordSys()).To(BeIdenticalTo(world))
		})
	})
})

var _ = Describe("ChangeCoordSys between CRS", func() {
	var lonlat, utm *coordsys.CoordSys

	BeforeEach(func() {
		var err error
		lonlat, err = coordsys.NewFromCRS("lonlat", "4326")
		Expect(err).To(BeNil())
		utm, err = coordsys.NewFromCRS("utm31n", "32631")
		Expect(err).To(BeNil())
	})

	It("should contain the images of the corners", func() {
		e := extent.NewExtentFromMinMax(1, 40, 5, 50, lonlat)
		corners := extent.NewExtent(utm)
		for _, l := range []coordsys.Location{e.Origin(), e.Corner(),
			coordsys.NewLocation(1, 50, lonlat), coordsys.NewLocation(5, 40, lonlat)} {
			corners.Add(l)
		}
		Expect(e.ChangeCoordSys(utm)).To(Succeed())
		Expect(e.OuterContains(corners)).To(BeTrue())
		// the parallels are curved: the image of the 40°N edge goes below its ends
		Expect(e.YMin()).To(BeNumerically("<", corners.YMin()))
	})
})
