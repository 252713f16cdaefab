package coordsys_test

import (
	"context"
	"fmt"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/transfo"
	"github.com/airbusgeo/geokernel/internal/utils/affine"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("PathTo", func() {
	var (
		world, local, pixel, other *coordsys.CoordSys
		from, to                   *coordsys.CoordSys
		chain                      transfo.Chain
		err                        error
	)

	var (
		itShouldMap = func(x, y, ex, ey float64) {
			It(fmt.Sprintf("it should map (%v, %v)", x, y), func() {
				Expect(err).To(BeNil())
				tx, ty, err := chain.Transform(x, y)
				Expect(err).To(BeNil())
				Expect(tx).To(BeNumerically("~", ex, 1e-9))
				Expect(ty).To(BeNumerically("~", ey, 1e-9))
			})
		}
	)

	BeforeEach(func() {
		world = coordsys.New("world")
		local = coordsys.NewDerived("local", world, transfo.NewTranslation(100, 200))
		pixel = coordsys.NewPixelFrame("pixel", local, affine.Translation(0, 10).Multiply(affine.Scale(0.5, -0.5)))
		other = coordsys.NewDerived("other", world, transfo.NewStretch(2, 2, 0, 0))
	})

	JustBeforeEach(func() {
		chain, err = from.PathTo(to)
	})

	Context("same coordinate system", func() {
		BeforeEach(func() {
			from, to = local, local
		})
		It("it should be the identity", func() {
			Expect(err).To(BeNil())
			Expect(chain.IsIdentity()).To(BeTrue())
		})
	})

	Context("up to the reference", func() {
		BeforeEach(func() {
			from, to = pixel, world
		})
		itShouldMap(2, 4, 101, 208)
		It("it should be merged into a single linear model", func() {
			Expect(chain).To(HaveLen(1))
			Expect(chain.PreservesLinearity()).To(BeTrue())
			Expect(chain[0].Kind()).To(Equal(transfo.KindStretch))
		})
	})

	Context("down from the reference", func() {
		BeforeEach(func() {
			from, to = world, pixel
		})
		itShouldMap(101, 208, 2, 4)
	})

	Context("through a common ancestor", func() {
		BeforeEach(func() {
			from, to = other, pixel
		})
		// other(1, 1) -> world(2, 2) -> local(-98, -198) -> pixel(-196, 416)
		itShouldMap(1, 1, -196, 416)
	})

	Context("unrelated roots", func() {
		BeforeEach(func() {
			from, to = coordsys.New("a"), world
		})
		It("it should fail", func() {
			Expect(geokernel.IsError(err, geokernel.NoTransformPath)).To(BeTrue())
		})
	})

	It("it should be cached", func() {
		c1, err := pixel.PathTo(other)
		Expect(err).To(BeNil())
		c2, err := pixel.PathTo(other)
		Expect(err).To(BeNil())
		Expect(c2).To(Equal(c1))
	})
})

var _ = Describe("CRS roots", func() {
	var lonlat, utm *coordsys.CoordSys

	BeforeEach(func() {
		var err error
		lonlat, err = coordsys.NewFromCRS("wgs84", "4326")
		Expect(err).To(BeNil())
		utm, err = coordsys.NewFromCRS("utm31n", "epsg:32631")
		Expect(err).To(BeNil())
	})

	It("it should reproject between roots", func() {
		chain, err := lonlat.PathTo(utm)
		Expect(err).To(BeNil())
		Expect(chain.PreservesLinearity()).To(BeFalse())
		// central meridian of UTM 31 at the equator
		x, y, err := chain.Transform(3, 0)
		Expect(err).To(BeNil())
		Expect(x).To(BeNumerically("~", 500000, 1e-3))
		Expect(y).To(BeNumerically("~", 0, 1e-3))
		Expect(utm.SRID()).To(Equal(32631))
	})

	It("it should compose derived frames with the reprojection", func() {
		pixel := coordsys.NewPixelFrame("pixel", utm, affine.Translation(500000, 1000).Multiply(affine.Scale(10, -10)))
		chain, err := pixel.PathTo(lonlat)
		Expect(err).To(BeNil())
		Expect(chain).To(HaveLen(2))
		lon, lat, err := chain.Transform(0, 100)
		Expect(err).To(BeNil())
		Expect(lon).To(BeNumerically("~", 3, 1e-7))
		Expect(lat).To(BeNumerically("~", 0, 1e-7))
		Expect(pixel.SRID()).To(Equal(32631))
	})

	It("it should reject a wrong crs", func() {
		_, err := coordsys.NewFromCRS("bad", "epsg:abc")
		Expect(err).NotTo(BeNil())
	})
})

var _ = Describe("Location", func() {
	It("it should be expressed in another coordinate system", func() {
		world := coordsys.New("world")
		local := coordsys.NewDerived("local", world, transfo.NewSimilitude(1, 0, 5, 5))
		l, err := coordsys.NewLocation(1, 2, local).ExpressedIn(world)
		Expect(err).To(BeNil())
		Expect(l.X).To(BeNumerically("~", 6, 1e-12))
		Expect(l.Y).To(BeNumerically("~", 7, 1e-12))
		Expect(l.CS).To(BeIdenticalTo(world))
		Expect(l.String()).To(Equal("(6, 7)@world"))
	})

	It("it should fail without path", func() {
		_, err := coordsys.NewLocation(1, 2, coordsys.New("a")).ExpressedIn(coordsys.New("b"))
		Expect(geokernel.IsError(err, geokernel.NoTransformPath)).To(BeTrue())
	})

	It("it should require a coordinate system", func() {
		Expect(func() { coordsys.NewLocation(1, 2, nil) }).To(Panic())
	})
})

var _ = Describe("Registry", func() {
	var (
		ctx      = context.Background()
		registry *coordsys.Registry
	)

	BeforeEach(func() {
		registry = coordsys.NewRegistry()
	})

	It("it should intern by name", func() {
		world := registry.Register(ctx, coordsys.New("world"))
		Expect(registry.Register(ctx, coordsys.New("world"))).To(BeIdenticalTo(world))
		cs, err := registry.Lookup("world")
		Expect(err).To(BeNil())
		Expect(cs).To(BeIdenticalTo(world))
		cs, err = registry.ByID(world.ID())
		Expect(err).To(BeNil())
		Expect(cs).To(BeIdenticalTo(world))
	})

	It("it should create once", func() {
		calls := 0
		create := func() (*coordsys.CoordSys, error) {
			calls++
			return coordsys.New("world"), nil
		}
		cs1, err := registry.Intern(ctx, "world", create)
		Expect(err).To(BeNil())
		cs2, err := registry.Intern(ctx, "world", create)
		Expect(err).To(BeNil())
		Expect(cs2).To(BeIdenticalTo(cs1))
		Expect(calls).To(Equal(1))
	})

	It("it should reject a misnamed coordinate system", func() {
		_, err := registry.Intern(ctx, "world", func() (*coordsys.CoordSys, error) { return coordsys.New("other"), nil })
		Expect(geokernel.IsError(err, geokernel.PreconditionViolation)).To(BeTrue())
	})

	It("it should report unknown names", func() {
		_, err := registry.Lookup("nowhere")
		Expect(geokernel.IsError(err, geokernel.UnknownCoordSys)).To(BeTrue())
	})
})
