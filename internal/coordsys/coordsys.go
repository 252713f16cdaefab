// Package coordsys defines the coordinate systems (frames of reference) of the kernel.
//
// A CoordSys is a shared handle: geometric objects keep a pointer to it, and two
// objects are expressed in the same frame iff they point to the same CoordSys.
// A CoordSys is either a root frame, optionally tied to a spatial reference (CRS),
// or derived from a reference frame by a transform model. A CoordSys is immutable
// once created, and safe to share between goroutines (reprojections through PROJ are serialized).
package coordsys

import (
	"fmt"
	"sync"

	"github.com/airbusgeo/geokernel/internal/transfo"
	"github.com/airbusgeo/geokernel/internal/utils"
	"github.com/airbusgeo/geokernel/internal/utils/affine"
	"github.com/airbusgeo/geokernel/internal/utils/proj"
	"github.com/airbusgeo/godal"
	"github.com/google/uuid"
)

type CoordSys struct {
	id    uuid.UUID
	name  string
	ref   *CoordSys
	toRef transfo.Model // maps coordinates of this frame into ref
	crs   *godal.SpatialRef
	srid  int

	pathsLock sync.Mutex
	paths     map[uuid.UUID]transfo.Chain
}

func newCoordSys(name string) *CoordSys {
	return &CoordSys{id: uuid.New(), name: name, paths: map[uuid.UUID]transfo.Chain{}}
}

// New creates a root coordinate system, not related to any other
func New(name string) *CoordSys {
	return newCoordSys(name)
}

// NewFromSpatialRef creates a root coordinate system tied to a CRS.
// Two CRS-tied roots are related through a reprojection.
func NewFromSpatialRef(name string, crs *godal.SpatialRef, srid int) *CoordSys {
	utils.Require(crs != nil, "NewFromSpatialRef: nil spatial reference")
	cs := newCoordSys(name)
	cs.crs, cs.srid = crs, srid
	return cs
}

// NewFromCRS creates a root coordinate system tied to a CRS given in epsg, proj4 or wkt format
func NewFromCRS(name, crsInput string) (*CoordSys, error) {
	crs, srid, err := proj.CRSFromUserInput(crsInput)
	if err != nil {
		return nil, fmt.Errorf("NewFromCRS.%w", err)
	}
	return NewFromSpatialRef(name, crs, srid), nil
}

// NewDerived creates a coordinate system whose coordinates are mapped into ref by toRef
func NewDerived(name string, ref *CoordSys, toRef transfo.Model) *CoordSys {
	utils.Require(ref != nil, "NewDerived(%s): nil reference", name)
	cs := newCoordSys(name)
	cs.ref, cs.toRef = ref, toRef
	return cs
}

// NewPixelFrame creates the pixel coordinate system of a raster georeferenced in ref by pixToRef
// (GDAL geotransform convention)
func NewPixelFrame(name string, ref *CoordSys, pixToRef *affine.Affine) *CoordSys {
	return NewDerived(name, ref, transfo.NewAffine(pixToRef).Simplified(transfo.DefaultSimplifyTolerance))
}

// ID returns the unique identifier of the coordinate system
func (cs *CoordSys) ID() uuid.UUID {
	return cs.id
}

// Name returns the name of the coordinate system
func (cs *CoordSys) Name() string {
	return cs.name
}

// Reference returns the reference frame, or nil for a root
func (cs *CoordSys) Reference() *CoordSys {
	return cs.ref
}

// ToReference returns the model mapping this frame into its reference (Identity for a root)
func (cs *CoordSys) ToReference() transfo.Model {
	if cs.ref == nil {
		return transfo.Identity()
	}
	return cs.toRef
}

// CRS returns the spatial reference of a CRS-tied root, or nil
func (cs *CoordSys) CRS() *godal.SpatialRef {
	return cs.crs
}

// SRID returns the SRID of the spatial reference of the root frame, or 0 if unknown
func (cs *CoordSys) SRID() int {
	return cs.Root().srid
}

// Root returns the root frame of cs
func (cs *CoordSys) Root() *CoordSys {
	r := cs
	for r.ref != nil {
		r = r.ref
	}
	return r
}

// String implements Stringer
func (cs *CoordSys) String() string {
	return cs.name
}
