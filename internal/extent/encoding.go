package extent

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/utils"
	"github.com/airbusgeo/geokernel/internal/utils/proj"
	"github.com/twpayne/go-geom"
)

// BinarySize is the size of the binary encoding of an extent: xMin, xMax, yMin, yMax as float64
const BinarySize = 32

// NewExtentFromBytes decodes an extent encoded by MarshalBinary, expressed in cs
// Only returns InvalidEncoding
func NewExtentFromBytes(data []byte, cs *coordsys.CoordSys, opts ...Option) (*Extent, error) {
	e := NewExtent(cs, opts...)
	if err := e.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return e, nil
}

// MustFromBytes decodes an extent encoded by MarshalBinary, expressed in cs
// Precondition: data is a valid encoding
func MustFromBytes(data []byte, cs *coordsys.CoordSys, opts ...Option) *Extent {
	e, err := NewExtentFromBytes(data, cs, opts...)
	utils.Require(err == nil, "MustFromBytes: %v", err)
	return e
}

// MarshalBinary implements encoding.BinaryMarshaler, in the native byte order.
// Only a defined extent can be encoded.
func (e *Extent) MarshalBinary() ([]byte, error) {
	return e.MarshalBinaryOrder(binary.NativeEndian)
}

// MarshalBinaryOrder encodes the extent as four float64 (xMin, xMax, yMin, yMax) in the given byte order
func (e *Extent) MarshalBinaryOrder(order binary.ByteOrder) ([]byte, error) {
	if !e.IsDefined() {
		return nil, geokernel.NewInvalidEncoding("MarshalBinary: extent is not defined")
	}
	b := make([]byte, BinarySize)
	for i, v := range []float64{e.xMin, e.xMax, e.yMin, e.yMax} {
		order.PutUint64(b[8*i:], math.Float64bits(v))
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, in the native byte order.
// The extent keeps its coordinate system and becomes defined.
// Only returns InvalidEncoding
func (e *Extent) UnmarshalBinary(data []byte) error {
	return e.UnmarshalBinaryOrder(binary.NativeEndian, data)
}

// UnmarshalBinaryOrder decodes four float64 (xMin, xMax, yMin, yMax) in the given byte order
// Only returns InvalidEncoding
func (e *Extent) UnmarshalBinaryOrder(order binary.ByteOrder, data []byte) error {
	if len(data) != BinarySize {
		return geokernel.NewInvalidEncoding("UnmarshalBinary: expecting %d bytes, got %d", BinarySize, len(data))
	}
	var v [4]float64
	for i := range v {
		v[i] = math.Float64frombits(order.Uint64(data[8*i:]))
	}
	if !(v[0] <= v[1]) || !(v[2] <= v[3]) {
		return geokernel.NewInvalidEncoding("UnmarshalBinary: [%v, %v]x[%v, %v] is not ordered", v[0], v[1], v[2], v[3])
	}
	e.xMin, e.xMax, e.yMin, e.yMax = v[0], v[1], v[2], v[3]
	e.xDefined, e.yDefined = true, true
	return nil
}

// NewExtentFromBounds creates the extent of the bounds, expressed in cs.
// Empty bounds give an undefined extent.
func NewExtentFromBounds(b *geom.Bounds, cs *coordsys.CoordSys, opts ...Option) *Extent {
	e := NewExtent(cs, opts...)
	if b == nil || b.IsEmpty() {
		return e
	}
	e.xMin, e.xMax, e.xDefined = b.Min(0), b.Max(0), true
	e.yMin, e.yMax, e.yDefined = b.Min(1), b.Max(1), true
	return e
}

// Bounds returns the XY bounds of the extent (empty if the extent is not defined)
func (e *Extent) Bounds() *geom.Bounds {
	if !e.IsDefined() {
		return geom.NewBounds(geom.XY)
	}
	return geom.NewBounds(geom.XY).Set(e.xMin, e.yMin, e.xMax, e.yMax)
}

// Polygon returns the extent as a polygon, with the SRID of the coordinate system
// Precondition: extent is defined
func (e *Extent) Polygon() *geom.Polygon {
	ring := e.ring("Polygon")
	return ring.Polygon()
}

func (e *Extent) ring(op string) proj.Ring {
	utils.Require(e.IsDefined(), "%s: extent is not defined", op)
	return proj.NewRingFromRectangle(e.cs.SRID(), e.xMin, e.yMin, e.xMax, e.yMax)
}

// Value implements the driver.Valuer interface: the extent is stored as an EWKB polygon
func (e *Extent) Value() (driver.Value, error) {
	if !e.IsDefined() {
		return nil, nil
	}
	ring := e.ring("Value")
	return ring.Value()
}

// Scan implements the sql.Scanner interface.
// The polygon is read in the coordinate system of the extent: create it with NewExtent(cs) before scanning.
// A NULL value makes the extent undefined.
func (e *Extent) Scan(src interface{}) error {
	utils.Require(e.cs != nil, "Scan: extent has no coordinate system")
	var ring proj.Ring
	if err := ring.Scan(src); err != nil {
		return fmt.Errorf("Extent.Scan.%w", geokernel.NewInvalidEncoding("%v", err))
	}
	if len(ring.FlatCoords()) == 0 {
		e.Clear()
		return nil
	}
	if srid := e.cs.SRID(); srid != 0 && ring.SRID() != 0 && srid != ring.SRID() {
		return geokernel.NewInvalidEncoding("Extent.Scan: SRID %d does not match the coordinate system %s (SRID %d)", ring.SRID(), e.cs, srid)
	}
	b := ring.Bounds()
	e.xMin, e.xMax, e.xDefined = b.Min(0), b.Max(0), true
	e.yMin, e.yMax, e.yDefined = b.Min(1), b.Max(1), true
	return nil
}
