package proj

import (
	"database/sql/driver"
	"fmt"

	"github.com/airbusgeo/geokernel/internal/utils"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
)

// FlatCoordToXY splits flat into two arrays x, y
func FlatCoordToXY(flat []float64) (x []float64, y []float64) {
	n := len(flat) / 2
	x = make([]float64, n)
	y = make([]float64, n)
	for i, j := 0, 0; i < n; i, j = i+1, j+2 {
		x[i], y[i] = flat[j], flat[j+1]
	}
	return x, y
}

// XYToFlatCoord merge two arrays x, y into one, interleaving coordinates.
func XYToFlatCoord(x []float64, y []float64) []float64 {
	n := len(x)
	flat := make([]float64, 2*n)
	for i, j := 0, 0; i < n; i, j = i+1, j+2 {
		flat[j], flat[j+1] = x[i], y[i]
	}
	return flat
}

// Ring is a closed XY linear ring implementing Scan & Value
// Warning: SRID is not reliable
type Ring struct {
	geom.LinearRing
}

// NewRingFlat create a new ring
func NewRingFlat(srid int, flatCoords []float64) Ring {
	r := geom.NewLinearRingFlat(geom.XY, flatCoords)
	r.SetSRID(srid)
	return Ring{*r}
}

// NewRingFromRectangle returns the closed ring bottom-left, top-left, top-right, bottom-right, bottom-left
func NewRingFromRectangle(srid int, xMin, yMin, xMax, yMax float64) Ring {
	return NewRingFlat(srid, []float64{xMin, yMin, xMin, yMax, xMax, yMax, xMax, yMin, xMin, yMin})
}

// Equal returns true if the rings have the same SRID and the same FlatCoords
func (ring *Ring) Equal(ring2 *Ring) bool {
	return ring.SRID() == ring2.SRID() && utils.SliceFloat64Equal(ring.FlatCoords(), ring2.FlatCoords())
}

// Bounds returns the tight XY bounds of the ring
func (ring *Ring) Bounds() *geom.Bounds {
	return geom.NewBounds(geom.XY).Extend(&ring.LinearRing)
}

// Polygon returns the polygon whose shell is the ring
func (ring *Ring) Polygon() *geom.Polygon {
	polygon := geom.NewPolygonFlat(geom.XY, ring.FlatCoords(), []int{len(ring.FlatCoords())})
	polygon.SetSRID(ring.SRID())
	return polygon
}

// Value implements the driver.Valuer interface.
func (ring *Ring) Value() (driver.Value, error) {
	return ewkbhex.Encode(ring.Polygon(), ewkbhex.NDR)
}

// Scan implements the sql.Scanner interface.
func (ring *Ring) Scan(src interface{}) error {
	if src == nil {
		*ring = Ring{}
		return nil
	}

	var s string
	switch src := src.(type) {
	case []uint8:
		s = string(src)
	case string:
		s = src
	default:
		return fmt.Errorf("cannot convert %T to Ring", src)
	}
	g, err := ewkbhex.Decode(s)
	if err != nil {
		return err
	}
	polygon, ok := g.(*geom.Polygon)
	if !ok || polygon.NumLinearRings() == 0 {
		return fmt.Errorf("ring.Scan: data is not a polygon")
	}
	ring.LinearRing = *polygon.LinearRing(0)
	ring.SetSRID(polygon.SRID())
	return nil
}
