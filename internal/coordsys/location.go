package coordsys

import (
	"fmt"

	"github.com/airbusgeo/geokernel/internal/utils"
)

// Location is a 2D point expressed in a coordinate system
type Location struct {
	X, Y float64
	CS   *CoordSys
}

// NewLocation creates a location
func NewLocation(x, y float64, cs *CoordSys) Location {
	utils.Require(cs != nil, "NewLocation: nil coordinate system")
	return Location{X: x, Y: y, CS: cs}
}

// ExpressedIn returns the same location expressed in cs
func (l Location) ExpressedIn(cs *CoordSys) (Location, error) {
	if l.CS == cs {
		return l, nil
	}
	tr, err := DefaultTransformer.TransformBetween(l.CS, cs)
	if err != nil {
		return Location{}, fmt.Errorf("ExpressedIn.%w", err)
	}
	x, y, err := tr.Transform(l.X, l.Y)
	if err != nil {
		return Location{}, fmt.Errorf("ExpressedIn.%w", err)
	}
	return Location{X: x, Y: y, CS: cs}, nil
}

// String implements Stringer
func (l Location) String() string {
	return fmt.Sprintf("(%s, %s)@%s", utils.F64ToS(l.X), utils.F64ToS(l.Y), l.CS)
}
