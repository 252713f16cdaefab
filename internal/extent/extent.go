// Package extent implements the axis-aligned bounding box of the kernel, tied to a coordinate system.
//
// Each axis of an Extent is defined independently. An undefined extent is the identity of the
// union: adding a point or an extent to it yields exactly that point or extent.
//
// Binary operations accept operands expressed in any coordinate system: the operand is
// re-expressed in the coordinate system of the receiver, which is always authoritative.
// An Extent is not safe for concurrent mutation.
package extent

import (
	"fmt"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/utils"
)

type Extent struct {
	xMin, xMax float64
	yMin, yMax float64
	xDefined   bool
	yDefined   bool

	cs          *coordsys.CoordSys
	transformer coordsys.Transformer
}

// Option configures an Extent
type Option func(*Extent)

// WithTransformer sets the provider of the transforms between coordinate systems
// (default: coordsys.DefaultTransformer)
func WithTransformer(tr coordsys.Transformer) Option {
	return func(e *Extent) {
		e.transformer = tr
	}
}

// NewExtent creates an undefined extent expressed in cs
func NewExtent(cs *coordsys.CoordSys, opts ...Option) *Extent {
	utils.Require(cs != nil, "NewExtent: nil coordinate system")
	e := Extent{cs: cs, transformer: coordsys.DefaultTransformer}
	for _, opt := range opts {
		opt(&e)
	}
	return &e
}

// NewExtentFromMinMax creates a defined extent expressed in cs
// Preconditions: xMin <= xMax, yMin <= yMax
func NewExtentFromMinMax(xMin, yMin, xMax, yMax float64, cs *coordsys.CoordSys, opts ...Option) *Extent {
	utils.Require(xMin <= xMax && yMin <= yMax, "NewExtentFromMinMax: [%v, %v]x[%v, %v] is not ordered", xMin, xMax, yMin, yMax)
	e := NewExtent(cs, opts...)
	e.xMin, e.xMax, e.xDefined = xMin, xMax, true
	e.yMin, e.yMax, e.yDefined = yMin, yMax, true
	return e
}

// NewExtentFromLocations creates the extent from origin to corner, expressed in the coordinate system of origin.
// corner is re-expressed in this coordinate system.
// Precondition: origin <= corner on both axes
func NewExtentFromLocations(origin, corner coordsys.Location, opts ...Option) *Extent {
	e := NewExtent(origin.CS, opts...)
	cx, cy := e.mustExpress("NewExtentFromLocations", corner)
	utils.Require(origin.X <= cx && origin.Y <= cy, "NewExtentFromLocations: origin %v is not lower than corner %v", origin, corner)
	e.xMin, e.xMax, e.xDefined = origin.X, cx, true
	e.yMin, e.yMax, e.yDefined = origin.Y, cy, true
	return e
}

// CoordSys returns the coordinate system in which the extent is expressed
func (e *Extent) CoordSys() *coordsys.CoordSys {
	return e.cs
}

// IsDefined returns true if both axes are defined
func (e *Extent) IsDefined() bool {
	return e.xDefined && e.yDefined
}

// IsXDefined returns true if the X axis is defined
func (e *Extent) IsXDefined() bool {
	return e.xDefined
}

// IsYDefined returns true if the Y axis is defined
func (e *Extent) IsYDefined() bool {
	return e.yDefined
}

// IsEmpty returns true if the extent covers no area: undefined, or defined with a zero width or height
func (e *Extent) IsEmpty() bool {
	return !e.IsDefined() || e.xMin == e.xMax || e.yMin == e.yMax
}

// Clear makes the extent undefined, keeping its coordinate system
func (e *Extent) Clear() {
	e.xMin, e.xMax, e.yMin, e.yMax = 0, 0, 0, 0
	e.xDefined, e.yDefined = false, false
}

// XMin of the extent
// Precondition: X axis is defined
func (e *Extent) XMin() float64 {
	utils.Require(e.xDefined, "XMin: X axis is not defined")
	return e.xMin
}

// XMax of the extent
// Precondition: X axis is defined
func (e *Extent) XMax() float64 {
	utils.Require(e.xDefined, "XMax: X axis is not defined")
	return e.xMax
}

// YMin of the extent
// Precondition: Y axis is defined
func (e *Extent) YMin() float64 {
	utils.Require(e.yDefined, "YMin: Y axis is not defined")
	return e.yMin
}

// YMax of the extent
// Precondition: Y axis is defined
func (e *Extent) YMax() float64 {
	utils.Require(e.yDefined, "YMax: Y axis is not defined")
	return e.yMax
}

// SetXMin sets the lower X bound.
// If the X axis is not defined, both X bounds are set to v.
// Precondition: v <= XMax
func (e *Extent) SetXMin(v float64) {
	if !e.xDefined {
		e.xMin, e.xMax, e.xDefined = v, v, true
		return
	}
	utils.Require(v <= e.xMax, "SetXMin: %v > XMax (%v)", v, e.xMax)
	e.xMin = v
}

// SetXMax sets the upper X bound.
// If the X axis is not defined, both X bounds are set to v.
// Precondition: v >= XMin
func (e *Extent) SetXMax(v float64) {
	if !e.xDefined {
		e.xMin, e.xMax, e.xDefined = v, v, true
		return
	}
	utils.Require(v >= e.xMin, "SetXMax: %v < XMin (%v)", v, e.xMin)
	e.xMax = v
}

// SetYMin sets the lower Y bound.
// If the Y axis is not defined, both Y bounds are set to v.
// Precondition: v <= YMax
func (e *Extent) SetYMin(v float64) {
	if !e.yDefined {
		e.yMin, e.yMax, e.yDefined = v, v, true
		return
	}
	utils.Require(v <= e.yMax, "SetYMin: %v > YMax (%v)", v, e.yMax)
	e.yMin = v
}

// SetYMax sets the upper Y bound.
// If the Y axis is not defined, both Y bounds are set to v.
// Precondition: v >= YMin
func (e *Extent) SetYMax(v float64) {
	if !e.yDefined {
		e.yMin, e.yMax, e.yDefined = v, v, true
		return
	}
	utils.Require(v >= e.yMin, "SetYMax: %v < YMin (%v)", v, e.yMin)
	e.yMax = v
}

// Width of the extent
func (e *Extent) Width() float64 {
	return e.XMax() - e.XMin()
}

// Height of the extent
func (e *Extent) Height() float64 {
	return e.YMax() - e.YMin()
}

// Origin returns the lower-left corner
// Precondition: extent is defined
func (e *Extent) Origin() coordsys.Location {
	return coordsys.NewLocation(e.XMin(), e.YMin(), e.cs)
}

// Corner returns the upper-right corner
// Precondition: extent is defined
func (e *Extent) Corner() coordsys.Location {
	return coordsys.NewLocation(e.XMax(), e.YMax(), e.cs)
}

// Center of the extent
// Precondition: extent is defined
func (e *Extent) Center() coordsys.Location {
	return coordsys.NewLocation((e.XMin()+e.XMax())/2, (e.YMin()+e.YMax())/2, e.cs)
}

// Clone returns a copy of the extent, sharing the same coordinate system
func (e *Extent) Clone() *Extent {
	c := *e
	return &c
}

// String implements Stringer
func (e *Extent) String() string {
	axis := func(defined bool, lo, hi float64) string {
		if !defined {
			return "undefined"
		}
		return "[" + utils.F64ToS(lo) + ", " + utils.F64ToS(hi) + "]"
	}
	return fmt.Sprintf("%sx%s@%s", axis(e.xDefined, e.xMin, e.xMax), axis(e.yDefined, e.yMin, e.yMax), e.cs)
}

// transformTo returns the transform from the coordinate system of the extent to cs
func (e *Extent) transformTo(cs *coordsys.CoordSys) (coordsys.Transform, error) {
	return e.transformer.TransformBetween(e.cs, cs)
}

// mustExpress returns the coordinates of l in the coordinate system of the extent
// It panics if l cannot be expressed in this coordinate system.
func (e *Extent) mustExpress(op string, l coordsys.Location) (float64, float64) {
	if l.CS == e.cs {
		return l.X, l.Y
	}
	utils.Require(l.CS != nil, "%s: location without coordinate system", op)
	tr, err := e.transformer.TransformBetween(l.CS, e.cs)
	utils.Require(err == nil, "%s: %v", op, err)
	x, y, err := tr.Transform(l.X, l.Y)
	utils.Require(err == nil, "%s: %v", op, err)
	return x, y
}

// mustExpressExtent returns other, re-expressed in the coordinate system of the extent if needed.
// other is never modified.
// It panics if other cannot be expressed in this coordinate system.
func (e *Extent) mustExpressExtent(op string, other *Extent) *Extent {
	utils.Require(other != nil, "%s: nil extent", op)
	if other.cs == e.cs {
		return other
	}
	c := other.Clone()
	c.transformer = e.transformer
	err := c.ChangeCoordSys(e.cs)
	utils.Require(err == nil, "%s: %v", op, err)
	return c
}
