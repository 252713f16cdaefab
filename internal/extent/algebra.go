package extent

import (
	"math"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/utils"
)

// Add extends the extent to include l (re-expressed in the coordinate system of the extent if needed)
func (e *Extent) Add(l coordsys.Location) {
	x, y := e.mustExpress("Add", l)
	e.addXY(x, y)
}

func (e *Extent) addXY(x, y float64) {
	if e.xDefined {
		e.xMin, e.xMax = math.Min(e.xMin, x), math.Max(e.xMax, x)
	} else {
		e.xMin, e.xMax, e.xDefined = x, x, true
	}
	if e.yDefined {
		e.yMin, e.yMax = math.Min(e.yMin, y), math.Max(e.yMax, y)
	} else {
		e.yMin, e.yMax, e.yDefined = y, y, true
	}
}

// AddExtent extends the extent to include other (re-expressed in the coordinate system of the extent if needed).
// Each axis is merged independently: an axis undefined in other is left unchanged.
func (e *Extent) AddExtent(other *Extent) {
	o := e.mustExpressExtent("AddExtent", other)
	if o.xDefined {
		if e.xDefined {
			e.xMin, e.xMax = math.Min(e.xMin, o.xMin), math.Max(e.xMax, o.xMax)
		} else {
			e.xMin, e.xMax, e.xDefined = o.xMin, o.xMax, true
		}
	}
	if o.yDefined {
		if e.yDefined {
			e.yMin, e.yMax = math.Min(e.yMin, o.yMin), math.Max(e.yMax, o.yMax)
		} else {
			e.yMin, e.yMax, e.yDefined = o.yMin, o.yMax, true
		}
	}
}

// Intersect shrinks the extent to the common part with other.
// If one of the extents is undefined or if they do not intersect, the extent becomes undefined.
func (e *Extent) Intersect(other *Extent) {
	o := e.mustExpressExtent("Intersect", other)
	if !e.IsDefined() || !o.IsDefined() {
		e.Clear()
		return
	}
	xMin, xMax := math.Max(e.xMin, o.xMin), math.Min(e.xMax, o.xMax)
	yMin, yMax := math.Max(e.yMin, o.yMin), math.Min(e.yMax, o.yMax)
	if xMin > xMax || yMin > yMax {
		e.Clear()
		return
	}
	e.xMin, e.xMax, e.yMin, e.yMax = xMin, xMax, yMin, yMax
}

// Differentiate removes other from the extent, as long as the result remains an axis-aligned box:
//   - if the extent is inside other, it becomes undefined,
//   - if its Y range is inside the Y range of other, the X range is clipped on one side only,
//   - if its X range is inside the X range of other, the Y range is clipped on one side only,
//   - otherwise, the extent is unchanged.
//
// When other crosses the extent, only the upper side is clipped and the result is not the
// smallest box containing the difference.
// Differentiating an undefined extent or against an undefined extent is a no-op.
func (e *Extent) Differentiate(other *Extent) {
	o := e.mustExpressExtent("Differentiate", other)
	if !e.IsDefined() || !o.IsDefined() {
		return
	}
	xIn := o.xMin <= e.xMin && e.xMax <= o.xMax
	yIn := o.yMin <= e.yMin && e.yMax <= o.yMax
	if xIn && yIn {
		e.Clear()
		return
	}

	xMin, xMax, yMin, yMax := e.xMin, e.xMax, e.yMin, e.yMax
	switch {
	case yIn:
		if o.xMin > xMin && o.xMin < xMax {
			xMax = o.xMin
		} else if o.xMax > xMin && o.xMax < xMax {
			xMin = o.xMax
		}
	case xIn:
		if o.yMin > yMin && o.yMin < yMax {
			yMax = o.yMin
		} else if o.yMax > yMin && o.yMax < yMax {
			yMin = o.yMax
		}
	default:
		return
	}
	if xMin > xMax || yMin > yMax {
		e.Clear()
		return
	}
	e.xMin, e.xMax, e.yMin, e.yMax = xMin, xMax, yMin, yMax
}

// Equal returns true if other, expressed in the coordinate system of e, has the same
// defined axes and exactly the same bounds
func (e *Extent) Equal(other *Extent) bool {
	return e.isEqualTo("Equal", other, 0)
}

// IsEqualTo is Equal with a tolerance of utils.Epsilon on each bound
func (e *Extent) IsEqualTo(other *Extent) bool {
	return e.isEqualTo("IsEqualTo", other, utils.Epsilon)
}

// IsEqualToEps is Equal with a tolerance of eps on each bound
func (e *Extent) IsEqualToEps(other *Extent, eps float64) bool {
	return e.isEqualTo("IsEqualToEps", other, eps)
}

func (e *Extent) isEqualTo(op string, other *Extent, eps float64) bool {
	o := e.mustExpressExtent(op, other)
	if e.xDefined != o.xDefined || e.yDefined != o.yDefined {
		return false
	}
	if e.xDefined && !(utils.EqualEps(e.xMin, o.xMin, eps) && utils.EqualEps(e.xMax, o.xMax, eps)) {
		return false
	}
	if e.yDefined && !(utils.EqualEps(e.yMin, o.yMin, eps) && utils.EqualEps(e.yMax, o.yMax, eps)) {
		return false
	}
	return true
}
