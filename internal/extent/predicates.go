package extent

import (
	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/utils"
)

// DoTheyOverlap returns true if the interiors of the extents intersect.
// Extents sharing only an edge or a corner do not overlap.
func (e *Extent) DoTheyOverlap(other *Extent) bool {
	o := e.mustExpressExtent("DoTheyOverlap", other)
	return e.IsDefined() && o.IsDefined() &&
		e.xMax > o.xMin && e.xMin < o.xMax &&
		e.yMax > o.yMin && e.yMin < o.yMax
}

// OuterOverlaps returns true if the extent, grown by utils.Epsilon, overlaps other.
// Touching extents overlap.
func (e *Extent) OuterOverlaps(other *Extent) bool {
	return e.outerOverlaps("OuterOverlaps", other, utils.Epsilon)
}

// OuterOverlapsEps returns true if the extent, grown by eps, overlaps other
func (e *Extent) OuterOverlapsEps(other *Extent, eps float64) bool {
	return e.outerOverlaps("OuterOverlapsEps", other, eps)
}

func (e *Extent) outerOverlaps(op string, other *Extent, eps float64) bool {
	o := e.mustExpressExtent(op, other)
	return e.IsDefined() && o.IsDefined() &&
		utils.GreaterOrEqualEps(e.xMax, o.xMin, eps) && utils.LessOrEqualEps(e.xMin, o.xMax, eps) &&
		utils.GreaterOrEqualEps(e.yMax, o.yMin, eps) && utils.LessOrEqualEps(e.yMin, o.yMax, eps)
}

// InnerOverlaps returns true if the extent, shrunk by utils.Epsilon, overlaps other.
// Only extents overlapping by more than the tolerance overlap.
func (e *Extent) InnerOverlaps(other *Extent) bool {
	return e.innerOverlaps("InnerOverlaps", other, utils.Epsilon)
}

// InnerOverlapsEps returns true if the extent, shrunk by eps, overlaps other
func (e *Extent) InnerOverlapsEps(other *Extent, eps float64) bool {
	return e.innerOverlaps("InnerOverlapsEps", other, eps)
}

func (e *Extent) innerOverlaps(op string, other *Extent, eps float64) bool {
	o := e.mustExpressExtent(op, other)
	return e.IsDefined() && o.IsDefined() &&
		utils.GreaterEps(e.xMax, o.xMin, eps) && utils.LessEps(e.xMin, o.xMax, eps) &&
		utils.GreaterEps(e.yMax, o.yMin, eps) && utils.LessEps(e.yMin, o.yMax, eps)
}

// Contains returns true if other is strictly inside the extent.
// An extent touching the boundary is not contained.
func (e *Extent) Contains(other *Extent) bool {
	o := e.mustExpressExtent("Contains", other)
	return e.IsDefined() && o.IsDefined() &&
		o.xMin > e.xMin && o.xMax < e.xMax &&
		o.yMin > e.yMin && o.yMax < e.yMax
}

// InnerContains returns true if other is inside the extent shrunk by utils.Epsilon
func (e *Extent) InnerContains(other *Extent) bool {
	return e.innerContains("InnerContains", other, utils.Epsilon)
}

// InnerContainsEps returns true if other is inside the extent shrunk by eps
func (e *Extent) InnerContainsEps(other *Extent, eps float64) bool {
	return e.innerContains("InnerContainsEps", other, eps)
}

func (e *Extent) innerContains(op string, other *Extent, eps float64) bool {
	o := e.mustExpressExtent(op, other)
	return e.IsDefined() && o.IsDefined() &&
		utils.GreaterEps(o.xMin, e.xMin, eps) && utils.LessEps(o.xMax, e.xMax, eps) &&
		utils.GreaterEps(o.yMin, e.yMin, eps) && utils.LessEps(o.yMax, e.yMax, eps)
}

// OuterContains returns true if other is inside the extent grown by utils.Epsilon.
// An extent touching the boundary is contained.
func (e *Extent) OuterContains(other *Extent) bool {
	return e.outerContains("OuterContains", other, utils.Epsilon)
}

// OuterContainsEps returns true if other is inside the extent grown by eps
func (e *Extent) OuterContainsEps(other *Extent, eps float64) bool {
	return e.outerContains("OuterContainsEps", other, eps)
}

func (e *Extent) outerContains(op string, other *Extent, eps float64) bool {
	o := e.mustExpressExtent(op, other)
	return e.IsDefined() && o.IsDefined() &&
		utils.GreaterOrEqualEps(o.xMin, e.xMin, eps) && utils.LessOrEqualEps(o.xMax, e.xMax, eps) &&
		utils.GreaterOrEqualEps(o.yMin, e.yMin, eps) && utils.LessOrEqualEps(o.yMax, e.yMax, eps)
}

// IsPointIn returns true if l is inside the extent or on its boundary
func (e *Extent) IsPointIn(l coordsys.Location) bool {
	x, y := e.mustExpress("IsPointIn", l)
	return e.IsDefined() && x >= e.xMin && x <= e.xMax && y >= e.yMin && y <= e.yMax
}

// IsPointOuterIn returns true if l is inside the extent grown by eps
func (e *Extent) IsPointOuterIn(l coordsys.Location, eps float64) bool {
	x, y := e.mustExpress("IsPointOuterIn", l)
	return e.IsDefined() &&
		utils.GreaterOrEqualEps(x, e.xMin, eps) && utils.LessOrEqualEps(x, e.xMax, eps) &&
		utils.GreaterOrEqualEps(y, e.yMin, eps) && utils.LessOrEqualEps(y, e.yMax, eps)
}

// IsPointInnerIn returns true if l is inside the extent shrunk by eps
func (e *Extent) IsPointInnerIn(l coordsys.Location, eps float64) bool {
	x, y := e.mustExpress("IsPointInnerIn", l)
	return e.IsDefined() &&
		utils.GreaterEps(x, e.xMin, eps) && utils.LessEps(x, e.xMax, eps) &&
		utils.GreaterEps(y, e.yMin, eps) && utils.LessEps(y, e.yMax, eps)
}
