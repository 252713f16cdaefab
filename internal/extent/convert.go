package extent

import (
	"fmt"
	"math"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/log"
	"github.com/airbusgeo/geokernel/internal/utils"
	"github.com/airbusgeo/geokernel/internal/utils/proj"
	"go.uber.org/zap"
)

// ChangeCoordSys re-expresses the extent in cs, as the smallest extent containing the image of the current one.
// If the transform does not preserve linearity, the edges of the extent are densified
// before being transformed, so that the bulges of their images are taken into account.
// On error, the extent is unchanged.
// Precondition: both axes are defined, or both are undefined
func (e *Extent) ChangeCoordSys(cs *coordsys.CoordSys) error {
	utils.Require(cs != nil, "ChangeCoordSys: nil coordinate system")
	if e.cs == cs {
		return nil
	}
	if !e.xDefined && !e.yDefined {
		e.cs = cs
		return nil
	}
	utils.Require(e.IsDefined(), "ChangeCoordSys: %v is defined on one axis only", e)

	tr, err := e.transformTo(cs)
	if err != nil {
		return fmt.Errorf("ChangeCoordSys.%w", err)
	}

	res := Extent{cs: cs, transformer: e.transformer}
	switch {
	case tr.IsIdentity():
		res.xMin, res.xMax, res.xDefined = e.xMin, e.xMax, true
		res.yMin, res.yMax, res.yDefined = e.yMin, e.yMax, true
	case tr.PreservesLinearity():
		corners := e.corners()
		if err := tr.TransformFlat(corners); err != nil {
			return fmt.Errorf("ChangeCoordSys.%w", err)
		}
		for i := 0; i < len(corners); i += 2 {
			res.addXY(corners[i], corners[i+1])
		}
	default:
		ring := proj.NewRingFromRectangle(e.cs.SRID(), e.xMin, e.yMin, e.xMax, e.yMax)
		shape, err := proj.TransformRingDirect(ring, cs.SRID(), tr.Transform, proj.AccuracyPc)
		if err != nil {
			return fmt.Errorf("ChangeCoordSys.%w", err)
		}
		bounds := shape.Bounds()
		log.Default().Debug("extent: non linear conversion",
			zap.Stringer("from", e.cs), zap.Stringer("to", cs), zap.Int("points", shape.NumCoords()))
		res.addXY(bounds.Min(0), bounds.Min(1))
		res.addXY(bounds.Min(0), bounds.Max(1))
		res.addXY(bounds.Max(0), bounds.Max(1))
		res.addXY(bounds.Max(0), bounds.Min(1))
	}
	*e = res
	return nil
}

// CalculateApproxExtentIn returns an estimate of the extent expressed in cs, centered on the image
// of the center, whose width (resp. height) is the mean length of the images of the horizontal
// (resp. vertical) edges.
// Unlike ChangeCoordSys, the result is not guaranteed to contain the image of the extent, but it
// keeps its aspect ratio under rotations and shears.
// Precondition: extent is defined
func (e *Extent) CalculateApproxExtentIn(cs *coordsys.CoordSys) (*Extent, error) {
	utils.Require(e.IsDefined(), "CalculateApproxExtentIn: extent is not defined")
	utils.Require(cs != nil, "CalculateApproxExtentIn: nil coordinate system")
	if e.cs == cs {
		return e.Clone(), nil
	}
	transform, err := e.transformTo(cs)
	if err != nil {
		return nil, fmt.Errorf("CalculateApproxExtentIn.%w", err)
	}

	pts := append(e.corners(), (e.xMin+e.xMax)/2, (e.yMin+e.yMax)/2)
	if err := transform.TransformFlat(pts); err != nil {
		return nil, fmt.Errorf("CalculateApproxExtentIn.%w", err)
	}
	bl, tl, tr, br, center := pts[0:2], pts[2:4], pts[4:6], pts[6:8], pts[8:10]
	dist := func(a, b []float64) float64 { return math.Hypot(b[0]-a[0], b[1]-a[1]) }
	halfWidth := (dist(bl, br) + dist(tl, tr)) / 4
	halfHeight := (dist(bl, tl) + dist(br, tr)) / 4

	return NewExtentFromMinMax(center[0]-halfWidth, center[1]-halfHeight, center[0]+halfWidth, center[1]+halfHeight,
		cs, WithTransformer(e.transformer)), nil
}

// corners returns the flat coordinates of the bottom-left, top-left, top-right and bottom-right corners
func (e *Extent) corners() []float64 {
	return []float64{e.xMin, e.yMin, e.xMin, e.yMax, e.xMax, e.yMax, e.xMax, e.yMin}
}
