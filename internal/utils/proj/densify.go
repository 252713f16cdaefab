package proj

import (
	"fmt"
	"math"

	"github.com/airbusgeo/geokernel/internal/log"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"go.uber.org/zap"
)

// Projection maps a point of a coordinate system into another
type Projection func(x, y float64) (float64, float64, error)

const (
	// AccuracyPc is the tolerated deviation between a transformed edge and its densified polyline,
	// relative to the length of the transformed edge
	AccuracyPc          = 1e-6
	densifyMinRecursion = 2
	densifyMaxRecursion = 10
)

// TransformRingDirect transforms the ring with project, densifying every edge so that
// the returned polyline follows the image of the edge within accuracyPc of its length.
// The image of an edge by a non-linear projection is a curve: transforming the vertices
// only would cut the bulges of the curves.
func TransformRingDirect(ring Ring, srid int, project Projection, accuracyPc float64) (Ring, error) {
	flat := ring.FlatCoords()
	n := len(flat) / 2
	if n == 0 {
		return NewRingFlat(srid, nil), nil
	}
	tx, ty := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		var err error
		if tx[i], ty[i], err = project(flat[2*i], flat[2*i+1]); err != nil {
			return Ring{}, fmt.Errorf("TransformRingDirect.%w", err)
		}
	}

	pts := make([]float64, 0, 2*n)
	for i := 0; i+1 < n; i++ {
		pts = append(pts, tx[i], ty[i])
		accuracy := math.Hypot(tx[i+1]-tx[i], ty[i+1]-ty[i]) * accuracyPc
		mid, err := densifyEdge(project,
			flat[2*i], flat[2*i+1], flat[2*i+2], flat[2*i+3], tx[i], ty[i], tx[i+1], ty[i+1], accuracy, 0)
		if err != nil {
			return Ring{}, fmt.Errorf("TransformRingDirect.%w", err)
		}
		pts = append(pts, mid...)
	}
	pts = append(pts, tx[n-1], ty[n-1])
	return NewRingFlat(srid, pts), nil
}

// densifyEdge returns an array of flat points so that the distance between the image of
// the segment ([x1, y1], [x2, y2]) and the polyline ([tx1, ty1], []returnedValue, [tx2, ty2]) is lower than accuracy
func densifyEdge(project Projection, x1, y1, x2, y2, tx1, ty1, tx2, ty2, accuracy float64, depth int) ([]float64, error) {
	xm, ym := (x1+x2)/2, (y1+y2)/2
	txm, tym, err := project(xm, ym)
	if err != nil {
		return nil, err
	}

	if depth >= densifyMinRecursion {
		distance := xy.DistanceFromPointToLine(geom.Coord{txm, tym}, geom.Coord{tx1, ty1}, geom.Coord{tx2, ty2})
		if distance <= accuracy {
			return nil, nil
		}
		if depth == densifyMaxRecursion {
			log.Default().Debug("densify: max number of recursions reached",
				zap.Float64s("edge", []float64{x1, y1, x2, y2}), zap.Float64("distance", distance), zap.Float64("accuracy", accuracy))
			return []float64{txm, tym}, nil
		}
	}

	left, err := densifyEdge(project, x1, y1, xm, ym, tx1, ty1, txm, tym, accuracy, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := densifyEdge(project, xm, ym, x2, y2, txm, tym, tx2, ty2, accuracy, depth+1)
	if err != nil {
		return nil, err
	}
	return append(append(left, txm, tym), right...), nil
}
