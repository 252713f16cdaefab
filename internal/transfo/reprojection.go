package transfo

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/utils/proj"
	"github.com/airbusgeo/godal"
)

// Reprojection transforms coordinates from one spatial reference to another using GDAL/PROJ.
// It does not preserve linearity: the image of a straight segment is usually a curve.
// A PROJ transformation is not reentrant: calls are serialized.
type Reprojection struct {
	src, dst *godal.SpatialRef
	lock     sync.Mutex
	tr       *godal.Transform
}

// NewReprojection creates a model transforming coordinates from src to dst.
// The spatial references are not owned by the model and must outlive it.
func NewReprojection(src, dst *godal.SpatialRef) (Model, error) {
	if src == nil || dst == nil {
		return Model{}, geokernel.NewPreconditionViolation("NewReprojection: nil spatial reference")
	}
	if src.IsSame(dst) {
		return Identity(), nil
	}
	tr, err := godal.NewTransform(src, dst)
	if err != nil {
		return Model{}, fmt.Errorf("NewReprojection: %w", err)
	}
	runtime.SetFinalizer(tr, func(tr *godal.Transform) { tr.Close() })
	return Model{kind: KindReprojection, m: IdentityMatrix(), rep: &Reprojection{src: src, dst: dst, tr: tr}}, nil
}

// Transform reprojects a single point
func (r *Reprojection) Transform(x, y float64) (float64, float64, error) {
	tx, ty := []float64{x}, []float64{y}
	if err := r.transform(tx, ty); err != nil {
		return 0, 0, err
	}
	return tx[0], ty[0], nil
}

// TransformFlat reprojects flat XY coordinates in place, all at once
func (r *Reprojection) TransformFlat(flat []float64) error {
	x, y := proj.FlatCoordToXY(flat)
	if err := r.transform(x, y); err != nil {
		return err
	}
	copy(flat, proj.XYToFlatCoord(x, y))
	return nil
}

func (r *Reprojection) transform(x, y []float64) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	ok := make([]bool, len(x))
	if err := r.tr.TransformEx(x, y, make([]float64, len(x)), ok); err != nil {
		return geokernel.NewTransformFailed("reprojection: %v", err)
	}
	for i := range ok {
		if !ok[i] {
			return geokernel.NewTransformFailed("reprojection: point #%d cannot be transformed", i)
		}
	}
	return nil
}

func (r *Reprojection) inverse() (Model, error) {
	return NewReprojection(r.dst, r.src)
}
