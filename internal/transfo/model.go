// Package transfo defines the transform models relating two coordinate systems.
//
// A Model is a closed tagged variant: its Kind selects the behaviour, the homogeneous
// matrix carries the parameters of every kind but Reprojection, which wraps a GDAL
// coordinate transformation between two spatial references.
package transfo

import (
	"fmt"

	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/utils/affine"
)

// Model is a 2D transform model. The zero value is not valid, use the constructors.
type Model struct {
	kind Kind
	m    Matrix
	rep  *Reprojection
}

// Identity creates the identity model
func Identity() Model {
	return Model{kind: KindIdentity, m: IdentityMatrix()}
}

// NewTranslation creates a translation of (dx, dy)
func NewTranslation(dx, dy float64) Model {
	return Model{kind: KindTranslation, m: MatrixFromAffine(affine.Translation(dx, dy))}
}

// NewStretch creates a scaling of (sx, sy) followed by a translation of (dx, dy)
func NewStretch(sx, sy, dx, dy float64) Model {
	return Model{kind: KindStretch, m: MatrixFromAffine(affine.Translation(dx, dy).Multiply(affine.Scale(sx, sy)))}
}

// NewSimilitude creates a uniform scaling and a counterclockwise rotation (radians)
// followed by a translation of (dx, dy)
func NewSimilitude(scale, rotation, dx, dy float64) Model {
	a := affine.Translation(dx, dy).Multiply(affine.Rotation(rotation)).Multiply(affine.Scale(scale, scale))
	return Model{kind: KindSimilitude, m: MatrixFromAffine(a)}
}

// NewAffine creates a model from a GDAL-convention affine transform
func NewAffine(a *affine.Affine) Model {
	return Model{kind: KindAffine, m: MatrixFromAffine(a)}
}

// NewProjective creates a model from an homogeneous matrix
func NewProjective(m Matrix) Model {
	return Model{kind: KindProjective, m: m.normalized()}
}

// NewModelFromMatrix creates the most specific exact model for m
func NewModelFromMatrix(m Matrix) Model {
	m = m.normalized()
	return Model{kind: classify(m, 0), m: m}
}

// Kind returns the class of the model
func (t Model) Kind() Kind {
	return t.kind
}

// Matrix returns the homogeneous matrix of the model.
// ok is false for a Reprojection.
func (t Model) Matrix() (Matrix, bool) {
	return t.m, t.kind.isMatrix()
}

// PreservesLinearity returns true if the straight lines remain straight lines
func (t Model) PreservesLinearity() bool {
	return t.kind.PreservesLinearity()
}

// IsIdentity returns true for the identity model
func (t Model) IsIdentity() bool {
	return t.kind == KindIdentity
}

// Transform applies the model to (x, y)
func (t Model) Transform(x, y float64) (float64, float64, error) {
	switch t.kind {
	case KindIdentity:
		return x, y, nil
	case KindReprojection:
		return t.rep.Transform(x, y)
	case KindProjective:
		tx, ty, ok := t.m.Apply(x, y)
		if !ok {
			return 0, 0, geokernel.NewTransformFailed("projective: (%v, %v) is mapped to infinity", x, y)
		}
		return tx, ty, nil
	}
	tx, ty := t.m.Affine().Transform(x, y)
	return tx, ty, nil
}

// TransformFlat applies the model in place to flat XY coordinates
func (t Model) TransformFlat(flat []float64) error {
	if t.kind == KindReprojection {
		return t.rep.TransformFlat(flat)
	}
	for i := 0; i+1 < len(flat); i += 2 {
		var err error
		if flat[i], flat[i+1], err = t.Transform(flat[i], flat[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Inverse returns the model mapping back the output of t to its input
func (t Model) Inverse() (Model, error) {
	switch t.kind {
	case KindIdentity:
		return t, nil
	case KindReprojection:
		return t.rep.inverse()
	case KindTranslation:
		return NewTranslation(-t.m[0][2], -t.m[1][2]), nil
	}
	if t.kind.PreservesLinearity() {
		a := t.m.Affine()
		if !a.IsInvertible() {
			return Model{}, geokernel.NewTransformFailed("%s model is not invertible", t.kind)
		}
		return Model{kind: t.kind, m: MatrixFromAffine(a.Inverse())}, nil
	}
	inv, ok := t.m.Inverse()
	if !ok {
		return Model{}, geokernel.NewTransformFailed("%s model is not invertible", t.kind)
	}
	return Model{kind: t.kind, m: inv}, nil
}

// Then returns the model applying t first, then next.
// The result kind is the most specific exact kind of the composed matrix.
// Compositions involving a Reprojection cannot be merged: use a Chain.
func (t Model) Then(next Model) (Model, error) {
	if !t.kind.isMatrix() || !next.kind.isMatrix() {
		return Model{}, fmt.Errorf("Then: cannot merge %s and %s models", t.kind, next.kind)
	}
	switch {
	case t.kind == KindIdentity:
		return next, nil
	case next.kind == KindIdentity:
		return t, nil
	}
	var m Matrix
	if t.kind.PreservesLinearity() && next.kind.PreservesLinearity() {
		m = MatrixFromAffine(next.m.Affine().Multiply(t.m.Affine()))
	} else {
		m = next.m.Multiply(t.m)
	}
	return NewModelFromMatrix(m), nil
}

// String implements Stringer
func (t Model) String() string {
	if t.kind == KindReprojection {
		return t.kind.String()
	}
	return fmt.Sprintf("%s%v", t.kind, t.m)
}
