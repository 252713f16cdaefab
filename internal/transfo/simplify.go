package transfo

import "math"

// DefaultSimplifyTolerance is the tolerance used to downgrade a model to a more specific kind
const DefaultSimplifyTolerance = 1e-12

// classify returns the most specific kind representing m up to tol.
// m must be normalized (m[2][2] == 1 unless the perspective row is degenerate).
func classify(m Matrix, tol float64) Kind {
	near := func(v, target float64) bool { return math.Abs(v-target) <= tol }

	if !near(m[2][0], 0) || !near(m[2][1], 0) || !near(m[2][2], 1) {
		return KindProjective
	}
	if m.Equal(IdentityMatrix(), tol) {
		return KindIdentity
	}
	a, b, d, e := m[0][0], m[0][1], m[1][0], m[1][1]
	if near(b, 0) && near(d, 0) {
		if near(a, 1) && near(e, 1) {
			return KindTranslation
		}
		return KindStretch
	}
	// scaled rotation: same scales, no shear, no reflection (sy < 0)
	if sx, sy, _, shear := m.Affine().Decompose(); sx != 0 && near(sx, sy) && near(shear, 0) {
		return KindSimilitude
	}
	return KindAffine
}

// Simplified returns the most specific model equivalent to t up to tol:
//   - Projective without perspective terms -> Affine (or more specific)
//   - Affine whose linear part is a scaled rotation -> Similitude
//   - Affine or Similitude without rotation nor shear -> Stretch
//   - Stretch with unit scales -> Translation
//   - Translation with null offsets -> Identity
//
// Coefficients within tol of their target are snapped, so that the simplified
// model is exactly of its kind. A Reprojection is returned unchanged.
func (t Model) Simplified(tol float64) Model {
	if !t.kind.isMatrix() {
		return t
	}
	k := classify(t.m, tol)
	if k >= t.kind {
		return t
	}
	m := t.m
	if k <= KindAffine {
		m[2] = [3]float64{0, 0, 1}
	}
	switch k {
	case KindSimilitude:
		ae, bd := (m[0][0]+m[1][1])/2, (m[0][1]-m[1][0])/2
		m[0][0], m[1][1], m[0][1], m[1][0] = ae, ae, bd, -bd
	case KindStretch:
		m[0][1], m[1][0] = 0, 0
	case KindTranslation:
		m[0][0], m[0][1], m[1][0], m[1][1] = 1, 0, 0, 1
	case KindIdentity:
		m = IdentityMatrix()
	}
	return Model{kind: k, m: m}
}
