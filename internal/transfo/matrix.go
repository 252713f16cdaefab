package transfo

import (
	"math"

	"github.com/airbusgeo/geokernel/internal/utils/affine"
)

// Matrix is a 2D homogeneous transform in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//	| g  h  i |
//
// x' = (a*x + b*y + c) / w, y' = (d*x + e*y + f) / w, w = g*x + h*y + i
type Matrix [3][3]float64

// IdentityMatrix returns the identity matrix
func IdentityMatrix() Matrix {
	return Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MatrixFromAffine converts a GDAL-convention affine transform
func MatrixFromAffine(a *affine.Affine) Matrix {
	return Matrix{{a[1], a[2], a[0]}, {a[4], a[5], a[3]}, {0, 0, 1}}
}

// Affine returns the affine part of m (the perspective row is ignored)
func (m Matrix) Affine() *affine.Affine {
	return affine.NewAffine(m[0][2], m[0][0], m[0][1], m[1][2], m[1][0], m[1][1])
}

// Multiply returns m*n, that is n applied first, then m
func (m Matrix) Multiply(n Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// Determinant of the 3x3 matrix
func (m Matrix) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// adjoint returns the adjugate matrix, proportional to the inverse
func (m Matrix) adjoint() Matrix {
	return Matrix{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
}

// Inverse returns the inverse of m, or false if m is singular
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) {
		return Matrix{}, false
	}
	adj := m.adjoint()
	for i := range adj {
		for j := range adj[i] {
			adj[i][j] /= det
		}
	}
	return adj.normalized(), true
}

// normalized scales m so that m[2][2] == 1 (when m[2][2] != 0)
func (m Matrix) normalized() Matrix {
	if m[2][2] == 0 || m[2][2] == 1 {
		return m
	}
	s := m[2][2]
	for i := range m {
		for j := range m[i] {
			m[i][j] /= s
		}
	}
	return m
}

// Apply transforms (x, y). ok is false if the point is mapped to infinity.
func (m Matrix) Apply(x, y float64) (float64, float64, bool) {
	w := m[2][0]*x + m[2][1]*y + m[2][2]
	if w == 0 {
		return 0, 0, false
	}
	return (m[0][0]*x + m[0][1]*y + m[0][2]) / w, (m[1][0]*x + m[1][1]*y + m[1][2]) / w, true
}

// Equal returns true if all the coefficients are equal up to tol
func (m Matrix) Equal(n Matrix, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-n[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
