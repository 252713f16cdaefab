// Package barycentric computes barycentric coordinates of points relative to triangles and convex
// polygons, in 2D and 3D, and the derived queries used by the meshing and integration code:
// point in triangle or prism, coplanarity, closest point on a triangle, split for integration.
//
// All the functions are pure. Degenerate inputs (flat triangles, zero-length edges) never panic nor
// return NaN: a fallback value is returned with ok=false.
package barycentric

import (
	"github.com/airbusgeo/geokernel/internal/utils"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTolerance is the relative tolerance of the inclusion and coplanarity tests
const DefaultTolerance = utils.RelTol

// Coords are the barycentric coordinates of a point relative to a triangle (v0, v1, v2).
// They sum to 1 and the point is b0*v0 + b1*v1 + b2*v2.
type Coords [3]float64

// Fallback is the value returned when the coordinates cannot be computed: the first vertex
var Fallback = Coords{1, 0, 0}

// Sum of the coordinates
func (b Coords) Sum() float64 {
	return b[0] + b[1] + b[2]
}

// IsInside returns true if all the coordinates are in [0, 1]
func (b Coords) IsInside() bool {
	for _, c := range b {
		if c < 0 || c > 1 {
			return false
		}
	}
	return true
}

// Interpolate2D returns the point of coordinates b relative to (v0, v1, v2)
func (b Coords) Interpolate2D(v0, v1, v2 r2.Vec) r2.Vec {
	return r2.Add(r2.Add(r2.Scale(b[0], v0), r2.Scale(b[1], v1)), r2.Scale(b[2], v2))
}

// Interpolate3D returns the point of coordinates b relative to (v0, v1, v2)
func (b Coords) Interpolate3D(v0, v1, v2 r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(b[0], v0), r3.Scale(b[1], v1)), r3.Scale(b[2], v2))
}

// SignedArea2D returns the signed area of the triangle, positive if it is counterclockwise
func SignedArea2D(v0, v1, v2 r2.Vec) float64 {
	return r2.Cross(r2.Sub(v1, v0), r2.Sub(v2, v0)) / 2
}

// FromTriangle2D returns the barycentric coordinates of q relative to the triangle
// (origin, origin+u, origin+v), and the signed area of the triangle.
// If the triangle is degenerate, ok is false and the coordinates are Fallback.
func FromTriangle2D(q, origin, u, v r2.Vec) (b Coords, area float64, ok bool) {
	d := r2.Sub(q, origin)
	// Cramer's rule on [u v] * (b1, b2) = d
	denom := r2.Cross(u, v)
	area = denom / 2
	b1, ok1 := utils.SafeDivide(r2.Cross(d, v), denom, 0)
	b2, ok2 := utils.SafeDivide(r2.Cross(u, d), denom, 0)
	if !ok1 || !ok2 {
		return Fallback, area, false
	}
	return Coords{1 - b1 - b2, b1, b2}, area, true
}

// FromTriangle2DVertices returns the barycentric coordinates of q relative to the triangle (v0, v1, v2),
// and the signed area of the triangle.
// If the triangle is degenerate, ok is false and the coordinates are Fallback.
func FromTriangle2DVertices(q, v0, v1, v2 r2.Vec) (Coords, float64, bool) {
	return FromTriangle2D(q, v0, r2.Sub(v1, v0), r2.Sub(v2, v0))
}

// FromTriangle3D returns the barycentric coordinates of the orthogonal projection of q on the
// plane of the triangle (origin, origin+u, origin+v).
// If the triangle is degenerate, ok is false and the coordinates are Fallback.
func FromTriangle3D(q, origin, u, v r3.Vec) (Coords, bool) {
	d := r3.Sub(q, origin)
	// Normal equations of the least-squares problem [u v] * (b1, b2) = d
	uu, uv, vv := r3.Dot(u, u), r3.Dot(u, v), r3.Dot(v, v)
	du, dv := r3.Dot(d, u), r3.Dot(d, v)
	denom := uu*vv - uv*uv
	b1, ok1 := utils.SafeDivide(du*vv-uv*dv, denom, 0)
	b2, ok2 := utils.SafeDivide(uu*dv-uv*du, denom, 0)
	if !ok1 || !ok2 {
		return Fallback, false
	}
	return Coords{1 - b1 - b2, b1, b2}, true
}

// FromTriangle3DVertices returns the barycentric coordinates of the orthogonal projection of q on the
// plane of the triangle (v0, v1, v2).
// If the triangle is degenerate, ok is false and the coordinates are Fallback.
func FromTriangle3DVertices(q, v0, v1, v2 r3.Vec) (Coords, bool) {
	return FromTriangle3D(q, v0, r3.Sub(v1, v0), r3.Sub(v2, v0))
}
