package barycentric

import (
	"math"

	"github.com/airbusgeo/geokernel/internal/utils"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// InTriangle2D returns true if q is inside the triangle (v0, v1, v2) or on its boundary, up to a
// tolerance relative to the size of the triangle, and the barycentric coordinates of q.
// The coordinates are only computed when q is inside.
// If the triangle is flat, q is inside if it lies on the longest edge. The coordinates are those
// of q along this edge.
func InTriangle2D(q, v0, v1, v2 r2.Vec, tol float64) (Coords, bool) {
	a := [3]float64{
		r2.Cross(r2.Sub(v1, q), r2.Sub(v2, q)),
		r2.Cross(r2.Sub(v2, q), r2.Sub(v0, q)),
		r2.Cross(r2.Sub(v0, q), r2.Sub(v1, q)),
	}
	sumA := a[0] + a[1] + a[2]
	scale2 := utils.MaxElemF(r2.Norm2(r2.Sub(v1, v0)), r2.Norm2(r2.Sub(v2, v1)), r2.Norm2(r2.Sub(v0, v2)))
	if math.Abs(sumA) <= tol*scale2 {
		return inFlatTriangle(q, [3]r2.Vec{v0, v1, v2}, a, tol, scale2)
	}
	if utils.MinElemF(a[:]...)*utils.MaxElemF(a[:]...) < -tol*sumA*sumA {
		return Coords{}, false
	}
	// q is inside: |a[i]| <= |sumA|
	return Coords{a[0] / sumA, a[1] / sumA, a[2] / sumA}, true
}

func inFlatTriangle(q r2.Vec, v [3]r2.Vec, a [3]float64, tol, scale2 float64) (Coords, bool) {
	for _, ai := range a {
		if math.Abs(ai) > tol*scale2 {
			return Coords{}, false
		}
	}
	if scale2 == 0 {
		return Fallback, q == v[0]
	}
	// longest edge (i, j)
	i, j := 0, 1
	for k := 1; k < 3; k++ {
		if r2.Norm2(r2.Sub(v[(k+1)%3], v[k])) > r2.Norm2(r2.Sub(v[j], v[i])) {
			i, j = k, (k+1)%3
		}
	}
	e := r2.Sub(v[j], v[i])
	t := r2.Dot(r2.Sub(q, v[i]), e) / r2.Norm2(e)
	if t < -tol || t > 1+tol {
		return Coords{}, false
	}
	var b Coords
	b[i], b[j] = 1-t, t
	return b, true
}

// InTrianglePrism returns true if the projection of q on the plane of the triangle (v0, v1, v2) is
// inside the triangle (see InTriangle2D), the barycentric coordinates of the projection, and the signed
// volume of the tetrahedron (v0, v1, v2, q). The volume is positive if the vertices are counterclockwise
// as seen from q.
// A flat triangle has no prism: inside is always false.
func InTrianglePrism(q, v0, v1, v2 r3.Vec, tol float64) (b Coords, volume float64, inside bool) {
	volume = r3.Dot(r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0)), r3.Sub(q, v0)) / 6
	f, ok := newPlaneFrame(v0, v1, v2)
	if !ok {
		return Fallback, volume, false
	}
	b, inside = InTriangle2D(f.toLocal(q), f.toLocal(v0), f.toLocal(v1), f.toLocal(v2), tol)
	return b, volume, inside
}

// IsCoplanar returns true if q is on the plane of the triangle (v0, v1, v2), up to a tolerance relative
// to the magnitude of the coordinates.
// Any point is coplanar with a flat triangle.
func IsCoplanar(q, v0, v1, v2 r3.Vec, tol float64) bool {
	b, ok := FromTriangle3DVertices(q, v0, v1, v2)
	if !ok {
		return true
	}
	p := b.Interpolate3D(v0, v1, v2)
	return r3.Norm(r3.Sub(q, p)) <= tol*math.Max(maxAbs3(q), maxAbs3(p))
}
