package barycentric

import (
	"github.com/airbusgeo/geokernel/internal/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// Closest is the point of a triangle closest to a point of space
type Closest struct {
	Point    r3.Vec
	Distance float64
	// Coords of Point, in [0, 1]
	Coords Coords
	// Unbounded are the coordinates of the projection of the point of space on the plane of the triangle
	Unbounded Coords
}

// MinDistToTriangle returns the point of the triangle (v0, v1, v2) closest to q.
// ok is false if the triangle is flat: the closest point is still found on its edges,
// but Unbounded is zero.
func MinDistToTriangle(q, v0, v1, v2 r3.Vec) (Closest, bool) {
	v := [3]r3.Vec{v0, v1, v2}
	res := Closest{}
	unbounded, ok := FromTriangle3DVertices(q, v0, v1, v2)
	if ok {
		res.Unbounded = unbounded
		if unbounded.IsInside() {
			res.Coords = unbounded
			res.Point = unbounded.Interpolate3D(v0, v1, v2)
			res.Distance = r3.Norm(r3.Sub(q, res.Point))
			return res, true
		}
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		t := projectOnSegment(q, v[i], v[j])
		p := r3.Add(v[i], r3.Scale(t, r3.Sub(v[j], v[i])))
		if d := r3.Norm(r3.Sub(q, p)); i == 0 || d < res.Distance {
			res.Point, res.Distance = p, d
			res.Coords = Coords{}
			res.Coords[i], res.Coords[j] = 1-t, t
		}
	}
	return res, ok
}

// projectOnSegment returns the parameter in [0, 1] of the point of [a, b] closest to q
func projectOnSegment(q, a, b r3.Vec) float64 {
	e := r3.Sub(b, a)
	t, _ := utils.SafeDivide(r3.Dot(r3.Sub(q, a), e), r3.Norm2(e), 0)
	return utils.Clamp(t, 0, 1)
}
