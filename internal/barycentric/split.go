package barycentric

import (
	"math/bits"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle of space
type Triangle [3]r3.Vec

// SplitForIntegration splits the triangle (v0, v1, v2) into 1 to 3 triangles covering it, whose
// first vertex is the point of the triangle closest to q, so that a numerical integration of a
// function of the distance to q has its singular point on a vertex of each integration domain.
//   - if q projects inside the triangle, the triangle is split into 3 triangles around the projection,
//   - if the closest point is inside an edge, the triangle is split in 2 at this point,
//   - if the closest point is a vertex, the triangle is returned, starting with this vertex.
//
// The triangles keep the orientation of (v0, v1, v2).
// ok is false if the triangle is flat.
func SplitForIntegration(q, v0, v1, v2 r3.Vec) ([]Triangle, bool) {
	f, ok := newPlaneFrame(v0, v1, v2)
	if !ok {
		return nil, false
	}
	b, _, ok := FromTriangle2D(f.toLocal(q), r2.Vec{}, f.toLocal(v1), f.toLocal(v2))
	if !ok {
		return nil, false
	}
	v := [3]r3.Vec{v0, v1, v2}
	p := f.project(q)

	var positive uint
	for i, c := range b {
		if c > 0 {
			positive |= 1 << i
		}
	}
	switch bits.OnesCount(positive) {
	case 3:
		return []Triangle{{p, v0, v1}, {p, v1, v2}, {p, v2, v0}}, true
	case 2:
		// beyond the edge opposite to vertex k
		k := bits.TrailingZeros(^positive & 7)
		return splitToEdge(p, v[(k+1)%3], v[(k+2)%3], v[k]), true
	case 1:
		// beyond the two edges of vertex i
		i := bits.TrailingZeros(positive)
		return splitToVertexOrEdge(p, v[i], v[(i+1)%3], v[(i+2)%3]), true
	}
	return nil, false
}

// splitToVertexOrEdge splits the triangle (a, b, c) for a point p of its plane, outside the lines (a, b) and (c, a)
func splitToVertexOrEdge(p, a, b, c r3.Vec) []Triangle {
	ap := r3.Sub(p, a)
	if r3.Dot(ap, r3.Sub(b, a)) > 0 {
		return splitToEdge(p, a, b, c)
	}
	if r3.Dot(ap, r3.Sub(c, a)) > 0 {
		return splitToEdge(p, c, a, b)
	}
	return []Triangle{{a, b, c}}
}

// splitToEdge splits the triangle (a, b, c) for a point p of its plane, closer to the edge (a, b)
func splitToEdge(p, a, b, c r3.Vec) []Triangle {
	ab := r3.Sub(b, a)
	t := r3.Dot(r3.Sub(p, a), ab)
	switch {
	case t <= 0:
		return []Triangle{{a, b, c}}
	case t >= r3.Norm2(ab):
		return []Triangle{{b, c, a}}
	}
	m := r3.Add(a, r3.Scale(t/r3.Norm2(ab), ab))
	return []Triangle{{m, b, c}, {m, c, a}}
}
