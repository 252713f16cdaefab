package barycentric

import (
	"math"

	"github.com/airbusgeo/geokernel/internal/utils"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromConvexPolygon returns the barycentric coordinates of q relative to the convex polygon,
// given by its vertices in any orientation. The coordinates sum to 1 and q is the weighted sum
// of the vertices.
// A point on an edge, or on its extension, only gets weights on the two vertices of the edge.
// ok is false if the polygon is degenerate: the coordinates are then uniform, except for a
// triangle, whose coordinates are Fallback (see FromTriangle2D).
// Precondition: len(vertices) >= 3
func FromConvexPolygon(q r2.Vec, vertices []r2.Vec) ([]float64, bool) {
	n := len(vertices)
	utils.Require(n >= 3, "FromConvexPolygon: %d vertices", n)
	if n == 3 {
		b, _, ok := FromTriangle2DVertices(q, vertices[0], vertices[1], vertices[2])
		return b[:], ok
	}

	// Outward unit normals and signed distances from q to the edges (positive inside)
	sign := 1.
	if polygonSignedArea(vertices) < 0 {
		sign = -1
	}
	normals := make([]r2.Vec, n)
	dists := make([]float64, n)
	valid := make([]bool, n)
	size := 0.
	last := -1
	for i, v := range vertices {
		e := r2.Sub(vertices[(i+1)%n], v)
		l := r2.Norm(e)
		if l == 0 {
			continue
		}
		normals[i] = r2.Scale(sign/l, r2.Vec{X: e.Y, Y: -e.X})
		dists[i] = r2.Dot(r2.Sub(v, q), normals[i])
		valid[i] = true
		size = math.Max(size, l)
		last = i
	}
	if last < 0 {
		return uniform(n), false
	}

	for i := range vertices {
		if valid[i] && math.Abs(dists[i]) <= DefaultTolerance*size {
			return onEdge(q, vertices, i), true
		}
	}

	weights := make([]float64, n)
	total := 0.
	prev := last
	for i := range vertices {
		if !valid[i] {
			continue
		}
		w, ok := utils.SafeDivide(r2.Cross(normals[prev], normals[i]), dists[prev]*dists[i], 0)
		if !ok {
			return onEdge(q, vertices, i), true
		}
		weights[i] = w
		total += w
		prev = i
	}
	ok := true
	for i := range weights {
		var wok bool
		weights[i], wok = utils.SafeDivide(weights[i], total, 1/float64(n))
		ok = ok && wok
	}
	if !ok {
		return uniform(n), false
	}
	return weights, true
}

// onEdge returns the coordinates of q, on the line of the edge (vertices[i], vertices[i+1])
func onEdge(q r2.Vec, vertices []r2.Vec, i int) []float64 {
	j := (i + 1) % len(vertices)
	e := r2.Sub(vertices[j], vertices[i])
	t, _ := utils.SafeDivide(r2.Dot(r2.Sub(q, vertices[i]), e), r2.Norm2(e), 0)
	weights := make([]float64, len(vertices))
	weights[i], weights[j] = 1-t, t
	return weights
}

func uniform(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	return weights
}

// polygonSignedArea returns the signed area of the polygon, positive if it is counterclockwise
func polygonSignedArea(vertices []r2.Vec) float64 {
	flat := make([]float64, 0, 2*len(vertices)+2)
	for _, v := range vertices {
		flat = append(flat, v.X, v.Y)
	}
	flat = append(flat, vertices[0].X, vertices[0].Y)
	// xy.SignedArea is positive for clockwise rings
	return -xy.SignedArea(geom.XY, flat)
}

// InterpolatePolygon2D returns the weighted sum of the vertices
func InterpolatePolygon2D(weights []float64, vertices []r2.Vec) r2.Vec {
	var p r2.Vec
	for i, v := range vertices {
		p = r2.Add(p, r2.Scale(weights[i], v))
	}
	return p
}

// InterpolatePolygon3D returns the weighted sum of the vertices
func InterpolatePolygon3D(weights []float64, vertices []r3.Vec) r3.Vec {
	var p r3.Vec
	for i, v := range vertices {
		p = r3.Add(p, r3.Scale(weights[i], v))
	}
	return p
}

// FromConvexPolygon3D returns the barycentric coordinates of q relative to the convex polygon, after
// projecting both on the plane fitting the vertices best (least squares).
// If the polygon is not planar, the coordinates are those of the projections.
// ok is false if the polygon is degenerate, with the coordinates of FromConvexPolygon.
// Precondition: len(vertices) >= 3
func FromConvexPolygon3D(q r3.Vec, vertices []r3.Vec) ([]float64, bool) {
	n := len(vertices)
	utils.Require(n >= 3, "FromConvexPolygon3D: %d vertices", n)

	var c r3.Vec
	for _, v := range vertices {
		c = r3.Add(c, v)
	}
	c = r3.Scale(1/float64(n), c)

	// Covariance of the vertices: its eigenvectors of the two largest eigenvalues span the plane
	cov := mat.NewSymDense(3, nil)
	for _, v := range vertices {
		d := r3.Sub(v, c)
		dv := [3]float64{d.X, d.Y, d.Z}
		for i := 0; i < 3; i++ {
			for j := i; j < 3; j++ {
				cov.SetSym(i, j, cov.At(i, j)+dv[i]*dv[j])
			}
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return uniform(n), false
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	// eigenvalues are sorted in ascending order
	ex := r3.Vec{X: vecs.At(0, 2), Y: vecs.At(1, 2), Z: vecs.At(2, 2)}
	ey := r3.Vec{X: vecs.At(0, 1), Y: vecs.At(1, 1), Z: vecs.At(2, 1)}

	toPlane := func(p r3.Vec) r2.Vec {
		d := r3.Sub(p, c)
		return r2.Vec{X: r3.Dot(d, ex), Y: r3.Dot(d, ey)}
	}
	flat := make([]r2.Vec, n)
	for i, v := range vertices {
		flat[i] = toPlane(v)
	}
	return FromConvexPolygon(toPlane(q), flat)
}
