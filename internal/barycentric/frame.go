package barycentric

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// planeFrame is an orthonormal frame whose XY plane is the plane of a triangle:
// origin at v0, X along v0->v1, Z along the normal.
type planeFrame struct {
	origin     r3.Vec
	ex, ey, ez r3.Vec
}

// newPlaneFrame returns the frame of the triangle, or false if the triangle is degenerate
func newPlaneFrame(v0, v1, v2 r3.Vec) (planeFrame, bool) {
	u, v := r3.Sub(v1, v0), r3.Sub(v2, v0)
	n := r3.Cross(u, v)
	nu, nn := r3.Norm(u), r3.Norm(n)
	if nu == 0 || nn == 0 || nn <= DefaultTolerance*nu*r3.Norm(v) {
		return planeFrame{}, false
	}
	f := planeFrame{origin: v0, ex: r3.Scale(1/nu, u), ez: r3.Scale(1/nn, n)}
	f.ey = r3.Cross(f.ez, f.ex)
	return f, true
}

// toLocal returns the coordinates of the projection of p in the plane
func (f planeFrame) toLocal(p r3.Vec) r2.Vec {
	d := r3.Sub(p, f.origin)
	return r2.Vec{X: r3.Dot(d, f.ex), Y: r3.Dot(d, f.ey)}
}

// project returns the orthogonal projection of p on the plane
func (f planeFrame) project(p r3.Vec) r3.Vec {
	return r3.Sub(p, r3.Scale(r3.Dot(r3.Sub(p, f.origin), f.ez), f.ez))
}

func maxAbs3(p r3.Vec) float64 {
	return math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
}
