package geom

import "github.com/katalvlaran/geograph/config"

// Point is a 2D coordinate pair. Equality between two Points is by
// value; identity-based equality (used by delaunay.Vertex) is a
// separate concern layered on top of Point.
type Point struct {
	X, Y float64
}

// Sub returns a - b as the vector pointing from b to a.
func (a Point) Sub(b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Add returns a + b.
func (a Point) Add(b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Cross returns the 2D cross product ax*by - ay*bx of vectors a and b.
// Its sign gives the orientation of the turn from a to b: positive for
// a counter-clockwise turn, negative for clockwise, zero for collinear.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Dot returns the 2D dot product ax*bx + ay*by.
func Dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Orientation reports the signed turn going p0 -> p1 -> p2: positive iff
// the turn is counter-clockwise (a left turn), negative iff clockwise,
// zero iff the three points are collinear.
func Orientation(p0, p1, p2 Point) float64 {
	return Cross(p1.Sub(p0), p2.Sub(p0))
}

// Collinear reports whether p1, p2, p3 are collinear within the fixed
// epsilon config.CollinearityEpsilon. Coordinates are expected to be
// integer-valued for deterministic results, as documented by the
// caller-facing triangulation entry points.
func Collinear(p1, p2, p3 Point) bool {
	return CollinearEps(p1, p2, p3, config.CollinearityEpsilon)
}

// CollinearEps is Collinear with a caller-supplied epsilon, for callers
// that need to override the library-wide default (see
// delaunay.WithEpsilon).
func CollinearEps(p1, p2, p3 Point, epsilon float64) bool {
	twiceArea := p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y)
	if twiceArea < 0 {
		twiceArea = -twiceArea
	}

	return twiceArea < epsilon
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Kept squared to avoid an unnecessary sqrt in comparison-only callers
// (Graham scan tie-breaking, k-d tree pruning).
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// InCircumcircle implements the exact algebraic in-circumcircle test for
// a finite triangle: after translating tri[0] to the origin, the test is
// alpha*x + beta*y + gamma*(x^2+y^2) <= 0, where (alpha, beta, gamma)
// derive from the translated coordinates of tri[1] and tri[2]. Only
// valid for finite (non-ghost) triangles; infinite-degree conflict cases
// are handled separately by the delaunay package.
func InCircumcircle(tri [3]Point, v Point) bool {
	x0, y0 := tri[0].X, tri[0].Y

	x1 := tri[1].X - x0
	y1 := tri[1].Y - y0
	x2 := tri[2].X - x0
	y2 := tri[2].Y - y0
	x := v.X - x0
	y := v.Y - y0

	z1 := x1*x1 + y1*y1
	z2 := x2*x2 + y2*y2

	alpha := y1*z2 - z1*y2
	beta := x2*z1 - x1*z2
	gamma := x1*y2 - y1*x2

	return alpha*x+beta*y+gamma*(x*x+y*y) <= 0
}
