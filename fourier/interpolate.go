package fourier

import (
	"math"

	"github.com/katalvlaran/geograph/geom"
)

// interpolateSegment appends integer-spaced points along a -> b
// (exclusive of a, inclusive of b) to res and returns the extended
// slice. A zero-length segment appends only b.
func interpolateSegment(res []geom.Point, a, b geom.Point) []geom.Point {
	dist := int(math.Sqrt(geom.SquaredDistance(a, b)))
	if dist == 0 {
		return append(res, b)
	}

	step := geom.Point{X: (b.X - a.X) / float64(dist), Y: (b.Y - a.Y) / float64(dist)}
	q := a
	for n := 1; n < dist; n++ {
		q = q.Add(step)
		res = append(res, q)
	}

	return append(res, b)
}

// interpolatePolygon walks a closed polygon's vertices in order and
// returns every vertex plus integer-spaced points along each edge,
// including the closing edge from the last vertex back to the first.
func interpolatePolygon(points []geom.Point) []geom.Point {
	n := len(points)
	res := make([]geom.Point, 0, n*2)
	for i := 0; i < n; i++ {
		a := points[(i-1+n)%n]
		b := points[i]
		res = interpolateSegment(res, a, b)
	}

	return res
}
