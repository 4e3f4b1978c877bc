package geograph

import (
	"github.com/katalvlaran/geograph/geom"
	"github.com/katalvlaran/geograph/hull"
)

// ConvexHull returns the convex hull of points in counter-clockwise
// order, delegating to hull.ConvexHull.
func ConvexHull(points []geom.Point) []geom.Point {
	return hull.ConvexHull(points)
}
