package hull

import (
	"math"
	"sort"

	"github.com/katalvlaran/geograph/geom"
)

// ConvexHull returns the counter-clockwise convex hull polygon of
// points, starting with the leftmost-lowest point. Fewer than three
// distinct points degenerate to the unique input points themselves;
// collinear input degenerates naturally to the two extreme points, per
// the Graham scan's own stack behavior.
func ConvexHull(points []geom.Point) []geom.Point {
	unique := dedupe(points)
	if len(unique) < 3 {
		return unique
	}

	origin := pivot(unique)
	ordered := sortByPolarAngle(origin, unique)

	stack := make([]geom.Point, 0, len(ordered))
	stack = append(stack, origin)
	for _, p := range ordered {
		for len(stack) > 1 && geom.Orientation(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	return stack
}

// dedupe removes exact-coordinate duplicates, preserving first
// occurrence order.
func dedupe(points []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(points))
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// pivot picks the point with minimum x, breaking ties by minimum y.
func pivot(points []geom.Point) geom.Point {
	best := points[0]
	for _, p := range points[1:] {
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			best = p
		}
	}

	return best
}

// sortByPolarAngle returns every point other than origin, sorted by
// polar angle around origin; points sharing an angle keep only the one
// farther from origin.
func sortByPolarAngle(origin geom.Point, points []geom.Point) []geom.Point {
	type angled struct {
		p     geom.Point
		angle float64
	}

	byAngle := make(map[float64]geom.Point)
	for _, p := range points {
		if p == origin {
			continue
		}
		angle := math.Atan2(p.Y-origin.Y, p.X-origin.X)
		if existing, ok := byAngle[angle]; !ok || geom.SquaredDistance(origin, p) > geom.SquaredDistance(origin, existing) {
			byAngle[angle] = p
		}
	}

	entries := make([]angled, 0, len(byAngle))
	for angle, p := range byAngle {
		entries = append(entries, angled{p: p, angle: angle})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].angle < entries[j].angle })

	out := make([]geom.Point, len(entries))
	for i, e := range entries {
		out[i] = e.p
	}

	return out
}
