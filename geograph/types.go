package geograph

import (
	"errors"

	"github.com/katalvlaran/geograph/geom"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to a facade
// operation that requires one.
var ErrNilGraph = errors.New("geograph: graph is nil")

// LabeledPoint pairs a 2D point with the integer label of the region
// it belongs to (a cell, a connected component, a Voronoi cell). It is
// the input shape Triangulate consumes to build an adjacency graph
// between regions from a point cloud.
type LabeledPoint struct {
	Point geom.Point
	Label int
}

// PathResult is the per-destination output of ShortestPaths: the total
// cost of the shortest path from the root to this vertex, and the
// sequence of vertex IDs from root to destination inclusive. Path is
// nil for unreachable vertices.
type PathResult struct {
	Cost int64
	Path []string
}
