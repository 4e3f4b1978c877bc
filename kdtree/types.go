package kdtree

import (
	"errors"

	"github.com/katalvlaran/geograph/geom"
)

// ErrEmptyTree indicates that KNN was called against a tree built from
// zero points.
var ErrEmptyTree = errors.New("kdtree: tree is empty")

// ErrInvalidK indicates that a non-positive k was requested from KNN.
var ErrInvalidK = errors.New("kdtree: k must be positive")

// node is a single split point in the tree: a point, its payload index
// into the original input slice, and the two children split on the
// alternating axis (even depth: x, odd depth: y).
type node struct {
	point       geom.Point
	index       int
	left, right *node
}

// Tree is a static, read-only 2D k-d tree built once via Build.
type Tree struct {
	root *node
	size int
}

// neighbor pairs a candidate point with its squared distance to the
// query point, used by the bounded max-heap in KNN.
type neighbor struct {
	point   geom.Point
	index   int
	sqrDist float64
}
