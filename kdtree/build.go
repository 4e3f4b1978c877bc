package kdtree

import (
	"sort"

	"github.com/katalvlaran/geograph/geom"
)

// Build constructs a 2D k-d tree from points via recursive median split,
// alternating the splitting axis between x (even depth) and y (odd
// depth). The resulting tree is read-only.
//
// Complexity: O(n log n) time (sort-based median selection per level),
// O(n) space.
func Build(points []geom.Point) *Tree {
	if len(points) == 0 {
		return &Tree{}
	}

	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}

	root := buildNode(points, indices, 0)

	return &Tree{root: root, size: len(points)}
}

// buildNode recursively splits indices on the axis chosen by depth,
// picking the median element as the node and recursing on the two
// halves.
func buildNode(points []geom.Point, indices []int, depth int) *node {
	if len(indices) == 0 {
		return nil
	}

	axis := depth % 2
	sort.Slice(indices, func(i, j int) bool {
		if axis == 0 {
			return points[indices[i]].X < points[indices[j]].X
		}
		return points[indices[i]].Y < points[indices[j]].Y
	})

	mid := len(indices) / 2
	n := &node{
		point: points[indices[mid]],
		index: indices[mid],
	}
	n.left = buildNode(points, indices[:mid], depth+1)
	n.right = buildNode(points, indices[mid+1:], depth+1)

	return n
}

// Len returns the number of points stored in the tree.
func (t *Tree) Len() int {
	return t.size
}
