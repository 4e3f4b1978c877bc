package neighbors

import (
	"fmt"

	"github.com/katalvlaran/geograph/delaunay"
)

// FromCentroids builds a neighbor graph by triangulating one point per
// connected component, its centroid, labeled by the component's label.
// Fewer than three components have no triangulation and yield an empty
// result rather than an error.
func FromCentroids(ccs []CC) (map[int]map[int]struct{}, error) {
	if len(ccs) < 3 {
		return map[int]map[int]struct{}{}, nil
	}

	vertices := make([]*delaunay.Vertex, 0, len(ccs))
	for _, cc := range ccs {
		vertices = append(vertices, delaunay.NewLabeledVertex(cc.Centroid.X, cc.Centroid.Y, cc.Label))
	}

	tree := delaunay.NewTree()
	if err := tree.BatchInsert(vertices); err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}

	return tree.NeighborLabels(), nil
}
