package geograph

import (
	"sort"

	"github.com/katalvlaran/geograph/delaunay"
)

// Triangulate builds a Delaunay triangulation over points and returns
// the adjacency between their labels: labels a and b appear in each
// other's slice whenever some triangle of the triangulation has a and
// b among its three vertex labels. Points sharing a label never
// produce a self-pair. Each returned slice is sorted and duplicate-free.
func Triangulate(points []LabeledPoint) (map[int][]int, error) {
	vertices := make([]*delaunay.Vertex, len(points))
	for i, p := range points {
		vertices[i] = &delaunay.Vertex{Point: p.Point, Label: p.Label}
	}

	tree := delaunay.NewTree()
	if err := tree.BatchInsert(vertices); err != nil {
		return nil, err
	}

	pairs := tree.NeighborLabels()

	out := make(map[int][]int)
	for a, bs := range pairs {
		for b := range bs {
			out[a] = append(out[a], b)
			out[b] = append(out[b], a)
		}
	}
	for label, neighbors := range out {
		sort.Ints(neighbors)
		out[label] = neighbors
	}

	return out, nil
}
