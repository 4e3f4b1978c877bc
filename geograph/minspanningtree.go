package geograph

import (
	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/prim_kruskal"
)

// MinSpanningTree computes a minimum spanning tree of g via Kruskal's
// algorithm and rebuilds it as a standalone weighted, undirected Graph
// containing every vertex of g plus the selected edges.
func MinSpanningTree(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	edges, _, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, err
	}

	tree := core.NewGraph(core.WithWeighted())
	for _, v := range g.Vertices() {
		_ = tree.AddVertex(v)
	}
	for _, e := range edges {
		if _, err := tree.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
