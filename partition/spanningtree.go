package partition

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dfs"
)

// SpanningTree returns a depth-first spanning tree of g rooted at root,
// as a fresh weighted, undirected graph whose edges are exactly the
// dfs.DFSResult.Parent links, carrying the original edge weights.
func SpanningTree(g *core.Graph, root string) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(root) {
		return nil, ErrRootNotFound
	}

	res, err := dfs.DFS(g, root)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}

	tree := core.NewGraph(core.WithWeighted())
	for _, id := range res.Order {
		if err := tree.AddVertex(id); err != nil {
			return nil, fmt.Errorf("partition: %w", err)
		}
	}

	for child, parent := range res.Parent {
		weight, err := edgeWeight(g, parent, child)
		if err != nil {
			return nil, fmt.Errorf("partition: %w", err)
		}
		if _, err := tree.AddEdge(parent, child, weight); err != nil {
			return nil, fmt.Errorf("partition: %w", err)
		}
	}

	return tree, nil
}

// edgeWeight returns the weight of the edge between a and b in g.
func edgeWeight(g *core.Graph, a, b string) (int64, error) {
	edges, err := g.Neighbors(a)
	if err != nil {
		return 0, err
	}
	for _, e := range edges {
		if e.To == b || (!e.Directed && e.From == b) {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("no edge between %q and %q", a, b)
}
