package geograph

import (
	"strconv"

	"github.com/katalvlaran/geograph/core"
)

// GraphFromLabelPairs builds an unweighted, undirected, loopless
// core.Graph from a label-pair adjacency map (as produced by
// Triangulate or any of the neighbors package's extractors). Integer
// labels become string vertex IDs via strconv.Itoa.
func GraphFromLabelPairs(pairs map[int]map[int]struct{}) *core.Graph {
	g := core.NewGraph()

	for a, bs := range pairs {
		aID := strconv.Itoa(a)
		_ = g.AddVertex(aID)
		for b := range bs {
			bID := strconv.Itoa(b)
			_ = g.AddVertex(bID)
			if !g.HasEdge(aID, bID) {
				_, _ = g.AddEdge(aID, bID, 0)
			}
		}
	}

	return g
}
