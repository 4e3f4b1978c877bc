package geograph

import (
	"math"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
)

// ShortestPaths computes single-source shortest paths from root over
// g via Dijkstra and reshapes the raw distance/predecessor maps into a
// per-vertex PathResult, reconstructing each path by walking the
// predecessor chain back to root. Unreachable vertices get a nil Path
// and a Cost of math.MaxInt64.
func ShortestPaths(g *core.Graph, root string) (map[string]PathResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(root), dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}

	out := make(map[string]PathResult, len(dist))
	for v, cost := range dist {
		res := PathResult{Cost: cost}
		if cost != math.MaxInt64 {
			res.Path = reconstructPath(prev, root, v)
		}
		out[v] = res
	}

	return out, nil
}

// reconstructPath walks prev backward from dest to root, then reverses
// the walk into root-to-dest order, mirroring bfs.BFSResult.PathTo.
func reconstructPath(prev map[string]string, root, dest string) []string {
	path := []string{dest}
	for cur := dest; cur != root; {
		p, ok := prev[cur]
		if !ok || p == "" {
			break
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
