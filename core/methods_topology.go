// File: methods_topology.go
// Role: Stitch-on-removal, reachability, and connected-component root queries.
// Concurrency: takes brief muVert read locks for existence checks and otherwise
// delegates to the already-locked public methods of this package.

package core

import "sort"

// RemoveNodeStitch removes id from the graph, first inserting an edge
// between every pair of its distinct neighbors that is not already
// connected, so removing a node does not disconnect its neighborhood.
// The weight of each inserted stitching edge is the sum of the two
// removed edges' weights, approximating the cost of the detour the
// removed node used to provide. Pre-existing direct edges between two
// neighbors are left untouched.
func (g *Graph) RemoveNodeStitch(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return ErrVertexNotFound
	}

	edges, err := g.Neighbors(id)
	if err != nil {
		return err
	}

	weightTo := make(map[string]int64, len(edges))
	for _, e := range edges {
		other := e.To
		if other == id {
			other = e.From
		}
		weightTo[other] = e.Weight
	}

	neighborIDs := make([]string, 0, len(weightTo))
	for n := range weightTo {
		neighborIDs = append(neighborIDs, n)
	}
	sort.Strings(neighborIDs)

	for i := 0; i < len(neighborIDs); i++ {
		for j := i + 1; j < len(neighborIDs); j++ {
			a, b := neighborIDs[i], neighborIDs[j]
			if g.HasEdge(a, b) {
				continue
			}
			if _, err := g.AddEdge(a, b, weightTo[a]+weightTo[b]); err != nil {
				return err
			}
		}
	}

	return g.RemoveVertex(id)
}

// HasPath reports whether b is reachable from a by any walk of edges.
// a == b is always reachable. Either endpoint missing is ErrVertexNotFound.
func (g *Graph) HasPath(a, b string) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyVertexID
	}
	g.muVert.RLock()
	_, okA := g.vertices[a]
	_, okB := g.vertices[b]
	g.muVert.RUnlock()
	if !okA || !okB {
		return false, ErrVertexNotFound
	}
	if a == b {
		return true, nil
	}

	visited := make(map[string]bool)
	g.bfsMark(a, visited)

	return visited[b], nil
}

// SubgraphRoots returns one vertex per connected component, in the
// order each component is first discovered while scanning Vertices().
func (g *Graph) SubgraphRoots() ([]string, error) {
	vertices := g.Vertices()
	visited := make(map[string]bool, len(vertices))
	roots := make([]string, 0)

	for _, v := range vertices {
		if visited[v] {
			continue
		}
		roots = append(roots, v)
		g.bfsMark(v, visited)
	}

	return roots, nil
}

// bfsMark flood-fills visited from start using the graph's own adjacency
// via NeighborIDs: undirected edges are followed both ways, directed edges
// forward only, matching reachability.
func (g *Graph) bfsMark(start string, visited map[string]bool) {
	queue := []string{start}
	visited[start] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		ids, err := g.NeighborIDs(cur)
		if err != nil {
			continue
		}
		for _, n := range ids {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
}
