package delaunay

import "github.com/katalvlaran/geograph/geom"

// NeighborLabels walks every leaf of the tree once and, for each
// finite, non-collinear leaf whose three vertices all carry a label,
// records the three undirected label pairs among its vertices. The
// result maps the smaller member of each pair to the set of larger
// members, canonicalizing away duplicates.
func (tree *Tree) NeighborLabels() map[int]map[int]struct{} {
	tree.token++
	token := tree.token
	tree.root.visited = token

	out := make(map[int]map[int]struct{})
	collectLabels(tree.root, token, tree.epsilon, out)

	return out
}

func collectLabels(t *Triangle, token uint64, epsilon float64, out map[int]map[int]struct{}) {
	if t.Flag.Dead() {
		for _, son := range t.Sons {
			if son.visited == token {
				continue
			}
			son.visited = token
			collectLabels(son, token, epsilon, out)
		}

		return
	}

	p0, p1, p2 := t.Vertices[0].Point, t.Vertices[1].Point, t.Vertices[2].Point
	if geom.CollinearEps(p0, p1, p2, epsilon) {
		return
	}
	l0, l1, l2 := t.Vertices[0].Label, t.Vertices[1].Label, t.Vertices[2].Label
	if l0 == UnlabeledVertex || l1 == UnlabeledVertex || l2 == UnlabeledVertex {
		return
	}

	addLabelPair(out, l0, l1)
	addLabelPair(out, l1, l2)
	addLabelPair(out, l2, l0)
}

func addLabelPair(out map[int]map[int]struct{}, a, b int) {
	if a == b {
		return
	}
	small, large := a, b
	if small > large {
		small, large = large, small
	}
	if out[small] == nil {
		out[small] = make(map[int]struct{})
	}
	out[small][large] = struct{}{}
}

// NeighborVertices is the vertex-pointer analogue of NeighborLabels,
// used when downstream code needs triangulation adjacency by identity
// rather than by label.
func (tree *Tree) NeighborVertices() map[*Vertex]map[*Vertex]struct{} {
	tree.token++
	token := tree.token
	tree.root.visited = token

	out := make(map[*Vertex]map[*Vertex]struct{})
	collectVertices(tree.root, token, tree.epsilon, out)

	return out
}

func collectVertices(t *Triangle, token uint64, epsilon float64, out map[*Vertex]map[*Vertex]struct{}) {
	if t.Flag.Dead() {
		for _, son := range t.Sons {
			if son.visited == token {
				continue
			}
			son.visited = token
			collectVertices(son, token, epsilon, out)
		}

		return
	}

	p0, p1, p2 := t.Vertices[0].Point, t.Vertices[1].Point, t.Vertices[2].Point
	if geom.CollinearEps(p0, p1, p2, epsilon) {
		return
	}
	l0, l1, l2 := t.Vertices[0].Label, t.Vertices[1].Label, t.Vertices[2].Label
	if l0 == UnlabeledVertex || l1 == UnlabeledVertex || l2 == UnlabeledVertex {
		return
	}

	addVertexPair(out, t.Vertices[0], t.Vertices[1])
	addVertexPair(out, t.Vertices[1], t.Vertices[2])
	addVertexPair(out, t.Vertices[2], t.Vertices[0])
}

func addVertexPair(out map[*Vertex]map[*Vertex]struct{}, a, b *Vertex) {
	if a == b {
		return
	}
	small, large := a, b
	if small.seq > large.seq {
		small, large = large, small
	}
	if out[small] == nil {
		out[small] = make(map[*Vertex]struct{})
	}
	out[small][large] = struct{}{}
}
