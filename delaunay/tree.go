package delaunay

import "github.com/katalvlaran/geograph/config"

// NewTree constructs an empty Delaunay tree: a root triangle with three
// symbolic points at infinity, and three ghost children sharing pairs
// of those sentinels, wired so that the ghosts are each other's
// neighbors across the outer boundary. The collinearity epsilon used by
// NeighborLabels/NeighborVertices defaults to config.CollinearityEpsilon
// and can be overridden with WithEpsilon.
func NewTree(opts ...TreeOption) *Tree {
	tree := &Tree{epsilon: config.CollinearityEpsilon}
	for _, opt := range opts {
		opt(tree)
	}
	tree.root = newRootTriangle(tree)

	g0 := newGhostChild(tree, tree.root, 0)
	g1 := newGhostChild(tree, tree.root, 1)
	g2 := newGhostChild(tree, tree.root, 2)

	g0.Neighbors[1] = g1
	g0.Neighbors[2] = g2
	g1.Neighbors[0] = g0
	g1.Neighbors[2] = g2
	g2.Neighbors[0] = g0
	g2.Neighbors[1] = g1

	return tree
}

// AddVertex inserts v into the triangulation following the six-step
// history-DAG algorithm: locate a conflicting leaf, reject exact
// coincidence with an existing finite vertex, kill every conflicting
// triangle in the clockwise fan around v, and stitch a new triangle fan
// at v along the boundary between dead and live triangles.
func (tree *Tree) AddVertex(v *Vertex) error {
	tree.token++
	token := tree.token
	tree.root.visited = token

	n := tree.root.findConflict(v, token)
	if n == nil {
		// v falls outside the current universe; this never happens for
		// finite v with sentinels far enough away.
		return nil
	}

	n.Flag.Kill()

	for i := 0; i < 3-n.Flag.InfiniteDegree(); i++ {
		if v.Point == n.Vertices[i].Point {
			return ErrDegenerateVertex
		}
	}

	q := n.Vertices[0]
	i := n.cwNeighbor(q)
	for n.Neighbors[i].conflict(v) {
		n = n.Neighbors[i]
		n.Flag.Kill()
		i = n.cwNeighbor(q)
	}

	first := newChildAtVertex(tree, n, v, i)
	last := first
	r := n.Vertices[(i+2)%3]

	for {
		for {
			i = n.cwNeighbor(r)
			if n.Neighbors[i].Flag.Dead() {
				n = n.Neighbors[i]
				continue
			}
			if n.Neighbors[i].conflict(v) {
				n = n.Neighbors[i]
				n.Flag.Kill()
				continue
			}
			break
		}

		created := newChildAtVertex(tree, n, v, i)
		created.Neighbors[2] = last
		last.Neighbors[1] = created
		last = created
		r = n.Vertices[(i+2)%3]

		if r == q {
			break
		}
	}

	first.Neighbors[2] = last
	last.Neighbors[1] = first

	return nil
}
