package colorize

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/geograph/core"
)

// degreeBuckets holds, for each degree, the list of nodes currently at
// that degree, plus an intrusive index from node ID to its *list.Element
// so a node can be moved between buckets in O(1).
type degreeBuckets struct {
	buckets []*list.List // buckets[d] holds nodes of residual degree d
	where   map[string]*list.Element
	degree  map[string]int
}

func newDegreeBuckets(maxDegree int) *degreeBuckets {
	b := &degreeBuckets{
		buckets: make([]*list.List, maxDegree+1),
		where:   make(map[string]*list.Element),
		degree:  make(map[string]int),
	}
	for i := range b.buckets {
		b.buckets[i] = list.New()
	}

	return b
}

func (b *degreeBuckets) insert(id string, degree int) {
	if degree >= len(b.buckets) {
		degree = len(b.buckets) - 1
	}
	b.where[id] = b.buckets[degree].PushBack(id)
	b.degree[id] = degree
}

// decrement moves id from its current bucket to the bucket one lower,
// used when a neighbor of id is peeled off the residual graph.
func (b *degreeBuckets) decrement(id string) {
	d, ok := b.degree[id]
	if !ok {
		return
	}
	b.buckets[d].Remove(b.where[id])
	newDegree := d - 1
	if newDegree < 0 {
		newDegree = 0
	}
	b.where[id] = b.buckets[newDegree].PushBack(id)
	b.degree[id] = newDegree
}

// popMinimum removes and returns one node from the lowest non-empty
// bucket, or ok=false if every bucket is empty.
func (b *degreeBuckets) popMinimum() (string, bool) {
	for _, bucket := range b.buckets {
		if bucket.Len() == 0 {
			continue
		}
		front := bucket.Front()
		id := front.Value.(string)
		bucket.Remove(front)
		delete(b.where, id)
		delete(b.degree, id)

		return id, true
	}

	return "", false
}

// Colorize assigns colors in [0, ncolors) to every vertex of g such that
// no edge is monochrome, using the peel-order / balanced-assignment
// algorithm. ncolors must be at least config.MinPlanarColors (6) unless
// overridden by WithMinColors, matching the planar-coloring guarantee
// the algorithm relies on.
func Colorize(g *core.Graph, ncolors int, opts ...Option) (map[string]int, *Histogram, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	cfg := newColorConfig(opts...)
	if ncolors < cfg.minColors {
		return nil, nil, fmt.Errorf("%w: got %d, need >= %d", ErrTooFewColors, ncolors, cfg.minColors)
	}

	vertices := g.Vertices()
	neighborsOf := make(map[string][]string, len(vertices))
	maxDegree := 0
	for _, id := range vertices {
		ids, err := g.NeighborIDs(id)
		if err != nil {
			return nil, nil, fmt.Errorf("colorize: %w", err)
		}
		neighborsOf[id] = ids
		if len(ids) > maxDegree {
			maxDegree = len(ids)
		}
	}

	// Phase 1: peel order.
	buckets := newDegreeBuckets(maxDegree)
	for _, id := range vertices {
		buckets.insert(id, len(neighborsOf[id]))
	}

	removed := make([]string, 0, len(vertices))
	alive := make(map[string]bool, len(vertices))
	for _, id := range vertices {
		alive[id] = true
	}

	for len(removed) < len(vertices) {
		id, ok := buckets.popMinimum()
		if !ok {
			break
		}
		removed = append(removed, id)
		alive[id] = false
		for _, nbr := range neighborsOf[id] {
			if !alive[nbr] {
				continue
			}
			buckets.decrement(nbr)
		}
	}

	// Phase 2: balanced color assignment, replaying removal order in
	// reverse.
	colors := make(map[string]int, len(vertices))
	histCounts := make([]int, ncolors)

	for i := len(removed) - 1; i >= 0; i-- {
		id := removed[i]
		used := make(map[int]bool, len(neighborsOf[id]))
		for _, nbr := range neighborsOf[id] {
			if c, ok := colors[nbr]; ok {
				used[c] = true
			}
		}

		best := -1
		for c := 0; c < ncolors; c++ {
			if used[c] {
				continue
			}
			if best == -1 || histCounts[c] < histCounts[best] {
				best = c
			}
		}
		if best == -1 {
			return nil, nil, fmt.Errorf("%w: node %q", ErrColoringExhausted, id)
		}

		colors[id] = best
		histCounts[best]++
	}

	return colors, &Histogram{Counts: histCounts}, nil
}

// IsValidColoring reports whether colors is a proper coloring of g: every
// node has a color assigned and no edge joins two same-colored nodes.
func IsValidColoring(g *core.Graph, colors map[string]int) bool {
	for _, id := range g.Vertices() {
		c, ok := colors[id]
		if !ok {
			return false
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return false
		}
		for _, nbr := range nbrs {
			if nc, ok := colors[nbr]; ok && nc == c {
				return false
			}
		}
	}

	return true
}
