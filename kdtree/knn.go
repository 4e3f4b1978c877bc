package kdtree

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/geograph/geom"
)

// maxHeap is a bounded max-heap of the k closest candidates found so
// far, ordered by squared distance descending so the farthest current
// candidate sits at the root and can be evicted in O(log k). Mirrors
// the container/heap usage in dijkstra's nodePQ, adapted to a
// farthest-first eviction policy instead of a closest-first min-heap.
type maxHeap []neighbor

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].sqrDist > h[j].sqrDist }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(neighbor)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// KNN returns up to k points closest to p, in non-decreasing distance
// order, using best-first backtracking with splitting-plane pruning:
// a subtree is only descended into if its splitting plane is closer to
// p than the current farthest retained candidate.
//
// Complexity: O(log n + k) expected; O(n) worst case.
func (t *Tree) KNN(p geom.Point, k int) ([]geom.Point, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	h := &maxHeap{}
	heap.Init(h)
	searchKNN(t.root, p, 0, k, h)

	results := make([]neighbor, len(*h))
	copy(results, *h)
	sort.Slice(results, func(i, j int) bool { return results[i].sqrDist < results[j].sqrDist })

	out := make([]geom.Point, len(results))
	for i, r := range results {
		out[i] = r.point
	}

	return out, nil
}

// searchKNN recursively visits n, maintaining h as the k closest
// candidates seen so far across the whole traversal.
func searchKNN(n *node, p geom.Point, depth, k int, h *maxHeap) {
	if n == nil {
		return
	}

	d := geom.SquaredDistance(p, n.point)
	if h.Len() < k {
		heap.Push(h, neighbor{point: n.point, index: n.index, sqrDist: d})
	} else if d < (*h)[0].sqrDist {
		heap.Pop(h)
		heap.Push(h, neighbor{point: n.point, index: n.index, sqrDist: d})
	}

	axis := depth % 2
	var diff float64
	var near, far *node
	if axis == 0 {
		diff = p.X - n.point.X
	} else {
		diff = p.Y - n.point.Y
	}
	if diff <= 0 {
		near, far = n.left, n.right
	} else {
		near, far = n.right, n.left
	}

	searchKNN(near, p, depth+1, k, h)

	// Only cross the splitting plane if it could still hold a closer
	// point than the current worst retained candidate.
	if h.Len() < k || diff*diff < (*h)[0].sqrDist {
		searchKNN(far, p, depth+1, k, h)
	}
}
