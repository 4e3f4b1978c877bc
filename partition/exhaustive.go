package partition

import (
	"math/bits"

	"github.com/katalvlaran/geograph/core"
)

// ExhaustivePartition searches, by brute force, for the partition of
// g's vertices into exactly k non-empty parts that minimizes the total
// weight of edges whose endpoints fall in different parts. It returns
// the chosen parts (as vertex-ID slices) and that minimum inter-part
// cost.
//
// The search represents each candidate part as a bit in a uint64
// bitmask, so it is only defined for graphs with at most 63 vertices;
// larger inputs return ErrTooManyVertices rather than silently running
// for an impractical amount of time. This mirrors the bitmask
// subset-DP shape of partition search over small graphs, generalized
// to any caller-supplied weighted graph rather than a fixed,
// domain-specific scoring function.
//
// Complexity: O(3^n) in the number of vertices n, from enumerating
// every (part, complement-submask) pair once.
func ExhaustivePartition(g *core.Graph, k int) ([][]string, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n > maxBitmaskVertices {
		return nil, 0, ErrTooManyVertices
	}
	if k < 1 || k > n {
		return nil, 0, ErrInvalidPartCount
	}

	weight := buildWeightMatrix(g, vertices)
	total := totalWeight(weight, n)

	full := uint64(1)<<uint(n) - 1
	intra := make([]float64, full+1)
	for mask := uint64(1); mask <= full; mask++ {
		lsb := bits.TrailingZeros64(mask)
		rest := mask &^ (uint64(1) << uint(lsb))
		sum := intra[rest]
		for j := rest; j != 0; j &= j - 1 {
			bit := bits.TrailingZeros64(j)
			sum += weight[lsb][bit]
		}
		intra[mask] = sum
	}

	// best[j][mask] = maximum achievable sum of intra-part weight when
	// mask's vertices are split into exactly j non-empty parts.
	best := make([][]float64, k+1)
	choice := make([][]uint64, k+1)
	for j := range best {
		best[j] = make([]float64, full+1)
		choice[j] = make([]uint64, full+1)
		for m := range best[j] {
			best[j][m] = -1
		}
	}
	best[0][0] = 0

	for j := 1; j <= k; j++ {
		for mask := uint64(1); mask <= full; mask++ {
			lsb := uint64(1) << uint(bits.TrailingZeros64(mask))
			// enumerate submasks of mask that contain the lowest set bit,
			// canonicalizing which part "owns" that bit to avoid
			// re-counting the same partition under different orderings.
			for sub := mask; sub != 0; sub = (sub - 1) & mask {
				if sub&lsb == 0 {
					continue
				}
				rem := mask &^ sub
				if best[j-1][rem] < 0 {
					continue
				}
				candidate := best[j-1][rem] + intra[sub]
				if candidate > best[j][mask] {
					best[j][mask] = candidate
					choice[j][mask] = sub
				}
			}
		}
	}

	parts := make([][]string, 0, k)
	mask := full
	for j := k; j > 0; j-- {
		sub := choice[j][mask]
		parts = append(parts, bitsToIDs(sub, vertices))
		mask &^= sub
	}

	return parts, total - best[k][full], nil
}

func buildWeightMatrix(g *core.Graph, vertices []string) [][]float64 {
	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
	}

	m := make([][]float64, len(vertices))
	for i := range m {
		m[i] = make([]float64, len(vertices))
	}

	for _, e := range g.Edges() {
		i, okI := index[e.From]
		j, okJ := index[e.To]
		if !okI || !okJ {
			continue
		}
		m[i][j] += float64(e.Weight)
		m[j][i] += float64(e.Weight)
	}

	return m
}

func totalWeight(weight [][]float64, n int) float64 {
	total := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total += weight[i][j]
		}
	}

	return total
}

func bitsToIDs(mask uint64, vertices []string) []string {
	out := make([]string, 0, bits.OnesCount64(mask))
	for m := mask; m != 0; m &= m - 1 {
		idx := bits.TrailingZeros64(m)
		out = append(out, vertices[idx])
	}

	return out
}
