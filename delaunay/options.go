package delaunay

import "golang.org/x/exp/rand"

// Option configures BatchInsert.
type Option func(*batchConfig)

type batchConfig struct {
	rng *rand.Rand
}

func newBatchConfig(opts ...Option) batchConfig {
	cfg := batchConfig{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed freezes the random shuffle used by BatchInsert to a specific
// seed, for reproducible triangulations across runs.
func WithSeed(seed uint64) Option {
	return func(cfg *batchConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies a caller-owned random source for the shuffle.
// Options apply in order, so whichever of WithSeed and WithRand comes
// last decides the source; a nil rng leaves the source unchanged.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *batchConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// TreeOption configures a Tree at construction time (NewTree).
type TreeOption func(*Tree)

// WithEpsilon overrides the collinearity epsilon a Tree uses when
// filtering degenerate triangles out of NeighborLabels/NeighborVertices,
// in place of the library-wide config.CollinearityEpsilon default.
func WithEpsilon(epsilon float64) TreeOption {
	return func(tree *Tree) { tree.epsilon = epsilon }
}

// BatchInsert randomly shuffles vertices and inserts them one by one.
// Randomization is essential for the expected O(n log n) bound: an
// adversarial (e.g. sorted) insertion order degrades to O(n^2).
func (tree *Tree) BatchInsert(vertices []*Vertex, opts ...Option) error {
	if len(vertices) < 3 {
		return ErrTooFewVertices
	}

	cfg := newBatchConfig(opts...)

	shuffled := make([]*Vertex, len(vertices))
	copy(shuffled, vertices)
	cfg.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, v := range shuffled {
		if err := tree.AddVertex(v); err != nil {
			return err
		}
	}

	return nil
}
