package colorize

import (
	"errors"
	"math"

	"github.com/katalvlaran/geograph/config"
)

// ErrNilGraph indicates a nil *core.Graph was passed to Colorize.
var ErrNilGraph = errors.New("colorize: graph is nil")

// ErrTooFewColors indicates ncolors < the minimum planar color count.
var ErrTooFewColors = errors.New("colorize: ncolors must be at least config.MinPlanarColors")

// ErrColoringExhausted indicates that some node ran out of available
// colors — the residual graph is not planar (or ncolors is
// insufficient for it).
var ErrColoringExhausted = errors.New("colorize: coloring exhausted, no available color for a node")

// ErrUncoloredNode indicates Histogram or a lookup was asked about a
// node that the coloring pass never colored.
var ErrUncoloredNode = errors.New("colorize: node has no assigned color")

// Histogram is the per-color assignment count produced by a successful
// Colorize call.
type Histogram struct {
	Counts []int
}

// Balance reports whether the histogram satisfies the balance bound
// |hist[i] - hist[j]| <= ceil(vertexCount / len(Counts)) for every pair
// of colors — the best-effort equitability guarantee.
func (h *Histogram) Balance(vertexCount int) bool {
	if len(h.Counts) == 0 {
		return true
	}
	bound := int(math.Ceil(float64(vertexCount) / float64(len(h.Counts))))
	minC, maxC := h.Counts[0], h.Counts[0]
	for _, c := range h.Counts[1:] {
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
	}

	return maxC-minC <= bound
}

// Option configures Colorize.
type Option func(*colorConfig)

type colorConfig struct {
	minColors int
}

func newColorConfig(opts ...Option) colorConfig {
	cfg := colorConfig{minColors: config.MinPlanarColors}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMinColors overrides the minimum accepted color count, primarily
// for testing smaller non-planar graphs that do not need the planar
// six-color guarantee.
func WithMinColors(n int) Option {
	return func(cfg *colorConfig) { cfg.minColors = n }
}
