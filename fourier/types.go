package fourier

import "errors"

// ErrEvenCoefficientCount indicates the internal DFT magnitude helper
// was asked for an even number of coefficients, which the direct-
// summation cut never supports. Features requests n+1 coefficients,
// so it returns this error when called with an odd n.
var ErrEvenCoefficientCount = errors.New("fourier: even coefficient count is not supported")

// ErrTooFewCoefficients indicates N was requested as zero or negative.
var ErrTooFewCoefficients = errors.New("fourier: n must be positive")

// Option configures Features.
type Option func(*featureConfig)

type featureConfig struct {
	minHullDistance float64
}

func newFeatureConfig(opts ...Option) featureConfig {
	cfg := featureConfig{minHullDistance: 1.0}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMinHullDistance overrides the distance-to-zero clamp threshold
// applied in minimumContourHullDistances (default 1.0, matching the
// original's hard-coded "dist < 1.0 -> 0.0" rule).
func WithMinHullDistance(d float64) Option {
	return func(cfg *featureConfig) { cfg.minHullDistance = d }
}
