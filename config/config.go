// Package config collects the numeric constants fixed library-wide:
// the collinearity epsilon, the minimum planar-coloring color count,
// and the contour-sample stride and carry. Packages import these
// constants directly; where a caller-tunable override is needed they
// also expose their own With... option whose default is the constant
// here, matching the rest of the module's functional-option style.
package config

const (
	// CollinearityEpsilon bounds the absolute value of twice the signed
	// area below which three points are considered collinear.
	CollinearityEpsilon = 1e-7

	// MinPlanarColors is the smallest color count the planar coloring
	// engine accepts; the algorithm is only guaranteed to terminate for
	// c >= 6 (Matula-Shiloach-Tarjan's six-color theorem for planar graphs).
	MinPlanarColors = 6

	// ContourSampleStride is the "every 5th point" stride used when
	// extracting the 20% contour sample for neighbor-pair extraction.
	ContourSampleStride = 5

	// ContourSampleCarry is the periodic-carry constant the contour
	// sampler's step/offset index walk wraps against, bounding how far
	// step grows before its excess rolls into offset.
	ContourSampleCarry = 100
)
