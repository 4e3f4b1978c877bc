package fourier

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geograph/geom"
	"github.com/katalvlaran/geograph/hull"
	"github.com/katalvlaran/geograph/kdtree"
)

// Features computes an n-length Fourier shape descriptor for contour.
// An empty contour yields n zeros; a single-point contour yields
// [1, 0, ..., 0]. Otherwise the descriptor is built from the contour's
// convex hull: interpolate the hull to integer arc-length spacing, pair
// each interpolated point with its minimum distance back to contour,
// take the magnitude DFT of the resulting complex signal, and normalize
// by the largest of the first n/2 coefficients (DC term included).
//
// n must be even: internally the DFT is requested with n+1
// coefficients, and an odd internal count is required by dftMagnitudes
// (see ErrEvenCoefficientCount).
func Features(contour []geom.Point, n int, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, ErrTooFewCoefficients
	}

	out := make([]float64, n)
	if len(contour) == 0 {
		return out, nil
	}
	if len(contour) == 1 {
		out[0] = 1
		return out, nil
	}

	cfg := newFeatureConfig(opts...)

	hullPoints := hull.ConvexHull(contour)
	interpolated := interpolatePolygon(hullPoints)

	distances, err := minimumContourHullDistances(interpolated, contour, cfg.minHullDistance)
	if err != nil {
		return nil, fmt.Errorf("fourier: %w", err)
	}

	return descriptorFromSignal(interpolated, distances, n)
}

// minimumContourHullDistances returns, for each point in hullPoints,
// its distance to the nearest point in contourPoints via a k-d tree
// nearest-neighbor query, clamped to zero below minDist.
func minimumContourHullDistances(hullPoints, contourPoints []geom.Point, minDist float64) ([]float64, error) {
	tree := kdtree.Build(contourPoints)
	res := make([]float64, len(hullPoints))

	for i, p := range hullPoints {
		nearest, err := tree.KNN(p, 1)
		if err != nil {
			return nil, err
		}
		dist := math.Sqrt(geom.SquaredDistance(p, nearest[0]))
		if dist < minDist {
			dist = 0
		}
		res[i] = dist
	}

	return res, nil
}

// descriptorFromSignal builds the complex signal r(t) + j*distance(t),
// where r(t) is the distance of the t-th interpolated hull point from
// the hull's centroid, takes its magnitude DFT, and normalizes by the
// largest coefficient among the first n/2 entries.
func descriptorFromSignal(interpolated []geom.Point, distances []float64, n int) ([]float64, error) {
	meanX, meanY := 0.0, 0.0
	for _, p := range interpolated {
		meanX += p.X
		meanY += p.Y
	}
	count := float64(len(interpolated))
	meanX /= count
	meanY /= count

	signal := make([]complex128, len(interpolated))
	for i, p := range interpolated {
		dx, dy := p.X-meanX, p.Y-meanY
		r := math.Sqrt(dx*dx + dy*dy)
		signal[i] = complex(r, distances[i])
	}

	ck, err := dftMagnitudes(signal, n+1)
	if err != nil {
		return nil, err
	}

	cr := maxCoefficient(ck, 0, n/2)

	buf := make([]float64, n)
	for k := 0; k < n/2; k++ {
		if cr != 0 {
			buf[2*k] = ck[k] / cr
			buf[2*k+1] = ck[n-k] / cr
		}
	}

	return buf, nil
}
