package geograph

import (
	"github.com/katalvlaran/geograph/fourier"
	"github.com/katalvlaran/geograph/geom"
)

// FourierFeatures computes a normalized Fourier shape descriptor of
// length n for the given closed contour, delegating to fourier.Features.
func FourierFeatures(contour []geom.Point, n int) ([]float64, error) {
	return fourier.Features(contour, n)
}
