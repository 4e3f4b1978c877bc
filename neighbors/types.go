package neighbors

import (
	"errors"

	"github.com/katalvlaran/geograph/geom"
)

// ErrNilRaster indicates FromVoronoiRaster was called with a nil raster.
var ErrNilRaster = errors.New("neighbors: raster is nil")

// CC is the minimal connected-component view this package needs: a
// label, a representative centroid, and an ordered contour. Callers own
// the full component type and adapt it to CC at the call site.
type CC struct {
	Label    int
	Centroid geom.Point
	Contour  []geom.Point
}

// ContourSampler samples an ordered sequence of points along a
// connected component's contour, covering roughly percentage percent of
// its perimeter. Implementations typically walk the component's own
// boundary representation; this package only consumes the result.
type ContourSampler interface {
	Sample(cc CC, percentage float64) []geom.Point
}
