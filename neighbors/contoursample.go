package neighbors

import (
	"fmt"

	"github.com/katalvlaran/geograph/config"
	"github.com/katalvlaran/geograph/delaunay"
	"github.com/katalvlaran/geograph/geom"
)

// contourSamplePercentage is the fraction of each contour's perimeter
// the sampler is asked to cover before this package's own stride
// downsampling runs over the result.
const contourSamplePercentage = 20.0

// FromContourSample builds a neighbor graph from a pooled, stride-
// downsampled contour sample of every component: sampler produces a
// roughly-20%-of-perimeter point sequence per component, which is then
// thinned by taking every config.ContourSampleStride-th point (index
// stride, not arc length) before the pooled, labeled points are
// triangulated. Only label pairs between distinct components ever
// appear in a triangle, since points sharing a label never form a
// "neighbor" pair (delaunay.NeighborLabels skips self-pairs).
func FromContourSample(ccs []CC, sampler ContourSampler) (map[int]map[int]struct{}, error) {
	var vertices []*delaunay.Vertex
	for _, cc := range ccs {
		sample := sampler.Sample(cc, contourSamplePercentage)
		thinned := sampleStride(sample, config.ContourSampleStride, config.ContourSampleCarry)
		for _, p := range thinned {
			vertices = append(vertices, delaunay.NewLabeledVertex(p.X, p.Y, cc.Label))
		}
	}

	if len(vertices) < 3 {
		return map[int]map[int]struct{}{}, nil
	}

	tree := delaunay.NewTree()
	if err := tree.BatchInsert(vertices); err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}

	return tree.NeighborLabels(), nil
}

// sampleStride walks points by index, not by arc length: step advances
// by stride on every emitted point and wraps (carrying the excess into
// offset) once it exceeds carry, so the emitted index is
// offset + int(step) regardless of how the points are spaced along the
// contour. This is a pure index stride, blind to point-to-point
// distance — it mirrors the original contour sampler's step/offset
// wraparound exactly rather than an arc-length accumulator.
func sampleStride(points []geom.Point, stride, carry int) []geom.Point {
	if len(points) == 0 || stride <= 0 {
		return nil
	}

	out := make([]geom.Point, 0, len(points)/stride+1)

	step, offset := 0, 0
	for {
		ii := offset + step
		if ii >= len(points) {
			break
		}
		out = append(out, points[ii])

		step += stride
		if carry > 0 && step > carry {
			step -= carry
			offset += carry
		}
	}

	return out
}
