package neighbors

import "github.com/katalvlaran/geograph/rasterio"

// FromVoronoiRaster reads label adjacency directly off a labeled
// raster: every interior pixel is compared against its right and down
// neighbors (plus both diagonals when eightConnected is set), and every
// distinct pair of non-zero labels observed becomes an edge.
func FromVoronoiRaster(raster rasterio.LabeledRaster, eightConnected bool) (map[int]map[int]struct{}, error) {
	if raster == nil {
		return nil, ErrNilRaster
	}

	w, h := raster.Width(), raster.Height()
	out := make(map[int]map[int]struct{})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			label := raster.At(x, y)
			if label == 0 {
				continue
			}
			if x+1 < w {
				addLabelPair(out, label, raster.At(x+1, y))
			}
			if y+1 < h {
				addLabelPair(out, label, raster.At(x, y+1))
			}
			if eightConnected {
				if x+1 < w && y+1 < h {
					addLabelPair(out, label, raster.At(x+1, y+1))
				}
				if x-1 >= 0 && y+1 < h {
					addLabelPair(out, label, raster.At(x-1, y+1))
				}
			}
		}
	}

	return out, nil
}

func addLabelPair(out map[int]map[int]struct{}, a, b int) {
	if a == 0 || b == 0 || a == b {
		return
	}
	small, large := a, b
	if small > large {
		small, large = large, small
	}
	if out[small] == nil {
		out[small] = make(map[int]struct{})
	}
	out[small][large] = struct{}{}
}
