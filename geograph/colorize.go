package geograph

import (
	"github.com/katalvlaran/geograph/colorize"
	"github.com/katalvlaran/geograph/core"
)

// Colorize assigns a near-equitable coloring to g using at most
// ncolors colors. It delegates entirely to colorize.Colorize.
func Colorize(g *core.Graph, ncolors int) (map[string]int, *colorize.Histogram, error) {
	return colorize.Colorize(g, ncolors)
}
