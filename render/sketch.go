package render

import (
	"image/color"

	"github.com/Chaeguevara/geofold-fusion/poly/must"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// arcFacets controls how finely corner arcs are flattened when plotted.
const arcFacets = 24

// SaveSketch plots the sharp vertex loop and, if given, the rounded
// boundary on top of it, then writes the figure to path. The output
// format follows the file extension (.png, .svg, .pdf).
func SaveSketch(path, title string, loop must.Loop, rounded *must.Rounded) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	outline, err := plotter.NewLine(closedXYs(loop))
	if err != nil {
		return err
	}
	outline.Color = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	outline.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(plotter.NewGrid(), outline)

	if rounded != nil {
		rl, err := plotter.NewLine(closedXYs(rounded.Facet(arcFacets)))
		if err != nil {
			return err
		}
		rl.Color = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
		p.Add(rl)
	}
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, path)
}

func closedXYs(l must.Loop) plotter.XYs {
	xys := make(plotter.XYs, len(l.V)+1)
	for i, v := range l.V {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	xys[len(l.V)] = xys[0]
	return xys
}
