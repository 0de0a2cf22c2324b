package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/edp1096/toy-tunnel/pkg/analysis"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	figureWidth = 8 * vg.Inch
	panelHeight = 3.5 * vg.Inch
)

// WritePNG draws one log-scale panel per sweep of res, one line per energy
// level, with the threshold as a dashed line and the reported crossings marked.
func WritePNG(w io.Writer, res *analysis.StudyResult) error {
	if len(res.Curves) == 0 {
		return fmt.Errorf("%s study has no curves to plot", res.Regime)
	}

	plots := make([][]*plot.Plot, len(res.Curves))
	for i, curves := range res.Curves {
		p, err := sweepPlot(res, i, curves)
		if err != nil {
			return err
		}
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(figureWidth, panelHeight*vg.Length(len(plots)))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}

func sweepPlot(res *analysis.StudyResult, sweep int, curves []analysis.Result) (*plot.Plot, error) {
	param := curves[0].Param

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: T vs %s", res.Regime, param.Label())
	p.X.Label.Text = axisLabel(param)
	p.Y.Label.Text = "Transmission Coefficient T"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	var lines []any
	lo, hi := res.Threshold, res.Threshold
	for j, c := range curves {
		xys := make(plotter.XYs, len(c.Samples))
		for k, s := range c.Samples {
			xys[k].X = s.Value
			xys[k].Y = s.Coefficient
		}
		lines = append(lines, energyLabel(res.Energies[j]), xys)

		if coeffs := c.Coefficients(); len(coeffs) > 0 {
			lo = min(lo, floats.Min(coeffs))
			hi = max(hi, floats.Max(coeffs))
		}
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}

	values := curves[0].Values()
	if len(values) > 0 {
		tau, err := plotter.NewLine(plotter.XYs{
			{X: floats.Min(values), Y: res.Threshold},
			{X: floats.Max(values), Y: res.Threshold},
		})
		if err != nil {
			return nil, err
		}
		tau.Color = color.Gray{Y: 96}
		tau.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		p.Add(tau)
		p.Legend.Add(fmt.Sprintf("T=%g", res.Threshold), tau)
	}

	var marks plotter.XYs
	for _, row := range res.Rows {
		if m := row.Marks[sweep]; m.Found {
			marks = append(marks, plotter.XY{X: m.Sample.Value, Y: m.Sample.Coefficient})
		}
	}
	if len(marks) > 0 {
		sc, err := plotter.NewScatter(marks)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = draw.CrossGlyph{}
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
	}

	// a log axis needs a non-degenerate positive range
	if lo == hi {
		lo, hi = lo/10, hi*10
	}
	p.Y.Min, p.Y.Max = lo, hi

	return p, nil
}

func SavePNG(filename string, res *analysis.StudyResult) error {
	return saveFile(filename, func(w io.Writer) error {
		return WritePNG(w, res)
	})
}
