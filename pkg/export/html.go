package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/edp1096/toy-tunnel/pkg/analysis"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// WriteHTML renders every sweep of every study as a zoomable line chart on one page.
func WriteHTML(w io.Writer, results []*analysis.StudyResult) error {
	page := components.NewPage()
	page.PageTitle = "Floating gate tunneling"

	for _, res := range results {
		for _, curves := range res.Curves {
			if len(curves) == 0 {
				continue
			}
			page.AddCharts(sweepChart(res, curves))
		}
	}

	return page.Render(w)
}

func sweepChart(res *analysis.StudyResult, curves []analysis.Result) *charts.Line {
	param := curves[0].Param

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: %s", res.Regime, param.Label()),
			Subtitle: fmt.Sprintf("viability threshold T > %g", res.Threshold),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: axisLabel(param),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "T",
			Type: "log",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)

	xs := make([]string, len(curves[0].Samples))
	for i, s := range curves[0].Samples {
		xs[i] = strconv.FormatFloat(s.Value, 'g', 4, 64)
	}
	line.SetXAxis(xs)

	for j, c := range curves {
		items := make([]opts.LineData, len(c.Samples))
		for i, s := range c.Samples {
			items[i] = opts.LineData{Value: s.Coefficient}
		}

		var series []charts.SeriesOpts
		if j == 0 {
			series = append(series, charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "threshold",
				YAxis: res.Threshold,
			}))
		}
		line.AddSeries(energyLabel(res.Energies[j]), items, series...)
	}

	return line
}

func SaveHTML(filename string, results []*analysis.StudyResult) error {
	return saveFile(filename, func(w io.Writer) error {
		return WriteHTML(w, results)
	})
}
