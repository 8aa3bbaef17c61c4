package bench

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderSweep writes an interactive line chart of Sweep's output to path:
// elapsed time per N and satisfying-assignment count as two series that
// share a single y-axis labelled in microseconds.
func RenderSweep(points []Point, path string) error {
	page := components.NewPage().SetPageTitle("CountN sweep")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "CountN cost vs. N"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "N"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds"}),
	)

	ns := make([]string, len(points))
	timings := make([]opts.LineData, len(points))
	counts := make([]opts.LineData, len(points))
	for i, p := range points {
		ns[i] = fmt.Sprintf("%d", p.N)
		timings[i] = opts.LineData{Value: p.Elapsed.Microseconds()}
		counts[i] = opts.LineData{Value: p.Count}
	}

	line.SetXAxis(ns).
		AddSeries("elapsed (us)", timings).
		AddSeries("count", counts)

	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create %s: %w", path, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("bench: render %s: %w", path, err)
	}
	return nil
}
