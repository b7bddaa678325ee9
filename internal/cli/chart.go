package cli

import (
	"fmt"
	"io"
	"math/big"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/agbru/fibfinder/internal/orchestration"
)

// WriteChart renders the report as an HTML page with two bar charts: the
// duration of every generator, and either its percent error (when the report
// has a reference) or the digit count of its result.
func WriteChart(out io.Writer, report orchestration.Report) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("fibfinder F(%s)", report.Index)
	page.AddCharts(durationChart(report), accuracyChart(report))
	if err := page.Render(out); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func generatorNames(report orchestration.Report) []string {
	names := make([]string, len(report.Rows))
	for i, row := range report.Rows {
		names[i] = row.Result.Name
	}
	return names
}

func durationChart(report orchestration.Report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Generator durations",
			Subtitle: fmt.Sprintf("index %s", report.Index),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "µs"}),
	)

	data := make([]opts.BarData, len(report.Rows))
	for i, row := range report.Rows {
		data[i] = opts.BarData{Value: float64(row.Result.Duration.Nanoseconds()) / 1e3}
	}
	bar.SetXAxis(generatorNames(report)).AddSeries("duration", data)
	return bar
}

func accuracyChart(report orchestration.Report) *charts.Bar {
	bar := charts.NewBar()
	data := make([]opts.BarData, len(report.Rows))

	if report.HasReference() {
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    "Percent error",
				Subtitle: fmt.Sprintf("reference %s", report.Reference),
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Name: "%"}),
		)
		for i, row := range report.Rows {
			data[i] = opts.BarData{Value: chartPercent(row.PercentError)}
		}
		bar.SetXAxis(generatorNames(report)).AddSeries("percent error", data)
		return bar
	}

	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Result digits"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	for i, row := range report.Rows {
		data[i] = opts.BarData{Value: len(new(big.Int).Abs(row.Result.Value()).String())}
	}
	bar.SetXAxis(generatorNames(report)).AddSeries("digits", data)
	return bar
}

// chartPercent converts a percent error for plotting. Infinite values have
// no bar.
func chartPercent(pct *big.Float) any {
	if pct == nil || pct.IsInf() {
		return nil
	}
	f, _ := pct.Float64()
	return f
}
