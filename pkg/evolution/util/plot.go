package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

// PlotHistory renders the recorded per-generation series of a finished run
// as line charts in a standalone HTML file and returns its path. The first
// chart shows best and average fitness, the second population diversity.
func PlotHistory(outDir string, stats framework.Stats, problemName, algorithmName string) (string, error) {
	n := stats.History.Len()
	if n == 0 {
		return "", fmt.Errorf("history is empty for %s on %s", algorithmName, problemName)
	}

	// Capped histories keep only the newest entries, so the axis starts
	// at the generation the oldest retained entry belongs to.
	startGen := stats.Generation - n + 1
	generations := make([]string, n)
	best := make([]opts.LineData, n)
	average := make([]opts.LineData, n)
	diversity := make([]opts.LineData, n)
	for i := 0; i < n; i++ {
		generations[i] = strconv.Itoa(startGen + i)
		best[i] = opts.LineData{Value: stats.History.BestFitness[i]}
		average[i] = opts.LineData{Value: stats.History.AverageFitness[i]}
		diversity[i] = opts.LineData{Value: stats.History.Diversity[i]}
	}

	fitness := charts.NewLine()
	fitness.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Fitness on %s", algorithmName, problemName),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Generation",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	fitness.SetXAxis(generations).
		AddSeries("Best Fitness", best).
		AddSeries("Average Fitness", average).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	spread := charts.NewLine()
	spread.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Diversity on %s", algorithmName, problemName),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Generation",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Mean pairwise distance",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	spread.SetXAxis(generations).
		AddSeries("Diversity", diversity)

	page := components.NewPage()
	page.AddCharts(fitness, spread)

	path := filepath.Join(outDir, fmt.Sprintf("%s_%s_history.html", problemName, algorithmName))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", err
	}
	return path, nil
}
