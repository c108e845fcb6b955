package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// ReferenceProblem is a problem whose optimal front can be sampled.
type ReferenceProblem interface {
	Name() string
	TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint
}

func newScatter(title, xName, yName string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	return scatter
}

func render(scatter *charts.Scatter, filename string) error {
	scatter.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
		charts.WithEmphasisOpts(opts.Emphasis{}),
	)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}

// PlotFronts writes a scatter plot of ranked fronts over the first two
// objectives, one series per front.
func PlotFronts(fronts [][]framework.Solution, objectives []framework.Objective, title, filename string) error {
	if len(objectives) < 2 {
		return fmt.Errorf("need at least 2 objectives to plot %q, got %d", title, len(objectives))
	}
	if len(fronts) == 0 {
		return fmt.Errorf("no fronts to plot for %q", title)
	}

	scatter := newScatter(title, objectives[0].Name(), objectives[1].Name())
	for rank, front := range fronts {
		data := make([]opts.ScatterData, len(front))
		for i, s := range front {
			data[i] = opts.ScatterData{
				Value:      []float64{s.Fitness(objectives[0]), s.Fitness(objectives[1])},
				Symbol:     "circle",
				SymbolSize: 8,
			}
		}
		scatter.AddSeries(fmt.Sprintf("Front %d", rank), data)
	}
	return render(scatter, filename)
}

// PlotResults creates a scatter plot comparing the true Pareto front of the given problem
// with the solutions found by a ranking strategy.
func PlotResults(results []framework.ObjectiveSpacePoint, problem ReferenceProblem, strategy string, outputPath ...string) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s Benchmark", problem.Name())
	}

	if len(results[0]) != 2 {
		return fmt.Errorf("can only plot 2D for %s Benchmark", problem.Name())
	}

	scatter := newScatter(fmt.Sprintf("%s Results for %s Benchmark", strategy, problem.Name()), "f1(x)", "f2(x)")

	trueParetoFront := problem.TrueParetoFront(500)
	trueX := make([]opts.ScatterData, len(trueParetoFront))
	for i, p := range trueParetoFront {
		trueX[i] = opts.ScatterData{
			Value:      []float64(p),
			Symbol:     "circle",
			SymbolSize: 3,
		}
	}

	foundX := make([]opts.ScatterData, len(results))
	for i, res := range results {
		foundX[i] = opts.ScatterData{
			Value:      []float64{res[0], res[1]},
			Symbol:     "triangle",
			SymbolSize: 8,
		}
	}

	scatter.AddSeries("True Pareto Front", trueX).
		AddSeries(fmt.Sprintf("%s Solutions", strategy), foundX)

	filename := fmt.Sprintf("%s_%s_results.html", problem.Name(), strategy)
	if len(outputPath) > 0 && outputPath[0] != "" {
		filename = outputPath[0]
	}
	return render(scatter, filename)
}
