package app

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/mosa-ranking/cmd/rankbench/app/options"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/benchmarks"
)

func newSuiteCommand(out io.Writer, o *options.Options) *cobra.Command {
	var strategies []string
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Rank the standard benchmark populations with every strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := klog.NewContext(cmd.Context(), klog.Background().WithValues("command", "suite"))
			args, err := o.RankingArgs(cmd.Flags())
			if err != nil {
				return err
			}

			suite := benchmarks.NewSuite(*args)
			suite.AddStandardProblems()
			if len(strategies) > 0 {
				suite.SetStrategies(strategies...)
			}
			suite.SetPlotDir(o.PlotDir)

			results, err := suite.Run(ctx)
			if err != nil {
				return err
			}
			return printResults(out, results)
		},
	}
	cmd.Flags().StringSliceVar(&strategies, "strategies", nil, "Ranking strategies to run. Defaults to all of them.")
	cmd.Flags().StringVar(&o.PlotDir, "plot-dir", o.PlotDir, "Directory for HTML plots of 2-objective problems.")
	return cmd
}

func printResults(out io.Writer, results []benchmarks.Result) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROBLEM\tSTRATEGY\tUNION\tFRONTS\tFRONT0\tUNRANKED\tIGD\tDURATION")
	for _, r := range results {
		igd := "-"
		if !math.IsNaN(r.IGD) {
			igd = humanize.FtoaWithDigits(r.IGD, 4)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Problem, r.Strategy,
			humanize.Comma(int64(r.Union)), humanize.Comma(int64(r.Fronts)),
			humanize.Comma(int64(r.ZeroFront)), humanize.Comma(int64(r.Unranked)), igd, r.Duration)
	}
	return w.Flush()
}
