package app

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/mosa-ranking/cmd/rankbench/app/options"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/analysis"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/util"
)

func newRankCommand(out io.Writer, o *options.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank one benchmark population and summarize its fronts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, out, o)
		},
	}
	o.AddProblemFlags(cmd.Flags())
	cmd.Flags().StringVar(&o.PlotDir, "plot-dir", o.PlotDir, "Directory for an HTML plot of the fronts over the first two objectives.")
	cmd.Flags().BoolVar(&o.ShowMetrics, "metrics", o.ShowMetrics, "Print the ranking metrics in the Prometheus text format.")
	return cmd
}

func runRank(cmd *cobra.Command, out io.Writer, o *options.Options) error {
	logger := klog.Background().WithValues("command", "rank")
	ctx := klog.NewContext(cmd.Context(), logger)

	args, err := o.RankingArgs(cmd.Flags())
	if err != nil {
		return err
	}
	problem, err := o.BenchmarkProblem()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	ranker, err := multiobjective.New(ctx, args, registry)
	if err != nil {
		return err
	}

	objectives := problem.Objectives()
	population := framework.Solutions(problem.Population(2*args.PopulationSize, framework.NewRandomness(ptr.Deref(args.Seed, 0))))
	logger.V(2).Info("Sampled population", "problem", problem.Name(), "size", len(population), "objectives", len(objectives))

	start := time.Now()
	res := ranker.Rank(population, objectives)
	elapsed := time.Since(start)

	unranked := 0
	for _, s := range res.Scores {
		if s.Rank == framework.Unranked {
			unranked++
		}
	}
	fmt.Fprintf(out, "%s: ranked %s solutions on %d objectives with %s/%s in %s\n",
		problem.Name(), humanize.Comma(int64(len(population))), len(objectives), args.Strategy, args.Distance, elapsed)
	fmt.Fprintf(out, "fronts: %s, unranked: %s\n\n", humanize.Comma(int64(len(res.Fronts))), humanize.Comma(int64(unranked)))
	if err := printSummaries(out, analysis.Summarize(res.Fronts, res.Distances)); err != nil {
		return err
	}

	if o.PlotDir != "" {
		file := filepath.Join(o.PlotDir, fmt.Sprintf("%s_%s.html", problem.Name(), args.Strategy))
		title := fmt.Sprintf("%s fronts for %s", args.Strategy, problem.Name())
		if err := util.PlotFronts(res.Fronts, objectives, title, file); err != nil {
			return fmt.Errorf("failed to plot fronts: %w", err)
		}
		logger.Info("Wrote plot", "file", file)
	}

	if o.ShowMetrics {
		fmt.Fprintln(out)
		return writeMetrics(out, registry)
	}
	return nil
}

func printSummaries(out io.Writer, summaries []analysis.FrontSummary) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FRONT\tSIZE\tUNBOUNDED\tMEAN\tSTDDEV\tMIN\tMAX")
	for _, s := range summaries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", s.Rank,
			humanize.Comma(int64(s.Size)), humanize.Comma(int64(s.Unbounded)),
			humanize.FtoaWithDigits(s.Mean, 4), humanize.FtoaWithDigits(s.StdDev, 4),
			humanize.FtoaWithDigits(s.Min, 4), humanize.FtoaWithDigits(s.Max, 4))
	}
	return w.Flush()
}

func writeMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
