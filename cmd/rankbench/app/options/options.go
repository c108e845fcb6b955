// Package options provides the flags used for the rankbench command.
package options

import (
	"fmt"

	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/benchmarks"
)

// Problem names accepted by --problem.
const (
	ProblemDTLZ1    = "dtlz1"
	ProblemDTLZ2    = "dtlz2"
	ProblemCoverage = "coverage"
	ProblemZDT2     = "zdt2"
	ProblemZDT3     = "zdt3"
)

// Options holds everything the rankbench commands are configured with.
type Options struct {
	ConfigFile string

	Strategy       string
	Distance       string
	PopulationSize int
	TournamentSize int
	Seed           uint64
	Legacy         bool

	Problem     string
	Objectives  int
	Variables   int
	MaxDistance int

	PlotDir     string
	ShowMetrics bool
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		Problem:     ProblemDTLZ2,
		Objectives:  3,
		MaxDistance: 4,
	}
}

// AddFlags adds flags for the ranking args to the specified FlagSet
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "YAML file with ranking args. Flags set explicitly take precedence.")
	fs.StringVar(&o.Strategy, "strategy", o.Strategy, "Ranking strategy: FastNonDominatedSorting, PreferenceSorting or PerformancePreferenceSorting.")
	fs.StringVar(&o.Distance, "distance", o.Distance, "Diversity policy: CrowdingDistance, SubvectorDominance or FastEpsilonDominance.")
	fs.IntVar(&o.PopulationSize, "population-size", o.PopulationSize, "Number of survivors per generation; the ranked union is twice as large.")
	fs.IntVar(&o.TournamentSize, "tournament-size", o.TournamentSize, "Number of contestants in parent selection.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Seed for population sampling and tie-breaking.")
	fs.BoolVar(&o.Legacy, "legacy-crowding-distance", o.Legacy, "Divide by zero on constant objectives like older crowding distance implementations.")
}

// AddProblemFlags adds the flags selecting the benchmark population.
func (o *Options) AddProblemFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Problem, "problem", o.Problem, "Benchmark population: dtlz1, dtlz2, zdt2, zdt3 or coverage.")
	fs.IntVar(&o.Objectives, "objectives", o.Objectives, "Number of objectives, or branches for the coverage problem. ZDT problems always have 2.")
	fs.IntVar(&o.Variables, "variables", o.Variables, "Number of decision variables of DTLZ problems. Defaults to the recommended value.")
	fs.IntVar(&o.MaxDistance, "max-branch-distance", o.MaxDistance, "Largest raw branch distance of the coverage problem.")
}

// RankingArgs loads the config file, if any, and overlays the flags that
// were set explicitly. The result is defaulted and validated.
func (o *Options) RankingArgs(fs *pflag.FlagSet) (*multiobjective.RankingArgs, error) {
	args := &multiobjective.RankingArgs{}
	if o.ConfigFile != "" {
		loaded, err := multiobjective.LoadRankingArgs(o.ConfigFile)
		if err != nil {
			return nil, err
		}
		args = loaded
	}

	if fs.Changed("strategy") {
		args.Strategy = o.Strategy
	}
	if fs.Changed("distance") {
		args.Distance = o.Distance
	}
	if fs.Changed("population-size") {
		args.PopulationSize = o.PopulationSize
	}
	if fs.Changed("tournament-size") {
		args.TournamentSize = o.TournamentSize
	}
	if fs.Changed("seed") {
		args.Seed = ptr.To(o.Seed)
	}
	if fs.Changed("legacy-crowding-distance") {
		args.LegacyCrowdingDistance = ptr.To(o.Legacy)
	}

	multiobjective.SetDefaults_RankingArgs(args)
	if err := multiobjective.ValidateRankingArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}

// BenchmarkProblem builds the problem selected by the problem flags.
func (o *Options) BenchmarkProblem() (benchmarks.Problem, error) {
	if o.Objectives < 2 {
		return nil, fmt.Errorf("--objectives must be at least 2, got %d", o.Objectives)
	}
	switch o.Problem {
	case ProblemDTLZ1:
		return benchmarks.NewDTLZ1(o.variables(5), o.Objectives), nil
	case ProblemDTLZ2:
		return benchmarks.NewDTLZ2(o.variables(10), o.Objectives), nil
	case ProblemCoverage:
		return benchmarks.NewBranchCoverage(o.Objectives, o.MaxDistance), nil
	case ProblemZDT2:
		return benchmarks.NewZDT2(max(o.Variables, 30)), nil
	case ProblemZDT3:
		return benchmarks.NewZDT3(max(o.Variables, 30)), nil
	}
	return nil, fmt.Errorf("unknown problem %q", o.Problem)
}

// variables returns M + k - 1 unless --variables is large enough.
func (o *Options) variables(k int) int {
	if o.Variables >= o.Objectives {
		return o.Variables
	}
	return o.Objectives + k - 1
}
