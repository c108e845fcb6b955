package benchmarks

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/util"
)

// Suite ranks a population of every problem with every strategy.
type Suite struct {
	problems   []Problem
	strategies []string
	args       multiobjective.RankingArgs
	plotDir    string
}

// Result describes one strategy on one problem.
type Result struct {
	Problem   string
	Strategy  string
	Union     int
	Fronts    int
	ZeroFront int
	Unranked  int
	// IGD of front 0 against the true front, NaN when the front is unknown.
	IGD      float64
	Duration time.Duration
}

// NewSuite creates a suite that ranks unions of twice args.PopulationSize
// solutions with every ranking strategy.
func NewSuite(args multiobjective.RankingArgs) *Suite {
	multiobjective.SetDefaults_RankingArgs(&args)
	return &Suite{
		args: args,
		strategies: []string{
			algorithms.FastNonDominatedSortingName,
			algorithms.PreferenceSortingName,
			algorithms.PerformancePreferenceSortingName,
		},
	}
}

// AddProblem adds a problem to the suite
func (s *Suite) AddProblem(p Problem) {
	s.problems = append(s.problems, p)
}

// AddStandardProblems adds common benchmark problems
func (s *Suite) AddStandardProblems() {
	// ZDT problems with 30 variables (standard)
	s.AddProblem(NewZDT2(30))
	s.AddProblem(NewZDT3(30))

	// 2 objectives, 7 variables (M + k - 1, where k=5 for DTLZ1)
	s.AddProblem(NewDTLZ1(7, 2))
	// 2 objectives, 12 variables (M + k - 1, where k=10 for DTLZ2)
	s.AddProblem(NewDTLZ2(12, 2))

	// many-objective versions
	s.AddProblem(NewDTLZ2(13, 3))
	s.AddProblem(NewDTLZ2(19, 10))
	s.AddProblem(NewBranchCoverage(30, 4))
}

// SetStrategies restricts the strategies the suite runs.
func (s *Suite) SetStrategies(strategies ...string) {
	s.strategies = strategies
}

// SetPlotDir enables HTML plots of the fronts of 2-objective problems.
func (s *Suite) SetPlotDir(dir string) {
	s.plotDir = dir
}

// Run executes the suite
func (s *Suite) Run(ctx context.Context) ([]Result, error) {
	logger := klog.FromContext(ctx).WithValues("suite", "benchmarks")
	if s.plotDir != "" {
		if err := os.MkdirAll(s.plotDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var results []Result
	for _, problem := range s.problems {
		objectives := problem.Objectives()
		// Every strategy sees the same union
		union := framework.Solutions(problem.Population(2*s.args.PopulationSize, framework.NewRandomness(ptr.Deref(s.args.Seed, 0))))

		for _, strategy := range s.strategies {
			args := s.args
			args.Strategy = strategy
			ranker, err := multiobjective.New(ctx, &args, nil)
			if err != nil {
				return results, fmt.Errorf("%s on %s: %w", strategy, problem.Name(), err)
			}

			start := time.Now()
			ranked := ranker.Rank(union, objectives)
			res := Result{
				Problem:  problem.Name(),
				Strategy: strategy,
				Union:    len(union),
				Fronts:   len(ranked.Fronts),
				IGD:      math.NaN(),
				Duration: time.Since(start),
			}
			if len(ranked.Fronts) > 0 {
				res.ZeroFront = len(ranked.Fronts[0])
			}
			for _, score := range ranked.Scores {
				if score.Rank == framework.Unranked {
					res.Unranked++
				}
			}
			if trueFront := problem.TrueParetoFront(500); trueFront != nil && len(ranked.Fronts) > 0 {
				res.IGD = IGD(points(ranked.Fronts[0], objectives), trueFront)
			}

			logger.Info("Ranked benchmark population", "problem", res.Problem, "strategy", strategy,
				"union", res.Union, "fronts", res.Fronts, "zeroFront", res.ZeroFront, "unranked", res.Unranked,
				"igd", res.IGD, "duration", res.Duration)

			if s.plotDir != "" && len(objectives) == 2 {
				file := filepath.Join(s.plotDir, fmt.Sprintf("%s_%s.html", problem.Name(), strategy))
				title := fmt.Sprintf("%s fronts for %s", strategy, problem.Name())
				if err := util.PlotFronts(ranked.Fronts, objectives, title, file); err != nil {
					logger.Error(err, "Failed to plot fronts", "problem", problem.Name(), "strategy", strategy)
				}
				if res.ZeroFront > 0 && problem.TrueParetoFront(2) != nil {
					file = filepath.Join(s.plotDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), strategy))
					if err := util.PlotResults(points(ranked.Fronts[0], objectives), problem, strategy, file); err != nil {
						logger.Error(err, "Failed to plot results", "problem", problem.Name(), "strategy", strategy)
					}
				}
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func points(front []framework.Solution, objectives []framework.Objective) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, len(front))
	for i, s := range front {
		out[i] = framework.Point(s, objectives)
	}
	return out
}

// IGD is the inverted generational distance: the mean Euclidean distance
// from each point of the true front to its nearest obtained point.
func IGD(obtained, trueFront []framework.ObjectiveSpacePoint) float64 {
	if len(obtained) == 0 || len(trueFront) == 0 {
		return math.Inf(1)
	}
	igd := 0.0
	for _, truePoint := range trueFront {
		minDist := math.Inf(1)
		for _, obtPoint := range obtained {
			minDist = math.Min(minDist, floats.Distance(truePoint, obtPoint, 2))
		}
		igd += minDist
	}
	return igd / float64(len(trueFront))
}
