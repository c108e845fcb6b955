package algorithms

import (
	"context"
	"fmt"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// Names of the available ranking strategies.
const (
	FastNonDominatedSortingName      = "FastNonDominatedSorting"
	PreferenceSortingName            = "PreferenceSorting"
	PerformancePreferenceSortingName = "PerformancePreferenceSorting"
)

// RankingFunction partitions a population into fronts of increasing rank.
//
// Every call to ComputeRankingAssignment fully replaces the state left by
// the previous one. Implementations are not safe for concurrent use.
type RankingFunction interface {
	Name() string

	// ComputeRankingAssignment ranks population on the given objectives.
	// An empty population or objective set leaves zero fronts.
	ComputeRankingAssignment(population []framework.Solution, objectives []framework.Objective)

	// Subfront returns the front with the given 0-based rank. Out of range
	// ranks, or a function that never ran, yield an empty front.
	Subfront(rank int) []framework.Solution

	// SubfrontIndices is Subfront expressed as indices into the ranked
	// population.
	SubfrontIndices(rank int) []int

	// NumberOfSubfronts returns the number of fronts built by the last pass.
	NumberOfSubfronts() int

	// Scores returns the side-table of the last pass, aligned with the
	// population it ranked. Solutions outside every front are Unranked.
	Scores() []framework.Score
}

// NewRankingFunction builds the ranking strategy with the given name.
// populationSize bounds the preference strategies and is ignored by
// FastNonDominatedSorting.
func NewRankingFunction(ctx context.Context, name string, populationSize int, rnd framework.Randomness) (RankingFunction, error) {
	switch name {
	case FastNonDominatedSortingName:
		return NewFastNonDominatedSorting(ctx), nil
	case PreferenceSortingName:
		return NewPreferenceSorting(ctx, populationSize, rnd), nil
	case PerformancePreferenceSortingName:
		return NewPerformancePreferenceSorting(ctx, populationSize, rnd), nil
	}
	return nil, fmt.Errorf("unknown ranking strategy %q", name)
}

// rankedFronts holds the fronts of one pass as indices into the population,
// so solutions are told apart by position rather than by equality.
type rankedFronts struct {
	population []framework.Solution
	fronts     [][]int
	scores     []framework.Score
}

func (r *rankedFronts) reset(population []framework.Solution) {
	r.population = population
	r.fronts = nil
	r.scores = make([]framework.Score, len(population))
	for i := range r.scores {
		r.scores[i].Rank = framework.Unranked
	}
}

// add appends front as the next rank.
func (r *rankedFronts) add(front []int) {
	rank := len(r.fronts)
	for _, idx := range front {
		r.scores[idx].Rank = rank
	}
	r.fronts = append(r.fronts, front)
}

func (r *rankedFronts) Subfront(rank int) []framework.Solution {
	if rank < 0 || rank >= len(r.fronts) {
		return []framework.Solution{}
	}
	front := make([]framework.Solution, len(r.fronts[rank]))
	for i, idx := range r.fronts[rank] {
		front[i] = r.population[idx]
	}
	return front
}

func (r *rankedFronts) SubfrontIndices(rank int) []int {
	if rank < 0 || rank >= len(r.fronts) {
		return []int{}
	}
	out := make([]int, len(r.fronts[rank]))
	copy(out, r.fronts[rank])
	return out
}

func (r *rankedFronts) NumberOfSubfronts() int {
	return len(r.fronts)
}

func (r *rankedFronts) Scores() []framework.Score {
	out := make([]framework.Score, len(r.scores))
	copy(out, r.scores)
	return out
}

// ranked counts the solutions placed in a front.
func (r *rankedFronts) ranked() int {
	n := 0
	for _, f := range r.fronts {
		n += len(f)
	}
	return n
}
