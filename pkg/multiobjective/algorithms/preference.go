package algorithms

import (
	"context"
	"fmt"
	"math"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// PreferenceSorting ranks many-objective populations. Front 0 holds the
// best solution for each objective, so its size never exceeds the number of
// objectives. The remaining solutions are peeled into non-dominated fronts
// only until PopulationSize solutions are ranked.
type PreferenceSorting struct {
	rankedFronts
	logger klog.Logger

	populationSize int
	rnd            framework.Randomness
	name           string
	// prefer reports whether candidate should replace best when both have
	// the same fitness on an objective.
	prefer func(candidate, best framework.Solution) bool
}

var _ RankingFunction = &PreferenceSorting{}

// NewPreferenceSorting creates a preference sorting bounded by populationSize.
// A non-positive populationSize ranks the whole population.
func NewPreferenceSorting(ctx context.Context, populationSize int, rnd framework.Randomness) *PreferenceSorting {
	p := newPreferenceSorting(ctx, PreferenceSortingName, populationSize, rnd)
	p.prefer = func(_, _ framework.Solution) bool {
		return framework.CoinFlip(p.rnd)
	}
	return p
}

// NewPerformancePreferenceSorting creates a preference sorting that breaks
// fitness ties on the solutions' PerformanceScore before flipping a coin.
func NewPerformancePreferenceSorting(ctx context.Context, populationSize int, rnd framework.Randomness) *PreferenceSorting {
	p := newPreferenceSorting(ctx, PerformancePreferenceSortingName, populationSize, rnd)
	p.prefer = func(candidate, best framework.Solution) bool {
		switch compareByPerformance(candidate, best) {
		case -1:
			return true
		case 1:
			return false
		}
		return framework.CoinFlip(p.rnd)
	}
	return p
}

func newPreferenceSorting(ctx context.Context, name string, populationSize int, rnd framework.Randomness) *PreferenceSorting {
	if rnd == nil {
		rnd = framework.NewRandomness(0)
	}
	return &PreferenceSorting{
		logger:         klog.FromContext(ctx).WithValues("ranking", name),
		populationSize: populationSize,
		rnd:            rnd,
		name:           name,
	}
}

func (p *PreferenceSorting) Name() string {
	return p.name
}

func (p *PreferenceSorting) ComputeRankingAssignment(population []framework.Solution, objectives []framework.Objective) {
	p.reset(population)
	if len(population) == 0 || len(objectives) == 0 {
		p.logger.V(4).Info("Nothing to rank", "population", len(population), "objectives", len(objectives))
		return
	}

	target := p.populationSize
	if target <= 0 {
		target = len(population)
	}

	zeroFront := p.zeroFront(population, objectives)
	p.add(zeroFront)

	inFront := make([]bool, len(population))
	for _, idx := range zeroFront {
		inFront[idx] = true
	}
	remaining := make([]int, 0, len(population)-len(zeroFront))
	for i := range population {
		if !inFront[i] {
			remaining = append(remaining, i)
		}
	}

	if len(zeroFront) >= target {
		// Enough survivors already, the rest needs no ordering
		if len(remaining) > 0 {
			p.add(remaining)
		}
		p.logger.V(4).Info("Zero front fills the population", "front0", len(zeroFront), "target", target)
		return
	}

	cmp := framework.NewDominanceComparator(objectives)
	rankedCount := len(zeroFront)
	for rankedCount < target && len(remaining) > 0 {
		front := nonDominatedSubset(remaining, population, cmp)
		p.add(front)
		rankedCount += len(front)

		for _, idx := range front {
			inFront[idx] = true
		}
		next := make([]int, 0, len(remaining)-len(front))
		for _, idx := range remaining {
			if !inFront[idx] {
				next = append(next, idx)
			}
		}
		remaining = next
	}

	p.logger.V(4).Info("Ranked population", "population", len(population), "objectives", len(objectives),
		"fronts", len(p.fronts), "front0", len(zeroFront), "ranked", rankedCount, "unranked", len(remaining))
}

// zeroFront collects the best solution of every objective, without
// duplicates, in the order they are first found.
func (p *PreferenceSorting) zeroFront(population []framework.Solution, objectives []framework.Objective) []int {
	inFront := make([]bool, len(population))
	front := make([]int, 0, len(objectives))
	for _, o := range objectives {
		best := p.bestFor(population, o)
		if !inFront[best] {
			inFront[best] = true
			front = append(front, best)
		}
	}
	return front
}

// bestFor returns the index of the solution with the lowest fitness on o.
// Ties are resolved independently every time they occur so that every tied
// solution has a chance to be picked.
func (p *PreferenceSorting) bestFor(population []framework.Solution, o framework.Objective) int {
	best := -1
	bestValue := math.Inf(1)
	for i, s := range population {
		value := s.Fitness(o)
		if math.IsNaN(value) {
			value = math.Inf(1)
		}
		switch {
		case best < 0 || value < bestValue:
			best, bestValue = i, value
		case value == bestValue && p.prefer(s, population[best]):
			best = i
		}
	}
	if best < 0 {
		panic(fmt.Sprintf("no solution is a candidate for objective %s", o.Name()))
	}
	return best
}

// compareByPerformance returns -1 if a has a strictly lower performance
// score than b, +1 if higher and 0 when equal or when either has no score.
func compareByPerformance(a, b framework.Solution) int {
	pa, okA := a.(framework.PerformanceScorer)
	pb, okB := b.(framework.PerformanceScorer)
	if !okA || !okB {
		return 0
	}
	sa, sb := pa.PerformanceScore(), pb.PerformanceScore()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}
