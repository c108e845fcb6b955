package algorithms

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// FastNonDominatedSorting is Deb's fast non-dominated sorting.
// It runs in O(M*N^2) for M objectives and N solutions.
type FastNonDominatedSorting struct {
	rankedFronts
	logger klog.Logger
}

var _ RankingFunction = &FastNonDominatedSorting{}

func NewFastNonDominatedSorting(ctx context.Context) *FastNonDominatedSorting {
	return &FastNonDominatedSorting{
		logger: klog.FromContext(ctx).WithValues("ranking", FastNonDominatedSortingName),
	}
}

func (f *FastNonDominatedSorting) Name() string {
	return FastNonDominatedSortingName
}

func (f *FastNonDominatedSorting) ComputeRankingAssignment(population []framework.Solution, objectives []framework.Objective) {
	f.reset(population)
	if len(population) == 0 || len(objectives) == 0 {
		f.logger.V(4).Info("Nothing to rank", "population", len(population), "objectives", len(objectives))
		return
	}

	for _, front := range nonDominatedSort(population, framework.NewDominanceComparator(objectives)) {
		f.add(front)
	}
	f.logger.V(4).Info("Ranked population", "population", len(population), "fronts", len(f.fronts), "front0", len(f.fronts[0]))
}

// NonDominatedSort performs non-dominated sorting on the population and
// returns the fronts in rank order.
func NonDominatedSort(population []framework.Solution, objectives []framework.Objective) [][]framework.Solution {
	if len(population) == 0 || len(objectives) == 0 {
		return nil
	}
	indices := nonDominatedSort(population, framework.NewDominanceComparator(objectives))
	fronts := make([][]framework.Solution, len(indices))
	for i, front := range indices {
		fronts[i] = make([]framework.Solution, len(front))
		for j, idx := range front {
			fronts[i][j] = population[idx]
		}
	}
	return fronts
}

func nonDominatedSort(population []framework.Solution, cmp *framework.DominanceComparator) [][]int {
	dominated := make([][]int, len(population))
	domCount := make([]int, len(population))

	// Each unordered pair is compared once
	for i := 0; i < len(population); i++ {
		for j := i + 1; j < len(population); j++ {
			switch cmp.Compare(population[i], population[j]) {
			case -1:
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			case 1:
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	currentFront := []int{}
	for i := range population {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	var fronts [][]int
	for len(currentFront) > 0 {
		fronts = append(fronts, currentFront)
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		currentFront = nextFront
	}
	return fronts
}

// nonDominatedSubset extracts the candidates not dominated by any other
// candidate. The input is never modified; a candidate evicted from the
// accepted set is only excluded from this round.
func nonDominatedSubset(candidates []int, population []framework.Solution, cmp *framework.DominanceComparator) []int {
	accepted := make([]int, 0, len(candidates))
	for _, p := range candidates {
		isDominated := false
		next := make([]int, 0, len(accepted)+1)
		for _, best := range accepted {
			switch cmp.Compare(population[p], population[best]) {
			case -1:
				// p dominates best, drop it from this round
				continue
			case 1:
				isDominated = true
			}
			next = append(next, best)
		}
		if isDominated {
			continue
		}
		accepted = append(next, p)
	}
	return accepted
}
