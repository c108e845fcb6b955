package algorithms

import (
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// ParetoFront extracts the objective values of the first non-dominated
// front of a population.
func ParetoFront(population []framework.Solution, objectives []framework.Objective) []framework.ObjectiveSpacePoint {
	fronts := NonDominatedSort(population, objectives)
	if len(fronts) == 0 || len(fronts[0]) == 0 {
		return nil
	}

	paretoFront := make([]framework.ObjectiveSpacePoint, len(fronts[0]))
	for i, sol := range fronts[0] {
		paretoFront[i] = framework.Point(sol, objectives)
	}
	return paretoFront
}

// Fronts returns every front a ranking function built in its last pass.
func Fronts(rf RankingFunction) [][]framework.Solution {
	fronts := make([][]framework.Solution, rf.NumberOfSubfronts())
	for i := range fronts {
		fronts[i] = rf.Subfront(i)
	}
	return fronts
}

// FrontDistances applies policy to every front.
func FrontDistances(fronts [][]framework.Solution, objectives []framework.Objective, policy DistancePolicy) [][]float64 {
	distances := make([][]float64, len(fronts))
	for i, front := range fronts {
		distances[i] = policy.Distances(front, objectives)
	}
	return distances
}
