package algorithms

import (
	"context"
	"math"
	"sort"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// Survival forms the next generation out of the union of parents and
// offspring, the way NSGA-II and MOSA do: whole fronts are kept in rank
// order while they fit, and the first front that does not fit is truncated
// by distance.
type Survival struct {
	Ranking        RankingFunction
	Distance       DistancePolicy
	PopulationSize int

	logger klog.Logger
}

func NewSurvival(ctx context.Context, ranking RankingFunction, distance DistancePolicy, populationSize int) *Survival {
	return &Survival{
		Ranking:        ranking,
		Distance:       distance,
		PopulationSize: populationSize,
		logger:         klog.FromContext(ctx).WithValues("ranking", ranking.Name(), "distance", distance.Name()),
	}
}

// Select returns the survivors of union and their scores. At least
// PopulationSize solutions survive when union is large enough, more when
// the first front alone is bigger.
func (s *Survival) Select(union []framework.Solution, objectives []framework.Objective) ([]framework.Solution, []framework.Score) {
	s.Ranking.ComputeRankingAssignment(union, objectives)

	remain := max(s.PopulationSize, len(s.Ranking.Subfront(0)))
	population := make([]framework.Solution, 0, remain)
	scores := make([]framework.Score, 0, remain)

	for rank := 0; remain > 0; rank++ {
		front := s.Ranking.Subfront(rank)
		if len(front) == 0 {
			break
		}
		distances := s.Distance.Distances(front, objectives)

		if len(front) <= remain {
			for i, sol := range front {
				population = append(population, sol)
				scores = append(scores, framework.Score{Rank: rank, Distance: distances[i]})
			}
			remain -= len(front)
			continue
		}

		// If needed, add remaining individuals based on distance
		order := make([]int, len(front))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return s.Distance.Better(distances[order[i]], distances[order[j]])
		})
		for _, i := range order[:remain] {
			population = append(population, front[i])
			scores = append(scores, framework.Score{Rank: rank, Distance: distances[i]})
		}
		remain = 0
	}

	s.logger.V(4).Info("Selected survivors", "union", len(union), "survivors", len(population), "fronts", s.Ranking.NumberOfSubfronts())
	return population, scores
}

// TournamentSelect picks the best of tournamentSize random contestants:
// lower rank wins, equal ranks are decided by the distance policy.
// Unranked contestants lose to every ranked one.
// It returns nil for an empty population.
func TournamentSelect(population []framework.Solution, scores []framework.Score, tournamentSize int, rnd framework.Randomness, policy DistancePolicy) framework.Solution {
	if len(population) == 0 {
		return nil
	}
	if tournamentSize < 2 {
		tournamentSize = 2 // minimum tournament size
	}

	best := rnd.Intn(len(population))
	for i := 1; i < tournamentSize; i++ {
		contestant := rnd.Intn(len(population))
		c, b := scores[contestant], scores[best]
		cRank, bRank := tournamentRank(c.Rank), tournamentRank(b.Rank)
		if cRank < bRank || (cRank == bRank && policy.Better(c.Distance, b.Distance)) {
			best = contestant
		}
	}
	return population[best]
}

func tournamentRank(rank int) int {
	if rank < 0 {
		return math.MaxInt
	}
	return rank
}
