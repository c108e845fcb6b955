package algorithms

import (
	"fmt"
	"math"
	"sort"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// Names of the available diversity policies.
const (
	CrowdingDistanceName     = "CrowdingDistance"
	SubvectorDominanceName   = "SubvectorDominance"
	FastEpsilonDominanceName = "FastEpsilonDominance"
)

// DistancePolicy scores the diversity of the members of a single front.
type DistancePolicy interface {
	Name() string

	// Distances returns one score per member of front, in front order.
	// The front itself is left untouched. An empty front yields nil.
	Distances(front []framework.Solution, objectives []framework.Objective) []float64

	// Better reports whether distance a is preferred over distance b.
	Better(a, b float64) bool
}

// NewDistancePolicy returns the policy with the given name. legacy only
// applies to CrowdingDistance.
func NewDistancePolicy(name string, legacy bool) (DistancePolicy, error) {
	switch name {
	case CrowdingDistanceName:
		return CrowdingDistance{Legacy: legacy}, nil
	case SubvectorDominanceName:
		return SubvectorDominance{}, nil
	case FastEpsilonDominanceName:
		return FastEpsilonDominance{}, nil
	}
	return nil, fmt.Errorf("unknown distance policy %q", name)
}

// AssignDistances writes distances onto the Rankable members of front.
func AssignDistances(front []framework.Solution, distances []float64) {
	for i, s := range front {
		if i >= len(distances) {
			return
		}
		if r, ok := s.(framework.Rankable); ok {
			r.SetDistance(distances[i])
		}
	}
}

// CrowdingDistance is the NSGA-II crowding distance. Objectives that are
// constant across the front, or whose range is not finite, add nothing to
// interior members unless Legacy is set, in which case they are divided by
// their range like older implementations did.
type CrowdingDistance struct {
	Legacy bool
}

func (CrowdingDistance) Name() string             { return CrowdingDistanceName }
func (CrowdingDistance) Better(a, b float64) bool { return a > b }

// Distances calculates crowding distance for individuals in a front
func (c CrowdingDistance) Distances(front []framework.Solution, objectives []framework.Objective) []float64 {
	if len(front) == 0 {
		return nil
	}
	distances := make([]float64, len(front))
	if len(front) <= 2 {
		for i := range distances {
			distances[i] = math.Inf(1)
		}
		return distances
	}

	values := make([]float64, len(front))
	order := make([]int, len(front))
	for _, o := range objectives {
		for i, s := range front {
			values[i] = s.Fitness(o)
			order[i] = i
		}
		// Sort by each objective
		sort.SliceStable(order, func(i, j int) bool {
			return values[order[i]] < values[order[j]]
		})

		first, last := order[0], order[len(order)-1]
		objectiveRange := values[last] - values[first]
		if !c.Legacy {
			if objectiveRange == 0 || math.IsNaN(objectiveRange) {
				continue
			}
			// An unevaluated (+Inf) member leaves no finite scale for the
			// interior, only the extremes are marked.
			if math.IsInf(objectiveRange, 0) {
				distances[first] = math.Inf(1)
				distances[last] = math.Inf(1)
				continue
			}
		}

		// Set boundary points to infinity
		distances[first] = math.Inf(1)
		distances[last] = math.Inf(1)

		// Calculate distance for intermediate points
		for i := 1; i < len(order)-1; i++ {
			distances[order[i]] += (values[order[i+1]] - values[order[i-1]]) / objectiveRange
		}
	}
	return distances
}

// SubvectorDominance scores each member with the smallest number of
// objectives on which it beats any other member of the front. Lower values
// mark solutions that are rarely better than their closest rival.
type SubvectorDominance struct{}

func (SubvectorDominance) Name() string             { return SubvectorDominanceName }
func (SubvectorDominance) Better(a, b float64) bool { return a < b }

func (SubvectorDominance) Distances(front []framework.Solution, objectives []framework.Objective) []float64 {
	if len(front) == 0 {
		return nil
	}
	distances := make([]float64, len(front))
	for i := range distances {
		distances[i] = math.MaxFloat64
	}

	for i := 0; i < len(front)-1; i++ {
		for j := i + 1; j < len(front); j++ {
			dominate1, dominate2 := 0, 0
			for _, o := range objectives {
				v1, v2 := front[i].Fitness(o), front[j].Fitness(o)
				if v1 < v2 {
					dominate1++
				} else if v1 > v2 {
					dominate2++
				}
			}
			distances[i] = math.Min(distances[i], float64(dominate1))
			distances[j] = math.Min(distances[j], float64(dominate2))
		}
	}
	return distances
}

// FastEpsilonDominance rewards members that reach the minimum of an
// objective that few others reach. Scores lie in [0, 1).
type FastEpsilonDominance struct{}

func (FastEpsilonDominance) Name() string             { return FastEpsilonDominanceName }
func (FastEpsilonDominance) Better(a, b float64) bool { return a > b }

func (FastEpsilonDominance) Distances(front []framework.Solution, objectives []framework.Objective) []float64 {
	if len(front) == 0 {
		return nil
	}
	distances := make([]float64, len(front))
	size := float64(len(front))
	minSet := make([]int, 0, len(front))

	for _, o := range objectives {
		minValue, maxValue := math.Inf(1), math.Inf(-1)
		minSet = minSet[:0]
		for i, s := range front {
			value := s.Fitness(o)
			if value < minValue {
				minValue = value
				minSet = append(minSet[:0], i)
			} else if value == minValue {
				minSet = append(minSet, i)
			}
			if value > maxValue {
				maxValue = value
			}
		}
		if maxValue == minValue || len(minSet) == 0 {
			continue
		}

		epsilon := (size - float64(len(minSet))) / size
		for _, i := range minSet {
			distances[i] = math.Max(distances[i], epsilon)
		}
	}
	return distances
}
