// Package analysis summarizes ranked populations.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// FrontSummary describes the diversity scores of one front.
type FrontSummary struct {
	Rank int
	Size int
	// Unbounded counts the distances left out of the statistics below:
	// infinities, NaN and the math.MaxFloat64 seed of subvector dominance.
	Unbounded int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
}

// Summarize computes one summary per front. distances[i] must be aligned
// with fronts[i].
func Summarize(fronts [][]framework.Solution, distances [][]float64) []FrontSummary {
	summaries := make([]FrontSummary, len(fronts))
	for rank, front := range fronts {
		s := FrontSummary{Rank: rank, Size: len(front)}
		var d []float64
		if rank < len(distances) {
			d = distances[rank]
		}
		finite := make([]float64, 0, len(d))
		for _, v := range d {
			if math.IsInf(v, 0) || math.IsNaN(v) || v == math.MaxFloat64 {
				s.Unbounded++
				continue
			}
			finite = append(finite, v)
		}
		if len(finite) > 0 {
			s.Mean = stat.Mean(finite, nil)
			s.Min = floats.Min(finite)
			s.Max = floats.Max(finite)
		}
		if len(finite) > 1 {
			s.StdDev = stat.StdDev(finite, nil)
		}
		summaries[rank] = s
	}
	return summaries
}

// Extent returns, per objective, the range of fitness values covered by
// front. A single solution has zero extent.
func Extent(front []framework.Solution, objectives []framework.Objective) []float64 {
	extent := make([]float64, len(objectives))
	if len(front) == 0 {
		return extent
	}
	values := make([]float64, len(front))
	for i, o := range objectives {
		for j, s := range front {
			values[j] = s.Fitness(o)
		}
		extent[i] = floats.Max(values) - floats.Min(values)
	}
	return extent
}
