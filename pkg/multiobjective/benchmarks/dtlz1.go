package benchmarks

import (
	"math"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// DTLZ1 is scalable to any number of objectives
// It has a linear Pareto front and many local fronts
type DTLZ1 struct {
	realProblem
}

var _ Problem = &DTLZ1{}

func NewDTLZ1(numVars, numObjectives int) *DTLZ1 {
	// Recommended: numVars = numObjectives + k - 1, where k = 5 for DTLZ1
	// The distance function reads x[numObjectives-1] at least.
	numVars = max(numVars, numObjectives)
	p := &DTLZ1{}
	p.realProblem = realProblem{
		name:       "DTLZ1",
		numVars:    numVars,
		objectives: newObjectives(numObjectives),
		evaluate:   p.Evaluate,
	}
	return p
}

func (p *DTLZ1) Name() string {
	return "DTLZ1"
}

func (p *DTLZ1) g(x []float64) float64 {
	m := len(p.objectives)
	k := p.numVars - m + 1
	sum := 0.0
	for i := m - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

// Evaluate returns the objective vector of x.
func (p *DTLZ1) Evaluate(x []float64) []float64 {
	m := len(p.objectives)
	g := p.g(x)
	f := make([]float64, m)
	for objIdx := range f {
		v := 0.5 * (1 + g)
		for i := 0; i < m-objIdx-1; i++ {
			v *= x[i]
		}
		if objIdx > 0 {
			v *= 1 - x[m-objIdx-1]
		}
		f[objIdx] = v
	}
	return f
}

func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// The optimal front is the simplex sum(f_i) = 0.5. Only the
	// 2-objective segment is sampled.
	if len(p.objectives) != 2 || numPoints < 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := range points {
		t := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{0.5 * t, 0.5 * (1 - t)}
	}
	return points
}
