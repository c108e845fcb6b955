package benchmarks

import (
	"math"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// DTLZ2 has a spherical Pareto front
// It's easier than DTLZ1 as it has no local fronts
type DTLZ2 struct {
	realProblem
}

var _ Problem = &DTLZ2{}

func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ2
	// The distance function reads x[numObjectives-1] at least.
	numVars = max(numVars, numObjectives)
	p := &DTLZ2{}
	p.realProblem = realProblem{
		name:       "DTLZ2",
		numVars:    numVars,
		objectives: newObjectives(numObjectives),
		evaluate:   p.Evaluate,
	}
	return p
}

func (p *DTLZ2) Name() string {
	return "DTLZ2"
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := len(p.objectives) - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

// Evaluate returns the objective vector of x.
func (p *DTLZ2) Evaluate(x []float64) []float64 {
	m := len(p.objectives)
	g := p.g(x)
	f := make([]float64, m)
	for objIdx := range f {
		v := 1 + g
		// Product of cos terms
		for i := 0; i < m-objIdx-1; i++ {
			v *= math.Cos(x[i] * math.Pi / 2)
		}
		// Last term is sin for all objectives except the first
		if objIdx > 0 {
			v *= math.Sin(x[m-objIdx-1] * math.Pi / 2)
		}
		f[objIdx] = v
	}
	return f
}

func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	switch len(p.objectives) {
	case 2:
		if numPoints < 2 {
			return nil
		}
		// Quarter circle
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := range points {
			theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{math.Cos(theta), math.Sin(theta)}
		}
		return points
	case 3:
		sqrtN := int(math.Sqrt(float64(numPoints)))
		if sqrtN < 2 {
			return nil
		}
		points := make([]framework.ObjectiveSpacePoint, 0, sqrtN*sqrtN)
		for i := 0; i < sqrtN; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
			for j := 0; j < sqrtN; j++ {
				phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
				points = append(points, framework.ObjectiveSpacePoint{
					math.Cos(theta) * math.Cos(phi),
					math.Sin(theta) * math.Cos(phi),
					math.Sin(phi),
				})
			}
		}
		return points
	}
	return nil
}
