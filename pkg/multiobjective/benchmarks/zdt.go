package benchmarks

import (
	"math"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	realProblem
}

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	realProblem
}

var (
	_ Problem = &ZDT2{}
	_ Problem = &ZDT3{}
)

func NewZDT2(numVars int) *ZDT2 {
	p := &ZDT2{}
	p.realProblem = realProblem{name: "ZDT2", numVars: numVars, objectives: newObjectives(2), evaluate: p.Evaluate}
	return p
}

func NewZDT3(numVars int) *ZDT3 {
	p := &ZDT3{}
	p.realProblem = realProblem{name: "ZDT3", numVars: numVars, objectives: newObjectives(2), evaluate: p.Evaluate}
	return p
}

func (p *ZDT2) Name() string { return "ZDT2" }
func (p *ZDT3) Name() string { return "ZDT3" }

func zdtG(x []float64) float64 {
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g
}

// Evaluate returns the objective vector of x.
func (p *ZDT2) Evaluate(x []float64) []float64 {
	g := zdtG(x)
	// ZDT2 uses (1 - (x1/g)^2) instead of sqrt
	return []float64{x[0], g * (1.0 - math.Pow(x[0]/g, 2))}
}

// Evaluate returns the objective vector of x.
func (p *ZDT3) Evaluate(x []float64) []float64 {
	g := zdtG(x)
	// the sin term disconnects the front
	h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
	return []float64{x[0], g * h}
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := range points {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - x*x}
	}
	return points
}

// TrueParetoFront samples g=1 and drops the points dominated by a point
// with a smaller f1, which leaves the disconnected segments.
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
	best := math.Inf(1)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
		if f2 < best {
			best = f2
			points = append(points, framework.ObjectiveSpacePoint{x, f2})
		}
	}
	return points
}
