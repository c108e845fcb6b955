package benchmarks

import (
	"fmt"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// Problem generates populations whose fitness values come from a known
// benchmark function.
type Problem interface {
	Name() string
	Objectives() []framework.Objective
	// Population samples size random solutions.
	Population(size int, rnd framework.Randomness) []*framework.Chromosome
	// TrueParetoFront samples the optimal front, or returns nil when it is
	// not known in closed form.
	TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint
}

// realProblem is a box-constrained problem on [0,1]^numVars.
type realProblem struct {
	name       string
	numVars    int
	objectives []framework.Objective
	evaluate   func(x []float64) []float64
}

func newObjectives(n int) []framework.Objective {
	objectives := make([]framework.Objective, n)
	for i := range objectives {
		objectives[i] = framework.Goal{ID: i, Label: fmt.Sprintf("f%d", i+1)}
	}
	return objectives
}

func (p *realProblem) Objectives() []framework.Objective {
	return p.objectives
}

func (p *realProblem) Population(size int, rnd framework.Randomness) []*framework.Chromosome {
	population := make([]*framework.Chromosome, size)
	for i := range population {
		vars := make([]float64, p.numVars)
		for j := range vars {
			vars[j] = rnd.Float64()
		}
		population[i] = framework.NewChromosome(fmt.Sprintf("%s-%d", p.name, i), p.objectives, p.evaluate(vars)...)
	}
	return population
}
