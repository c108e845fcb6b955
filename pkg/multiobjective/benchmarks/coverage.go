package benchmarks

import (
	"fmt"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// BranchCoverage mimics test generation for branch coverage: one objective
// per branch, with the normalized branch distance d/(d+1) as fitness.
// Distances are small integers so fitness ties are frequent, and every test
// carries an execution cost used as its performance score.
type BranchCoverage struct {
	objectives  []framework.Objective
	maxDistance int
	maxCost     int
}

var _ Problem = &BranchCoverage{}

// NewBranchCoverage returns a problem with the given number of branches.
// Raw branch distances are drawn from [0, maxDistance], 0 meaning covered.
func NewBranchCoverage(branches, maxDistance int) *BranchCoverage {
	objectives := make([]framework.Objective, branches)
	for i := range objectives {
		objectives[i] = framework.Goal{ID: i, Label: fmt.Sprintf("branch-%d", i)}
	}
	return &BranchCoverage{
		objectives:  objectives,
		maxDistance: max(maxDistance, 1),
		maxCost:     10,
	}
}

func (p *BranchCoverage) Name() string {
	return fmt.Sprintf("BranchCoverage%d", len(p.objectives))
}

func (p *BranchCoverage) Objectives() []framework.Objective {
	return p.objectives
}

func (p *BranchCoverage) Population(size int, rnd framework.Randomness) []*framework.Chromosome {
	population := make([]*framework.Chromosome, size)
	for i := range population {
		values := make([]float64, len(p.objectives))
		for j := range values {
			d := float64(rnd.Intn(p.maxDistance + 1))
			values[j] = d / (d + 1)
		}
		c := framework.NewChromosome(fmt.Sprintf("test-%d", i), p.objectives, values...)
		c.Performance = float64(1 + rnd.Intn(p.maxCost))
		population[i] = c
	}
	return population
}

// TrueParetoFront is unknown for coverage problems.
func (p *BranchCoverage) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
