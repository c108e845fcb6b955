package framework

import (
	"fmt"
	"math"
)

// Unranked is the rank of a solution that a bounded ranking pass never
// placed in a front.
const Unranked = -1

// Objective identifies one optimization target, e.g. one uncovered branch.
// Implementations must be comparable since objectives are used as map keys.
type Objective interface {
	Name() string
}

// Solution is an opaque candidate exposing one fitness value per objective.
// Lower fitness is better.
type Solution interface {
	Fitness(Objective) float64
}

// Rankable is implemented by solutions that carry rank and distance fields
// themselves. Ranking passes never write them; use AssignScores to copy a
// side-table back.
type Rankable interface {
	SetRank(int)
	SetDistance(float64)
}

// PerformanceScorer exposes a non-functional indicator (lower is better),
// such as the execution cost of a test, used to break fitness ties.
type PerformanceScorer interface {
	PerformanceScore() float64
}

// Score is the outcome of a ranking and diversity pass for one solution.
type Score struct {
	Rank     int
	Distance float64
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Point projects a solution on the given objectives.
func Point(s Solution, objectives []Objective) ObjectiveSpacePoint {
	p := make(ObjectiveSpacePoint, len(objectives))
	for i, o := range objectives {
		p[i] = s.Fitness(o)
	}
	return p
}

// Goal is the default Objective implementation.
type Goal struct {
	ID    int
	Label string
}

func (g Goal) Name() string {
	if g.Label != "" {
		return g.Label
	}
	return fmt.Sprintf("goal-%d", g.ID)
}

// NewGoals returns n goals with consecutive IDs starting at 0.
func NewGoals(n int) []Objective {
	goals := make([]Objective, n)
	for i := range goals {
		goals[i] = Goal{ID: i}
	}
	return goals
}

// Chromosome is a solution with explicit fitness values. Always use it by
// pointer; two chromosomes with equal fitness are still distinct solutions.
type Chromosome struct {
	ID          string
	Values      map[Objective]float64
	Performance float64

	Rank     int
	Distance float64
}

var (
	_ Solution          = &Chromosome{}
	_ Rankable          = &Chromosome{}
	_ PerformanceScorer = &Chromosome{}
)

// NewChromosome builds a chromosome whose i-th value is the fitness for
// objectives[i].
func NewChromosome(id string, objectives []Objective, values ...float64) *Chromosome {
	if len(values) != len(objectives) {
		panic(fmt.Sprintf("chromosome %s: %d values for %d objectives", id, len(values), len(objectives)))
	}
	c := &Chromosome{
		ID:     id,
		Values: make(map[Objective]float64, len(objectives)),
	}
	for i, o := range objectives {
		c.Values[o] = values[i]
	}
	return c
}

// Fitness returns +Inf for objectives the chromosome was never evaluated on.
func (c *Chromosome) Fitness(o Objective) float64 {
	v, ok := c.Values[o]
	if !ok {
		return math.Inf(1)
	}
	return v
}

func (c *Chromosome) PerformanceScore() float64 { return c.Performance }
func (c *Chromosome) SetRank(r int)             { c.Rank = r }
func (c *Chromosome) SetDistance(d float64)     { c.Distance = d }

func (c *Chromosome) String() string {
	return c.ID
}

// Solutions converts a typed slice into the []Solution the rankers consume.
func Solutions[S Solution](in []S) []Solution {
	out := make([]Solution, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// AssignScores writes a side-table back onto the Rankable members of
// population. scores must be aligned with population.
func AssignScores(population []Solution, scores []Score) {
	for i, s := range population {
		if i >= len(scores) {
			return
		}
		if r, ok := s.(Rankable); ok {
			r.SetRank(scores[i].Rank)
			r.SetDistance(scores[i].Distance)
		}
	}
}
