package framework

// DominanceComparator compares two solutions over a fixed objective set.
type DominanceComparator struct {
	objectives []Objective
}

// NewDominanceComparator creates a comparator over the given objectives.
// The slice is not copied and must not change while the comparator is used.
func NewDominanceComparator(objectives []Objective) *DominanceComparator {
	return &DominanceComparator{objectives: objectives}
}

// Compare returns -1 if p dominates q, +1 if q dominates p and 0 otherwise,
// including when p and q are equal on every objective.
func (c *DominanceComparator) Compare(p, q Solution) int {
	pBetter, qBetter := false, false
	for _, o := range c.objectives {
		fp, fq := p.Fitness(o), q.Fitness(o)
		if fp < fq {
			pBetter = true
		} else if fp > fq {
			qBetter = true
		}
		if pBetter && qBetter {
			return 0
		}
	}
	switch {
	case pBetter:
		return -1
	case qBetter:
		return 1
	}
	return 0
}

// Dominates checks if p dominates q on the given objectives.
func Dominates(p, q Solution, objectives []Objective) bool {
	return NewDominanceComparator(objectives).Compare(p, q) < 0
}
