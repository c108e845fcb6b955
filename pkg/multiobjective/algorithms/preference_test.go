package algorithms_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

// scriptedRandomness replays floats and counts how often it was asked.
type scriptedRandomness struct {
	floats []float64
	calls  int
}

func (s *scriptedRandomness) Float64() float64 {
	v := s.floats[s.calls%len(s.floats)]
	s.calls++
	return v
}

func (s *scriptedRandomness) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

func TestPreferenceSortingTieBreaksAtEveryTie(t *testing.T) {
	population, goals := newPopulation([]float64{0}, []float64{0}, []float64{0})

	tests := []struct {
		name      string
		floats    []float64
		wantFront []string
	}{
		{name: "never replace", floats: []float64{0.9}, wantFront: []string{"P1"}},
		{name: "replace at the second tie only", floats: []float64{0.9, 0.1}, wantFront: []string{"P3"}},
		{name: "replace at the first tie only", floats: []float64{0.1, 0.9}, wantFront: []string{"P2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := &scriptedRandomness{floats: tt.floats}
			rf := algorithms.NewPreferenceSorting(context.Background(), 10, rnd)
			rf.ComputeRankingAssignment(population, goals)

			if diff := cmp.Diff(tt.wantFront, ids(rf.Subfront(0))); diff != "" {
				t.Errorf("unexpected zero front (-want +got):\n%s", diff)
			}
			if rnd.calls != 2 {
				t.Errorf("expected a coin flip at each of the 2 ties, got %d", rnd.calls)
			}
		})
	}
}

func TestPreferenceSortingTieDistribution(t *testing.T) {
	population, goals := newPopulation([]float64{0}, []float64{0}, []float64{0})
	rf := algorithms.NewPreferenceSorting(context.Background(), 10, framework.NewRandomness(42))

	picked := map[string]int{}
	for i := 0; i < 2000; i++ {
		rf.ComputeRankingAssignment(population, goals)
		picked[ids(rf.Subfront(0))[0]]++
	}
	for _, id := range []string{"P1", "P2", "P3"} {
		if picked[id] == 0 {
			t.Errorf("%s was never picked as best among tied solutions: %v", id, picked)
		}
	}
}

func TestPerformancePreferenceSortingTieBreak(t *testing.T) {
	goals := framework.NewGoals(1)
	slow := framework.NewChromosome("slow", goals, 0)
	slow.Performance = 9
	fast := framework.NewChromosome("fast", goals, 0)
	fast.Performance = 1
	medium := framework.NewChromosome("medium", goals, 0)
	medium.Performance = 4
	population := framework.Solutions([]*framework.Chromosome{slow, fast, medium})

	rnd := &scriptedRandomness{floats: []float64{0.1}}
	rf := algorithms.NewPerformancePreferenceSorting(context.Background(), 10, rnd)
	rf.ComputeRankingAssignment(population, goals)

	if diff := cmp.Diff([]string{"fast"}, ids(rf.Subfront(0))); diff != "" {
		t.Errorf("unexpected zero front (-want +got):\n%s", diff)
	}
	if rnd.calls != 0 {
		t.Errorf("distinct performance scores should not need a coin flip, got %d flips", rnd.calls)
	}

	// Equal scores fall back to the coin
	medium.Performance = 1
	rf.ComputeRankingAssignment(population, goals)
	if rnd.calls != 1 {
		t.Errorf("expected one coin flip for equal performance, got %d", rnd.calls)
	}
	if diff := cmp.Diff([]string{"medium"}, ids(rf.Subfront(0))); diff != "" {
		t.Errorf("unexpected zero front after coin flip (-want +got):\n%s", diff)
	}

	if got := rf.Name(); got != algorithms.PerformancePreferenceSortingName {
		t.Errorf("Name() = %q", got)
	}
}

func TestPreferenceSortingZeroFrontBound(t *testing.T) {
	for _, objectives := range []int{1, 3, 8} {
		for _, size := range []int{1, 10, 100} {
			population, goals := randomPopulation(uint64(size*objectives), size, objectives)
			rf := algorithms.NewPreferenceSorting(context.Background(), size, framework.NewRandomness(1))
			rf.ComputeRankingAssignment(population, goals)

			front0 := rf.Subfront(0)
			if len(front0) == 0 || len(front0) > objectives {
				t.Errorf("objectives=%d size=%d: zero front has %d members", objectives, size, len(front0))
			}
			for _, o := range goals {
				best := front0[0].Fitness(o)
				for _, s := range front0 {
					best = min(best, s.Fitness(o))
				}
				for _, s := range population {
					if s.Fitness(o) < best {
						t.Errorf("objective %s: zero front misses the best value", o.Name())
					}
				}
			}
		}
	}
}

func TestPreferenceSortingZeroFrontFillsPopulation(t *testing.T) {
	population, goals := newPopulation(
		[]float64{0, 9, 9},
		[]float64{9, 0, 9},
		[]float64{5, 5, 5},
		[]float64{9, 9, 0},
		[]float64{6, 6, 6},
	)
	rf := algorithms.NewPreferenceSorting(context.Background(), 2, framework.NewRandomness(1))
	rf.ComputeRankingAssignment(population, goals)

	want := [][]string{{"P1", "P2", "P4"}, {"P3", "P5"}}
	if diff := cmp.Diff(want, frontIDs(rf)); diff != "" {
		t.Errorf("unexpected fronts (-want +got):\n%s", diff)
	}
}

func TestPreferenceSortingStopsAtTarget(t *testing.T) {
	// One objective: every solution beyond the best is a front of its own
	population, goals := newPopulation([]float64{0}, []float64{1}, []float64{2}, []float64{3}, []float64{4}, []float64{5})
	rf := algorithms.NewPreferenceSorting(context.Background(), 3, framework.NewRandomness(1))
	rf.ComputeRankingAssignment(population, goals)

	want := [][]string{{"P1"}, {"P2"}, {"P3"}}
	if diff := cmp.Diff(want, frontIDs(rf)); diff != "" {
		t.Errorf("unexpected fronts (-want +got):\n%s", diff)
	}

	ranks := []int{}
	for _, s := range rf.Scores() {
		ranks = append(ranks, s.Rank)
	}
	wantRanks := []int{0, 1, 2, framework.Unranked, framework.Unranked, framework.Unranked}
	if diff := cmp.Diff(wantRanks, ranks); diff != "" {
		t.Errorf("unexpected ranks (-want +got):\n%s", diff)
	}
}

func TestPreferenceSortingFrontsAreNonDominated(t *testing.T) {
	population, goals := randomPopulation(11, 60, 3)
	rf := algorithms.NewPreferenceSorting(context.Background(), 60, framework.NewRandomness(5))
	rf.ComputeRankingAssignment(population, goals)

	total := 0
	for i := 0; i < rf.NumberOfSubfronts(); i++ {
		front := rf.Subfront(i)
		total += len(front)
		if i == 0 {
			continue
		}
		for _, p := range front {
			for _, q := range front {
				if framework.Dominates(p, q, goals) {
					t.Fatalf("front %d contains dominated solutions", i)
				}
			}
		}
	}
	if total != len(population) {
		t.Errorf("a full-size target should rank every solution, ranked %d of %d", total, len(population))
	}
}

func TestPreferenceSortingIsReproducible(t *testing.T) {
	population, goals := randomPopulation(2, 50, 6)

	run := func() [][]string {
		rf := algorithms.NewPreferenceSorting(context.Background(), 20, framework.NewRandomness(99))
		rf.ComputeRankingAssignment(population, goals)
		return frontIDs(rf)
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different fronts:\n%s", diff)
	}
}

func TestPreferenceSortingEmptyInput(t *testing.T) {
	population, _ := newPopulation([]float64{1, 2}, []float64{2, 1})
	tests := []struct {
		name       string
		population []framework.Solution
		objectives []framework.Objective
	}{
		{name: "empty population", objectives: framework.NewGoals(3)},
		{name: "no objectives", population: population},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rf := algorithms.NewPreferenceSorting(context.Background(), 10, framework.NewRandomness(1))
			rf.ComputeRankingAssignment(tt.population, tt.objectives)
			if n := rf.NumberOfSubfronts(); n != 0 {
				t.Errorf("expected no fronts, got %d", n)
			}
			if front := rf.Subfront(-1); len(front) != 0 {
				t.Errorf("Subfront(-1) returned %d solutions, want none", len(front))
			}
		})
	}
}

func TestPreferenceSortingEvictsDominatedCandidates(t *testing.T) {
	// P3 is accepted first and later dropped once P4, which dominates it,
	// is seen.
	population, goals := newPopulation(
		[]float64{0, 9},
		[]float64{9, 0},
		[]float64{2, 2},
		[]float64{1, 1},
		[]float64{3, 0.5},
	)
	rf := algorithms.NewPreferenceSorting(context.Background(), 0, framework.NewRandomness(1))
	rf.ComputeRankingAssignment(population, goals)

	want := [][]string{{"P1", "P2"}, {"P4", "P5"}, {"P3"}}
	if diff := cmp.Diff(want, frontIDs(rf)); diff != "" {
		t.Errorf("unexpected fronts (-want +got):\n%s", diff)
	}
}

func TestNewRankingFunction(t *testing.T) {
	for _, name := range []string{
		algorithms.FastNonDominatedSortingName,
		algorithms.PreferenceSortingName,
		algorithms.PerformancePreferenceSortingName,
	} {
		rf, err := algorithms.NewRankingFunction(context.Background(), name, 10, framework.NewRandomness(1))
		if err != nil {
			t.Fatalf("NewRankingFunction(%q): %v", name, err)
		}
		if rf.Name() != name {
			t.Errorf("NewRankingFunction(%q) built %q", name, rf.Name())
		}
	}
	if _, err := algorithms.NewRankingFunction(context.Background(), "SPEA2", 10, nil); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func BenchmarkPreferenceSorting(b *testing.B) {
	population, goals := randomPopulation(1, 200, 100)
	rf := algorithms.NewPreferenceSorting(context.Background(), 100, framework.NewRandomness(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rf.ComputeRankingAssignment(population, goals)
	}
}
