package algorithms_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

var inf = math.Inf(1)

func TestCrowdingDistance(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{
			name: "single objective",
			rows: [][]float64{{1}, {2}, {3}},
			want: []float64{inf, 1, inf},
		},
		{
			name: "order of the front is kept",
			rows: [][]float64{{3}, {1}, {2}},
			want: []float64{inf, inf, 1},
		},
		{
			name: "two objectives",
			rows: [][]float64{{0, 4}, {1, 2}, {2, 1}, {4, 0}},
			// (2-0)/4 + (4-1)/4 and (4-1)/4 + (2-0)/4
			want: []float64{inf, 1.25, 1.25, inf},
		},
		{
			name: "constant objective is skipped",
			rows: [][]float64{{1, 7}, {2, 7}, {3, 7}},
			want: []float64{inf, 1, inf},
		},
		{
			name: "objective never evaluated",
			rows: [][]float64{{1, inf}, {2, inf}, {3, inf}},
			want: []float64{inf, 1, inf},
		},
		{
			name: "unbounded objective marks only the extremes",
			rows: [][]float64{{1}, {2}, {inf}},
			want: []float64{inf, 0, inf},
		},
		{
			name: "front of two",
			rows: [][]float64{{1, 1}, {1, 1}},
			want: []float64{inf, inf},
		},
		{
			name: "front of one",
			rows: [][]float64{{5}},
			want: []float64{inf},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, goals := newPopulation(tt.rows...)
			got := algorithms.CrowdingDistance{}.Distances(front, goals)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("unexpected distances (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrowdingDistanceLegacyDividesByZero(t *testing.T) {
	front, goals := newPopulation([]float64{1, 7}, []float64{2, 7}, []float64{3, 7})
	got := algorithms.CrowdingDistance{Legacy: true}.Distances(front, goals)
	if !math.IsNaN(got[1]) {
		t.Errorf("legacy crowding distance should produce NaN for a constant objective, got %v", got[1])
	}
}

func TestCrowdingDistanceIsIndependentOfObjectiveOrder(t *testing.T) {
	front, goals := randomPopulation(8, 25, 5)
	reversed := make([]framework.Objective, len(goals))
	for i, o := range goals {
		reversed[len(goals)-1-i] = o
	}

	a := algorithms.CrowdingDistance{}.Distances(front, goals)
	b := algorithms.CrowdingDistance{}.Distances(front, reversed)
	if diff := cmp.Diff(a, b, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("distance depends on objective order (-forward +reversed):\n%s", diff)
	}
}

func TestSubvectorDominance(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{
			name: "three members",
			// P1 vs P2: 2 to 1. P1 vs P3: 1 to 2. P2 vs P3: 2 to 1
			rows: [][]float64{{1, 1, 5}, {2, 2, 0}, {0, 3, 1}},
			want: []float64{1, 1, 1},
		},
		{
			name: "duplicate never wins",
			rows: [][]float64{{1, 2}, {1, 2}, {0, 0}},
			want: []float64{0, 0, 2},
		},
		{
			name: "single member keeps the seed",
			rows: [][]float64{{1, 2}},
			want: []float64{math.MaxFloat64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, goals := newPopulation(tt.rows...)
			got := algorithms.SubvectorDominance{}.Distances(front, goals)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected distances (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFastEpsilonDominance(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{
			name: "shared minimum and constant objective",
			rows: [][]float64{{2, 3}, {2, 3}, {5, 3}, {5, 3}},
			want: []float64{0.5, 0.5, 0, 0},
		},
		{
			name: "rarer minimum scores higher",
			rows: [][]float64{{0, 1}, {1, 0}, {1, 0}, {1, 0}},
			want: []float64{0.75, 0.25, 0.25, 0.25},
		},
		{
			name: "best of several objectives is kept",
			rows: [][]float64{{0, 0}, {1, 0}, {1, 1}},
			want: []float64{2.0 / 3.0, 1.0 / 3.0, 0},
		},
		{
			name: "single member",
			rows: [][]float64{{4, 2}},
			want: []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, goals := newPopulation(tt.rows...)
			got := algorithms.FastEpsilonDominance{}.Distances(front, goals)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("unexpected distances (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFastEpsilonDominanceBound(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		front, goals := randomPopulation(seed, int(seed)*3, 6)
		for i, d := range (algorithms.FastEpsilonDominance{}).Distances(front, goals) {
			if d < 0 || d >= 1 || math.IsNaN(d) {
				t.Fatalf("seed %d: distance[%d] = %v out of [0, 1)", seed, i, d)
			}
		}
	}
}

func TestDistancePolicies(t *testing.T) {
	for _, name := range []string{
		algorithms.CrowdingDistanceName,
		algorithms.SubvectorDominanceName,
		algorithms.FastEpsilonDominanceName,
	} {
		policy, err := algorithms.NewDistancePolicy(name, false)
		if err != nil {
			t.Fatalf("NewDistancePolicy(%q): %v", name, err)
		}
		if policy.Name() != name {
			t.Errorf("NewDistancePolicy(%q) built %q", name, policy.Name())
		}
		if got := policy.Distances(nil, framework.NewGoals(2)); got != nil {
			t.Errorf("%s: empty front should give nil distances, got %v", name, got)
		}
	}
	if _, err := algorithms.NewDistancePolicy("Hypervolume", false); err == nil {
		t.Error("expected an error for an unknown policy")
	}

	if !(algorithms.CrowdingDistance{}).Better(2, 1) {
		t.Error("crowding distance should prefer higher values")
	}
	if !(algorithms.SubvectorDominance{}).Better(1, 2) {
		t.Error("subvector dominance should prefer lower values")
	}
}

func TestAssignDistances(t *testing.T) {
	front, goals := newPopulation([]float64{1}, []float64{2}, []float64{3})
	algorithms.AssignDistances(front, algorithms.CrowdingDistance{}.Distances(front, goals))

	got := []float64{}
	for _, s := range front {
		got = append(got, s.(*framework.Chromosome).Distance)
	}
	if diff := cmp.Diff([]float64{inf, 1, inf}, got); diff != "" {
		t.Errorf("unexpected distances (-want +got):\n%s", diff)
	}
}
