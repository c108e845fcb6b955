/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package multiobjective

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/metrics"
)

const PluginName = "MultiObjectiveRanking"

// Ranker ranks populations and selects survivors and parents with the
// configured ranking strategy and diversity policy.
type Ranker struct {
	logger   klog.Logger
	args     *RankingArgs
	rnd      framework.Randomness
	ranking  algorithms.RankingFunction
	distance algorithms.DistancePolicy
	survival *algorithms.Survival
}

// Result is the outcome of Rank.
type Result struct {
	Fronts    [][]framework.Solution
	Distances [][]float64
	// Scores is aligned with the ranked population.
	Scores []framework.Score
}

// New builds a Ranker from its arguments. Metrics are registered with
// registerer when it is not nil.
func New(ctx context.Context, args *RankingArgs, registerer prometheus.Registerer) (*Ranker, error) {
	if args == nil {
		args = &RankingArgs{}
	}
	args = args.DeepCopy()
	SetDefaults_RankingArgs(args)
	if err := ValidateRankingArgs(args); err != nil {
		return nil, fmt.Errorf("invalid %s args: %w", PluginName, err)
	}
	logger := klog.FromContext(ctx).WithValues("plugin", PluginName)
	ctx = klog.NewContext(ctx, logger)

	rnd := framework.NewRandomness(ptr.Deref(args.Seed, 0))
	ranking, err := algorithms.NewRankingFunction(ctx, args.Strategy, args.PopulationSize, rnd)
	if err != nil {
		return nil, err
	}
	if registerer != nil {
		m := metrics.New()
		if err := m.Register(registerer); err != nil {
			return nil, fmt.Errorf("failed to register %s metrics: %w", PluginName, err)
		}
		ranking = metrics.Instrument(ranking, m)
	}
	distance, err := algorithms.NewDistancePolicy(args.Distance, ptr.Deref(args.LegacyCrowdingDistance, false))
	if err != nil {
		return nil, err
	}

	logger.V(2).Info("Created ranker", "strategy", args.Strategy, "distance", args.Distance,
		"populationSize", args.PopulationSize, "seed", ptr.Deref(args.Seed, 0))

	return &Ranker{
		logger:   logger,
		args:     args,
		rnd:      rnd,
		ranking:  ranking,
		distance: distance,
		survival: algorithms.NewSurvival(ctx, ranking, distance, args.PopulationSize),
	}, nil
}

// Name retrieves the plugin name
func (r *Ranker) Name() string {
	return PluginName
}

func (r *Ranker) Args() RankingArgs {
	return *r.args.DeepCopy()
}

func (r *Ranker) Ranking() algorithms.RankingFunction {
	return r.ranking
}

func (r *Ranker) Distance() algorithms.DistancePolicy {
	return r.distance
}

// Rank ranks population and scores the diversity of every front.
func (r *Ranker) Rank(population []framework.Solution, objectives []framework.Objective) *Result {
	r.ranking.ComputeRankingAssignment(population, objectives)

	fronts := algorithms.Fronts(r.ranking)
	res := &Result{
		Fronts:    fronts,
		Distances: algorithms.FrontDistances(fronts, objectives, r.distance),
		Scores:    r.ranking.Scores(),
	}
	for i := range fronts {
		for j, idx := range r.ranking.SubfrontIndices(i) {
			res.Scores[idx].Distance = res.Distances[i][j]
		}
	}

	r.logger.V(3).Info("Ranked population", "population", len(population), "objectives", len(objectives), "fronts", len(res.Fronts))
	return res
}

// Select keeps the best PopulationSize solutions of union.
func (r *Ranker) Select(union []framework.Solution, objectives []framework.Objective) ([]framework.Solution, []framework.Score) {
	return r.survival.Select(union, objectives)
}

// SelectParent runs a rank and distance tournament over a population
// returned by Select.
func (r *Ranker) SelectParent(population []framework.Solution, scores []framework.Score) framework.Solution {
	return algorithms.TournamentSelect(population, scores, r.args.TournamentSize, r.rnd, r.distance)
}

// DeepCopy returns a copy of the args that shares no pointers with a.
func (a *RankingArgs) DeepCopy() *RankingArgs {
	if a == nil {
		return nil
	}
	out := *a
	if a.Seed != nil {
		out.Seed = ptr.To(*a.Seed)
	}
	if a.LegacyCrowdingDistance != nil {
		out.LegacyCrowdingDistance = ptr.To(*a.LegacyCrowdingDistance)
	}
	return &out
}
