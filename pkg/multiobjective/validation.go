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
	"slices"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/algorithms"
)

var (
	validStrategies = []string{
		algorithms.FastNonDominatedSortingName,
		algorithms.PreferenceSortingName,
		algorithms.PerformancePreferenceSortingName,
	}
	validDistances = []string{
		algorithms.CrowdingDistanceName,
		algorithms.SubvectorDominanceName,
		algorithms.FastEpsilonDominanceName,
	}
)

// ValidateRankingArgs validates the ranking plugin arguments
func ValidateRankingArgs(args *RankingArgs) error {
	var allErrs []error

	if !slices.Contains(validStrategies, args.Strategy) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("strategy"), args.Strategy, validStrategies))
	}
	if !slices.Contains(validDistances, args.Distance) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("distance"), args.Distance, validDistances))
	}
	if args.PopulationSize <= 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("populationSize"), args.PopulationSize, "must be greater than 0"))
	}
	if args.TournamentSize < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("tournamentSize"), args.TournamentSize, "must be at least 2"))
	}
	if args.LegacyCrowdingDistance != nil && *args.LegacyCrowdingDistance && args.Distance != algorithms.CrowdingDistanceName {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("legacyCrowdingDistance"), "only applies to CrowdingDistance"))
	}

	return utilerrors.NewAggregate(allErrs)
}
