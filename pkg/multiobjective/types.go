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

// RankingArgs holds the arguments used to configure the ranking plugin.
type RankingArgs struct {
	// Strategy is the ranking function: FastNonDominatedSorting,
	// PreferenceSorting or PerformancePreferenceSorting.
	Strategy string `json:"strategy,omitempty"`

	// Distance is the diversity policy applied within each front:
	// CrowdingDistance, SubvectorDominance or FastEpsilonDominance.
	Distance string `json:"distance,omitempty"`

	// PopulationSize is the number of solutions kept each generation. It
	// also bounds how many solutions the preference strategies rank.
	PopulationSize int `json:"populationSize,omitempty"`

	// TournamentSize is the number of contestants in parent selection.
	TournamentSize int `json:"tournamentSize,omitempty"`

	// Seed drives tie-breaking and tournaments.
	Seed *uint64 `json:"seed,omitempty"`

	// LegacyCrowdingDistance disables the constant-objective guard of the
	// crowding distance.
	LegacyCrowdingDistance *bool `json:"legacyCrowdingDistance,omitempty"`
}
