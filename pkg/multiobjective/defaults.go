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
	"fmt"
	"os"

	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/algorithms"
)

const (
	DefaultStrategy       = algorithms.PreferenceSortingName
	DefaultDistance       = algorithms.FastEpsilonDominanceName
	DefaultPopulationSize = 50
	DefaultTournamentSize = 2
)

func SetDefaults_RankingArgs(args *RankingArgs) {
	klog.V(5).InfoS("Setting defaults", "pluginName", PluginName)

	if args.Strategy == "" {
		args.Strategy = DefaultStrategy
	}
	if args.Distance == "" {
		args.Distance = DefaultDistance
	}
	if args.PopulationSize == 0 {
		args.PopulationSize = DefaultPopulationSize
	}
	if args.TournamentSize == 0 {
		args.TournamentSize = DefaultTournamentSize
	}
	if args.Seed == nil {
		args.Seed = ptr.To[uint64](0)
	}
	if args.LegacyCrowdingDistance == nil {
		args.LegacyCrowdingDistance = ptr.To(false)
	}
}

// LoadRankingArgs reads YAML or JSON args from path, then defaults and
// validates them.
func LoadRankingArgs(path string) (*RankingArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking args: %w", err)
	}
	args := &RankingArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("failed to decode ranking args from %s: %w", path, err)
	}
	SetDefaults_RankingArgs(args)
	if err := ValidateRankingArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}
