package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/dweil/induct/pkg/api/induct"
	"github.com/dweil/induct/pkg/learner"
	"github.com/dweil/induct/pkg/relation"
)

func loadExperiment(path string) (*induct.Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment file %s: %v", path, err)
	}
	experiment := &induct.Experiment{}
	if err := yaml.Unmarshal(data, experiment); err != nil {
		return nil, fmt.Errorf("failed to parse experiment file %s: %v", path, err)
	}
	if experiment.Dataset == "" {
		return nil, fmt.Errorf("experiment file %s names no dataset", path)
	}
	if len(experiment.Relations) == 0 {
		return nil, fmt.Errorf("experiment file %s names no relations", path)
	}
	return experiment, nil
}

// toLearnerConfig resolves relation names and fills in the conventional
// defaults for any knob the experiment leaves unset.
func toLearnerConfig(experiment *induct.Experiment) (learner.Config, error) {
	relations, err := relation.FromNames(experiment.Relations)
	if err != nil {
		return learner.Config{}, err
	}
	cfg := learner.DefaultConfig(relations...)
	cfg.Constants = experiment.Constants
	if experiment.MinLHS > 0 {
		cfg.MinLHS = experiment.MinLHS
	}
	if experiment.MaxLHS > 0 {
		cfg.MaxLHS = experiment.MaxLHS
	}
	if experiment.Tolerance != nil {
		cfg.Tolerance = *experiment.Tolerance
	}
	if experiment.MaxDepth != nil {
		cfg.MaxDepth = *experiment.MaxDepth
	}
	return cfg, nil
}
