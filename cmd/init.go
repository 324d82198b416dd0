package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/dweil/induct/pkg/api/induct"
)

type initOpts struct {
	out       string
	dataset   string
	target    int
	relations []string
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter experiment file",
		Long:  `Create an experiment file describing the dataset, the target column and the learner configuration, to be consumed by the run command`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(initopts.out); !os.IsNotExist(err) {
				return fmt.Errorf("experiment file %s already exists", initopts.out)
			}
			experiment := &induct.Experiment{
				Name:      "experiment",
				Dataset:   initopts.dataset,
				Target:    initopts.target,
				Relations: initopts.relations,
			}
			data, err := yaml.Marshal(experiment)
			if err != nil {
				return err
			}
			return os.WriteFile(initopts.out, data, 0660)
		},
	}

	initCmd.Flags().StringVarP(&initopts.out, "output", "o", "experiment.yaml", "where to write the experiment file")
	initCmd.Flags().StringVarP(&initopts.dataset, "dataset", "d", "data.csv", "dataset the experiment should run on")
	initCmd.Flags().IntVarP(&initopts.target, "target", "t", 0, "column the learner should predict")
	initCmd.Flags().StringArrayVarP(&initopts.relations, "relation", "r", []string{"sum"}, "relation to hypothesize over. Can be specified multiple times.")
	return initCmd
}
