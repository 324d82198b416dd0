package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dweil/induct/pkg/dataset"
	"github.com/dweil/induct/pkg/ensemble"
	"github.com/dweil/induct/pkg/learner"
)

type runOpts struct {
	experiment string
	rules      bool
}

var runopts = runOpts{}

func NewRunCmd() *cobra.Command {

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Train on a dataset and predict its blank targets",
		Long:  `Train the learner on every dataset row whose target column holds a value, then predict the target for every row where it is blank`,
		RunE: func(cmd *cobra.Command, args []string) error {
			experiment, err := loadExperiment(runopts.experiment)
			if err != nil {
				return err
			}
			cfg, err := toLearnerConfig(experiment)
			if err != nil {
				return err
			}
			contexts, err := dataset.Load(experiment.Dataset, experiment.Target)
			if err != nil {
				return err
			}
			training, queries := dataset.Split(contexts)
			logrus.Infof("Loaded %d rows, %d for training, %d to predict.", len(contexts), len(training), len(queries))

			l := learner.New(cfg)
			e := ensemble.New(l)
			logrus.Info("Training.")
			for _, ctx := range training {
				e.On(ctx)
			}
			if runopts.rules {
				for _, rule := range l.Rules() {
					fmt.Println(rule)
				}
			}
			logrus.Info("Predicting.")
			for _, ctx := range queries {
				predictions := e.On(ctx)
				if winner, count, ok := ensemble.Vote(predictions); ok {
					fmt.Printf("%v -> %s (%d of %d raw predictions: %v)\n", ctx,
						strconv.FormatFloat(winner, 'g', -1, 64), count, len(predictions), predictions)
				} else {
					fmt.Printf("%v -> no surviving hypothesis fired\n", ctx)
				}
			}
			logrus.Info("Done.")
			return nil
		},
	}

	runCmd.Flags().StringVarP(&runopts.experiment, "experiment", "e", "experiment.yaml", "experiment file to run")
	runCmd.Flags().BoolVar(&runopts.rules, "rules", false, "print the surviving hypotheses after training")
	return runCmd
}
