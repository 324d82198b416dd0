package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/dweil/induct/pkg/api/induct"
)

func writeExperiment(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte(content), 0660); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExperiment(t *testing.T) {
	g := NewGomegaWithT(t)
	path := writeExperiment(t, `
name: sums
dataset: data.csv
target: 2
relations:
  - sum
  - median
constants:
  - 0
  - 10
max-lhs: 3
tolerance: 2
`)

	experiment, err := loadExperiment(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(experiment.Name).To(Equal("sums"))
	g.Expect(experiment.Relations).To(Equal([]string{"sum", "median"}))
	g.Expect(experiment.Constants).To(Equal([]float64{0, 10}))
	g.Expect(experiment.Tolerance).ToNot(BeNil())
	g.Expect(*experiment.Tolerance).To(Equal(2))
	g.Expect(experiment.MaxDepth).To(BeNil())
}

func TestLoadExperimentRejectsIncompleteFiles(t *testing.T) {
	g := NewGomegaWithT(t)

	_, err := loadExperiment(writeExperiment(t, "name: x\nrelations: [sum]\n"))
	g.Expect(err).To(MatchError(ContainSubstring("names no dataset")))

	_, err = loadExperiment(writeExperiment(t, "name: x\ndataset: data.csv\n"))
	g.Expect(err).To(MatchError(ContainSubstring("names no relations")))
}

func TestToLearnerConfigAppliesDefaults(t *testing.T) {
	g := NewGomegaWithT(t)
	experiment := &induct.Experiment{
		Dataset:   "data.csv",
		Relations: []string{"sum"},
	}

	cfg, err := toLearnerConfig(experiment)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg.MinLHS).To(Equal(1))
	g.Expect(cfg.MaxLHS).To(Equal(2))
	g.Expect(cfg.Tolerance).To(Equal(5))
	g.Expect(cfg.MaxDepth).To(Equal(1))
	g.Expect(cfg.Relations).To(HaveLen(1))
}

func TestToLearnerConfigHonoursExplicitZeroes(t *testing.T) {
	g := NewGomegaWithT(t)
	zero := 0
	experiment := &induct.Experiment{
		Dataset:   "data.csv",
		Relations: []string{"sum"},
		Tolerance: &zero,
		MaxDepth:  &zero,
	}

	cfg, err := toLearnerConfig(experiment)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg.Tolerance).To(Equal(0))
	g.Expect(cfg.MaxDepth).To(Equal(0))
}

func TestToLearnerConfigRejectsUnknownRelations(t *testing.T) {
	g := NewGomegaWithT(t)
	experiment := &induct.Experiment{
		Dataset:   "data.csv",
		Relations: []string{"entropy"},
	}

	_, err := toLearnerConfig(experiment)
	g.Expect(err).To(MatchError(ContainSubstring("unknown relation")))
}
