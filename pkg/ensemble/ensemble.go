package ensemble

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dweil/induct/pkg/api"
	"github.com/dweil/induct/pkg/learner"
)

// Ensemble routes examples to one or more learners. A context whose target
// slot holds a value is a training example and is fed to every learner; a
// context with an absent target slot is a prediction request and returns
// the pooled raw predictions. The sentinel check lives here, not in the
// learners: a learner only ever sees explicit Train and Predict calls.
type Ensemble struct {
	learners []*learner.Learner
}

func New(learners ...*learner.Learner) *Ensemble {
	return &Ensemble{learners: learners}
}

// Learn registers another learner.
func (e *Ensemble) Learn(l *learner.Learner) {
	e.learners = append(e.learners, l)
}

// On consumes one context. Training contexts return nil; prediction
// contexts return every raw prediction gathered across the learners.
func (e *Ensemble) On(ctx api.Context) []float64 {
	if ctx.HasTarget() {
		logrus.Debugf("training on %v", ctx)
		for _, l := range e.learners {
			l.Train(ctx.Row, ctx.TargetIndex)
		}
		return nil
	}
	logrus.Debugf("predicting %v", ctx)
	var out []float64
	for _, l := range e.learners {
		out = append(out, l.Predict(ctx.Row)...)
	}
	return out
}

// Vote picks the most frequent prediction. Ties break towards the smaller
// value so repeated runs agree. ok is false when values is empty.
func Vote(values []float64) (winner float64, count int, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	tally := map[float64]int{}
	for _, v := range values {
		tally[v]++
	}
	candidates := maps.Keys(tally)
	slices.Sort(candidates)
	for _, v := range candidates {
		if tally[v] > count {
			winner, count = v, tally[v]
		}
	}
	return winner, count, true
}
