package learner

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dweil/induct/pkg/relation"
)

// Config carries everything a Learner needs at construction time. The
// relation and constant lists are shared by reference across the whole
// learner tree and must not be mutated afterwards.
type Config struct {
	Relations []relation.Relation
	Constants []float64
	MinLHS    int
	MaxLHS    int
	Tolerance int
	MaxDepth  int
	// ParentKey is the hypothesis key in the owning learner that spawned
	// this instance. A child never re-derives a grandchild under its own
	// spawning key.
	ParentKey *Key
}

// DefaultConfig returns a Config with the conventional knob settings:
// LHS subsets of one or two columns, five tolerated failures, one level
// of child recursion.
func DefaultConfig(relations ...relation.Relation) Config {
	return Config{
		Relations: relations,
		MinLHS:    1,
		MaxLHS:    2,
		Tolerance: 5,
		MaxDepth:  1,
	}
}

// hypothesis is the mutable state attached to a retained key. fails only
// ever grows; a success never resets it. child is created lazily for
// non-target hypotheses and is discarded with the entry.
type hypothesis struct {
	fails int
	child *Learner
}

// Learner discovers symbolic relations that hold consistently across
// training rows and replays the surviving ones to predict an unseen
// target. It is self-similar: hypotheses whose right-hand side is another
// feature or a constant own child learners that explain that relation
// transitively, down to MaxDepth levels.
//
// A Learner is not safe for concurrent use; callers must serialize Train
// and Predict on a learner tree.
type Learner struct {
	relations  []relation.Relation
	constants  []float64
	minLHS     int
	maxLHS     int
	tolerance  int
	maxDepth   int
	parent     *Key
	hypotheses map[Key]*hypothesis
}

func New(cfg Config) *Learner {
	return &Learner{
		relations:  cfg.Relations,
		constants:  cfg.Constants,
		minLHS:     cfg.MinLHS,
		maxLHS:     cfg.MaxLHS,
		tolerance:  cfg.Tolerance,
		maxDepth:   cfg.MaxDepth,
		parent:     cfg.ParentKey,
		hypotheses: map[Key]*hypothesis{},
	}
}

// Train feeds one example: row holds the feature values with the known
// label at row[target]. Every candidate hypothesis for the row is
// evaluated; passing ones are retained, previously tracked ones that did
// not pass accumulate a failure and are dropped once the failure count
// exceeds the tolerance. Column indices are not validated; references
// outside the row evaluate as not holding.
func (l *Learner) Train(row []float64, target int) {
	retained := map[Key]*hypothesis{}

	l.enumerate(row, target, func(c candidate) {
		rhs, ok := resolveRHS(c.key.RHS, row, target)
		if !ok || !relation.SafeEvaluate(c.rel, c.lhs, rhs) {
			return
		}
		if h, tracked := l.hypotheses[c.key]; tracked {
			retained[c.key] = h
			return
		}
		logrus.Debugf("adopting hypothesis %v", c.key)
		retained[c.key] = &hypothesis{}
	})

	for _, key := range sortedKeys(l.hypotheses) {
		if _, passed := retained[key]; passed {
			continue
		}
		h := l.hypotheses[key]
		h.fails++
		if h.fails <= l.tolerance {
			retained[key] = h
			continue
		}
		logrus.Debugf("dropping hypothesis %v after %d failures", key, h.fails)
	}

	l.hypotheses = retained
	l.refreshChildren(row, target)
}

// refreshChildren re-evaluates every retained non-target hypothesis
// against the row and, on success, lazily creates its child learner and
// feeds it the same example. Hypotheses comparing against the target are
// terminal and never own children.
func (l *Learner) refreshChildren(row []float64, target int) {
	if l.maxDepth <= 0 {
		return
	}
	for _, key := range sortedKeys(l.hypotheses) {
		if key.RHS.Kind == RHSTarget {
			continue
		}
		if l.parent != nil && key == *l.parent {
			continue
		}
		lhs, ok := valuesAt(row, key.LHS.Indices())
		if !ok {
			continue
		}
		rhs, ok := resolveRHS(key.RHS, row, target)
		if !ok || !relation.SafeEvaluate(l.relations[key.Fn], lhs, rhs) {
			continue
		}
		h := l.hypotheses[key]
		if h.child == nil {
			logrus.Debugf("spawning child learner under %v", key)
			parent := key
			h.child = New(Config{
				Relations: l.relations,
				Constants: l.constants,
				MinLHS:    l.minLHS,
				MaxLHS:    l.maxLHS,
				Tolerance: l.tolerance,
				MaxDepth:  l.maxDepth - 1,
				ParentKey: &parent,
			})
		}
		h.child.Train(row, target)
	}
}

// Rules describes the retained hypotheses, most reliable first.
func (l *Learner) Rules() []string {
	keys := sortedKeys(l.hypotheses)
	slices.SortStableFunc(keys, func(a, b Key) int {
		return l.hypotheses[a].fails - l.hypotheses[b].fails
	})
	rules := make([]string, 0, len(keys))
	for _, key := range keys {
		rules = append(rules, l.describe(key))
	}
	return rules
}

func (l *Learner) describe(key Key) string {
	cols := key.LHS.Indices()
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, fmt.Sprintf("c%d", c))
	}
	return fmt.Sprintf("%s(%s) ~ %s", l.relations[key.Fn].Name(), strings.Join(parts, ","), key.RHS)
}

func sortedKeys(hypotheses map[Key]*hypothesis) []Key {
	keys := maps.Keys(hypotheses)
	slices.SortFunc(keys, Key.Compare)
	return keys
}
