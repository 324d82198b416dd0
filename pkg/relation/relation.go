package relation

import (
	"fmt"
	"sort"
	"strings"
)

// Relation is a dual-mode scoring function over feature values.
//
// Evaluate is the comparison mode: does the relation hold between the
// left-hand side values and the given right-hand side value. Infer is the
// prediction mode: compute the value the relation would demand for the
// right-hand side, or report that no prediction is meaningful.
type Relation interface {
	Name() string
	Evaluate(lhs []float64, rhs float64) bool
	Infer(lhs []float64) (float64, bool)
}

// SafeEvaluate runs r.Evaluate and converts any panic into "does not hold".
// Relations are opaque caller-supplied code; a faulty one must never take
// down the learner.
func SafeEvaluate(r Relation, lhs []float64, rhs float64) (held bool) {
	defer func() {
		if recover() != nil {
			held = false
		}
	}()
	return r.Evaluate(lhs, rhs)
}

// SafeInfer runs r.Infer and converts any panic into "no prediction".
func SafeInfer(r Relation, lhs []float64) (v float64, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = 0, false
		}
	}()
	return r.Infer(lhs)
}

var registry = map[string]Relation{}

// Register makes a relation resolvable by name. Built-ins register
// themselves; callers may add their own before building experiments.
func Register(r Relation) {
	registry[r.Name()] = r
}

// FromNames resolves a list of relation names against the registry,
// preserving order.
func FromNames(names []string) ([]Relation, error) {
	relations := make([]Relation, 0, len(names))
	for _, name := range names {
		r, exists := registry[name]
		if !exists {
			return nil, fmt.Errorf("unknown relation %q, known relations: %s", name, strings.Join(Names(), ", "))
		}
		relations = append(relations, r)
	}
	return relations, nil
}

// Names returns all registered relation names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
