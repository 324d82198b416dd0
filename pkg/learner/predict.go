package learner

import (
	"github.com/dweil/induct/pkg/api"
	"github.com/dweil/induct/pkg/relation"
)

// Predict gathers the raw predictions of every retained hypothesis for the
// row. Whatever value sits in the target column is ignored. Hypotheses
// comparing against the target infer a value directly; feature and
// constant hypotheses relay the row to their child learner when the
// relation holds for it. The result is unaggregated and may contain
// duplicates; combining the values into one answer is the caller's job.
func (l *Learner) Predict(row []float64) []float64 {
	var out []float64
	for _, key := range sortedKeys(l.hypotheses) {
		rel := l.relations[key.Fn]
		lhs, ok := valuesAt(row, key.LHS.Indices())
		if !ok {
			continue
		}

		if key.RHS.Kind == RHSTarget {
			if v, ok := relation.SafeInfer(rel, lhs); ok && !api.IsNoValue(v) {
				out = append(out, v)
			}
			continue
		}

		rhs, ok := resolveRHS(key.RHS, row, -1)
		if !ok || !relation.SafeEvaluate(rel, lhs, rhs) {
			continue
		}
		if child := l.hypotheses[key].child; child != nil {
			out = append(out, child.Predict(row)...)
		}
	}
	return out
}
