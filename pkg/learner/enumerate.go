package learner

import "github.com/dweil/induct/pkg/relation"

// candidate is one element of the hypothesis space for a given row: a key
// together with the resolved relation and left-hand side values, ready to
// evaluate.
type candidate struct {
	key Key
	rel relation.Relation
	lhs []float64
}

// enumerate walks the full candidate space for the row: every ascending
// combination of MinLHS..MaxLHS distinct columns, crossed with every
// relation and every right-hand side (the target, every other column, every
// configured constant). The walk is stateless and recomputed per call; row
// contents vary between calls and a constant right-hand side is a distinct
// descriptor even when its value coincides with some cell.
func (l *Learner) enumerate(row []float64, target int, visit func(candidate)) {
	rhs := l.rhsCandidates(row, target)
	for size := l.minLHS; size <= l.maxLHS; size++ {
		combinations(len(row), size, func(cols []int) {
			columns := NewColumns(cols)
			lhs, ok := valuesAt(row, cols)
			if !ok {
				return
			}
			for fn, rel := range l.relations {
				for _, r := range rhs {
					visit(candidate{
						key: Key{Fn: fn, LHS: columns, RHS: r},
						rel: rel,
						lhs: lhs,
					})
				}
			}
		})
	}
}

// rhsCandidates lists the right-hand sides considered for any LHS subset.
// Constants are configuration-only literals; they never show up as LHS
// values or row columns.
func (l *Learner) rhsCandidates(row []float64, target int) []RHS {
	candidates := make([]RHS, 0, 1+len(row)+len(l.constants))
	candidates = append(candidates, RHS{Kind: RHSTarget})
	for col := range row {
		if col != target {
			candidates = append(candidates, RHS{Kind: RHSFeature, Col: col})
		}
	}
	for _, c := range l.constants {
		candidates = append(candidates, RHS{Kind: RHSConstant, Const: c})
	}
	return candidates
}

// combinations visits every ascending combination of k indices out of
// 0..n-1. The slice passed to visit is reused between calls.
func combinations(n, k int, visit func([]int)) {
	if k < 1 || k > n {
		return
	}
	cols := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			visit(cols)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			cols[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

// valuesAt picks the row values at the given columns. A reference outside
// the row reports !ok and the caller treats the hypothesis as not holding.
func valuesAt(row []float64, cols []int) ([]float64, bool) {
	values := make([]float64, 0, len(cols))
	for _, c := range cols {
		if c < 0 || c >= len(row) {
			return nil, false
		}
		values = append(values, row[c])
	}
	return values, true
}

// resolveRHS turns a right-hand side descriptor into the value the
// relation compares against for this row.
func resolveRHS(rhs RHS, row []float64, target int) (float64, bool) {
	switch rhs.Kind {
	case RHSTarget:
		if target < 0 || target >= len(row) {
			return 0, false
		}
		return row[target], true
	case RHSFeature:
		if rhs.Col < 0 || rhs.Col >= len(row) {
			return 0, false
		}
		return row[rhs.Col], true
	default:
		return rhs.Const, true
	}
}
