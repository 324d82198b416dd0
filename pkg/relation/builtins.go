package relation

import "sort"

func init() {
	Register(Sum{})
	Register(Product{})
	Register(GreaterThan{})
	Register(LessThan{})
	Register(Median{})
	Register(First{})
}

// Sum holds when the LHS values add up to the RHS.
type Sum struct{}

func (Sum) Name() string { return "sum" }

func (Sum) Evaluate(lhs []float64, rhs float64) bool {
	total := 0.0
	for _, v := range lhs {
		total += v
	}
	return total == rhs
}

func (Sum) Infer(lhs []float64) (float64, bool) {
	total := 0.0
	for _, v := range lhs {
		total += v
	}
	return total, true
}

// Product holds when the LHS values multiply to the RHS.
type Product struct{}

func (Product) Name() string { return "product" }

func (Product) Evaluate(lhs []float64, rhs float64) bool {
	product := 1.0
	for _, v := range lhs {
		product *= v
	}
	return product == rhs
}

func (Product) Infer(lhs []float64) (float64, bool) {
	product := 1.0
	for _, v := range lhs {
		product *= v
	}
	return product, true
}

// GreaterThan holds when the largest LHS value exceeds the RHS.
type GreaterThan struct{}

func (GreaterThan) Name() string { return "greater-than" }

func (GreaterThan) Evaluate(lhs []float64, rhs float64) bool {
	max, ok := maxOf(lhs)
	return ok && max > rhs
}

func (GreaterThan) Infer(lhs []float64) (float64, bool) {
	return maxOf(lhs)
}

// LessThan holds when the smallest LHS value is below the RHS.
type LessThan struct{}

func (LessThan) Name() string { return "less-than" }

func (LessThan) Evaluate(lhs []float64, rhs float64) bool {
	min, ok := minOf(lhs)
	return ok && min < rhs
}

func (LessThan) Infer(lhs []float64) (float64, bool) {
	return minOf(lhs)
}

// Median holds when the median of the LHS values equals the RHS. For an
// even number of values the median is the mean of the two middle ones.
type Median struct{}

func (Median) Name() string { return "median" }

func (Median) Evaluate(lhs []float64, rhs float64) bool {
	med, ok := medianOf(lhs)
	return ok && med == rhs
}

func (Median) Infer(lhs []float64) (float64, bool) {
	return medianOf(lhs)
}

// First holds when the first LHS value equals the RHS.
type First struct{}

func (First) Name() string { return "first" }

func (First) Evaluate(lhs []float64, rhs float64) bool {
	return len(lhs) > 0 && lhs[0] == rhs
}

func (First) Infer(lhs []float64) (float64, bool) {
	if len(lhs) == 0 {
		return 0, false
	}
	return lhs[0], true
}

func maxOf(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

func minOf(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

func medianOf(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, true
	}
	return sorted[mid], true
}
