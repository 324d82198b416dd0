package relation

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestBuiltinEvaluate(t *testing.T) {
	tests := []struct {
		name string
		rel  Relation
		lhs  []float64
		rhs  float64
		want bool
	}{
		{name: "sum holds", rel: Sum{}, lhs: []float64{3, 5}, rhs: 8, want: true},
		{name: "sum fails", rel: Sum{}, lhs: []float64{3, 5}, rhs: 9, want: false},
		{name: "product holds", rel: Product{}, lhs: []float64{3, 5}, rhs: 15, want: true},
		{name: "product fails", rel: Product{}, lhs: []float64{3, 5}, rhs: 16, want: false},
		{name: "greater-than holds via max", rel: GreaterThan{}, lhs: []float64{1, 9}, rhs: 5, want: true},
		{name: "greater-than is strict", rel: GreaterThan{}, lhs: []float64{1, 9}, rhs: 9, want: false},
		{name: "less-than holds via min", rel: LessThan{}, lhs: []float64{1, 9}, rhs: 5, want: true},
		{name: "less-than is strict", rel: LessThan{}, lhs: []float64{1, 9}, rhs: 1, want: false},
		{name: "median odd", rel: Median{}, lhs: []float64{9, 1, 5}, rhs: 5, want: true},
		{name: "median even averages middles", rel: Median{}, lhs: []float64{1, 2, 4, 9}, rhs: 3, want: true},
		{name: "first holds", rel: First{}, lhs: []float64{42, 0}, rhs: 42, want: true},
		{name: "first ignores the rest", rel: First{}, lhs: []float64{0, 42}, rhs: 42, want: false},
		{name: "greater-than on empty lhs", rel: GreaterThan{}, lhs: nil, rhs: 1, want: false},
		{name: "less-than on empty lhs", rel: LessThan{}, lhs: nil, rhs: 1, want: false},
		{name: "median on empty lhs", rel: Median{}, lhs: nil, rhs: 0, want: false},
		{name: "first on empty lhs", rel: First{}, lhs: nil, rhs: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			g.Expect(tt.rel.Evaluate(tt.lhs, tt.rhs)).To(Equal(tt.want))
		})
	}
}

func TestBuiltinInfer(t *testing.T) {
	tests := []struct {
		name   string
		rel    Relation
		lhs    []float64
		want   float64
		wantOK bool
	}{
		{name: "sum", rel: Sum{}, lhs: []float64{3, 5}, want: 8, wantOK: true},
		{name: "product", rel: Product{}, lhs: []float64{3, 5}, want: 15, wantOK: true},
		{name: "greater-than yields max", rel: GreaterThan{}, lhs: []float64{1, 9, 3}, want: 9, wantOK: true},
		{name: "less-than yields min", rel: LessThan{}, lhs: []float64{1, 9, 3}, want: 1, wantOK: true},
		{name: "median", rel: Median{}, lhs: []float64{9, 1, 5}, want: 5, wantOK: true},
		{name: "first", rel: First{}, lhs: []float64{42, 0}, want: 42, wantOK: true},
		{name: "greater-than on empty lhs", rel: GreaterThan{}, lhs: nil, wantOK: false},
		{name: "first on empty lhs", rel: First{}, lhs: nil, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			v, ok := tt.rel.Infer(tt.lhs)
			g.Expect(ok).To(Equal(tt.wantOK))
			if tt.wantOK {
				g.Expect(v).To(Equal(tt.want))
			}
		})
	}
}

type panicky struct{}

func (panicky) Name() string                     { return "panicky" }
func (panicky) Evaluate([]float64, float64) bool { panic("boom") }
func (panicky) Infer([]float64) (float64, bool)  { panic("boom") }

func TestSafeWrappersAbsorbPanics(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(SafeEvaluate(panicky{}, []float64{1}, 1)).To(BeFalse())
	v, ok := SafeInfer(panicky{}, []float64{1})
	g.Expect(ok).To(BeFalse())
	g.Expect(v).To(Equal(0.0))
}

func TestFromNames(t *testing.T) {
	g := NewGomegaWithT(t)

	relations, err := FromNames([]string{"sum", "median"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(relations).To(HaveLen(2))
	g.Expect(relations[0].Name()).To(Equal("sum"))
	g.Expect(relations[1].Name()).To(Equal("median"))

	_, err = FromNames([]string{"sum", "entropy"})
	g.Expect(err).To(MatchError(ContainSubstring(`unknown relation "entropy"`)))
}
