package learner

import (
	"fmt"
	"strconv"
	"strings"
)

type RHSKind string

const (
	RHSTarget   RHSKind = "target"
	RHSFeature  RHSKind = "feature"
	RHSConstant RHSKind = "constant"
)

// RHS is the tagged right-hand side of a hypothesis: the training target,
// another feature column, or a configured literal. Col is meaningful for
// RHSFeature only, Const for RHSConstant only.
type RHS struct {
	Kind  RHSKind
	Col   int
	Const float64
}

func (r RHS) String() string {
	switch r.Kind {
	case RHSFeature:
		return fmt.Sprintf("c%d", r.Col)
	case RHSConstant:
		return strconv.FormatFloat(r.Const, 'g', -1, 64)
	default:
		return "target"
	}
}

// Columns is the canonical encoding of an ascending sequence of distinct
// column indices. Encoding to a string keeps Key usable as a map key.
type Columns string

func NewColumns(indices []int) Columns {
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, strconv.Itoa(i))
	}
	return Columns(strings.Join(parts, ","))
}

// Indices decodes the column sequence.
func (c Columns) Indices() []int {
	if c == "" {
		return nil
	}
	parts := strings.Split(string(c), ",")
	indices := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		indices = append(indices, i)
	}
	return indices
}

// Key uniquely identifies a candidate relation: which function, applied to
// which columns, compared against which right-hand side. Keys have value
// equality and index the learner's hypothesis map.
type Key struct {
	Fn  int
	LHS Columns
	RHS RHS
}

func (k Key) String() string {
	cols := k.LHS.Indices()
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, fmt.Sprintf("c%d", c))
	}
	return fmt.Sprintf("fn%d(%s) ~ %s", k.Fn, strings.Join(parts, ","), k.RHS)
}

// Compare orders keys by function, then columns, then right-hand side, so
// that hypothesis maps can be walked deterministically.
func (k Key) Compare(o Key) int {
	if k.Fn != o.Fn {
		return k.Fn - o.Fn
	}
	if c := strings.Compare(string(k.LHS), string(o.LHS)); c != 0 {
		return c
	}
	if c := strings.Compare(string(k.RHS.Kind), string(o.RHS.Kind)); c != 0 {
		return c
	}
	if k.RHS.Col != o.RHS.Col {
		return k.RHS.Col - o.RHS.Col
	}
	switch {
	case k.RHS.Const < o.RHS.Const:
		return -1
	case k.RHS.Const > o.RHS.Const:
		return 1
	}
	return 0
}
