package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoValue marks an absent cell, most importantly the target slot of a row
// that is presented for prediction rather than training.
var NoValue = math.NaN()

// IsNoValue reports whether v is the absence marker.
func IsNoValue(v float64) bool {
	return math.IsNaN(v)
}

// Context is a single example: an ordered row of feature values plus the
// index of the column that holds the label during training. The target
// slot may hold NoValue, in which case the row is a prediction request.
type Context struct {
	Row         []float64
	TargetIndex int
}

// HasTarget reports whether the target slot holds a real value, i.e.
// whether this context is a training example.
func (c Context) HasTarget() bool {
	return c.TargetIndex >= 0 && c.TargetIndex < len(c.Row) && !IsNoValue(c.Row[c.TargetIndex])
}

func (c Context) String() string {
	cells := make([]string, 0, len(c.Row))
	for i, v := range c.Row {
		cell := "?"
		if !IsNoValue(v) {
			cell = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if i == c.TargetIndex {
			cell = "[" + cell + "]"
		}
		cells = append(cells, cell)
	}
	return fmt.Sprintf("(%s)", strings.Join(cells, " "))
}
