package induct

// Experiment describes one induction run: where the data lives, which
// column holds the target and how the learners should be configured.
// Tolerance and MaxDepth are pointers because zero is a meaningful
// setting for both; nil means "use the default".
type Experiment struct {
	Name      string    `json:"name"`
	Dataset   string    `json:"dataset"`
	Target    int       `json:"target"`
	Relations []string  `json:"relations"`
	Constants []float64 `json:"constants,omitempty"`
	MinLHS    int       `json:"min-lhs,omitempty"`
	MaxLHS    int       `json:"max-lhs,omitempty"`
	Tolerance *int      `json:"tolerance,omitempty"`
	MaxDepth  *int      `json:"max-depth,omitempty"`
}
