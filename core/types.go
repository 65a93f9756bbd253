package core

// ChangeKind classifies what happened to a single line during translation
// or during a line diff.
type ChangeKind string

const (
	ChangeUnchanged ChangeKind = "unchanged"
	ChangeModified  ChangeKind = "changed"
	ChangeAdded     ChangeKind = "added"
	ChangeRemoved   ChangeKind = "removed"
	ChangeWarning   ChangeKind = "warning"
)

// LineChange records one input line's journey through the engine: what it
// looked like, what it became, and anything suspicious that happened along
// the way. Immutable once built.
type LineChange struct {
	Index       int        `json:"index"` // 0-based line number in the input
	Original    string     `json:"original"`
	Transformed string     `json:"transformed"`
	Kind        ChangeKind `json:"kind"`
	Warnings    []string   `json:"warnings,omitempty"`
}

// Stats summarizes one translation call.
type Stats struct {
	Functions        int  `json:"functions"`
	Classes          int  `json:"classes"`
	Imports          int  `json:"imports"`
	LinesTransformed int  `json:"lines_transformed"`
	MixedLanguage    bool `json:"mixed_language"`
	Normalized       bool `json:"normalized"`
}

// Result is the aggregate output of one Transform call. Constructed fresh
// per call; the engine holds no state across calls.
type Result struct {
	Source   string       `json:"source"`
	Target   string       `json:"target"`
	Code     string       `json:"code"`
	Lines    []LineChange `json:"lines"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
	Stats    Stats        `json:"stats"`
	Summary  []*Node      `json:"summary,omitempty"`
}

// DetectionReport is the output of mixed-language detection. Advisory only:
// confidence is a coarse triage signal, not a classifier score.
type DetectionReport struct {
	Detected   bool     `json:"detected"`
	Candidates []string `json:"candidates,omitempty"`
	Confidence float64  `json:"confidence"` // 0.0 to 1.0
}

// NodeType tags a structural-summary node.
type NodeType string

const (
	NodeFunction    NodeType = "function"
	NodeClass       NodeType = "class"
	NodeConditional NodeType = "conditional"
	NodeLoop        NodeType = "loop"
	NodeImport      NodeType = "import"
	NodeVariable    NodeType = "variable"
	NodeComment     NodeType = "comment"
	NodeBlock       NodeType = "block"
	NodeStatement   NodeType = "statement"
)

// Node is a lightweight stand-in for an AST node, built from indentation
// heuristics rather than a real parse. Nesting is best-effort: irregular
// indentation can mis-parent a sibling.
type Node struct {
	Type      NodeType `json:"type"`
	Name      string   `json:"name,omitempty"`
	StartLine int      `json:"start_line"` // 1-based
	EndLine   int      `json:"end_line"`
	Children  []*Node  `json:"children,omitempty"`
}
