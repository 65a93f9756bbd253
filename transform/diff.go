package transform

import (
	"strings"

	"github.com/khulnasoft-bot/code-translator/core"
)

// ComputeLineDiff compares two texts line by line at matching indices. Not
// an LCS diff: a line is only ever compared with the line at the same index
// in the other text.
func ComputeLineDiff(before, after string) []core.LineChange {
	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")

	n := len(beforeLines)
	if len(afterLines) > n {
		n = len(afterLines)
	}

	out := make([]core.LineChange, 0, n)
	for i := 0; i < n; i++ {
		change := core.LineChange{Index: i}
		switch {
		case i >= len(beforeLines):
			change.Transformed = afterLines[i]
			change.Kind = core.ChangeAdded
		case i >= len(afterLines):
			change.Original = beforeLines[i]
			change.Kind = core.ChangeRemoved
		case beforeLines[i] == afterLines[i]:
			change.Original = beforeLines[i]
			change.Transformed = afterLines[i]
			change.Kind = core.ChangeUnchanged
		default:
			change.Original = beforeLines[i]
			change.Transformed = afterLines[i]
			change.Kind = core.ChangeModified
		}
		out = append(out, change)
	}
	return out
}
