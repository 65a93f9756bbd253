package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/core"
	"github.com/khulnasoft-bot/code-translator/languages"
)

// Structural summary: a best-effort, indentation-nested outline of the
// recognizable constructs in a piece of code. Not a parse tree; irregular
// indentation can mis-parent a sibling and that is accepted.

var (
	sumFuncRe  = regexp.MustCompile(`^(?:(?:public|private|protected|static|final|abstract|async|export)\s+)*(?:def|function|func)\s+([A-Za-z_$]\w*)`)
	sumClassRe = regexp.MustCompile(`^(?:(?:public|final|abstract|export)\s+)*(?:class|type)\s+([A-Za-z_]\w*)`)
	sumImpRe   = regexp.MustCompile(`^(?:import|from|require|#include|using|package)\b`)
	sumLoopRe  = regexp.MustCompile(`^\}?\s*(?:for|foreach|while)\b`)
	sumCondRe  = regexp.MustCompile(`^\}?\s*(?:if|elif|elsif|elseif|else)\b`)
	sumVarRe   = regexp.MustCompile(`^(?:(?:let|const|var|auto)\s+)?\$?([A-Za-z_]\w*)\s*:?=[^=]`)
)

// container node types accept children during the scan.
var containerTypes = map[core.NodeType]bool{
	core.NodeFunction:    true,
	core.NodeClass:       true,
	core.NodeConditional: true,
	core.NodeLoop:        true,
	core.NodeBlock:       true,
}

// BuildSummary scans text top to bottom once, nesting nodes by indentation
// depth with an explicit stack of open containers.
func BuildSummary(code string, lang *languages.Language) []*core.Node {
	type open struct {
		node  *core.Node
		depth int
	}

	var roots []*core.Node
	var stack []open

	lines := strings.Split(code, "\n")
	openBraces := 0 // pending brace blocks raise the effective depth of flat code
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Trim(trimmed, "{} \t") == "" || trimmed == "end" {
			// bare block delimiters carry no structure of their own
			openBraces += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
			continue
		}

		depth := indentDepth(line) + openBraces
		if strings.HasPrefix(trimmed, "}") {
			depth--
		}
		openBraces += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			top := stack[len(stack)-1]
			if i > top.node.EndLine-1 {
				top.node.EndLine = i // previous line, 1-based
			}
			stack = stack[:len(stack)-1]
		}

		node := classifyLine(trimmed, lang)
		node.StartLine = i + 1
		node.EndLine = i + 1

		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
		if containerTypes[node.Type] {
			stack = append(stack, open{node: node, depth: depth})
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.node.EndLine < len(lines) {
			top.node.EndLine = len(lines)
		}
		stack = stack[:len(stack)-1]
	}
	// Containers inherit the span of their last child.
	var fix func(n *core.Node)
	fix = func(n *core.Node) {
		for _, c := range n.Children {
			fix(c)
			if c.EndLine > n.EndLine {
				n.EndLine = c.EndLine
			}
		}
	}
	for _, r := range roots {
		fix(r)
	}
	return roots
}

func classifyLine(trimmed string, lang *languages.Language) *core.Node {
	switch {
	case lang.IsComment(trimmed):
		return &core.Node{Type: core.NodeComment}
	case sumClassRe.MatchString(trimmed):
		return &core.Node{Type: core.NodeClass, Name: sumClassRe.FindStringSubmatch(trimmed)[1]}
	case sumFuncRe.MatchString(trimmed):
		return &core.Node{Type: core.NodeFunction, Name: sumFuncRe.FindStringSubmatch(trimmed)[1]}
	case sumImpRe.MatchString(trimmed):
		return &core.Node{Type: core.NodeImport}
	case sumLoopRe.MatchString(trimmed):
		return &core.Node{Type: core.NodeLoop}
	case sumCondRe.MatchString(trimmed):
		return &core.Node{Type: core.NodeConditional}
	case sumVarRe.MatchString(trimmed):
		return &core.Node{Type: core.NodeVariable, Name: sumVarRe.FindStringSubmatch(trimmed)[1]}
	default:
		return &core.Node{Type: core.NodeStatement}
	}
}

// indentDepth measures a line's indentation in columns, counting a tab as
// four columns.
func indentDepth(line string) int {
	depth := 0
	for _, r := range line {
		switch r {
		case ' ':
			depth++
		case '\t':
			depth += 4
		default:
			return depth
		}
	}
	return depth
}
