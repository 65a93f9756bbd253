package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// PostProcess reconciles block delimiters, re-levels indentation, and runs
// target-specific trailing cleanup over fully rule-rewritten text.
func PostProcess(text string, dst *languages.Language) string {
	lines := strings.Split(text, "\n")

	if dst.Braces {
		lines = balanceBraces(lines)
		lines = relevel(lines, dst)
	} else if dst.BlockCloser != "" {
		lines = closeKeywordBlocks(lines, dst)
	} else {
		lines = stripBraces(lines)
	}

	if dst.Terminator == "" {
		for i, line := range lines {
			for strings.HasSuffix(line, ";") {
				line = strings.TrimSuffix(line, ";")
			}
			lines[i] = strings.TrimRight(line, " \t")
		}
	}

	if dst.TopLevelDecl != "" {
		lines = ensureTopLevelDecl(lines, dst)
	}

	return strings.Join(lines, "\n")
}

// balanceBraces equalizes opener and closer counts across the whole text.
// A global count heuristic, not a stack matcher: on malformed input the
// appended closers can land at the wrong nesting depth.
func balanceBraces(lines []string) []string {
	openers, closers := 0, 0
	for _, line := range lines {
		openers += strings.Count(line, "{")
		closers += strings.Count(line, "}")
	}

	for openers > closers {
		lines = append(lines, "}")
		closers++
	}

	// Excess closers: drop closer-only lines from the end until balanced.
	for closers > openers {
		removed := false
		for i := len(lines) - 1; i >= 0; i-- {
			trimmed := strings.TrimSpace(lines[i])
			if trimmed != "" && strings.Trim(trimmed, "} \t") == "" {
				n := strings.Count(trimmed, "}")
				lines = append(lines[:i], lines[i+1:]...)
				closers -= n
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return lines
}

// relevel rewrites every line's indentation from a running nesting level:
// closers dedent before emission, openers indent after.
func relevel(lines []string, dst *languages.Language) []string {
	level := 0
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}
		if strings.HasPrefix(trimmed, "}") && level > 0 {
			level--
		}
		out = append(out, strings.Repeat(dst.IndentUnit, level)+trimmed)
		if strings.HasSuffix(trimmed, "{") {
			level++
		}
	}
	return out
}

var (
	keywordOpenerRe   = regexp.MustCompile(`^(?:def|class|module|if|unless|while|until|for|case|begin)\b`)
	keywordDoRe       = regexp.MustCompile(`\bdo(?:\s*\|[^|]*\|)?\s*$`)
	keywordContinueRe = regexp.MustCompile(`^(?:else|elsif|when|rescue|ensure)\b`)
)

// closeKeywordBlocks terminates open blocks with the target's closer keyword.
// When the rewritten text still carries closer-only brace lines (a brace
// source), those mark the block ends directly; otherwise blocks close on
// dedent, tracked by an indent stack. else/elsif continue the enclosing
// block rather than closing it.
func closeKeywordBlocks(lines []string, dst *languages.Language) []string {
	explicit := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && strings.Trim(trimmed, "} \t") == "" {
			explicit = true
			break
		}
	}

	var stack []int
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}
		if strings.Trim(trimmed, "{} \t") == "" {
			if strings.Contains(trimmed, "}") && len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				out = append(out, strings.Repeat(" ", top)+dst.BlockCloser)
			}
			continue
		}

		line = strings.TrimRight(line, " \t")
		for strings.HasSuffix(line, "{") {
			line = strings.TrimRight(strings.TrimSuffix(line, "{"), " \t")
		}
		trimmed = strings.TrimSpace(line)
		depth := indentDepth(line)

		if !explicit {
			for len(stack) > 0 && depth <= stack[len(stack)-1] {
				if depth == stack[len(stack)-1] && keywordContinueRe.MatchString(trimmed) {
					break
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				out = append(out, strings.Repeat(" ", top)+dst.BlockCloser)
			}
		}

		out = append(out, line)
		if keywordOpenerRe.MatchString(trimmed) || keywordDoRe.MatchString(trimmed) {
			stack = append(stack, depth)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, strings.Repeat(" ", top)+dst.BlockCloser)
	}
	return out
}

// stripBraces removes brace delimiters for targets that scope by
// indentation, dropping closer-only lines entirely.
func stripBraces(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && strings.Trim(trimmed, "{} \t") == "" {
			continue
		}
		line = strings.TrimRight(line, " \t")
		for strings.HasSuffix(line, "{") {
			line = strings.TrimRight(strings.TrimSuffix(line, "{"), " \t")
		}
		out = append(out, line)
	}
	return out
}

// ensureTopLevelDecl synthesizes the target's mandatory top-level
// declaration (e.g. a package clause) when the text lacks one.
func ensureTopLevelDecl(lines []string, dst *languages.Language) []string {
	prefix := strings.Fields(dst.TopLevelDecl)[0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix+" ") {
			return lines
		}
	}
	return append([]string{dst.TopLevelDecl, ""}, lines...)
}
