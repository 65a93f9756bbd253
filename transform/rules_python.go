package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Recognizers for python-family source lines. Each operates on a single
// line, preserving its leading indentation verbatim.

var (
	pyFuncRe    = regexp.MustCompile(`^def\s+([A-Za-z_]\w*)\s*\((.*)\)\s*(?:->\s*[^:{]+)?[:{]?\s*$`)
	pyClassRe   = regexp.MustCompile(`^class\s+([A-Za-z_]\w*)\s*(?:\(\s*([^)]*?)\s*\))?\s*[:{]?\s*$`)
	pyIfRe      = regexp.MustCompile(`^if\s+(.+?)\s*$`)
	pyElifRe    = regexp.MustCompile(`^elif\s+(.+?)\s*$`)
	pyElseRe    = regexp.MustCompile(`^else\s*:?\s*$`)
	pyRangeRe   = regexp.MustCompile(`^for\s+([A-Za-z_]\w*)\s+in\s+range\s*\(\s*(.*?)\s*\)\s*[:{]?\s*$`)
	pyForEachRe = regexp.MustCompile(`^for\s+([A-Za-z_]\w*)\s+in\s+(.+?)\s*$`)
	pyWhileRe   = regexp.MustCompile(`^while\s+(.+?)\s*$`)
	pyPrintRe   = regexp.MustCompile(`^print\s*\((.*)\)\s*;?\s*$`)
	pyImportRe  = regexp.MustCompile(`^import\s+([\w.]+)\s*$`)
	pyFromRe    = regexp.MustCompile(`^from\s+([\w.]+)\s+import\s+(.+?)\s*$`)
	pyAssignRe  = regexp.MustCompile(`^([A-Za-z_]\w*)\s*=\s*([^=].*?)\s*;?\s*$`)
)

func pyFunctions(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := pyFuncRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitFuncHeader(dst, m[1], stripParamAnnotations(m[2]))
	if !ok {
		return line, []string{unsupportedConstruct(dst, "function definition")}, true
	}
	return indent + out, warns, true
}

func pyClasses(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := pyClassRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitClassHeader(dst, m[1], m[2])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "class definition")}, true
	}
	return indent + out, warns, true
}

func pyConditionals(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := pyElifRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitElseIf(dst, trimBlockSuffix(m[1])); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if pyElseRe.MatchString(body) {
		if out, ok := emitElse(dst); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if m := pyIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitIf(dst, trimBlockSuffix(m[1])); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func pyLoops(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := pyRangeRe.FindStringSubmatch(body); m != nil {
		start, end, step := splitRangeArgs(m[2])
		out, warns, ok := emitCounted(dst, m[1], start, end, step)
		if !ok {
			return line, []string{unsupportedConstruct(dst, "counted loop")}, true
		}
		return indent + out, warns, true
	}
	if m := pyForEachRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitForEach(dst, m[1], trimBlockSuffix(m[2]))
		if !ok {
			return line, []string{unsupportedConstruct(dst, "for-each loop")}, true
		}
		return indent + out, warns, true
	}
	if m := pyWhileRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitWhile(dst, trimBlockSuffix(m[1])); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func pyPrints(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := pyPrintRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, ok := emitPrint(dst, m[1])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "print statement")}, true
	}
	return indent + out, nil, true
}

func pyImports(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := pyFromRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitImportNames(dst, m[1], m[2])
		if !ok {
			return line, []string{unsupportedConstruct(dst, "import")}, true
		}
		return indent + out, warns, true
	}
	if m := pyImportRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitImportWhole(dst, m[1])
		if !ok {
			return line, []string{unsupportedConstruct(dst, "import")}, true
		}
		return indent + out, warns, true
	}
	return line, nil, false
}

func pyVariables(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if isHeaderLike(body) {
		return line, nil, false
	}
	m := pyAssignRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, ok := emitVarDecl(dst, m[1], m[2])
	if !ok {
		return line, nil, false
	}
	return indent + out, nil, true
}

// stripParamAnnotations drops ": type" annotations from a parameter list,
// keeping names and default values. Annotation syntax is never translated.
func stripParamAnnotations(params string) string {
	if !strings.Contains(params, ":") {
		return strings.TrimSpace(params)
	}
	parts := strings.Split(params, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		name := p
		var def string
		if i := strings.Index(p, "="); i >= 0 {
			name = strings.TrimSpace(p[:i])
			def = strings.TrimSpace(p[i+1:])
		}
		if i := strings.Index(name, ":"); i >= 0 {
			name = strings.TrimSpace(name[:i])
		}
		if def != "" {
			name += " = " + def
		}
		out = append(out, name)
	}
	return strings.Join(out, ", ")
}

// splitRangeArgs decomposes range() arguments into start, end, step.
func splitRangeArgs(args string) (start, end, step string) {
	parts := strings.Split(args, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 1:
		return "", parts[0], ""
	case 2:
		return parts[0], parts[1], ""
	default:
		return parts[0], parts[1], parts[2]
	}
}

func unsupportedConstruct(dst *languages.Language, what string) string {
	return fmt.Sprintf("no %s rewrite available for target %s; line left unchanged", what, dst.ID)
}
