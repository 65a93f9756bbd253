package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Recognizers for go source lines. Go's "for" covers all loop shapes, so
// the loop recognizer distinguishes counted, range, and bare-condition
// forms before falling back.

var (
	goFuncRe   = regexp.MustCompile(`^func\s+(?:\([^)]*\)\s+)?([A-Za-z_]\w*)\s*\((.*?)\)\s*(?:\([^)]*\)|[\w\*\.\[\]]+)?\s*\{?\s*$`)
	goStructRe = regexp.MustCompile(`^type\s+([A-Za-z_]\w*)\s+struct\s*\{?\s*$`)

	goElseIfRe = regexp.MustCompile(`^\}?\s*else\s+if\s+([^{]+?)\s*\{?\s*$`)
	goElseRe   = regexp.MustCompile(`^\}?\s*else\s*\{?\s*$`)
	goIfRe     = regexp.MustCompile(`^if\s+([^{]+?)\s*\{?\s*$`)

	goCountedRe = regexp.MustCompile(`^for\s+([A-Za-z_]\w*)\s*:=\s*([^;]+?)\s*;\s*\w+\s*<=?\s*([^;]+?)\s*;\s*(?:\w+\+\+|\w+\s*\+=\s*(\S+))\s*\{?\s*$`)
	goRangeRe   = regexp.MustCompile(`^for\s+(?:_\s*,\s*)?([A-Za-z_]\w*)\s*(?:,\s*[A-Za-z_]\w*\s*)?:=\s*range\s+(.+?)\s*\{?\s*$`)
	goCondForRe = regexp.MustCompile(`^for\s+([^{;]+?)\s*\{\s*$`)

	goPrintRe  = regexp.MustCompile(`^fmt\.Print(?:ln|f)?\s*\((.*)\)\s*$`)
	goImportRe = regexp.MustCompile(`^import\s+"([^"]+)"\s*$`)

	goShortVarRe = regexp.MustCompile(`^([A-Za-z_]\w*)\s*:=\s*(.+?)\s*$`)
	goVarRe      = regexp.MustCompile(`^var\s+([A-Za-z_]\w*)(?:\s+[\w\*\.\[\]]+)?\s*=\s*(.+?)\s*$`)
)

func goFunctions(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := goFuncRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitFuncHeader(dst, m[1], goStripParamTypes(m[2]))
	if !ok {
		return line, []string{unsupportedConstruct(dst, "function definition")}, true
	}
	return indent + out, warns, true
}

// goStripParamTypes reduces "name type" parameter pairs to bare names. The
// name comes first, unlike the c-like "type name" order.
func goStripParamTypes(params string) string {
	params = strings.TrimSpace(params)
	if params == "" {
		return ""
	}
	parts := strings.Split(params, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		fields := strings.Fields(strings.TrimSpace(p))
		if len(fields) == 0 {
			continue
		}
		out = append(out, fields[0])
	}
	return strings.Join(out, ", ")
}

func goClasses(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := goStructRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitClassHeader(dst, m[1], "")
	if !ok {
		return line, []string{unsupportedConstruct(dst, "struct definition")}, true
	}
	return indent + out, warns, true
}

func goConditionals(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := goElseIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitElseIf(dst, strings.TrimSpace(m[1])); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if goElseRe.MatchString(body) {
		if out, ok := emitElse(dst); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if m := goIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitIf(dst, strings.TrimSpace(m[1])); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func goLoops(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := goCountedRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitCounted(dst, m[1], m[2], m[3], m[4])
		if !ok {
			return line, []string{unsupportedConstruct(dst, "counted loop")}, true
		}
		return indent + out, warns, true
	}
	if m := goRangeRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitForEach(dst, m[1], strings.TrimSpace(m[2]))
		if !ok {
			return line, []string{unsupportedConstruct(dst, "for-each loop")}, true
		}
		return indent + out, warns, true
	}
	if m := goCondForRe.FindStringSubmatch(body); m != nil {
		cond := strings.TrimSpace(m[1])
		if !strings.Contains(cond, ":=") {
			if out, ok := emitWhile(dst, cond); ok {
				return indent + out, nil, true
			}
		}
	}
	return line, nil, false
}

func goPrints(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := goPrintRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, ok := emitPrint(dst, m[1])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "print statement")}, true
	}
	return indent + out, nil, true
}

func goImports(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := goImportRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitImportWhole(dst, m[1])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "import")}, true
	}
	return indent + out, warns, true
}

func goVariables(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if isHeaderLike(body) {
		return line, nil, false
	}
	m := goShortVarRe.FindStringSubmatch(body)
	if m == nil {
		m = goVarRe.FindStringSubmatch(body)
	}
	if m == nil {
		return line, nil, false
	}
	out, ok := emitVarDecl(dst, m[1], m[2])
	if !ok {
		return line, nil, false
	}
	return indent + out, nil, true
}
