package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Recognizers for javascript-family source lines (javascript, typescript).
// The conditional and loop recognizers are shared with the c-like family,
// whose surface syntax is identical at line granularity.

var (
	jsFuncRe  = regexp.MustCompile(`^(?:export\s+)?(?:async\s+)?function\s+([A-Za-z_$]\w*)\s*\((.*)\)\s*(?::\s*[\w<>\[\], .|]+)?\s*\{?\s*$`)
	jsArrowRe = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$]\w*)\s*=\s*(?:async\s*)?\(([^)]*)\)\s*(?::\s*[\w<>\[\], .|]+)?\s*=>\s*\{?\s*$`)
	jsClassRe = regexp.MustCompile(`^(?:export\s+)?(?:abstract\s+)?class\s+([A-Za-z_$]\w*)(?:\s+extends\s+([A-Za-z_$][\w.]*))?\s*(?:implements\s+[\w, ]+)?\s*\{?\s*$`)

	jsElseIfRe = regexp.MustCompile(`^\}?\s*else\s+if\s*\((.*)\)\s*\{?\s*$`)
	jsElseRe   = regexp.MustCompile(`^\}?\s*else\s*\{?\s*$`)
	jsIfRe     = regexp.MustCompile(`^if\s*\((.*)\)\s*\{?\s*$`)
	jsWhileRe  = regexp.MustCompile(`^\}?\s*while\s*\((.*)\)\s*[;{]?\s*$`)

	jsCountedRe = regexp.MustCompile(`^for\s*\(\s*(?:(?:let|var|const|int|long|size_t|auto)\s+)?([A-Za-z_$]\w*)\s*=\s*([^;]+?)\s*;\s*\w+\s*<=?\s*([^;]+?)\s*;\s*(?:\w+\s*\+\+|\+\+\w+|\w+\s*\+=\s*(\S+))\s*\)\s*\{?\s*$`)
	jsForOfRe   = regexp.MustCompile(`^for\s*\(\s*(?:const|let|var)\s+([A-Za-z_$]\w*)\s+(?:of|in)\s+(.+?)\s*\)\s*\{?\s*$`)

	jsPrintRe  = regexp.MustCompile(`^console\.(?:log|info|warn|error)\s*\((.*)\)\s*;?\s*$`)
	jsImportRe = regexp.MustCompile(`^import\s+([A-Za-z_$][\w$]*)\s+from\s+["']([^"']+)["']\s*;?\s*$`)
	jsNamedRe  = regexp.MustCompile(`^import\s*\{\s*([^}]*?)\s*\}\s*from\s+["']([^"']+)["']\s*;?\s*$`)
	jsRequire  = regexp.MustCompile(`^(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*require\s*\(\s*["']([^"']+)["']\s*\)\s*;?\s*$`)

	jsVarRe = regexp.MustCompile(`^(?:const|let|var)\s+([A-Za-z_$]\w*)\s*(?::\s*[\w<>\[\], .|]+)?\s*=\s*(.+?)\s*;?\s*$`)
)

func jsFunctions(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := jsFuncRe.FindStringSubmatch(body)
	if m == nil {
		m = jsArrowRe.FindStringSubmatch(body)
	}
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitFuncHeader(dst, m[1], stripParamAnnotations(m[2]))
	if !ok {
		return line, []string{unsupportedConstruct(dst, "function definition")}, true
	}
	return indent + out, warns, true
}

func jsClasses(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := jsClassRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitClassHeader(dst, m[1], m[2])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "class definition")}, true
	}
	return indent + out, warns, true
}

func jsConditionals(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := jsElseIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitElseIf(dst, strings.TrimSpace(m[1])); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if jsElseRe.MatchString(body) {
		if out, ok := emitElse(dst); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if m := jsIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitIf(dst, strings.TrimSpace(m[1])); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func jsLoops(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := jsCountedRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitCounted(dst, m[1], m[2], m[3], m[4])
		if !ok {
			return line, []string{unsupportedConstruct(dst, "counted loop")}, true
		}
		return indent + out, warns, true
	}
	if m := jsForOfRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitForEach(dst, m[1], strings.TrimSpace(m[2]))
		if !ok {
			return line, []string{unsupportedConstruct(dst, "for-each loop")}, true
		}
		return indent + out, warns, true
	}
	if m := jsWhileRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitWhile(dst, strings.TrimSpace(m[1])); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func jsPrints(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := jsPrintRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, ok := emitPrint(dst, m[1])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "print statement")}, true
	}
	return indent + out, nil, true
}

func jsImports(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := jsNamedRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitImportNames(dst, m[2], m[1])
		if !ok {
			return line, []string{unsupportedConstruct(dst, "import")}, true
		}
		return indent + out, warns, true
	}
	m := jsImportRe.FindStringSubmatch(body)
	if m == nil {
		m = jsRequire.FindStringSubmatch(body)
	}
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitImportWhole(dst, m[2])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "import")}, true
	}
	return indent + out, warns, true
}

func jsVariables(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if isHeaderLike(body) || strings.Contains(body, "=>") {
		return line, nil, false
	}
	m := jsVarRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, ok := emitVarDecl(dst, m[1], m[2])
	if !ok {
		return line, nil, false
	}
	return indent + out, nil, true
}
