package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Recognizers for ruby source lines. "end" closes every block, so the
// conditional rule also maps it onto the target's block closer.

var (
	rubyFuncRe  = regexp.MustCompile(`^def\s+([A-Za-z_]\w*[?!]?)\s*(?:\((.*)\))?\s*$`)
	rubyClassRe = regexp.MustCompile(`^class\s+([A-Z]\w*)(?:\s*<\s*([\w:]+))?\s*$`)

	rubyElsifRe = regexp.MustCompile(`^elsif\s+(.+?)\s*(?:then)?\s*$`)
	rubyElseRe  = regexp.MustCompile(`^else\s*$`)
	rubyIfRe    = regexp.MustCompile(`^if\s+(.+?)\s*(?:then)?\s*$`)
	rubyEndRe   = regexp.MustCompile(`^end\s*$`)

	rubyEachRe    = regexp.MustCompile(`^(.+?)\.each\s+do\s+\|\s*(\w+)\s*\|\s*$`)
	rubyRangeRe   = regexp.MustCompile(`^\(?\s*(\S+?)\s*\.\.\.?\s*(\S+?)\s*\)?\.each\s+do\s+\|\s*(\w+)\s*\|\s*$`)
	rubyForInRe   = regexp.MustCompile(`^for\s+(\w+)\s+in\s+(.+?)\s*(?:do)?\s*$`)
	rubyForRngRe  = regexp.MustCompile(`^for\s+(\w+)\s+in\s+(\S+?)\s*\.\.\.?\s*(\S+?)\s*(?:do)?\s*$`)
	rubyWhileRe   = regexp.MustCompile(`^while\s+(.+?)\s*(?:do)?\s*$`)
	rubyPrintRe   = regexp.MustCompile(`^(?:puts|print|p)\s+(.+?)\s*$`)
	rubyPrintPRe  = regexp.MustCompile(`^(?:puts|print|p)\s*\((.*)\)\s*$`)
	rubyRequireRe = regexp.MustCompile(`^require(?:_relative)?\s+["']([^"']+)["']\s*$`)
)

func rubyFunctions(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := rubyFuncRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	name := strings.TrimRight(m[1], "?!")
	out, warns, ok := emitFuncHeader(dst, name, m[2])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "function definition")}, true
	}
	return indent + out, warns, true
}

func rubyClasses(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := rubyClassRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitClassHeader(dst, m[1], m[2])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "class definition")}, true
	}
	return indent + out, warns, true
}

func rubyConditionals(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if rubyEndRe.MatchString(body) {
		if dst.Braces {
			return indent + "}", nil, true
		}
		// Colon-block targets delimit by indentation; the closer vanishes.
		return "", nil, true
	}
	if m := rubyElsifRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitElseIf(dst, m[1]); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if rubyElseRe.MatchString(body) {
		if out, ok := emitElse(dst); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if m := rubyIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitIf(dst, m[1]); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func rubyLoops(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := rubyRangeRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitCounted(dst, m[3], m[1], m[2], "")
		if !ok {
			return line, []string{unsupportedConstruct(dst, "counted loop")}, true
		}
		return indent + out, warns, true
	}
	if m := rubyForRngRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitCounted(dst, m[1], m[2], m[3], "")
		if !ok {
			return line, []string{unsupportedConstruct(dst, "counted loop")}, true
		}
		return indent + out, warns, true
	}
	if m := rubyEachRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitForEach(dst, m[2], strings.TrimSpace(m[1]))
		if !ok {
			return line, []string{unsupportedConstruct(dst, "for-each loop")}, true
		}
		return indent + out, warns, true
	}
	if m := rubyForInRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitForEach(dst, m[1], strings.TrimSpace(m[2]))
		if !ok {
			return line, []string{unsupportedConstruct(dst, "for-each loop")}, true
		}
		return indent + out, warns, true
	}
	if m := rubyWhileRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitWhile(dst, m[1]); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func rubyPrints(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := rubyPrintPRe.FindStringSubmatch(body)
	if m == nil {
		m = rubyPrintRe.FindStringSubmatch(body)
	}
	if m == nil {
		return line, nil, false
	}
	out, ok := emitPrint(dst, m[1])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "print statement")}, true
	}
	return indent + out, nil, true
}

func rubyImports(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := rubyRequireRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitImportWhole(dst, m[1])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "import")}, true
	}
	return indent + out, warns, true
}
