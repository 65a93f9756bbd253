package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Recognizers for php source lines. Close to the javascript family but with
// sigil-prefixed variables and its own elseif/foreach/echo idioms.

var (
	phpFuncRe  = regexp.MustCompile(`^(?:(?:public|private|protected|static|final|abstract)\s+)*function\s+([A-Za-z_]\w*)\s*\((.*)\)\s*(?::\s*\??[\w\\]+)?\s*\{?\s*$`)
	phpClassRe = regexp.MustCompile(`^(?:(?:final|abstract)\s+)?class\s+([A-Za-z_]\w*)(?:\s+extends\s+([\w\\]+))?(?:\s+implements\s+[\w\\, ]+)?\s*\{?\s*$`)

	phpElseIfRe = regexp.MustCompile(`^\}?\s*else\s?if\s*\((.*)\)\s*\{?\s*$`)
	phpElseRe   = regexp.MustCompile(`^\}?\s*else\s*\{?\s*$`)
	phpIfRe     = regexp.MustCompile(`^if\s*\((.*)\)\s*\{?\s*$`)
	phpWhileRe  = regexp.MustCompile(`^\}?\s*while\s*\((.*)\)\s*\{?\s*$`)

	phpCountedRe = regexp.MustCompile(`^for\s*\(\s*\$([A-Za-z_]\w*)\s*=\s*([^;]+?)\s*;\s*\$\w+\s*<=?\s*([^;]+?)\s*;\s*(?:\$\w+\+\+|\$\w+\s*\+=\s*(\S+))\s*\)\s*\{?\s*$`)
	phpForeachRe = regexp.MustCompile(`^foreach\s*\(\s*\$?([\w$>-]+)\s+as\s+\$([A-Za-z_]\w*)\s*\)\s*\{?\s*$`)

	phpEchoRe     = regexp.MustCompile(`^echo\s+(.+?)\s*;?\s*$`)
	phpPrintRe    = regexp.MustCompile(`^print\s*\((.*)\)\s*;?\s*$`)
	phpRequireRe  = regexp.MustCompile(`^(?:require|include)(?:_once)?\s*\(?\s*["']([^"']+)["']\s*\)?\s*;?\s*$`)
	phpUseRe      = regexp.MustCompile(`^use\s+([\w\\]+)\s*;?\s*$`)
	phpVarRe      = regexp.MustCompile(`^\$([A-Za-z_]\w*)\s*=\s*([^=].*?)\s*;?\s*$`)
	phpSigilStrip = regexp.MustCompile(`\$([A-Za-z_]\w*)`)
)

func phpFunctions(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := phpFuncRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	params := stripParamAnnotations(m[2])
	if dst.VarSigil == "" {
		params = phpSigilStrip.ReplaceAllString(params, "$1")
	}
	out, warns, ok := emitFuncHeader(dst, m[1], params)
	if !ok {
		return line, []string{unsupportedConstruct(dst, "function definition")}, true
	}
	return indent + out, warns, true
}

func phpClasses(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := phpClassRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, warns, ok := emitClassHeader(dst, m[1], m[2])
	if !ok {
		return line, []string{unsupportedConstruct(dst, "class definition")}, true
	}
	return indent + out, warns, true
}

func phpConditionals(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := phpElseIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitElseIf(dst, phpCond(dst, m[1])); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if phpElseRe.MatchString(body) {
		if out, ok := emitElse(dst); ok {
			return indent + out, nil, true
		}
		return line, nil, false
	}
	if m := phpIfRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitIf(dst, phpCond(dst, m[1])); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func phpLoops(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if m := phpCountedRe.FindStringSubmatch(body); m != nil {
		out, warns, ok := emitCounted(dst, m[1], m[2], m[3], m[4])
		if !ok {
			return line, []string{unsupportedConstruct(dst, "counted loop")}, true
		}
		return indent + out, warns, true
	}
	if m := phpForeachRe.FindStringSubmatch(body); m != nil {
		iter := m[1]
		if dst.VarSigil == "" {
			iter = strings.TrimPrefix(iter, "$")
		}
		out, warns, ok := emitForEach(dst, m[2], iter)
		if !ok {
			return line, []string{unsupportedConstruct(dst, "for-each loop")}, true
		}
		return indent + out, warns, true
	}
	if m := phpWhileRe.FindStringSubmatch(body); m != nil {
		if out, ok := emitWhile(dst, phpCond(dst, m[1])); ok {
			return indent + out, nil, true
		}
	}
	return line, nil, false
}

func phpPrints(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := phpPrintRe.FindStringSubmatch(body)
	if m == nil {
		m = phpEchoRe.FindStringSubmatch(body)
	}
	if m == nil {
		return line, nil, false
	}
	args := m[1]
	if dst.VarSigil == "" {
		args = phpSigilStrip.ReplaceAllString(args, "$1")
	}
	out, ok := emitPrint(dst, args)
	if !ok {
		return line, []string{unsupportedConstruct(dst, "print statement")}, true
	}
	return indent + out, nil, true
}

func phpImports(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	var module string
	switch {
	case phpRequireRe.MatchString(body):
		module = phpRequireRe.FindStringSubmatch(body)[1]
		module = strings.TrimSuffix(module, ".php")
	case phpUseRe.MatchString(body):
		module = phpUseRe.FindStringSubmatch(body)[1]
	default:
		return line, nil, false
	}
	out, warns, ok := emitImportWhole(dst, module)
	if !ok {
		return line, []string{unsupportedConstruct(dst, "import")}, true
	}
	return indent + out, warns, true
}

func phpVariables(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if isHeaderLike(body) {
		return line, nil, false
	}
	m := phpVarRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	expr := m[2]
	if dst.VarSigil == "" {
		expr = phpSigilStrip.ReplaceAllString(expr, "$1")
	}
	out, ok := emitVarDecl(dst, m[1], expr)
	if !ok {
		return line, nil, false
	}
	return indent + out, nil, true
}

// phpCond strips variable sigils from a condition for targets without them.
func phpCond(dst *languages.Language, cond string) string {
	cond = strings.TrimSpace(cond)
	if dst.VarSigil == "" {
		cond = phpSigilStrip.ReplaceAllString(cond, "$1")
	}
	return cond
}
