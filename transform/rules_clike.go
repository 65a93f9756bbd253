package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Recognizers for c-like source lines (java, csharp, c, cpp). Conditionals
// and loops reuse the javascript recognizers; method headers, prints,
// imports, and typed declarations differ enough to need their own patterns.

var (
	clikeFuncRe = regexp.MustCompile(`^((?:(?:public|private|protected|static|final|abstract|virtual|inline|override|async)\s+)*)([A-Za-z_][\w:<>\[\]]*[\s\*&]+)([A-Za-z_]\w*)\s*\((.*)\)\s*\{?\s*$`)

	clikeClassRe = regexp.MustCompile(`^(?:(?:public|abstract|final|sealed)\s+)*class\s+([A-Za-z_]\w*)(?:\s+extends\s+([\w.]+)|\s*:\s*(?:public\s+)?([\w:.]+))?\s*\{?\s*$`)

	clikePrintJavaRe   = regexp.MustCompile(`^System\.out\.println\s*\((.*)\)\s*;?\s*$`)
	clikePrintCSharpRe = regexp.MustCompile(`^Console\.WriteLine\s*\((.*)\)\s*;?\s*$`)
	clikePrintfRe      = regexp.MustCompile(`^printf\s*\((.*)\)\s*;?\s*$`)
	clikeCoutRe        = regexp.MustCompile(`^(?:std::)?cout\s*<<\s*(.+?)(?:\s*<<\s*(?:std::)?endl)?\s*;?\s*$`)

	clikeImportRe  = regexp.MustCompile(`^import\s+(?:static\s+)?([\w.]+?)(?:\.\*)?\s*;?\s*$`)
	clikeIncludeRe = regexp.MustCompile(`^#include\s*[<"]([^>"]+)[>"]\s*$`)
	clikeUsingRe   = regexp.MustCompile(`^using\s+([\w.]+)\s*;?\s*$`)

	clikeVarRe = regexp.MustCompile(`^(?:(?:final|const|static)\s+)?(?:int|long|short|float|double|bool|boolean|char|auto|var|String|string|size_t)\s+([A-Za-z_]\w*)\s*=\s*(.+?)\s*;?\s*$`)

	clikeHeaderKeywords = map[string]bool{
		"if": true, "else": true, "for": true, "while": true, "switch": true,
		"catch": true, "return": true, "new": true, "do": true, "sizeof": true,
	}
)

func clikeFunctions(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := clikeFuncRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	retType := strings.TrimSpace(m[2])
	name := m[3]
	if clikeHeaderKeywords[retType] || clikeHeaderKeywords[name] {
		return line, nil, false
	}
	out, warns, ok := emitFuncHeader(dst, name, stripParamTypes(m[4]))
	if !ok {
		return line, []string{unsupportedConstruct(dst, "function definition")}, true
	}
	return indent + out, warns, true
}

func clikeClasses(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	m := clikeClassRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	base := m[2]
	if base == "" {
		base = m[3]
	}
	out, warns, ok := emitClassHeader(dst, m[1], base)
	if !ok {
		return line, []string{unsupportedConstruct(dst, "class definition")}, true
	}
	return indent + out, warns, true
}

func clikePrints(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	var args string
	switch {
	case clikePrintJavaRe.MatchString(body):
		args = clikePrintJavaRe.FindStringSubmatch(body)[1]
	case clikePrintCSharpRe.MatchString(body):
		args = clikePrintCSharpRe.FindStringSubmatch(body)[1]
	case clikePrintfRe.MatchString(body):
		args = clikePrintfRe.FindStringSubmatch(body)[1]
	case clikeCoutRe.MatchString(body):
		args = clikeCoutRe.FindStringSubmatch(body)[1]
	default:
		return line, nil, false
	}
	out, ok := emitPrint(dst, args)
	if !ok {
		return line, []string{unsupportedConstruct(dst, "print statement")}, true
	}
	return indent + out, nil, true
}

func clikeImports(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	var module string
	switch {
	case clikeIncludeRe.MatchString(body):
		module = clikeIncludeRe.FindStringSubmatch(body)[1]
		module = strings.TrimSuffix(module, ".h")
	case clikeImportRe.MatchString(body):
		module = clikeImportRe.FindStringSubmatch(body)[1]
	case clikeUsingRe.MatchString(body):
		module = clikeUsingRe.FindStringSubmatch(body)[1]
	default:
		return line, nil, false
	}
	out, warns, ok := emitImportWhole(dst, module)
	if !ok {
		return line, []string{unsupportedConstruct(dst, "import")}, true
	}
	return indent + out, warns, true
}

func clikeVariables(line string, src, dst *languages.Language) (string, []string, bool) {
	indent, body := splitIndent(line)
	if isHeaderLike(body) {
		return line, nil, false
	}
	m := clikeVarRe.FindStringSubmatch(body)
	if m == nil {
		return line, nil, false
	}
	out, ok := emitVarDecl(dst, m[1], m[2])
	if !ok {
		return line, nil, false
	}
	return indent + out, nil, true
}

// stripParamTypes reduces "Type name" parameter pairs to bare names for
// targets without declared parameter types.
func stripParamTypes(params string) string {
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
		name := fields[len(fields)-1]
		name = strings.TrimLeft(name, "*&")
		out = append(out, name)
	}
	return strings.Join(out, ", ")
}
