package transform

import (
	"fmt"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Emitters render a recognized construct in the target language's idiom.
// Each returns the rendered text plus any required diagnostics. An emitter
// that has no branch for the target returns ok=false and the engine passes
// the line through unchanged with a warning; nothing ever throws.

func emitFuncHeader(dst *languages.Language, name, params string) (string, []string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return fmt.Sprintf("def %s(%s):", name, params), nil, true
	case languages.FamilyJS:
		return fmt.Sprintf("function %s(%s) {", name, params), nil, true
	case languages.FamilyPHP:
		return fmt.Sprintf("function %s(%s) {", name, params), nil, true
	case languages.FamilyGo:
		return fmt.Sprintf("func %s(%s) {", name, params), nil, true
	case languages.FamilyRuby:
		if params == "" {
			return fmt.Sprintf("def %s", name), nil, true
		}
		return fmt.Sprintf("def %s(%s)", name, params), nil, true
	case languages.FamilyCLike:
		if dst.ID == "java" || dst.ID == "csharp" {
			return fmt.Sprintf("public static void %s(%s) {", name, params), nil, true
		}
		return fmt.Sprintf("void %s(%s) {", name, params), nil, true
	}
	return "", nil, false
}

func emitClassHeader(dst *languages.Language, name, base string) (string, []string, bool) {
	if !dst.HasClasses {
		// Required diagnostic: the substitution is not semantically
		// equivalent and the user must be told.
		warn := fmt.Sprintf("%s has no classes, using struct for %q", dst.ID, name)
		switch dst.Family {
		case languages.FamilyGo:
			return fmt.Sprintf("type %s struct {", name), []string{warn}, true
		default:
			return fmt.Sprintf("struct %s {", name), []string{warn}, true
		}
	}
	switch dst.Family {
	case languages.FamilyPython:
		if base != "" {
			return fmt.Sprintf("class %s(%s):", name, base), nil, true
		}
		return fmt.Sprintf("class %s:", name), nil, true
	case languages.FamilyJS, languages.FamilyPHP:
		if base != "" {
			return fmt.Sprintf("class %s extends %s {", name, base), nil, true
		}
		return fmt.Sprintf("class %s {", name), nil, true
	case languages.FamilyRuby:
		if base != "" {
			return fmt.Sprintf("class %s < %s", name, base), nil, true
		}
		return fmt.Sprintf("class %s", name), nil, true
	case languages.FamilyCLike:
		switch {
		case base == "":
			return fmt.Sprintf("class %s {", name), nil, true
		case dst.ID == "csharp":
			return fmt.Sprintf("class %s : %s {", name, base), nil, true
		case dst.ID == "cpp":
			return fmt.Sprintf("class %s : public %s {", name, base), nil, true
		default:
			return fmt.Sprintf("class %s extends %s {", name, base), nil, true
		}
	}
	return "", nil, false
}

func emitIf(dst *languages.Language, cond string) (string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return fmt.Sprintf("if %s:", cond), true
	case languages.FamilyRuby:
		return fmt.Sprintf("if %s", cond), true
	case languages.FamilyGo:
		return fmt.Sprintf("if %s {", cond), true
	case languages.FamilyJS, languages.FamilyCLike, languages.FamilyPHP:
		return fmt.Sprintf("if (%s) {", cond), true
	}
	return "", false
}

func emitElseIf(dst *languages.Language, cond string) (string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return fmt.Sprintf("elif %s:", cond), true
	case languages.FamilyRuby:
		return fmt.Sprintf("elsif %s", cond), true
	case languages.FamilyGo:
		return fmt.Sprintf("} else if %s {", cond), true
	case languages.FamilyPHP:
		return fmt.Sprintf("} %s (%s) {", dst.ElseIfKeyword, cond), true
	case languages.FamilyJS, languages.FamilyCLike:
		return fmt.Sprintf("} else if (%s) {", cond), true
	}
	return "", false
}

func emitElse(dst *languages.Language) (string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return "else:", true
	case languages.FamilyRuby:
		return "else", true
	case languages.FamilyJS, languages.FamilyCLike, languages.FamilyGo,
		languages.FamilyPHP:
		return "} else {", true
	}
	return "", false
}

func emitWhile(dst *languages.Language, cond string) (string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return fmt.Sprintf("while %s:", cond), true
	case languages.FamilyRuby:
		return fmt.Sprintf("while %s", cond), true
	case languages.FamilyGo:
		return fmt.Sprintf("for %s {", cond), true
	case languages.FamilyJS, languages.FamilyCLike, languages.FamilyPHP:
		return fmt.Sprintf("while (%s) {", cond), true
	}
	return "", false
}

// emitCounted renders a numeric-range loop as the target's classic counted
// loop. start may be "" (meaning zero), step may be "" (meaning one).
func emitCounted(dst *languages.Language, v, start, end, step string) (string, []string, bool) {
	if start == "" {
		start = "0"
	}
	incr := v + "++"
	if step != "" && step != "1" {
		incr = fmt.Sprintf("%s += %s", v, step)
	}
	switch dst.Family {
	case languages.FamilyPython:
		if start == "0" && (step == "" || step == "1") {
			return fmt.Sprintf("for %s in range(%s):", v, end), nil, true
		}
		if step == "" || step == "1" {
			return fmt.Sprintf("for %s in range(%s, %s):", v, start, end), nil, true
		}
		return fmt.Sprintf("for %s in range(%s, %s, %s):", v, start, end, step), nil, true
	case languages.FamilyRuby:
		return fmt.Sprintf("for %s in %s...%s", v, start, end), nil, true
	case languages.FamilyGo:
		return fmt.Sprintf("for %s := %s; %s < %s; %s {", v, start, v, end, incr), nil, true
	case languages.FamilyJS:
		return fmt.Sprintf("for (let %s = %s; %s < %s; %s) {", v, start, v, end, incr), nil, true
	case languages.FamilyPHP:
		phpIncr := "$" + v + "++"
		if step != "" && step != "1" {
			phpIncr = fmt.Sprintf("$%s += %s", v, step)
		}
		return fmt.Sprintf("for ($%s = %s; $%s < %s; %s) {", v, start, v, end, phpIncr), nil, true
	case languages.FamilyCLike:
		return fmt.Sprintf("for (int %s = %s; %s < %s; %s) {", v, start, v, end, incr), nil, true
	}
	return "", nil, false
}

func emitForEach(dst *languages.Language, v, iter string) (string, []string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return fmt.Sprintf("for %s in %s:", v, iter), nil, true
	case languages.FamilyRuby:
		return fmt.Sprintf("%s.each do |%s|", iter, v), nil, true
	case languages.FamilyGo:
		return fmt.Sprintf("for _, %s := range %s {", v, iter), nil, true
	case languages.FamilyJS:
		return fmt.Sprintf("for (const %s of %s) {", v, iter), nil, true
	case languages.FamilyPHP:
		return fmt.Sprintf("foreach ($%s as $%s) {", iter, v), nil, true
	case languages.FamilyCLike:
		switch dst.ID {
		case "java":
			return fmt.Sprintf("for (var %s : %s) {", v, iter), nil, true
		case "csharp":
			return fmt.Sprintf("foreach (var %s in %s) {", v, iter), nil, true
		case "cpp":
			return fmt.Sprintf("for (auto %s : %s) {", v, iter), nil, true
		default:
			// C has no for-each; fall back to a counted loop with a
			// placeholder bound.
			warn := fmt.Sprintf("c has no for-each loop; emitted counted loop with placeholder bound for %q", iter)
			return fmt.Sprintf("for (int %s_i = 0; %s_i < %s_len; %s_i++) {", v, v, iter, v),
				[]string{warn}, true
		}
	}
	return "", nil, false
}

func emitPrint(dst *languages.Language, args string) (string, bool) {
	if dst.PrintFormat == "" {
		return "", false
	}
	return fmt.Sprintf(dst.PrintFormat, args), true
}

func emitImportWhole(dst *languages.Language, module string) (string, []string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return fmt.Sprintf("import %s", module), nil, true
	case languages.FamilyJS:
		return fmt.Sprintf("import %s from %q", importIdent(module), module), nil, true
	case languages.FamilyGo:
		return fmt.Sprintf("import %q", module), nil, true
	case languages.FamilyRuby:
		return fmt.Sprintf("require %q", module), nil, true
	case languages.FamilyPHP:
		return fmt.Sprintf("require %q", module), nil, true
	case languages.FamilyCLike:
		switch dst.ID {
		case "csharp":
			return fmt.Sprintf("using %s", module), nil, true
		case "c", "cpp":
			return fmt.Sprintf("#include <%s>", module), nil, true
		default:
			return fmt.Sprintf("import %s", module), nil, true
		}
	}
	return "", nil, false
}

func emitImportNames(dst *languages.Language, module, names string) (string, []string, bool) {
	switch dst.Family {
	case languages.FamilyPython:
		return fmt.Sprintf("from %s import %s", module, names), nil, true
	case languages.FamilyJS:
		return fmt.Sprintf("import { %s } from %q", names, module), nil, true
	}
	// No selective-import mechanism: emit a whole-module import instead.
	line, warns, ok := emitImportWhole(dst, module)
	if !ok {
		return "", nil, false
	}
	warns = append(warns,
		fmt.Sprintf("%s has no selective import; importing all of %q", dst.ID, module))
	return line, warns, true
}

// importIdent derives a bare binding name from a module path for targets
// whose import syntax names the binding.
func importIdent(module string) string {
	ident := module
	if i := strings.LastIndexAny(ident, "./"); i >= 0 {
		ident = ident[i+1:]
	}
	if ident == "" {
		return "module"
	}
	return ident
}

func emitVarDecl(dst *languages.Language, name, expr string) (string, bool) {
	switch dst.Family {
	case languages.FamilyGo:
		return fmt.Sprintf("%s := %s", name, expr), true
	case languages.FamilyPHP:
		return fmt.Sprintf("$%s = %s", name, expr), true
	}
	if dst.DeclKeyword != "" {
		return fmt.Sprintf("%s %s = %s", dst.DeclKeyword, name, expr), true
	}
	return fmt.Sprintf("%s = %s", name, expr), true
}
