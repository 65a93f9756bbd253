package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Category names one of the ten transformation concerns. Categories apply in
// a fixed order per line; later categories operate on the output of earlier
// ones.
type Category string

const (
	CatFunctions    Category = "functions"
	CatClasses      Category = "classes"
	CatConditionals Category = "conditionals"
	CatLoops        Category = "loops"
	CatPrints       Category = "prints"
	CatImports      Category = "imports"
	CatVariables    Category = "variables"
	CatLiterals     Category = "booleans"
	CatOperators    Category = "operators"
	CatEndings      Category = "endings"
)

var categoryOrder = []Category{
	CatFunctions, CatClasses, CatConditionals, CatLoops, CatPrints,
	CatImports, CatVariables, CatLiterals, CatOperators, CatEndings,
}

// rewriteFunc attempts one category's rewrite of a single line. It returns
// the (possibly unchanged) line, any warnings, and whether the category
// matched. A rule that finds nothing is a no-op, never an error.
type rewriteFunc func(line string, src, dst *languages.Language) (string, []string, bool)

// ruleTable maps (category, source family) to a rewrite. A missing entry
// falls through to pass-unchanged; the engine adds no warning for that
// because the common case is simply "this line is not that construct".
var ruleTable = map[Category]map[languages.Family]rewriteFunc{
	CatFunctions: {
		languages.FamilyPython: pyFunctions,
		languages.FamilyJS:     jsFunctions,
		languages.FamilyCLike:  clikeFunctions,
		languages.FamilyGo:     goFunctions,
		languages.FamilyRuby:   rubyFunctions,
		languages.FamilyPHP:    phpFunctions,
	},
	CatClasses: {
		languages.FamilyPython: pyClasses,
		languages.FamilyJS:     jsClasses,
		languages.FamilyCLike:  clikeClasses,
		languages.FamilyGo:     goClasses,
		languages.FamilyRuby:   rubyClasses,
		languages.FamilyPHP:    phpClasses,
	},
	CatConditionals: {
		languages.FamilyPython: pyConditionals,
		languages.FamilyJS:     jsConditionals,
		languages.FamilyCLike:  jsConditionals, // same surface syntax
		languages.FamilyGo:     goConditionals,
		languages.FamilyRuby:   rubyConditionals,
		languages.FamilyPHP:    phpConditionals,
	},
	CatLoops: {
		languages.FamilyPython: pyLoops,
		languages.FamilyJS:     jsLoops,
		languages.FamilyCLike:  jsLoops,
		languages.FamilyGo:     goLoops,
		languages.FamilyRuby:   rubyLoops,
		languages.FamilyPHP:    phpLoops,
	},
	CatPrints: {
		languages.FamilyPython: pyPrints,
		languages.FamilyJS:     jsPrints,
		languages.FamilyCLike:  clikePrints,
		languages.FamilyGo:     goPrints,
		languages.FamilyRuby:   rubyPrints,
		languages.FamilyPHP:    phpPrints,
	},
	CatImports: {
		languages.FamilyPython: pyImports,
		languages.FamilyJS:     jsImports,
		languages.FamilyCLike:  clikeImports,
		languages.FamilyGo:     goImports,
		languages.FamilyRuby:   rubyImports,
		languages.FamilyPHP:    phpImports,
	},
	CatVariables: {
		languages.FamilyPython: pyVariables,
		languages.FamilyJS:     jsVariables,
		languages.FamilyCLike:  clikeVariables,
		languages.FamilyGo:     goVariables,
		languages.FamilyRuby:   pyVariables, // bare assignment, same shape
		languages.FamilyPHP:    phpVariables,
	},
	CatLiterals:  forAllFamilies(rewriteLiterals),
	CatOperators: forAllFamilies(rewriteOperators),
	CatEndings:   forAllFamilies(rewriteEndings),
}

func forAllFamilies(fn rewriteFunc) map[languages.Family]rewriteFunc {
	return map[languages.Family]rewriteFunc{
		languages.FamilyPython: fn,
		languages.FamilyJS:     fn,
		languages.FamilyCLike:  fn,
		languages.FamilyGo:     fn,
		languages.FamilyRuby:   fn,
		languages.FamilyPHP:    fn,
	}
}

// LineOutcome is the engine's verdict on one line.
type LineOutcome struct {
	Text     string
	Warnings []string
	Hits     map[Category]bool
}

// Engine applies the ordered rule categories to one line at a time. It is
// stateless; all context is the line itself.
type Engine struct{}

// NewEngine returns the rule-substitution engine.
func NewEngine() *Engine {
	return &Engine{}
}

// RewriteLine pushes one normalized line through every category in order.
// Blank lines and source-language comments pass through untouched.
func (e *Engine) RewriteLine(line string, src, dst *languages.Language) LineOutcome {
	outcome := LineOutcome{Text: line, Hits: make(map[Category]bool)}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || src.IsComment(trimmed) {
		return outcome
	}

	for _, cat := range categoryOrder {
		rule, ok := ruleTable[cat][src.Family]
		if !ok {
			continue
		}
		text, warns, hit := rule(outcome.Text, src, dst)
		outcome.Text = text
		outcome.Warnings = append(outcome.Warnings, warns...)
		if hit {
			outcome.Hits[cat] = true
		}
	}
	return outcome
}

// splitIndent separates a line's leading whitespace from its content so
// recognizers can match on the trimmed body and emitters can put the indent
// back verbatim.
func splitIndent(line string) (indent, body string) {
	body = strings.TrimLeft(line, " \t")
	return line[:len(line)-len(body)], body
}

var headerKeywordRe = regexp.MustCompile(
	`^\}?\s*(?:def|function|func|class|type|if|elif|elsif|elseif|else|for|foreach|while|import|from|return|public|private|protected|static|struct|package|using|require)\b`)

// isHeaderLike reports whether the (already possibly rewritten) line is a
// construct header. The variable rule uses this containment check so it
// never re-rewrites a header emitted by an earlier category.
func isHeaderLike(body string) bool {
	return headerKeywordRe.MatchString(body) || strings.HasPrefix(body, "#")
}

// trimBlockSuffix removes a trailing block opener (colon or brace) from a
// captured condition or header remnant.
func trimBlockSuffix(s string) string {
	s = strings.TrimSpace(s)
	for {
		switch {
		case strings.HasSuffix(s, "{"):
			s = strings.TrimSpace(strings.TrimSuffix(s, "{"))
		case strings.HasSuffix(s, ":"):
			s = strings.TrimSpace(strings.TrimSuffix(s, ":"))
		default:
			return s
		}
	}
}
