package transform

import (
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// Token-level categories: boolean/null literals, logical operators, and
// statement endings. These run last so they only ever see the output of the
// structural rules and never corrupt identifiers (all matches are
// whole-token).

// wordRe caches word-boundary patterns for every literal spelling used by
// the builtin languages. Built once at package init, never mutated.
var wordRe = map[string]*regexp.Regexp{}

func init() {
	for _, lang := range languages.NewRegistry().All() {
		for _, lit := range []string{lang.TrueLit, lang.FalseLit, lang.NullLit} {
			if _, ok := wordRe[lit]; !ok {
				wordRe[lit] = regexp.MustCompile(`\b` + regexp.QuoteMeta(lit) + `\b`)
			}
		}
	}
}

func rewriteLiterals(line string, src, dst *languages.Language) (string, []string, bool) {
	hit := false
	pairs := [][2]string{
		{src.TrueLit, dst.TrueLit},
		{src.FalseLit, dst.FalseLit},
		{src.NullLit, dst.NullLit},
	}
	for _, p := range pairs {
		if p[0] == p[1] {
			continue
		}
		re, ok := wordRe[p[0]]
		if !ok {
			continue
		}
		if re.MatchString(line) {
			line = re.ReplaceAllString(line, p[1])
			hit = true
		}
	}
	return line, nil, hit
}

var (
	opAndSymbolRe = regexp.MustCompile(`\s*&&\s*`)
	opOrSymbolRe  = regexp.MustCompile(`\s*\|\|\s*`)
	opNotSymbolRe = regexp.MustCompile(`!([\w(])`)
	opAndWordRe   = regexp.MustCompile(`\band\b`)
	opOrWordRe    = regexp.MustCompile(`\bor\b`)
	opNotWordRe   = regexp.MustCompile(`\bnot\s+`)
)

func rewriteOperators(line string, src, dst *languages.Language) (string, []string, bool) {
	if src.WordOperators == dst.WordOperators {
		return line, nil, false
	}
	before := line
	if dst.WordOperators {
		line = opAndSymbolRe.ReplaceAllString(line, " and ")
		line = opOrSymbolRe.ReplaceAllString(line, " or ")
		line = opNotSymbolRe.ReplaceAllString(line, "not $1")
	} else {
		line = opAndWordRe.ReplaceAllString(line, "&&")
		line = opOrWordRe.ReplaceAllString(line, "||")
		line = opNotWordRe.ReplaceAllString(line, "!")
	}
	return line, nil, line != before
}

func rewriteEndings(line string, src, dst *languages.Language) (string, []string, bool) {
	if dst.Terminator == "" {
		return line, nil, false
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || dst.IsComment(trimmed) || strings.HasPrefix(trimmed, "#") {
		return line, nil, false
	}
	switch {
	case strings.HasSuffix(trimmed, "{"),
		strings.HasSuffix(trimmed, "}"),
		strings.HasSuffix(trimmed, ":"),
		strings.HasSuffix(trimmed, ","),
		strings.HasSuffix(trimmed, dst.Terminator),
		strings.HasSuffix(trimmed, "else"):
		return line, nil, false
	}
	return line + dst.Terminator, nil, true
}
