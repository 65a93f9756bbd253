package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/khulnasoft-bot/code-translator/languages"
)

// NormalizeResult carries the cleaned text plus everything the orchestrator
// needs to annotate the final result.
type NormalizeResult struct {
	Normalized string
	Warnings   []string
	Changed    bool
}

// Normalizer cleans whitespace and heuristically repairs malformed or hybrid
// control-structure syntax toward the declared source language's convention.
// Idempotent on already-clean input; never fails, at worst it leaves a line
// alone.
type Normalizer struct {
	registry *languages.Registry
	detector *Detector
}

// NewNormalizer builds a normalizer over the given registry and detector.
func NewNormalizer(registry *languages.Registry, detector *Detector) *Normalizer {
	return &Normalizer{registry: registry, detector: detector}
}

var (
	spaceBeforeColonRe = regexp.MustCompile(`[ \t]+:\s*$`)
	spaceBeforeBraceRe = regexp.MustCompile(`[ \t]{2,}\{\s*$`)
	listSeparatorRe    = regexp.MustCompile(`\s*,\s*`)
	multiTerminatorRe  = regexp.MustCompile(`;{2,}`)
	andSymbolRe        = regexp.MustCompile(`\s*&&\s*`)
	orSymbolRe         = regexp.MustCompile(`\s*\|\|\s*`)
	andWordRe          = regexp.MustCompile(`\band\b`)
	orWordRe           = regexp.MustCompile(`\bor\b`)

	elseIfSpellings = regexp.MustCompile(`^(\s*)\}?\s*(?:elif|elsif|elseif|else\s+if)\b`)

	colonConstructRe = regexp.MustCompile(`^\s*(?:if|elif|else\s+if|for|while|def|class|try|except|finally|with)\b`)
	braceConstructRe = regexp.MustCompile(`^\s*\}?\s*(?:if|else\s+if|elseif|elsif|else|for|foreach|while|function|func|class|def)\b`)
)

// Normalize runs the pre-processing and auto-correction pipeline for text
// declared to be written in src.
func (n *Normalizer) Normalize(code string, src *languages.Language) NormalizeResult {
	original := code

	// Unify line endings before any per-line work.
	code = strings.ReplaceAll(code, "\r\n", "\n")
	code = strings.ReplaceAll(code, "\r", "\n")

	lines := strings.Split(code, "\n")
	var warnings []string

	for i, line := range lines {
		lines[i] = n.preprocessLine(line)
	}

	report := n.detector.DetectMixed(strings.Join(lines, "\n"))
	if report.Detected {
		warnings = append(warnings, fmt.Sprintf(
			"mixed-language syntax detected (candidates: %s); output is best-effort",
			strings.Join(report.Candidates, ", ")))
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || src.IsComment(trimmed) {
			continue
		}

		fixed := n.fixElseIfSpelling(line, src)
		fixed = n.fixQuotes(fixed, src)
		fixed = multiTerminatorRe.ReplaceAllString(fixed, ";")
		fixed = n.fixOperatorSpelling(fixed, src)

		if src.ColonBlock {
			if withColon, ok := n.fixMissingColon(fixed); ok {
				fixed = withColon
				warnings = append(warnings, fmt.Sprintf("line %d: added missing ':'", i+1))
			}
		}
		if src.Braces {
			next := ""
			if i+1 < len(lines) {
				next = strings.TrimSpace(lines[i+1])
			}
			if withBrace, ok := n.fixMissingBrace(fixed, next); ok {
				fixed = withBrace
				warnings = append(warnings, fmt.Sprintf("line %d: added missing '{'", i+1))
			}
		}
		lines[i] = fixed
	}

	normalized := strings.Join(lines, "\n")
	return NormalizeResult{
		Normalized: normalized,
		Warnings:   warnings,
		Changed:    normalized != original,
	}
}

// preprocessLine strips trailing whitespace and collapses redundant spacing
// around block openers, list separators, and statement terminators.
func (n *Normalizer) preprocessLine(line string) string {
	line = strings.TrimRight(line, " \t")
	line = spaceBeforeColonRe.ReplaceAllString(line, ":")
	line = spaceBeforeBraceRe.ReplaceAllString(line, " {")
	line = listSeparatorRe.ReplaceAllString(line, ", ")
	line = multiTerminatorRe.ReplaceAllString(line, ";")
	return line
}

// fixElseIfSpelling rewrites alternate else-if spellings to the source
// language's convention so the later corrections see the line once, in its
// final shape.
func (n *Normalizer) fixElseIfSpelling(line string, src *languages.Language) string {
	loc := elseIfSpellings.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	matched := line[loc[0]:loc[1]]
	if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(matched), "}")) ==
		src.ElseIfKeyword {
		return line
	}
	prefix := line[loc[2]:loc[3]] // leading indent
	closer := ""
	if strings.Contains(matched, "}") {
		closer = "} "
	}
	return prefix + closer + src.ElseIfKeyword + line[loc[1]:]
}

// fixMissingColon appends the block-opening colon to a construct header that
// lacks one. Dangling "else" and lines already ending in a colon or brace
// are left alone.
func (n *Normalizer) fixMissingColon(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !colonConstructRe.MatchString(line) {
		return line, false
	}
	if strings.HasSuffix(trimmed, ":") || strings.HasSuffix(trimmed, "{") ||
		trimmed == "else" {
		return line, false
	}
	return line + ":", true
}

// fixMissingBrace appends the block opener to a construct header in a
// brace-delimited source when neither the line nor the following one opens
// the block.
func (n *Normalizer) fixMissingBrace(line, nextTrimmed string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !braceConstructRe.MatchString(line) {
		return line, false
	}
	if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, ";") ||
		nextTrimmed == "{" || strings.HasPrefix(nextTrimmed, "{") {
		return line, false
	}
	return line + " {", true
}

// fixQuotes rewrites unescaped single quotes to double quotes. Textual
// heuristic, not a tokenizer: a literal apostrophe inside a string will
// misfire. Comment lines are skipped by the caller.
func (n *Normalizer) fixQuotes(line string, src *languages.Language) string {
	var b strings.Builder
	b.Grow(len(line))
	prev := rune(0)
	for _, r := range line {
		if r == '\'' && prev != '\\' {
			b.WriteRune('"')
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// fixOperatorSpelling unifies logical operator spelling toward the source
// convention. Blunt global substitution; a "&&" inside a string will be
// rewritten too (accepted limitation).
func (n *Normalizer) fixOperatorSpelling(line string, src *languages.Language) string {
	if src.WordOperators {
		line = andSymbolRe.ReplaceAllString(line, " and ")
		line = orSymbolRe.ReplaceAllString(line, " or ")
		return line
	}
	line = andWordRe.ReplaceAllString(line, "&&")
	line = orWordRe.ReplaceAllString(line, "||")
	return line
}
