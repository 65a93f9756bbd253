// Package transform is the translation pipeline: mixed-language detection,
// normalization, the ordered per-line rule-substitution engine, and the
// post-processing pass. The Transformer is stateless across calls and safe
// for concurrent use.
package transform

import (
	"fmt"
	"strings"

	"github.com/khulnasoft-bot/code-translator/core"
	"github.com/khulnasoft-bot/code-translator/languages"
)

// Transformer sequences detector, normalizer, engine, and post-processor.
// Construct once and reuse; every Transform call is independent.
type Transformer struct {
	registry   *languages.Registry
	detector   *Detector
	normalizer *Normalizer
	engine     *Engine
}

// New builds a Transformer over the builtin language registry.
func New() *Transformer {
	registry := languages.NewRegistry()
	detector := NewDetector(registry)
	return &Transformer{
		registry:   registry,
		detector:   detector,
		normalizer: NewNormalizer(registry, detector),
		engine:     NewEngine(),
	}
}

// Registry exposes the language registry for callers that validate
// identifiers or resolve file extensions.
func (t *Transformer) Registry() *languages.Registry {
	return t.registry
}

// Transform rewrites code from source to target. It never returns an error:
// unsupported pairs and unfaithful substitutions surface through the
// result's error and warning lists.
func (t *Transformer) Transform(code, source, target string) *core.Result {
	srcLang, srcKnown := t.registry.Lookup(source)
	dstLang, dstKnown := t.registry.Lookup(target)

	// Identity fast path: same language on both sides, nothing to do.
	if srcKnown && dstKnown && srcLang.ID == dstLang.ID {
		return identityResult(code, srcLang.ID, dstLang.ID)
	}
	if !srcKnown && !dstKnown && strings.EqualFold(strings.TrimSpace(source), strings.TrimSpace(target)) {
		// Echo the caller's identifiers; relabeling would claim a language
		// nobody asked for.
		return identityResult(code, source, target)
	}

	var warnings []string
	if !srcKnown {
		srcLang = t.registry.Default()
		warnings = append(warnings, fmt.Sprintf(
			"unknown source language %q; assuming %s", source, srcLang.ID))
	}

	if !dstKnown {
		return unsupportedPairResult(code, source, target, srcLang, warnings)
	}

	result := &core.Result{Source: srcLang.ID, Target: dstLang.ID}

	report := t.detector.DetectMixed(code)
	norm := t.normalizer.Normalize(code, srcLang)
	warnings = append(warnings, norm.Warnings...)

	originalLines := strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n")
	normLines := strings.Split(norm.Normalized, "\n")

	outLines := make([]string, len(normLines))
	for i, line := range normLines {
		outcome := t.engine.RewriteLine(line, srcLang, dstLang)
		outLines[i] = outcome.Text

		original := line
		if i < len(originalLines) {
			original = originalLines[i]
		}
		change := core.LineChange{
			Index:       i,
			Original:    original,
			Transformed: outcome.Text,
			Kind:        core.ChangeUnchanged,
			Warnings:    outcome.Warnings,
		}
		if outcome.Text != original {
			change.Kind = core.ChangeModified
		}
		if len(outcome.Warnings) > 0 {
			change.Kind = core.ChangeWarning
			warnings = append(warnings, outcome.Warnings...)
		}
		result.Lines = append(result.Lines, change)

		if outcome.Hits[CatFunctions] {
			result.Stats.Functions++
		}
		if outcome.Hits[CatClasses] {
			result.Stats.Classes++
		}
		if outcome.Hits[CatImports] {
			result.Stats.Imports++
		}
	}

	result.Code = PostProcess(strings.Join(outLines, "\n"), dstLang)
	result.Summary = BuildSummary(result.Code, dstLang)
	result.Warnings = dedup(warnings)
	result.Stats.MixedLanguage = report.Detected
	result.Stats.Normalized = norm.Changed
	for _, change := range result.Lines {
		if change.Kind != core.ChangeUnchanged {
			result.Stats.LinesTransformed++
		}
	}
	return result
}

// DetectLanguage returns the best single-language guess for the text.
func (t *Transformer) DetectLanguage(code string) string {
	return t.detector.DetectLanguage(code)
}

// DetectMixed reports whether the text mixes fingerprints of several
// languages.
func (t *Transformer) DetectMixed(code string) core.DetectionReport {
	return t.detector.DetectMixed(code)
}

// StructuralSummary builds the best-effort construct outline for code in
// the given language. Unrecognized identifiers fall back to the default
// language.
func (t *Transformer) StructuralSummary(code, language string) []*core.Node {
	return BuildSummary(code, t.registry.LookupOrDefault(language))
}

func identityResult(code, source, target string) *core.Result {
	result := &core.Result{
		Source: source,
		Target: target,
		Code:   code,
	}
	for i, line := range strings.Split(code, "\n") {
		result.Lines = append(result.Lines, core.LineChange{
			Index:       i,
			Original:    line,
			Transformed: line,
			Kind:        core.ChangeUnchanged,
		})
	}
	return result
}

func unsupportedPairResult(code, source, target string, srcLang *languages.Language, warnings []string) *core.Result {
	banner := fmt.Sprintf("%s unsupported translation pair: %s -> %s",
		srcLang.LineComment, source, target)
	return &core.Result{
		Source:   source,
		Target:   target,
		Code:     banner + "\n" + code,
		Warnings: dedup(warnings),
		Errors:   []string{fmt.Sprintf("no rule set registered for pair %s -> %s", source, target)},
		Summary:  BuildSummary(code, srcLang),
	}
}

func dedup(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
