package transform

import (
	"sort"

	"github.com/khulnasoft-bot/code-translator/core"
	"github.com/khulnasoft-bot/code-translator/languages"
)

// Coarse confidence constants for mixed-language detection. These are triage
// signals, not classifier scores; callers must not build hard thresholds on
// them.
const (
	confidenceSingle = 0.9
	confidenceMixed  = 0.55
)

// Detector scores raw text against every registered language fingerprint.
type Detector struct {
	registry *languages.Registry
}

// NewDetector builds a detector over the given registry.
func NewDetector(registry *languages.Registry) *Detector {
	return &Detector{registry: registry}
}

// DetectMixed reports whether the text carries fingerprints of more than one
// language. Scoring counts indicators that hit, not occurrences: a file full
// of print() calls still contributes one hit for that indicator.
func (d *Detector) DetectMixed(code string) core.DetectionReport {
	type scored struct {
		id    string
		score int
		order int
	}

	var hits []scored
	for i, lang := range d.registry.All() {
		score := 0
		for _, fp := range lang.Fingerprints {
			if fp.Pattern.MatchString(code) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{id: lang.ID, score: score, order: i})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].order < hits[j].order
	})

	report := core.DetectionReport{}
	for _, h := range hits {
		report.Candidates = append(report.Candidates, h.id)
	}
	switch {
	case len(hits) > 1:
		report.Detected = true
		report.Confidence = confidenceMixed
	case len(hits) == 1:
		report.Confidence = confidenceSingle
	}
	return report
}

// DetectLanguage guesses the single most likely language of the text using a
// weighted occurrence count per fingerprint. Ties break on registry order;
// no hit at all falls back to the default language.
func (d *Detector) DetectLanguage(code string) string {
	best := d.registry.Default().ID
	bestScore := 0
	for _, lang := range d.registry.All() {
		score := 0
		for _, fp := range lang.Fingerprints {
			score += fp.Weight * len(fp.Pattern.FindAllStringIndex(code, -1))
		}
		if score > bestScore {
			bestScore = score
			best = lang.ID
		}
	}
	return best
}
