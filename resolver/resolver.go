// Package resolver selects the single summary variant to present for a
// report. The precedence list is a product policy (prefer rich text over
// short forms over audio narration) expressed as a static rank so that
// selection stays deterministic and index-friendly.
package resolver

import (
	"clip-letter/models"
)

// Precedence is the fixed variant order. Lower index wins.
var Precedence = []string{
	"comprehensive",
	"key-points",
	"bullet-points",
	"executive",
	"key-insights",
	"audio",
	"audio-es",
	"audio-fr",
	"audio-de",
	"audio-ko",
}

var rankByVariant = func() map[string]int {
	m := make(map[string]int, len(Precedence))
	for i, v := range Precedence {
		m[v] = i
	}
	return m
}()

// Rank returns the precedence index of a variant name.
// Names outside the list get (-1, false) and are never presentable.
func Rank(variant string) (int, bool) {
	r, ok := rankByVariant[variant]
	if !ok {
		return -1, false
	}
	return r, true
}

// Resolve picks the presentable variant with the smallest precedence rank
// among the given latest summaries. Variants without rendered html and
// variants outside the precedence list are skipped. The second return value
// is false when nothing is presentable, in which case the report must stay
// invisible to readers.
func Resolve(summaries []models.ReportSummary) (models.ReportSummary, bool) {
	bestRank := len(Precedence)
	var best models.ReportSummary
	found := false

	for _, s := range summaries {
		if !s.HasHTML() {
			continue
		}
		r, ok := Rank(s.Variant)
		if !ok {
			continue
		}
		if r < bestRank {
			bestRank = r
			best = s
			found = true
		}
	}

	return best, found
}
