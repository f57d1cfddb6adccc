package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-letter/models"
	"clip-letter/resolver"
)

func strPtr(s string) *string { return &s }

func summary(variant string, html *string) models.ReportSummary {
	return models.ReportSummary{VideoID: "v1", Variant: variant, Text: "t", HTML: html, Revision: 1, Latest: true}
}

func TestResolvePrefersHighestPrecedence(t *testing.T) {
	// insertion order must not matter
	summaries := []models.ReportSummary{
		summary("audio", strPtr("<p>audio</p>")),
		summary("key-points", strPtr("<p>kp</p>")),
		summary("comprehensive", strPtr("<p>comp</p>")),
		summary("executive", strPtr("<p>exec</p>")),
	}

	picked, ok := resolver.Resolve(summaries)
	require.True(t, ok)
	assert.Equal(t, "comprehensive", picked.Variant)
	assert.Equal(t, "<p>comp</p>", *picked.HTML)
}

func TestResolveSkipsVariantsWithoutHTML(t *testing.T) {
	summaries := []models.ReportSummary{
		summary("comprehensive", nil),
		summary("key-points", strPtr("")),
		summary("bullet-points", strPtr("<ul><li>a</li></ul>")),
	}

	picked, ok := resolver.Resolve(summaries)
	require.True(t, ok)
	assert.Equal(t, "bullet-points", picked.Variant)
}

func TestResolveNothingPresentable(t *testing.T) {
	summaries := []models.ReportSummary{
		summary("comprehensive", nil),
		summary("audio", strPtr("")),
	}

	_, ok := resolver.Resolve(summaries)
	assert.False(t, ok)
}

func TestResolveEmptyInput(t *testing.T) {
	_, ok := resolver.Resolve(nil)
	assert.False(t, ok)
}

func TestResolveIgnoresUnknownVariants(t *testing.T) {
	summaries := []models.ReportSummary{
		summary("tl-dr-haiku", strPtr("<p>?</p>")),
		summary("audio-fr", strPtr("<p>fr</p>")),
	}

	picked, ok := resolver.Resolve(summaries)
	require.True(t, ok)
	assert.Equal(t, "audio-fr", picked.Variant)
}

func TestRank(t *testing.T) {
	r, ok := resolver.Rank("comprehensive")
	require.True(t, ok)
	assert.Equal(t, 0, r)

	_, ok = resolver.Rank("nope")
	assert.False(t, ok)
}
