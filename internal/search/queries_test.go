package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsguard/internal/types"
)

func TestBuildQueries_TitleFirst(t *testing.T) {
	item := &types.NewsItem{Title: "Mayor resigns after audit", Content: "short"}
	queries := BuildQueries(item)
	require.NotEmpty(t, queries)
	assert.Equal(t, "Mayor resigns after audit", queries[0])
}

func TestBuildQueries_Deduplicated(t *testing.T) {
	item := &types.NewsItem{Title: "Tax", Content: "x"}
	queries := BuildQueries(item)
	seen := make(map[string]bool)
	for _, q := range queries {
		assert.False(t, seen[q], "duplicate query %q", q)
		seen[q] = true
	}
}

func TestBuildQueries_NamePairAnchoredToTitle(t *testing.T) {
	item := &types.NewsItem{
		Title:   "Senator denies report",
		Content: "Sources close to James Wilson said the senator was abroad.",
	}
	queries := BuildQueries(item)

	found := false
	for _, q := range queries {
		if strings.HasPrefix(q, "James Wilson ") {
			found = true
		}
	}
	assert.True(t, found, "expected a James Wilson query, got %v", queries)
}

func TestBuildQueries_NumbersFromTitle(t *testing.T) {
	item := &types.NewsItem{
		Title:   "500 factories closed, 12000 jobs lost in province",
		Content: "body",
	}
	queries := BuildQueries(item)

	var numeric []string
	for _, q := range queries {
		if strings.HasPrefix(q, "500 ") || strings.HasPrefix(q, "12000 ") {
			numeric = append(numeric, q)
		}
	}
	assert.Len(t, numeric, 2)
}

func TestBuildQueries_TitlePlusParagraph(t *testing.T) {
	para := "The provincial government confirmed the closures on Monday after weeks of speculation."
	item := &types.NewsItem{Title: "Factories closed", Content: para + "\nmore text"}
	queries := BuildQueries(item)

	found := false
	for _, q := range queries {
		if strings.HasPrefix(q, "Factories closed The provincial government") {
			found = true
		}
	}
	assert.True(t, found, "expected title+paragraph query, got %v", queries)
}

func TestBuildQueries_ShortParagraphSkipped(t *testing.T) {
	item := &types.NewsItem{Title: "Headline here", Content: "tiny"}
	for _, q := range BuildQueries(item) {
		assert.False(t, strings.HasPrefix(q, "Headline here tiny"))
	}
}

func TestBuildQueries_ChinesePlaceAndASCIIVariant(t *testing.T) {
	item := &types.NewsItem{
		Title:   "美国 Müller 公司宣布撤资",
		Content: "美国公司表示将在 2025 年前完成。",
	}
	queries := BuildQueries(item)

	placeAnchored := false
	asciiVariant := false
	for _, q := range queries {
		if strings.HasPrefix(q, "美国 ") && q != queries[0] {
			placeAnchored = true
		}
		if q == "Muller" {
			asciiVariant = true
		}
	}
	assert.True(t, placeAnchored, "expected place-anchored query, got %v", queries)
	assert.True(t, asciiVariant, "expected ASCII-folded variant, got %v", queries)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "短标题", truncateRunes("短标题", 20))
	assert.Equal(t, "一二三", truncateRunes("一二三四五", 3))
}
