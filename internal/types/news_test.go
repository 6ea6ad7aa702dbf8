package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewsItemValidate_Valid(t *testing.T) {
	item := &NewsItem{Title: "Quake hits coastal city", Content: "A magnitude 6 quake struck at dawn."}
	assert.NoError(t, item.Validate())
}

func TestNewsItemValidate_MissingTitle(t *testing.T) {
	item := &NewsItem{Content: "body"}
	assert.Error(t, item.Validate())
}

func TestNewsItemValidate_MissingContent(t *testing.T) {
	item := &NewsItem{Title: "headline"}
	assert.Error(t, item.Validate())
}

func TestSourceDomain_FromURL(t *testing.T) {
	item := &NewsItem{Title: "t", Content: "c", URL: "https://www.example.com/articles/1"}
	assert.Equal(t, "example.com", item.SourceDomain())
}

func TestSourceDomain_SchemeOptional(t *testing.T) {
	item := &NewsItem{Title: "t", Content: "c", URL: "news.example.org/story"}
	assert.Equal(t, "news.example.org", item.SourceDomain())
}

func TestSourceDomain_ExplicitDomainWins(t *testing.T) {
	item := &NewsItem{Title: "t", Content: "c", URL: "https://a.com", Domain: "b.com"}
	assert.Equal(t, "b.com", item.SourceDomain())
}

func TestSourceDomain_Unknown(t *testing.T) {
	item := &NewsItem{Title: "t", Content: "c"}
	assert.Equal(t, UnknownSource, item.SourceDomain())
}

func TestFirstParagraph(t *testing.T) {
	item := &NewsItem{Title: "t", Content: "\n\n  first line here \nsecond line"}
	assert.Equal(t, "first line here", item.FirstParagraph())
}

func TestVerdictDefinitive(t *testing.T) {
	assert.True(t, VerdictMatches.Definitive())
	assert.True(t, VerdictNoMatch.Definitive())
	assert.False(t, VerdictUnverifiable.Definitive())
	assert.False(t, VerdictUnknown.Definitive())
}

func TestUnverifiableSet(t *testing.T) {
	parsed := &ParsedAssessment{UnverifiableRuleIDs: []string{"rule2", "rule6"}}
	set := parsed.UnverifiableSet()
	assert.True(t, set["rule2"])
	assert.True(t, set["rule6"])
	assert.False(t, set["rule1"])
}
