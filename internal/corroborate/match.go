package corroborate

import (
	"regexp"
	"strings"

	"github.com/jonathan/newsguard/internal/textscan"
)

// maxDetailScore caps the generic shared-detail count per snippet.
const maxDetailScore = 5

var (
	digitRunRe    = regexp.MustCompile(`\d+`)
	capitalWordRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)
)

// countEntityMatches counts the extracted entities whose suffix-stripped form
// appears in the snippet. Stripping lets "华为公司" match a snippet that only
// says "华为".
func countEntityMatches(entities []string, snippet string) int {
	count := 0
	for _, entity := range entities {
		stripped := textscan.StripEntitySuffix(entity)
		if stripped == "" {
			stripped = entity
		}
		if strings.Contains(snippet, stripped) {
			count++
		}
	}
	return count
}

// countDataPointMatches counts data points appearing verbatim in the snippet.
// Numbers corroborate only when exact; "500" and "5000" are different claims.
func countDataPointMatches(dataPoints []string, snippet string) int {
	count := 0
	for _, point := range dataPoints {
		if strings.Contains(snippet, point) {
			count++
		}
	}
	return count
}

// countDetailMatches counts generic shared details between the news text and
// the snippet: digit runs, capitalized Latin words, and Han keywords present
// in both. Capped so one keyword-rich snippet cannot dominate the score.
func countDetailMatches(newsText, snippet string) int {
	count := 0
	count += sharedCount(digitRunRe.FindAllString(newsText, -1), snippet)
	count += sharedCount(capitalWordRe.FindAllString(newsText, -1), snippet)
	count += sharedCount(textscan.HanKeywords(newsText), snippet)
	if count > maxDetailScore {
		count = maxDetailScore
	}
	return count
}

func sharedCount(tokens []string, snippet string) int {
	seen := make(map[string]bool, len(tokens))
	count := 0
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		if strings.Contains(snippet, token) {
			count++
		}
	}
	return count
}
