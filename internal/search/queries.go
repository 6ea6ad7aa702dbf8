package search

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/newsguard/internal/textscan"
	"github.com/jonathan/newsguard/internal/types"
)

// Query construction constants, tuned against typical snippet recall.
const (
	titleTruncRunes = 20
	paraTruncRunes  = 50
	minParaRunes    = 20
	maxTitleTokens  = 4
	maxNamesPerKind = 2
	maxTitleNumbers = 2
)

var (
	latinNamePairRe = regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`)
	titleNumberRe   = regexp.MustCompile(`\d+(?:\.\d+)?%?`)

	knownPlacesRe = regexp.MustCompile(`北京|上海|广州|深圳|天津|重庆|香港|澳门|台湾|美国|中国|日本|韩国|俄罗斯|英国|法国|德国|加拿大|澳大利亚`)

	// internationalPlaces marks stories likely to have non-native coverage,
	// where an ASCII query variant can reach additional sources.
	internationalPlaces = []string{"美国", "日本", "韩国", "俄罗斯", "英国", "法国", "德国"}
)

// BuildQueries derives an ordered, deduplicated list of search queries from a
// news item, most specific first. The list is bounded by construction.
func BuildQueries(item *types.NewsItem) []string {
	title := strings.TrimSpace(item.Title)
	firstPara := item.FirstParagraph()
	scope := title + " " + firstPara

	queries := []string{title}

	// Segmented title keywords.
	tokens := textscan.Keywords(title)
	if len(tokens) >= 3 {
		if len(tokens) > maxTitleTokens {
			tokens = tokens[:maxTitleTokens]
		}
		queries = append(queries, strings.Join(tokens, " "))
	}

	shortTitle := truncateRunes(title, titleTruncRunes)

	// Person-like Latin name pairs anchored to the title.
	for i, name := range latinNamePairRe.FindAllString(scope, -1) {
		if i >= maxNamesPerKind {
			break
		}
		queries = append(queries, fmt.Sprintf("%s %s", name, shortTitle))
	}

	// Recognized place names anchored to the title.
	for i, place := range knownPlacesRe.FindAllString(scope, -1) {
		if i >= maxNamesPerKind {
			break
		}
		queries = append(queries, fmt.Sprintf("%s %s", place, shortTitle))
	}

	// Leading numeric tokens are often the story's key data point.
	for i, num := range titleNumberRe.FindAllString(title, -1) {
		if i >= maxTitleNumbers {
			break
		}
		queries = append(queries, fmt.Sprintf("%s %s", num, shortTitle))
	}

	// Title plus leading context from the first paragraph.
	if utf8.RuneCountInString(firstPara) > minParaRunes {
		queries = append(queries, fmt.Sprintf("%s %s", title, truncateRunes(firstPara, paraTruncRunes)))
	}

	// ASCII variant for international stories.
	if mentionsInternationalPlace(scope) {
		if folded := textscan.FoldASCII(title); folded != "" && folded != title {
			queries = append(queries, folded)
		}
	}

	return dedupeQueries(queries)
}

func mentionsInternationalPlace(text string) bool {
	for _, place := range internationalPlaces {
		if strings.Contains(text, place) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func dedupeQueries(queries []string) []string {
	seen := make(map[string]bool, len(queries))
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q != "" && !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}
