// Package textscan provides lightweight, pattern-based text heuristics:
// entity and data-point extraction, token segmentation, and style checks.
// These are deliberately not a trained NER model; the corroboration tiers are
// calibrated against their recall characteristics.
package textscan

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-ego/gse"
)

var (
	segOnce sync.Once
	seg     gse.Segmenter
)

// Segment splits text into tokens using the embedded dictionaries. Handles
// mixed Latin/CJK text; Latin words come back as whole tokens.
func Segment(text string) []string {
	segOnce.Do(func() {
		// The embedded default dictionary covers simplified Chinese.
		_ = seg.LoadDict()
	})
	return seg.Cut(text, true)
}

// Keywords returns segmented tokens longer than one rune, trimmed, in order.
func Keywords(text string) []string {
	tokens := Segment(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if utf8.RuneCountInString(tok) > 1 {
			out = append(out, tok)
		}
	}
	return out
}

// HanKeywords returns segmented tokens of at least two runes that contain at
// least one Han character. Used for snippet detail matching on CJK text.
func HanKeywords(text string) []string {
	out := make([]string, 0)
	for _, tok := range Keywords(text) {
		if containsHan(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
