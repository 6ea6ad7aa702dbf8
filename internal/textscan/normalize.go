package textscan

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFKD and drops combining marks, turning
// accented Latin into plain ASCII letters.
var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// FoldASCII returns an ASCII-only variant of s: accents are stripped and any
// remaining non-ASCII runes are dropped. Returns the input unchanged when the
// transform fails.
func FoldASCII(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
