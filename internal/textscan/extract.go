package textscan

import "regexp"

// Entity patterns: multi-word capitalized sequences, organization suffixes in
// either script, honorific-suffixed short names, and administrative-unit
// suffixes. Case-sensitive for Latin script, suffix-based for Han script.
var (
	latinPersonRe  = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	latinOrgRe     = regexp.MustCompile(`\b(?:[A-Z][A-Za-z]*\.?\s+)+(?:Corporation|Inc|Organization|Association|Company|Agency|Bureau|Committee)\b`)
	hanHonorificRe = regexp.MustCompile(`[\p{Han}]{2,3}(?:先生|女士|教授|总|长)`)
	hanOrgRe       = regexp.MustCompile(`[\p{Han}]{2,}(?:公司|组织|机构|部门|委员会|集团|局)`)
	hanPlaceRe     = regexp.MustCompile(`[\p{Han}]{2,}(?:国|市|省|州|县|镇|区)`)
	entitySuffixRe = regexp.MustCompile(`(?:先生|女士|教授|总|长|公司|组织|机构|部门|委员会|集团|局|市|省|州|县|镇|区|国|Corporation|Inc|Organization|Association|Company|Agency|Bureau|Committee)$`)
)

// Data-point patterns: numbers with optional units, calendar dates, and
// durations with optional relative markers.
var (
	numberUnitRe = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent|million|billion|trillion|dollars?|euros?|pounds?|yuan|yen|万|亿|千|美元|元|美金|港币|英镑|欧元|日元)?`)
	dateRe       = regexp.MustCompile(`\d{4}[-/年]\d{1,2}[-/月]\d{1,2}日?|\d{1,2}[-/月]\d{1,2}日|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,\s*\d{4})?`)
	durationRe   = regexp.MustCompile(`\d+\s*(?:分钟|小时|天|周|月|年|minutes?|hours?|days?|weeks?|months?|years?)(?:内|前|后)?(?:\s+(?:ago|later|earlier))?`)
)

// ExtractEntities pulls candidate named entities out of raw text.
// Deduplicated; no ordering guarantee.
func ExtractEntities(text string) []string {
	found := make([]string, 0)
	for _, re := range []*regexp.Regexp{latinPersonRe, latinOrgRe, hanHonorificRe, hanOrgRe, hanPlaceRe} {
		found = append(found, re.FindAllString(text, -1)...)
	}
	return dedupe(found)
}

// ExtractDataPoints pulls numeric, date, and duration tokens out of raw text.
// Deduplicated; no ordering guarantee.
func ExtractDataPoints(text string) []string {
	found := make([]string, 0)
	for _, re := range []*regexp.Regexp{numberUnitRe, dateRe, durationRe} {
		found = append(found, re.FindAllString(text, -1)...)
	}
	return dedupe(found)
}

// Extract returns both entity and data-point candidate sets for the text.
func Extract(text string) (entities, dataPoints []string) {
	return ExtractEntities(text), ExtractDataPoints(text)
}

// StripEntitySuffix removes a trailing honorific or organizational/place
// suffix so slightly different surface forms still match.
func StripEntitySuffix(entity string) string {
	return entitySuffixRe.ReplaceAllString(entity, "")
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
