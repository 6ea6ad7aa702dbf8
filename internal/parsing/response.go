// Package parsing converts the generation service's free-text reply into a
// structured per-rule verdict set plus a headline risk percentage.
//
// Parse is a total function: garbled, truncated, or empty text never fails and
// always yields a verdict for every rule id, defaulting to Unknown. All "not
// found" cases are represented as enum states, never as absence.
package parsing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/newsguard/internal/types"
)

// noVerdictReason is the placeholder reason for rules the model never answered.
const noVerdictReason = "model gave no definitive verdict for this rule"

var (
	// ruleMarkerRe finds lines of the form `Rule <i>: [<token>] - reason...`.
	// The reason itself is sliced out between this marker and the next one,
	// since the model reply may interleave free prose.
	ruleMarkerRe = regexp.MustCompile(`(?i)(?:rule|规则)\s*(\d+)\s*[:：]\s*\[([^\]\n]*)\]\s*[-—–]?\s*`)

	// conclusionMarkerRe bounds the last rule's reason.
	conclusionMarkerRe = regexp.MustCompile(`(?i)(?:conclusion|综合结论)\s*[:：]`)

	// conclusionRe captures the headline percentage and its explanation clause.
	conclusionRe = regexp.MustCompile(`(?is)(?:conclusion|综合结论)\s*[:：]\s*\[?\s*(\d{1,3})\s*%?\s*\]?[^-\n]*[-—–]\s*(.+)`)
)

// Token sets are bilingual: the parser tolerates replies in either the prompt
// language or the model's own.
var (
	unverifiableMarkers = []string{
		"cannot verify", "can not verify", "can't verify", "unable to verify",
		"unverifiable", "knowledge cutoff", "无法验证", "无法核实", "无法判断",
	}
	negativePrefixes  = []string{"no", "not", "does not", "不", "没", "无"}
	affirmativeTokens = []string{"matches", "yes", "present", "exists", "符合", "是", "存在", "有"}
	cutoffPhrases     = []string{
		"knowledge cutoff", "training data", "cannot access events after",
		"after my last update", "events after my", "知识截止", "训练数据",
	}
)

// Parse converts the raw model reply into a ParsedAssessment for the given
// rule ids, in definition order: rule N in the reply corresponds to ruleIDs[N-1].
func Parse(raw string, ruleIDs []string) *types.ParsedAssessment {
	parsed := &types.ParsedAssessment{
		Verdicts: make(map[string]types.RuleVerdict, len(ruleIDs)),
	}

	markers := findMarkers(raw)
	conclusionStart := len(raw)
	if loc := conclusionMarkerRe.FindStringIndex(raw); loc != nil {
		conclusionStart = loc[0]
	}

	for i, ruleID := range ruleIDs {
		verdict := types.RuleVerdict{
			RuleID:  ruleID,
			Verdict: types.VerdictUnknown,
			Reason:  noVerdictReason,
		}

		if m := firstMarkerFor(markers, i+1); m != nil {
			verdict.Verdict = normalizeVerdict(m.token)
			verdict.Reason = sliceReason(raw, markers, m, conclusionStart)
			if verdict.Verdict == types.VerdictUnverifiable {
				parsed.UnverifiableRuleIDs = append(parsed.UnverifiableRuleIDs, ruleID)
			}
		}

		parsed.Verdicts[ruleID] = verdict
	}

	// Independent of per-rule parsing: cutoff language anywhere in the reply
	// flags the whole assessment, even when no rule was marked unverifiable.
	parsed.KnowledgeCutoffIssue = mentionsKnowledgeCutoff(raw)

	if m := conclusionRe.FindStringSubmatch(raw); m != nil {
		pct, err := strconv.Atoi(m[1])
		if err == nil {
			parsed.RiskPercentage = clampPercent(pct)
			parsed.Explanation = strings.TrimSpace(m[2])
			return parsed
		}
	}

	// Fallback ladder: infer the percentage from the ratio of risk signals
	// among definitive verdicts only.
	matches, definitive := 0, 0
	for _, rv := range parsed.Verdicts {
		if rv.Verdict == types.VerdictMatches {
			matches++
		}
		if rv.Verdict.Definitive() {
			definitive++
		}
	}

	if definitive == 0 {
		parsed.RiskPercentage = 0
		parsed.Explanation = "no definitive signal found in the model reply"
		return parsed
	}

	parsed.RiskPercentage = int(math.Round(100 * float64(matches) / float64(definitive)))
	parsed.Explanation = fmt.Sprintf("inferred from %d of %d definitive rules signaling risk", matches, definitive)
	return parsed
}

type marker struct {
	ruleNum     int
	start       int
	reasonStart int
	token       string
}

func findMarkers(raw string) []marker {
	idx := ruleMarkerRe.FindAllStringSubmatchIndex(raw, -1)
	markers := make([]marker, 0, len(idx))
	for _, m := range idx {
		num, err := strconv.Atoi(raw[m[2]:m[3]])
		if err != nil {
			continue
		}
		markers = append(markers, marker{
			ruleNum:     num,
			start:       m[0],
			reasonStart: m[1],
			token:       raw[m[4]:m[5]],
		})
	}
	return markers
}

func firstMarkerFor(markers []marker, ruleNum int) *marker {
	for i := range markers {
		if markers[i].ruleNum == ruleNum {
			return &markers[i]
		}
	}
	return nil
}

// sliceReason extracts the reason text between a marker and the next rule or
// conclusion marker, whichever comes first.
func sliceReason(raw string, markers []marker, m *marker, conclusionStart int) string {
	end := len(raw)
	if conclusionStart > m.reasonStart && conclusionStart < end {
		end = conclusionStart
	}
	for i := range markers {
		if markers[i].start > m.start && markers[i].start < end {
			end = markers[i].start
		}
	}

	reason := strings.TrimSpace(raw[m.reasonStart:end])
	if reason == "" {
		return noVerdictReason
	}
	return reason
}

// normalizeVerdict maps a raw verdict token onto the Verdict enum. Order
// matters: unverifiable markers are checked before negation so phrases like
// "cannot verify" win, and negation before affirmatives so "no match" and
// "不符合" are not caught by their embedded affirmative substrings.
func normalizeVerdict(token string) types.Verdict {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return types.VerdictNoMatch
	}

	for _, m := range unverifiableMarkers {
		if strings.Contains(t, m) {
			return types.VerdictUnverifiable
		}
	}
	for _, p := range negativePrefixes {
		if strings.HasPrefix(t, p) {
			return types.VerdictNoMatch
		}
	}
	for _, a := range affirmativeTokens {
		if strings.Contains(t, a) {
			return types.VerdictMatches
		}
	}
	return types.VerdictNoMatch
}

func mentionsKnowledgeCutoff(raw string) bool {
	lower := strings.ToLower(raw)
	for _, phrase := range cutoffPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
