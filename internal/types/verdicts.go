package types

// Verdict classifies a rule's applicability to a news item.
type Verdict string

// Verdict values. Matches means the rule's risk signal is present; NoMatch
// means it is absent. Unverifiable means the model declined due to missing or
// future knowledge; Unknown means the parser could not locate the rule in the
// response at all.
const (
	VerdictMatches      Verdict = "matches"
	VerdictNoMatch      Verdict = "no_match"
	VerdictUnverifiable Verdict = "unverifiable"
	VerdictUnknown      Verdict = "unknown"
)

// Definitive reports whether the verdict carries a usable risk signal.
func (v Verdict) Definitive() bool {
	return v == VerdictMatches || v == VerdictNoMatch
}

// RuleVerdict is the parsed verdict for a single rule.
type RuleVerdict struct {
	RuleID  string  `json:"rule_id"`
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason"`
}

// ParsedAssessment is the structured form of the model's free-text reply.
// It is produced once per request and never mutated; later pipeline stages
// derive new records from it.
type ParsedAssessment struct {
	Verdicts             map[string]RuleVerdict `json:"verdicts"`
	RiskPercentage       int                    `json:"risk_percentage"`
	Explanation          string                 `json:"explanation"`
	KnowledgeCutoffIssue bool                   `json:"knowledge_cutoff_issue"`
	UnverifiableRuleIDs  []string               `json:"unverifiable_rule_ids,omitempty"`
}

// UnverifiableSet returns the unverifiable rule ids as a lookup set.
func (p *ParsedAssessment) UnverifiableSet() map[string]bool {
	set := make(map[string]bool, len(p.UnverifiableRuleIDs))
	for _, id := range p.UnverifiableRuleIDs {
		set[id] = true
	}
	return set
}
