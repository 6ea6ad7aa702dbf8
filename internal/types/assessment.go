package types

import (
	"time"

	"github.com/google/uuid"
)

// WeightTable maps rule ids to effective weights after redistribution.
type WeightTable map[string]float64

// Sum returns the total weight in the table.
func (w WeightTable) Sum() float64 {
	total := 0.0
	for _, weight := range w {
		total += weight
	}
	return total
}

// SearchResult is a single deduplicated web search hit. Link is the unique key
// within one corroboration report.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Domain  string `json:"domain"`
	Trusted bool   `json:"trusted"`
}

// SourceSummary is the bounded per-source record retained on a corroboration report.
type SourceSummary struct {
	Domain  string `json:"domain"`
	Title   string `json:"title"`
	Trusted bool   `json:"trusted"`
}

// CorroborationReport summarizes how well web search evidence agrees with a
// news item. Zero-valued when no search results were obtainable.
type CorroborationReport struct {
	TrustedSourceCount int             `json:"trusted_source_count"`
	ConsistencyScore   int             `json:"consistency_score"`
	Sources            []SourceSummary `json:"sources,omitempty"`
	RiskAdjustment     int             `json:"risk_adjustment"`
	Explanation        string          `json:"explanation"`
}

// RiskLevel is the thresholded classification of a risk percentage.
type RiskLevel string

// RiskLevel values.
const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Confidence labels how much weight the final percentage deserves.
type Confidence string

// Confidence values. ConfidenceLowNeedsVerification flags assessments where
// the model hit its knowledge cutoff and no corroboration was run.
const (
	ConfidenceHigh                 Confidence = "high"
	ConfidenceMedium               Confidence = "medium"
	ConfidenceLow                  Confidence = "low"
	ConfidenceLowNeedsVerification Confidence = "low_needs_verification"
)

// StyleSignals carries advisory heuristic findings about the news text. They
// do not feed into the risk percentage; the rule checklist covers the same
// concerns through the model.
type StyleSignals struct {
	EmotionalWordCount int      `json:"emotional_word_count"`
	PunctuationIssues  []string `json:"punctuation_issues,omitempty"`
}

// FinalAssessment is the terminal record of one detection request. The raw
// model response is retained for audit.
type FinalAssessment struct {
	ID             uuid.UUID            `json:"id"`
	Title          string               `json:"title"`
	Domain         string               `json:"domain"`
	RiskPercentage int                  `json:"risk_percentage"`
	RiskLevel      RiskLevel            `json:"risk_level"`
	Confidence     Confidence           `json:"confidence"`
	Parsed         *ParsedAssessment    `json:"parsed"`
	Corroboration  *CorroborationReport `json:"corroboration,omitempty"`
	StyleSignals   *StyleSignals        `json:"style_signals,omitempty"`
	RawResponse    string               `json:"raw_response"`
	CreatedAt      time.Time            `json:"created_at"`
}
