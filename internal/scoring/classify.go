package scoring

import "github.com/jonathan/newsguard/internal/types"

// Default classification thresholds.
const (
	DefaultHighRiskThreshold = 70
	DefaultLowRiskThreshold  = 30
)

// Consistency-score tiers for confidence when corroboration ran.
const (
	highConfidenceScore   = 70
	mediumConfidenceScore = 40
)

// ClassifyRisk thresholds a risk percentage into a level.
func ClassifyRisk(percentage, highThreshold, lowThreshold int) types.RiskLevel {
	switch {
	case percentage >= highThreshold:
		return types.RiskHigh
	case percentage <= lowThreshold:
		return types.RiskLow
	default:
		return types.RiskMedium
	}
}

// DeriveConfidence labels how much weight the assessment deserves. A knowledge
// cutoff without corroboration demands external verification; with
// corroboration, confidence follows the consistency score.
func DeriveConfidence(parsed *types.ParsedAssessment, report *types.CorroborationReport) types.Confidence {
	if report == nil {
		if parsed != nil && parsed.KnowledgeCutoffIssue {
			return types.ConfidenceLowNeedsVerification
		}
		return types.ConfidenceMedium
	}

	switch {
	case report.ConsistencyScore >= highConfidenceScore:
		return types.ConfidenceHigh
	case report.ConsistencyScore >= mediumConfidenceScore:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// ApplyAdjustment applies a signed corroboration adjustment, clamped to [0,100].
func ApplyAdjustment(percentage, adjustment int) int {
	result := percentage + adjustment
	if result < 0 {
		return 0
	}
	if result > 100 {
		return 100
	}
	return result
}
