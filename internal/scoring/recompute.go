package scoring

import (
	"math"

	"github.com/jonathan/newsguard/internal/types"
)

// RecomputeRisk recomputes the weighted risk percentage from verdicts and
// effective weights. Only definitive verdicts participate: Matches contributes
// to numerator and denominator, NoMatch to the denominator only. When no
// definitive weight remains the prior percentage is returned untouched,
// signaling insufficient definitive evidence.
func RecomputeRisk(verdicts map[string]types.RuleVerdict, weights types.WeightTable, prior int) int {
	numerator, denominator := 0.0, 0.0
	for id, rv := range verdicts {
		weight := weights[id]
		switch rv.Verdict {
		case types.VerdictMatches:
			numerator += weight * 100
			denominator += weight
		case types.VerdictNoMatch:
			denominator += weight
		}
	}

	if denominator <= 0 {
		return prior
	}
	return int(math.Round(numerator / denominator))
}
