// Package scoring implements rule-weight redistribution, weighted risk
// recomputation, and risk-level classification. All functions are pure:
// concurrent requests never observe each other's adjustments.
package scoring

import "github.com/jonathan/newsguard/internal/types"

// AdjustWeights redistributes weight away from unverifiable rules. Weights of
// unverifiable rules are zeroed and the remainder is scaled up so the table
// still sums to the original total (weight conservation). When every rule is
// unverifiable the table is all zeros and callers must retain the parser's
// literal percentage instead of recomputing.
func AdjustWeights(original types.WeightTable, unverifiable map[string]bool) types.WeightTable {
	adjusted := make(types.WeightTable, len(original))

	if len(unverifiable) == 0 {
		for id, w := range original {
			adjusted[id] = w
		}
		return adjusted
	}

	total, zeroed := 0.0, 0.0
	for id, w := range original {
		total += w
		if unverifiable[id] {
			zeroed += w
		}
	}

	remaining := total - zeroed
	if remaining <= 0 {
		for id := range original {
			adjusted[id] = 0
		}
		return adjusted
	}

	scale := total / remaining
	for id, w := range original {
		if unverifiable[id] {
			adjusted[id] = 0
		} else {
			adjusted[id] = w * scale
		}
	}
	return adjusted
}
