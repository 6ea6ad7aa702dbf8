package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsguard/internal/types"
)

func fullWeights() types.WeightTable {
	return types.WeightTable{
		"rule1": 0.2, "rule2": 0.15, "rule3": 0.1,
		"rule4": 0.2, "rule5": 0.15, "rule6": 0.2,
	}
}

func TestAdjustWeights_NoUnverifiable(t *testing.T) {
	original := fullWeights()
	adjusted := AdjustWeights(original, nil)
	assert.Equal(t, original, adjusted)
}

func TestAdjustWeights_OneUnverifiable_ScenarioB(t *testing.T) {
	adjusted := AdjustWeights(fullWeights(), map[string]bool{"rule6": true})

	// rule6's 0.2 is zeroed; the remaining 0.8 scales by 1.25.
	assert.InDelta(t, 0.25, adjusted["rule1"], 1e-9)
	assert.InDelta(t, 0.1875, adjusted["rule2"], 1e-9)
	assert.InDelta(t, 0.125, adjusted["rule3"], 1e-9)
	assert.InDelta(t, 0.25, adjusted["rule4"], 1e-9)
	assert.InDelta(t, 0.1875, adjusted["rule5"], 1e-9)
	assert.InDelta(t, 0.0, adjusted["rule6"], 1e-9)
}

func TestAdjustWeights_Conservation(t *testing.T) {
	original := fullWeights()
	for _, unverifiable := range []map[string]bool{
		{"rule1": true},
		{"rule2": true, "rule5": true},
		{"rule1": true, "rule3": true, "rule6": true},
	} {
		adjusted := AdjustWeights(original, unverifiable)
		assert.InDelta(t, original.Sum(), adjusted.Sum(), 1e-9)
	}
}

func TestAdjustWeights_AllUnverifiable(t *testing.T) {
	unverifiable := map[string]bool{
		"rule1": true, "rule2": true, "rule3": true,
		"rule4": true, "rule5": true, "rule6": true,
	}
	adjusted := AdjustWeights(fullWeights(), unverifiable)

	require.Len(t, adjusted, 6)
	for id, w := range adjusted {
		assert.Zero(t, w, "weight for %s", id)
	}
}

func TestAdjustWeights_DoesNotMutateOriginal(t *testing.T) {
	original := fullWeights()
	_ = AdjustWeights(original, map[string]bool{"rule1": true})
	assert.InDelta(t, 0.2, original["rule1"], 1e-9)
}
