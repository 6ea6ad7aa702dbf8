package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/newsguard/internal/types"
)

func TestClassifyRisk(t *testing.T) {
	assert.Equal(t, types.RiskHigh, ClassifyRisk(70, 70, 30))
	assert.Equal(t, types.RiskHigh, ClassifyRisk(100, 70, 30))
	assert.Equal(t, types.RiskLow, ClassifyRisk(30, 70, 30))
	assert.Equal(t, types.RiskLow, ClassifyRisk(0, 70, 30))
	assert.Equal(t, types.RiskMedium, ClassifyRisk(40, 70, 30))
	assert.Equal(t, types.RiskMedium, ClassifyRisk(69, 70, 30))
}

func TestDeriveConfidence_NoCorroboration(t *testing.T) {
	assert.Equal(t, types.ConfidenceMedium,
		DeriveConfidence(&types.ParsedAssessment{}, nil))
	assert.Equal(t, types.ConfidenceLowNeedsVerification,
		DeriveConfidence(&types.ParsedAssessment{KnowledgeCutoffIssue: true}, nil))
}

func TestDeriveConfidence_WithCorroboration(t *testing.T) {
	parsed := &types.ParsedAssessment{KnowledgeCutoffIssue: true}

	assert.Equal(t, types.ConfidenceHigh,
		DeriveConfidence(parsed, &types.CorroborationReport{ConsistencyScore: 70}))
	assert.Equal(t, types.ConfidenceMedium,
		DeriveConfidence(parsed, &types.CorroborationReport{ConsistencyScore: 40}))
	assert.Equal(t, types.ConfidenceLow,
		DeriveConfidence(parsed, &types.CorroborationReport{ConsistencyScore: 39}))
}

func TestApplyAdjustment_Clamps(t *testing.T) {
	assert.Equal(t, 40, ApplyAdjustment(50, -10))
	assert.Equal(t, 0, ApplyAdjustment(5, -15))
	assert.Equal(t, 100, ApplyAdjustment(95, 15))
	assert.Equal(t, 50, ApplyAdjustment(50, 0))
}
