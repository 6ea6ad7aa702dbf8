package db

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsguard/internal/types"
)

// Verifies the JSONB record round-trip; database operations are covered by
// integration tests against a live pool.
func TestAssessmentRecordRoundTrip(t *testing.T) {
	assessment := &types.FinalAssessment{
		ID:             uuid.New(),
		Title:          "Test article",
		Domain:         "example.com",
		RiskPercentage: 55,
		RiskLevel:      types.RiskMedium,
		Confidence:     types.ConfidenceMedium,
		Parsed: &types.ParsedAssessment{
			RiskPercentage: 60,
			Explanation:    "several signals",
		},
		Corroboration: &types.CorroborationReport{
			TrustedSourceCount: 1,
			ConsistencyScore:   70,
			RiskAdjustment:     -10,
		},
	}

	record, err := json.Marshal(assessment)
	require.NoError(t, err)

	var restored types.FinalAssessment
	require.NoError(t, json.Unmarshal(record, &restored))

	assert.Equal(t, assessment.ID, restored.ID)
	assert.Equal(t, 55, restored.RiskPercentage)
	assert.Equal(t, types.RiskMedium, restored.RiskLevel)
	require.NotNil(t, restored.Corroboration)
	assert.Equal(t, -10, restored.Corroboration.RiskAdjustment)
}

func TestAssessmentFiltersDefaults(t *testing.T) {
	filters := AssessmentFilters{}
	assert.Empty(t, filters.Domain)
	assert.Empty(t, filters.RiskLevel)
	assert.Zero(t, filters.Limit)
}
