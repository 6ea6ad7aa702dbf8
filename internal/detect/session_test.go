package detect

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsguard/internal/types"
)

func TestSessions_PutGetDelete(t *testing.T) {
	sessions := NewSessions()
	item := &types.NewsItem{Title: "cached", Content: "body"}
	assessment := &types.FinalAssessment{ID: uuid.New(), Title: "cached"}

	sessions.Put(item, assessment)
	assert.Equal(t, 1, sessions.Len())

	got, ok := sessions.Get(assessment.ID)
	require.True(t, ok)
	assert.Equal(t, "cached", got.Assessment.Title)
	assert.Equal(t, "body", got.Item.Content)

	sessions.Delete(assessment.ID)
	assert.Equal(t, 0, sessions.Len())

	_, ok = sessions.Get(assessment.ID)
	assert.False(t, ok)
}

func TestSessions_GetUnknownID(t *testing.T) {
	sessions := NewSessions()
	_, ok := sessions.Get(uuid.New())
	assert.False(t, ok)
}

func TestSessions_PutReplacesSameID(t *testing.T) {
	sessions := NewSessions()
	id := uuid.New()
	item := &types.NewsItem{Title: "t", Content: "c"}

	sessions.Put(item, &types.FinalAssessment{ID: id, RiskPercentage: 40})
	sessions.Put(item, &types.FinalAssessment{ID: id, RiskPercentage: 55})

	got, ok := sessions.Get(id)
	require.True(t, ok)
	assert.Equal(t, 55, got.Assessment.RiskPercentage)
	assert.Equal(t, 1, sessions.Len())
}
