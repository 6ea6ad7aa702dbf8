package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError_Message(t *testing.T) {
	err := &UpstreamError{Message: "generation request failed"}
	assert.Equal(t, "generation service: generation request failed", err.Error())
}

func TestUpstreamError_WrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &UpstreamError{Message: "generation request failed", Cause: cause}

	assert.Contains(t, err.Error(), "generation request failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-6)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)

	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
}
