// Package llm provides the generation-service collaborator used to evaluate
// the rule checklist against a news item.
package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over text-generation providers.
type Client interface {
	// GenerateContent sends the combined rule prompt and returns the raw reply text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// Config holds the generation model configuration.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration. Temperature is kept
// low so verdicts stay deterministic across runs.
func DefaultConfig() *Config {
	return &Config{
		Model:       "gemini-2.5-flash",
		Temperature: 0.1,
	}
}

// NewClient creates a new generation client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &UpstreamError{Message: "API key is required"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &UpstreamError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateContent sends the prompt to the configured model and returns the
// reply text. Any transport or response failure surfaces as an UpstreamError;
// callers must not enter the aggregation pipeline without a reply.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &UpstreamError{Message: "generation request failed", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &UpstreamError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &UpstreamError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &UpstreamError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
