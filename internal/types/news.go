// Package types provides type definitions for structured records used throughout the newsguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UnknownSource is the placeholder domain used when a news item carries no URL or domain.
const UnknownSource = "unknown source"

// NewsItem represents a single news article submitted for assessment.
// Title and Content are required; Domain is derived from URL when absent.
type NewsItem struct {
	Title   string `json:"title" validate:"required,min=1"`
	Content string `json:"content" validate:"required,min=1"`
	URL     string `json:"url,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

// Validate validates the NewsItem using the validator.
func (n *NewsItem) Validate() error {
	validate := validator.New()
	return validate.Struct(n)
}

// SourceDomain returns the item's domain, deriving it from the URL when the
// Domain field is empty. Falls back to UnknownSource when neither is usable.
func (n *NewsItem) SourceDomain() string {
	if n.Domain != "" {
		return n.Domain
	}
	if n.URL == "" {
		return UnknownSource
	}

	raw := n.URL
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return UnknownSource
	}

	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// Text returns the title and content joined for text scanning.
func (n *NewsItem) Text() string {
	return n.Title + " " + n.Content
}

// FirstParagraph returns the first non-empty line of the content.
func (n *NewsItem) FirstParagraph() string {
	for _, line := range strings.Split(n.Content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
