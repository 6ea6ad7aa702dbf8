// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Credentials
	APIKey         string `json:"api_key,omitempty"`          // Gemini API key
	SearchAPIKey   string `json:"search_api_key,omitempty"`   // Custom Search API key
	SearchEngineID string `json:"search_engine_id,omitempty"` // Custom Search engine id (cx)
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL

	// Paths
	Rules string `json:"rules,omitempty"` // Path to a custom rules JSON file

	// Thresholds
	HighRiskThreshold int `json:"high_risk_threshold,omitempty"` // Score at or above which risk is high
	LowRiskThreshold  int `json:"low_risk_threshold,omitempty"`  // Score at or below which risk is low
	MaxSearchResults  int `json:"max_search_results,omitempty"`  // Cap on accumulated search results

	// Behavior
	NoSearch bool `json:"no_search,omitempty"` // Skip the web corroboration stage
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.HighRiskThreshold < 0 || c.HighRiskThreshold > 100 {
		return fmt.Errorf("config error: 'high_risk_threshold' must be between 0 and 100")
	}
	if c.LowRiskThreshold < 0 || c.LowRiskThreshold > 100 {
		return fmt.Errorf("config error: 'low_risk_threshold' must be between 0 and 100")
	}
	if c.HighRiskThreshold != 0 && c.LowRiskThreshold != 0 && c.LowRiskThreshold >= c.HighRiskThreshold {
		return fmt.Errorf("config error: 'low_risk_threshold' must be below 'high_risk_threshold'")
	}
	if c.MaxSearchResults < 0 {
		return fmt.Errorf("config error: 'max_search_results' must be non-negative")
	}

	if c.Rules != "" {
		if _, err := os.Stat(c.Rules); os.IsNotExist(err) {
			return fmt.Errorf("config error: rules file not found: %s", c.Rules)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchEngineID == "" {
		result.SearchEngineID = defaults.SearchEngineID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Rules == "" {
		result.Rules = defaults.Rules
	}

	// Numeric fields: use default if zero
	if result.HighRiskThreshold == 0 {
		result.HighRiskThreshold = defaults.HighRiskThreshold
	}
	if result.LowRiskThreshold == 0 {
		result.LowRiskThreshold = defaults.LowRiskThreshold
	}
	if result.MaxSearchResults == 0 {
		result.MaxSearchResults = defaults.MaxSearchResults
	}

	// Boolean fields: true wins
	if !result.NoSearch {
		result.NoSearch = defaults.NoSearch
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
