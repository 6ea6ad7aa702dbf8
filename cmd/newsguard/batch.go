package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/newsguard/internal/config"
	"github.com/jonathan/newsguard/internal/types"
)

// batchCase is one entry of a --batch file: a news item plus the risk level
// the case is expected to land on.
type batchCase struct {
	Title             string `json:"title"`
	Content           string `json:"content"`
	URL               string `json:"url,omitempty"`
	Domain            string `json:"domain,omitempty"`
	ExpectedRiskLevel string `json:"expected_risk_level,omitempty"`
}

// runBatch assesses every case in the file and reports expected-vs-actual risk
// levels. Returns an error when any case with an expectation misses it.
func runBatch(cfg config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	var cases []batchCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(cases) == 0 {
		return fmt.Errorf("batch file contains no cases")
	}

	ctx := context.Background()
	detector, client, _, err := newDetectorFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	failures := 0
	for i, c := range cases {
		item := &types.NewsItem{Title: c.Title, Content: c.Content, URL: c.URL, Domain: c.Domain}

		assessment, err := detector.Detect(ctx, item)
		if err != nil {
			failures++
			fmt.Printf("[%d/%d] ERROR %q: %v\n", i+1, len(cases), c.Title, err)
			continue
		}

		status := "     "
		if c.ExpectedRiskLevel != "" {
			if string(assessment.RiskLevel) == c.ExpectedRiskLevel {
				status = "PASS "
			} else {
				status = "FAIL "
				failures++
			}
		}
		fmt.Printf("[%d/%d] %s%3d%% %-6s %q", i+1, len(cases), status,
			assessment.RiskPercentage, assessment.RiskLevel, c.Title)
		if c.ExpectedRiskLevel != "" && status == "FAIL " {
			fmt.Printf(" (expected %s)", c.ExpectedRiskLevel)
		}
		fmt.Println()
	}

	fmt.Printf("\n%d/%d cases passed\n", len(cases)-failures, len(cases))
	if failures > 0 {
		return fmt.Errorf("%d batch cases failed", failures)
	}
	return nil
}
