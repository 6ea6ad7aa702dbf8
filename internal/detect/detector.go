// Package detect orchestrates the full assessment pipeline: prompt
// construction, rule evaluation through the generation service, reply parsing,
// weight redistribution, corroboration, and final classification.
package detect

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/newsguard/internal/corroborate"
	"github.com/jonathan/newsguard/internal/llm"
	"github.com/jonathan/newsguard/internal/parsing"
	"github.com/jonathan/newsguard/internal/rules"
	"github.com/jonathan/newsguard/internal/scoring"
	"github.com/jonathan/newsguard/internal/textscan"
	"github.com/jonathan/newsguard/internal/types"
)

// Detector runs assessments. Stateless across requests; safe for concurrent
// use. A nil corroboration scorer disables the web-verification stage.
type Detector struct {
	client        llm.Client
	scorer        *corroborate.Scorer
	ruleSet       []rules.Rule
	highThreshold int
	lowThreshold  int
	verbose       bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithThresholds overrides the risk classification thresholds.
func WithThresholds(high, low int) Option {
	return func(d *Detector) {
		d.highThreshold = high
		d.lowThreshold = low
	}
}

// WithVerbose enables progress logging.
func WithVerbose(verbose bool) Option {
	return func(d *Detector) { d.verbose = verbose }
}

// NewDetector creates a detector over the given collaborators. Pass a nil
// scorer to run rule evaluation without web corroboration.
func NewDetector(client llm.Client, scorer *corroborate.Scorer, ruleSet []rules.Rule, opts ...Option) *Detector {
	d := &Detector{
		client:        client,
		scorer:        scorer,
		ruleSet:       ruleSet,
		highThreshold: scoring.DefaultHighRiskThreshold,
		lowThreshold:  scoring.DefaultLowRiskThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs the full pipeline for one news item. A generation failure is
// fatal: no assessment is produced without a model reply. Everything after the
// reply is total and cannot fail.
func (d *Detector) Detect(ctx context.Context, item *types.NewsItem) (*types.FinalAssessment, error) {
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("invalid news item: %w", err)
	}

	prompt := rules.BuildPrompt(d.ruleSet, item)
	if d.verbose {
		log.Printf("[DETECT] evaluating %q against %d rules", item.Title, len(d.ruleSet))
	}

	raw, err := d.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("rule evaluation failed: %w", err)
	}

	parsed := parsing.Parse(raw, rules.IDs(d.ruleSet))
	return d.finish(ctx, item, parsed, raw), nil
}

// CorroborateOnly re-runs the corroboration and classification stages against
// a previously parsed assessment, without a second generation call.
func (d *Detector) CorroborateOnly(ctx context.Context, item *types.NewsItem, parsed *types.ParsedAssessment, raw string) (*types.FinalAssessment, error) {
	if d.scorer == nil {
		return nil, fmt.Errorf("corroboration is not configured")
	}
	if parsed == nil {
		return nil, fmt.Errorf("a parsed assessment is required")
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("invalid news item: %w", err)
	}
	return d.finish(ctx, item, parsed, raw), nil
}

// finish runs the deterministic tail of the pipeline: weight redistribution,
// risk recomputation, optional corroboration, classification, and style scan.
func (d *Detector) finish(ctx context.Context, item *types.NewsItem, parsed *types.ParsedAssessment, raw string) *types.FinalAssessment {
	weights := scoring.AdjustWeights(rules.Weights(d.ruleSet), parsed.UnverifiableSet())
	risk := scoring.RecomputeRisk(parsed.Verdicts, weights, parsed.RiskPercentage)

	var report *types.CorroborationReport
	if d.scorer != nil {
		report = d.scorer.Corroborate(ctx, item)
		risk = scoring.ApplyAdjustment(risk, report.RiskAdjustment)
		if d.verbose {
			log.Printf("[DETECT] corroboration: %d trusted sources, consistency %d, adjustment %+d",
				report.TrustedSourceCount, report.ConsistencyScore, report.RiskAdjustment)
		}
	}

	return &types.FinalAssessment{
		ID:             uuid.New(),
		Title:          item.Title,
		Domain:         item.SourceDomain(),
		RiskPercentage: risk,
		RiskLevel:      scoring.ClassifyRisk(risk, d.highThreshold, d.lowThreshold),
		Confidence:     scoring.DeriveConfidence(parsed, report),
		Parsed:         parsed,
		Corroboration:  report,
		StyleSignals:   textscan.ScanStyle(item.Text()),
		RawResponse:    raw,
		CreatedAt:      time.Now().UTC(),
	}
}
