// Package corroborate independently verifies a news item's claims against web
// search snippets, producing a consistency score and a signed risk adjustment.
package corroborate

import (
	"context"
	"log"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/newsguard/internal/search"
	"github.com/jonathan/newsguard/internal/textscan"
	"github.com/jonathan/newsguard/internal/types"
)

// Query and result bounds.
const (
	maxQueries         = 3
	DefaultMaxResults  = 8
	maxSourceSummaries = 3
)

// Per-result score term weights.
const (
	entityTermWeight = 40.0
	dataTermWeight   = 40.0
	detailTermWeight = 20.0
)

// NoEvidenceExplanation is reported when no search results were obtainable.
const NoEvidenceExplanation = "unable to verify: no search evidence available"

// Tiers holds the signed risk adjustments. The magnitudes are empirically
// chosen constants; keep them configurable rather than recalibrating.
type Tiers struct {
	StrongCorroboration  int // multiple trusted sources, high consistency
	PartialCorroboration int // at least one trusted source, moderate consistency
	WeakCorroboration    int // consistent but no authoritative source
	Divergence           int // search evidence diverges materially
	TrustedContradiction int // trusted source contradicts the content
}

// DefaultTiers returns the calibrated adjustment magnitudes.
func DefaultTiers() Tiers {
	return Tiers{
		StrongCorroboration:  -15,
		PartialCorroboration: -10,
		WeakCorroboration:    -5,
		Divergence:           10,
		TrustedContradiction: 15,
	}
}

// Scorer issues search queries for a news item and scores the evidence.
// Safe for concurrent use; it holds no per-request state.
type Scorer struct {
	searcher   search.Searcher
	tiers      Tiers
	maxResults int
	verbose    bool
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithTiers overrides the adjustment tiers.
func WithTiers(tiers Tiers) Option {
	return func(s *Scorer) { s.tiers = tiers }
}

// WithMaxResults bounds the accumulated result count.
func WithMaxResults(n int) Option {
	return func(s *Scorer) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithVerbose enables progress logging.
func WithVerbose(verbose bool) Option {
	return func(s *Scorer) { s.verbose = verbose }
}

// NewScorer creates a corroboration scorer over the given search collaborator.
func NewScorer(searcher search.Searcher, opts ...Option) *Scorer {
	s := &Scorer{
		searcher:   searcher,
		tiers:      DefaultTiers(),
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Corroborate verifies the item against search evidence. It never fails: a
// collaborator error or zero results yields a zero-evidence report.
func (s *Scorer) Corroborate(ctx context.Context, item *types.NewsItem) *types.CorroborationReport {
	queries := search.BuildQueries(item)
	if len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}

	results := s.gather(ctx, queries)
	if len(results) == 0 {
		return &types.CorroborationReport{Explanation: NoEvidenceExplanation}
	}

	entities, dataPoints := textscan.Extract(item.Text())
	newsText := item.Text()

	total := 0.0
	trustedCount := 0
	for _, result := range results {
		total += resultScore(result, newsText, entities, dataPoints)
		if result.Trusted {
			trustedCount++
		}
	}
	consistency := int(math.Round(total / float64(len(results))))

	adjustment, explanation := s.adjust(trustedCount, consistency)

	report := &types.CorroborationReport{
		TrustedSourceCount: trustedCount,
		ConsistencyScore:   consistency,
		RiskAdjustment:     adjustment,
		Explanation:        explanation,
	}
	for i, result := range results {
		if i >= maxSourceSummaries {
			break
		}
		report.Sources = append(report.Sources, types.SourceSummary{
			Domain:  result.Domain,
			Title:   result.Title,
			Trusted: result.Trusted,
		})
	}
	return report
}

// gather dispatches the queries concurrently and merges results under a single
// lock, deduplicating by link. Once maxResults accumulate, the remaining
// in-flight queries are abandoned via context cancellation.
func (s *Scorer) gather(ctx context.Context, queries []string) []types.SearchResult {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu     sync.Mutex
		merged []types.SearchResult
		seen   = make(map[string]bool)
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, query := range queries {
		g.Go(func() error {
			results, err := s.searcher.Search(gctx, query, s.maxResults)
			if err != nil {
				// Search failures are soft: treated as no evidence.
				if s.verbose {
					log.Printf("[CORROBORATE] query %q yielded no evidence: %v", query, err)
				}
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			for _, result := range results {
				if len(merged) >= s.maxResults {
					cancel()
					break
				}
				if result.Link == "" || seen[result.Link] {
					continue
				}
				seen[result.Link] = true
				merged = append(merged, result)
			}
			return nil
		})
	}
	_ = g.Wait()

	return merged
}

// resultScore rates one snippet 0-100 against the item's extracted entities,
// data points, and generic shared details. Terms whose candidate set is empty
// are omitted rather than scored as zero evidence.
func resultScore(result types.SearchResult, newsText string, entities, dataPoints []string) float64 {
	score := 0.0
	if len(entities) > 0 {
		score += entityTermWeight * float64(countEntityMatches(entities, result.Snippet)) / float64(len(entities))
	}
	if len(dataPoints) > 0 {
		score += dataTermWeight * float64(countDataPointMatches(dataPoints, result.Snippet)) / float64(len(dataPoints))
	}
	score += detailTermWeight * float64(countDetailMatches(newsText, result.Snippet))

	return math.Min(100, score)
}

// adjust maps trusted-source count and consistency score onto a signed
// adjustment. Evaluated in order; first match wins.
func (s *Scorer) adjust(trustedCount, score int) (int, string) {
	switch {
	case trustedCount >= 3 && score >= 70:
		return s.tiers.StrongCorroboration, "multiple trusted sources corroborate the story"
	case trustedCount >= 1 && score >= 50:
		return s.tiers.PartialCorroboration, "at least one trusted source partially corroborates the story"
	case trustedCount == 0 && score >= 50:
		return s.tiers.WeakCorroboration, "search evidence is consistent but no authoritative source reports it"
	case score <= 20:
		return s.tiers.Divergence, "search evidence diverges materially from the story"
	case trustedCount >= 1 && score <= 30:
		return s.tiers.TrustedContradiction, "a trusted source contradicts the story"
	default:
		return 0, "search evidence is inconclusive"
	}
}
