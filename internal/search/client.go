// Package search provides the web-search collaborator, result trust
// classification, and keyword query construction for corroboration.
package search

import (
	"context"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/newsguard/internal/types"
)

// maxPerQuery is the Custom Search API's per-call result ceiling.
const maxPerQuery = 10

// Searcher is the external search collaborator. Implementations fail soft:
// the corroboration scorer treats an error exactly like an empty result list.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error)
}

// GoogleSearcher queries the Google Custom Search API.
type GoogleSearcher struct {
	svc     *customsearch.Service
	cx      string
	verbose bool
}

// NewGoogleSearcher creates a searcher backed by the Custom Search API.
func NewGoogleSearcher(ctx context.Context, apiKey, cx string, verbose bool) (*GoogleSearcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleSearcher{svc: svc, cx: cx, verbose: verbose}, nil
}

// Search runs one query and returns trust-classified results. Transport
// failures are logged and surface as an empty list with the error; callers
// must not escalate them.
func (g *GoogleSearcher) Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error) {
	if limit <= 0 || limit > maxPerQuery {
		limit = maxPerQuery
	}

	resp, err := g.svc.Cse.List().Cx(g.cx).Q(query).Num(int64(limit)).Context(ctx).Do()
	if err != nil {
		if g.verbose {
			log.Printf("[SEARCH] query %q failed: %v", query, err)
		}
		return nil, err
	}

	results := make([]types.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		snippet := item.Snippet
		if snippet == "" && item.HtmlSnippet != "" {
			snippet = stripHTML(item.HtmlSnippet)
		}

		domain := ApexDomain(item.Link)
		results = append(results, types.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: snippet,
			Domain:  domain,
			Trusted: Trusted(domain),
		})
	}
	return results, nil
}

// stripHTML flattens a highlighted HTML snippet to plain text.
func stripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.TrimSpace(doc.Text())
}
