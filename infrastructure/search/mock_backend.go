// Package search holds the search backend adapters.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
)

// MockBackend fabricates two sources per query. Everything except
// FetchedAt is derived from the query text alone.
type MockBackend struct{}

var _ ports.SearchBackend = MockBackend{}

// NewMockBackend creates the deterministic backend
func NewMockBackend() MockBackend {
	return MockBackend{}
}

// Search returns the overview and news results for query
func (MockBackend) Search(ctx context.Context, query string, fetchedAt time.Time) ([]entities.Source, error) {
	q := strings.TrimSpace(query)
	slug := strings.ReplaceAll(q, " ", "-")

	return []entities.Source{
		{
			Title:      fmt.Sprintf("Overview of %s", q),
			URL:        fmt.Sprintf("https://example.com/%s", slug),
			Snippet:    fmt.Sprintf("This is a short snippet summarizing %s.", q),
			FetchedAt:  fetchedAt,
			Confidence: 0.9,
		},
		{
			Title:      fmt.Sprintf("Recent news about %s", q),
			URL:        fmt.Sprintf("https://news.example.com/%s", slug),
			Snippet:    fmt.Sprintf("Latest news and analysis on %s.", q),
			FetchedAt:  fetchedAt,
			Confidence: 0.75,
		},
	}, nil
}
