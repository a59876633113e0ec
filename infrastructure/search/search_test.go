package search

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

func TestMockBackend_Deterministic(t *testing.T) {
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	results, err := NewMockBackend().Search(context.Background(), "  electric cars ", at)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, entities.Source{
		Title:      "Overview of electric cars",
		URL:        "https://example.com/electric-cars",
		Snippet:    "This is a short snippet summarizing electric cars.",
		FetchedAt:  at,
		Confidence: 0.9,
	}, results[0])
	assert.Equal(t, entities.Source{
		Title:      "Recent news about electric cars",
		URL:        "https://news.example.com/electric-cars",
		Snippet:    "Latest news and analysis on electric cars.",
		FetchedAt:  at,
		Confidence: 0.75,
	}, results[1])
}

type failingBackend struct{ calls int }

func (f *failingBackend) Search(ctx context.Context, query string, fetchedAt time.Time) ([]entities.Source, error) {
	f.calls++
	return nil, errors.New("upstream down")
}

func TestBreakerBackend_PassesThrough(t *testing.T) {
	b := NewBreakerBackend(NewMockBackend(), DefaultBreakerConfig(), nil)

	results, err := b.Search(context.Background(), "q", time.Now())
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerBackend_OpensAfterFailures(t *testing.T) {
	inner := &failingBackend{}
	config := DefaultBreakerConfig()
	config.MinRequests = 2
	b := NewBreakerBackend(inner, config, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := b.Search(ctx, "q", time.Now())
		appErr := pkgerrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.Search(ctx, "q", time.Now())
	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPStatus)
	assert.Equal(t, 2, inner.calls, "open breaker must not call the backend")
}
