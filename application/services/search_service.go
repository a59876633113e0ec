package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	"infograph-backend/pkg/auth"
	pkgerrors "infograph-backend/pkg/errors"
	"infograph-backend/pkg/observability"
)

const searchCachePrefix = "search:"

// SearchConfig holds the cache and rate limit settings
type SearchConfig struct {
	CacheTTL   time.Duration
	RateLimit  int
	RateWindow time.Duration
}

// SearchService fronts the search backend with a TTL cache and, for
// client-facing calls, a per-client rate limit.
type SearchService struct {
	backend ports.SearchBackend
	cache   ports.Cache
	limiter auth.RateLimiter
	config  SearchConfig
	metrics *observability.Collector
	logger  *zap.Logger
	now     func() time.Time
}

// NewSearchService creates a new search service
func NewSearchService(
	backend ports.SearchBackend,
	cache ports.Cache,
	limiter auth.RateLimiter,
	config SearchConfig,
	metrics *observability.Collector,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		backend: backend,
		cache:   cache,
		limiter: limiter,
		config:  config,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for fetched_at
func (s *SearchService) WithClock(now func() time.Time) *SearchService {
	s.now = now
	return s
}

// Search returns the sources for query without rate limiting
func (s *SearchService) Search(ctx context.Context, query string) ([]entities.Source, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, pkgerrors.NewValidationError("query parameter is required")
	}
	return s.lookup(ctx, q)
}

// SearchForClient is Search behind the per-client sliding window. Cache
// hits count towards the window.
func (s *SearchService) SearchForClient(ctx context.Context, clientID, query string) ([]entities.Source, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, pkgerrors.NewValidationError("query parameter is required")
	}

	allowed, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "rate limiter failed")
	}
	if !allowed {
		s.metrics.RecordSearch(observability.SearchResultRateLimited)
		s.logger.Warn("Search rate limit exceeded", zap.String("clientID", clientID))
		return nil, pkgerrors.NewRateLimitError(s.config.RateLimit, s.config.RateWindow.String())
	}

	return s.lookup(ctx, q)
}

// ClearCache drops every cached search result
func (s *SearchService) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx, searchCachePrefix+"*")
}

// lookup serves q from the cache or computes and caches it. Results are
// always decoded from the cached encoding so a miss and the hits that
// follow it return identical data.
func (s *SearchService) lookup(ctx context.Context, q string) ([]entities.Source, error) {
	ctx, span := observability.StartSpan(ctx, "search.lookup", attribute.String("search.query", q))
	defer span.End()

	key := searchCachePrefix + q
	if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var sources []entities.Source
		if err := json.Unmarshal(cached, &sources); err == nil {
			s.metrics.RecordSearch(observability.SearchResultHit)
			span.SetAttributes(attribute.Bool("search.cache_hit", true))
			return sources, nil
		}
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	results, err := s.backend.Search(ctx, q, s.now().UTC())
	if err != nil {
		span.RecordError(err)
		if pkgerrors.GetAppError(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.NewExternalError("search", err)
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to encode search results").WithCause(err)
	}
	if err := s.cache.Set(ctx, key, encoded, s.config.CacheTTL); err != nil {
		s.logger.Warn("Failed to cache search results", zap.String("key", key), zap.Error(err))
	}

	var sources []entities.Source
	if err := json.Unmarshal(encoded, &sources); err != nil {
		return nil, pkgerrors.NewInternalError("failed to decode search results").WithCause(err)
	}

	s.metrics.RecordSearch(observability.SearchResultMiss)
	span.SetAttributes(attribute.Bool("search.cache_hit", false), attribute.Int("search.results", len(sources)))
	s.logger.Debug("Search computed", zap.String("query", q), zap.Int("results", len(sources)))
	return sources, nil
}
