package search

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// BreakerConfig holds configuration for the search circuit breaker
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig returns the breaker settings used in production
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "search-backend",
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// BreakerBackend guards another SearchBackend with a circuit breaker.
// Backend errors surface as external errors; rejections by an open breaker
// surface as unavailable.
type BreakerBackend struct {
	next ports.SearchBackend
	cb   *gobreaker.CircuitBreaker
}

var _ ports.SearchBackend = (*BreakerBackend)(nil)

// NewBreakerBackend wraps next
func NewBreakerBackend(next ports.SearchBackend, config BreakerConfig, logger *zap.Logger) *BreakerBackend {
	if logger == nil {
		logger = zap.NewNop()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < config.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= config.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerBackend{next: next, cb: cb}
}

// Search delegates to the wrapped backend through the breaker
func (b *BreakerBackend) Search(ctx context.Context, query string, fetchedAt time.Time) ([]entities.Source, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Search(ctx, query, fetchedAt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, pkgerrors.NewUnavailableError("search").WithCause(err)
		}
		return nil, pkgerrors.NewExternalError("search", err)
	}
	return result.([]entities.Source), nil
}

// State reports the breaker state
func (b *BreakerBackend) State() gobreaker.State {
	return b.cb.State()
}
