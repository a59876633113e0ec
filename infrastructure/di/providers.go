package di

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"infograph-backend/application/ports"
	"infograph-backend/application/services"
	"infograph-backend/infrastructure/cache"
	"infograph-backend/infrastructure/config"
	"infograph-backend/infrastructure/identity"
	"infograph-backend/infrastructure/persistence/memory"
	"infograph-backend/infrastructure/render"
	"infograph-backend/infrastructure/search"
	"infograph-backend/pkg/auth"
	pkgerrors "infograph-backend/pkg/errors"
	"infograph-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance. Production builds get JSON
// output; everything else gets the development console encoder.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.LogLevel))); err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// ProvideClock supplies the wall clock used to stamp stored records
func ProvideClock() memory.Clock {
	return time.Now
}

// ProvideMetrics creates the prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector()
}

// ProvideErrorHandler exposes internal error detail outside production only
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, !cfg.IsProduction())
}

// ProvideSearchCache creates the LRU cache that fronts the search backend
func ProvideSearchCache(cfg *config.Config, logger *zap.Logger) *cache.MemoryCache {
	return cache.NewMemoryCache(cfg.SearchCacheMaxItems, logger)
}

// ProvideRateLimiter creates the per-client search limiter
func ProvideRateLimiter(cfg *config.Config) auth.RateLimiter {
	return auth.NewSlidingWindowLimiter(cfg.SearchRateLimit, cfg.SearchRateWindow)
}

// ProvideSearchBackend wraps the mock backend in a circuit breaker
func ProvideSearchBackend(logger *zap.Logger) ports.SearchBackend {
	return search.NewBreakerBackend(search.NewMockBackend(), search.DefaultBreakerConfig(), logger)
}

// ProvideSearchConfig maps configuration onto the search service settings
func ProvideSearchConfig(cfg *config.Config) services.SearchConfig {
	return services.SearchConfig{
		CacheTTL:   cfg.SearchCacheTTL,
		RateLimit:  cfg.SearchRateLimit,
		RateWindow: cfg.SearchRateWindow,
	}
}

// ProvideRenderer creates the SVG renderer
func ProvideRenderer() ports.ImageRenderer {
	return render.NewSVGRenderer()
}

// ProvideIdentityProvider creates the Google OAuth provider from config
func ProvideIdentityProvider(cfg *config.Config) ports.IdentityProvider {
	return identity.NewGoogleProvider(identity.OAuthConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes:       cfg.GoogleScopes,
	})
}
