package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infograph-backend/infrastructure/config"
)

// TestLoadConfig_Defaults checks the values used when nothing is set
func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, 600*time.Second, cfg.SearchCacheTTL)
	assert.Equal(t, 1024, cfg.SearchCacheMaxItems)
	assert.Equal(t, 10, cfg.SearchRateLimit)
	assert.Equal(t, time.Minute, cfg.SearchRateWindow)
	assert.Equal(t, "http://localhost:8000/api/auth/callback", cfg.GoogleRedirectURI)
	assert.Equal(t, []string{"openid", "email", "profile"}, cfg.GoogleScopes)
	assert.True(t, cfg.EnableMetrics)
	assert.False(t, cfg.EnableTracing)
	assert.True(t, cfg.IsDevelopment())
}

// TestLoadConfig_EnvOverrides checks that environment variables win
func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEARCH_CACHE_TTL", "30")
	t.Setenv("SEARCH_RATE_WINDOW", "2m")
	t.Setenv("SEARCH_RATE_LIMIT", "3")
	t.Setenv("GOOGLE_OAUTH_SCOPES", "openid  email")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.SearchCacheTTL)
	assert.Equal(t, 2*time.Minute, cfg.SearchRateWindow)
	assert.Equal(t, 3, cfg.SearchRateLimit)
	assert.Equal(t, []string{"openid", "email"}, cfg.GoogleScopes)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.EnableMetrics)
}

// TestLoadConfig_File checks the YAML layer and its precedence below env
func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_address: ":7000"
log_level: debug
search_cache_ttl: 5m
search_rate_limit: 20
google_oauth_client_id: file-client
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SEARCH_RATE_LIMIT", "15")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.ServerAddress)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.SearchCacheTTL)
	assert.Equal(t, 15, cfg.SearchRateLimit)
	assert.Equal(t, "file-client", cfg.GoogleClientID)
}

// TestLoadConfig_MissingFile reports unreadable config files
func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

// TestConfigValidation tests configuration validation
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults", func(*config.Config) {}, false},
		{"zero ttl", func(c *config.Config) { c.SearchCacheTTL = 0 }, true},
		{"zero cache size", func(c *config.Config) { c.SearchCacheMaxItems = 0 }, true},
		{"negative limit", func(c *config.Config) { c.SearchRateLimit = -1 }, true},
		{"zero window", func(c *config.Config) { c.SearchRateWindow = 0 }, true},
		{"no address", func(c *config.Config) { c.ServerAddress = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
