package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// CORS
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// Search
	SearchCacheTTL      time.Duration `yaml:"search_cache_ttl"`
	SearchCacheMaxItems int           `yaml:"search_cache_max_items"`
	SearchRateLimit     int           `yaml:"search_rate_limit"`
	SearchRateWindow    time.Duration `yaml:"search_rate_window"`

	// Google OAuth
	GoogleClientID     string   `yaml:"google_oauth_client_id"`
	GoogleClientSecret string   `yaml:"google_oauth_client_secret"`
	GoogleRedirectURI  string   `yaml:"google_oauth_redirect_uri"`
	GoogleScopes       []string `yaml:"google_oauth_scopes"`

	// Tracing
	OTLPEndpoint string `yaml:"otel_exporter_otlp_endpoint"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing"`
	EnableCORS    bool `yaml:"enable_cors"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		ServerAddress:       ":8000",
		Environment:         "development",
		LogLevel:            "info",
		CORSAllowedOrigins:  []string{"http://localhost:3000"},
		SearchCacheTTL:      600 * time.Second,
		SearchCacheMaxItems: 1024,
		SearchRateLimit:     10,
		SearchRateWindow:    60 * time.Second,
		GoogleRedirectURI:   "http://localhost:8000/api/auth/callback",
		GoogleScopes:        []string{"openid", "email", "profile"},
		EnableMetrics:       true,
		EnableTracing:       false,
		EnableCORS:          true,
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML
// file named by CONFIG_FILE, and environment variables, in increasing
// priority.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", ",", c.CORSAllowedOrigins)

	c.SearchCacheTTL = getEnvDuration("SEARCH_CACHE_TTL", c.SearchCacheTTL)
	c.SearchCacheMaxItems = getEnvInt("SEARCH_CACHE_MAX_ITEMS", c.SearchCacheMaxItems)
	c.SearchRateLimit = getEnvInt("SEARCH_RATE_LIMIT", c.SearchRateLimit)
	c.SearchRateWindow = getEnvDuration("SEARCH_RATE_WINDOW", c.SearchRateWindow)

	c.GoogleClientID = getEnv("GOOGLE_OAUTH_CLIENT_ID", c.GoogleClientID)
	c.GoogleClientSecret = getEnv("GOOGLE_OAUTH_CLIENT_SECRET", c.GoogleClientSecret)
	c.GoogleRedirectURI = getEnv("GOOGLE_OAUTH_REDIRECT_URI", c.GoogleRedirectURI)
	c.GoogleScopes = getEnvList("GOOGLE_OAUTH_SCOPES", " ", c.GoogleScopes)

	c.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", c.OTLPEndpoint)

	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableTracing = getEnvBool("ENABLE_TRACING", c.EnableTracing)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("SERVER_ADDRESS is required")
	}
	if c.SearchCacheTTL <= 0 {
		return fmt.Errorf("SEARCH_CACHE_TTL must be positive")
	}
	if c.SearchCacheMaxItems <= 0 {
		return fmt.Errorf("SEARCH_CACHE_MAX_ITEMS must be positive")
	}
	if c.SearchRateLimit <= 0 {
		return fmt.Errorf("SEARCH_RATE_LIMIT must be positive")
	}
	if c.SearchRateWindow <= 0 {
		return fmt.Errorf("SEARCH_RATE_WINDOW must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("90s") or a bare number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvList splits a list-valued variable, dropping blank entries
func getEnvList(key, sep string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
