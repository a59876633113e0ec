package ports

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"infograph-backend/domain/core/entities"
)

// SearchBackend produces sources for a query. Implementations must be
// deterministic in everything except fetchedAt.
type SearchBackend interface {
	Search(ctx context.Context, query string, fetchedAt time.Time) ([]entities.Source, error)
}

// Stat is one labelled value drawn as a bar
type Stat struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// InfographicContent is everything that shapes a rendered infographic
type InfographicContent struct {
	Title      string
	Prompt     string
	Stats      []Stat
	Bullets    []string
	SourceURLs []string
}

// ImageRenderer turns infographic content into image bytes
type ImageRenderer interface {
	// RenderSVG must be a pure function of content
	RenderSVG(ctx context.Context, content InfographicContent) ([]byte, error)

	// RenderPNG produces PNG bytes for a previously rendered SVG
	RenderPNG(ctx context.Context, svg []byte) ([]byte, error)
}

// IdentityProfile is the normalized user profile returned by an identity provider
type IdentityProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IdentityProvider performs the OAuth2 authorization-code dance
type IdentityProvider interface {
	// LoginConfigured reports whether a client id is set
	LoginConfigured() bool

	// ExchangeEnabled reports whether a client secret is set
	ExchangeEnabled() bool

	// AuthCodeURL returns the consent page URL for state
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for tokens and a profile
	Exchange(ctx context.Context, code string) (*oauth2.Token, *IdentityProfile, error)

	// ProfileForToken resolves a bearer token issued by Exchange
	ProfileForToken(ctx context.Context, accessToken string) (*IdentityProfile, bool)
}
