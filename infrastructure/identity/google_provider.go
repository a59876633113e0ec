// Package identity contains the Google OAuth2 identity provider. Token
// exchange is simulated: no request ever leaves the process.
package identity

import (
	"context"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"infograph-backend/application/ports"
	pkgerrors "infograph-backend/pkg/errors"
)

// Tokens and profile handed out by the simulated exchange
const (
	SimulatedAccessToken  = "fake_access_token"
	SimulatedRefreshToken = "fake_refresh_token"
	SimulatedUserID       = "123"
	SimulatedUserEmail    = "user@example.com"
	SimulatedUserName     = "Demo User"
)

// OAuthConfig holds the configuration needed to set up the provider
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// GoogleProvider builds real Google consent URLs and simulates the rest
type GoogleProvider struct {
	config *oauth2.Config
	now    func() time.Time
}

var _ ports.IdentityProvider = (*GoogleProvider)(nil)

// NewGoogleProvider returns a provider configured for Google login
func NewGoogleProvider(cfg OAuthConfig) *GoogleProvider {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"openid", "email", "profile"}
	}
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     strings.TrimSpace(cfg.ClientID),
			ClientSecret: strings.TrimSpace(cfg.ClientSecret),
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
		now: time.Now,
	}
}

// LoginConfigured reports whether a client id is set
func (p *GoogleProvider) LoginConfigured() bool {
	return p.config.ClientID != ""
}

// ExchangeEnabled reports whether a client secret is set
func (p *GoogleProvider) ExchangeEnabled() bool {
	return p.config.ClientSecret != ""
}

// AuthCodeURL returns the Google consent page URL for state
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange pretends to trade code for tokens and returns the demo profile
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, *ports.IdentityProfile, error) {
	if !p.ExchangeEnabled() {
		return nil, nil, pkgerrors.NewNotImplementedError("oauth client secret is not configured")
	}
	if strings.TrimSpace(code) == "" {
		return nil, nil, pkgerrors.NewValidationError("code is required")
	}

	token := &oauth2.Token{
		AccessToken:  SimulatedAccessToken,
		RefreshToken: SimulatedRefreshToken,
		TokenType:    "Bearer",
		Expiry:       p.now().Add(time.Hour),
	}
	return token, simulatedProfile(), nil
}

// ProfileForToken resolves the simulated access token
func (p *GoogleProvider) ProfileForToken(ctx context.Context, accessToken string) (*ports.IdentityProfile, bool) {
	if accessToken != SimulatedAccessToken {
		return nil, false
	}
	return simulatedProfile(), true
}

func simulatedProfile() *ports.IdentityProfile {
	return &ports.IdentityProfile{
		ID:    SimulatedUserID,
		Email: SimulatedUserEmail,
		Name:  SimulatedUserName,
	}
}
