package identity

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "infograph-backend/pkg/errors"
)

func TestAuthCodeURL(t *testing.T) {
	p := NewGoogleProvider(OAuthConfig{
		ClientID:    "test-client-id",
		RedirectURL: "http://localhost:8000/api/auth/callback",
	})
	require.True(t, p.LoginConfigured())
	assert.False(t, p.ExchangeEnabled())

	raw := p.AuthCodeURL("state-1")
	assert.Contains(t, raw, "scope=openid+email+profile")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "test-client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "http://localhost:8000/api/auth/callback", q.Get("redirect_uri"))
	assert.Equal(t, "state-1", q.Get("state"))
}

func TestExchange(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewGoogleProvider(OAuthConfig{ClientID: "id"}).Exchange(ctx, "abc")
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeNotImplemented))

	p := NewGoogleProvider(OAuthConfig{ClientID: "id", ClientSecret: "secret"})
	token, profile, err := p.Exchange(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, SimulatedAccessToken, token.AccessToken)
	assert.Equal(t, SimulatedRefreshToken, token.RefreshToken)
	assert.Equal(t, "123", profile.ID)
	assert.Equal(t, "user@example.com", profile.Email)

	_, _, err = p.Exchange(ctx, " ")
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestProfileForToken(t *testing.T) {
	p := NewGoogleProvider(OAuthConfig{})

	profile, ok := p.ProfileForToken(context.Background(), "fake_access_token")
	require.True(t, ok)
	assert.Equal(t, "Demo User", profile.Name)

	_, ok = p.ProfileForToken(context.Background(), "other")
	assert.False(t, ok)
}
