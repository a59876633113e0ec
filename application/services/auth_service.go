package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// TokenSet is the token part of a callback response
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// CallbackResult is the outcome of an OAuth callback. Without a client
// secret only Code and Message are set.
type CallbackResult struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Code    string         `json:"code,omitempty"`
	Tokens  *TokenSet      `json:"tokens,omitempty"`
	User    *entities.User `json:"user,omitempty"`
}

// AuthService is the placeholder login flow. It identifies callers but
// authorizes nothing.
type AuthService struct {
	provider ports.IdentityProvider
	users    *UserService
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(provider ports.IdentityProvider, users *UserService, logger *zap.Logger) *AuthService {
	return &AuthService{
		provider: provider,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// Login returns the provider consent URL for a fresh state value
func (s *AuthService) Login(ctx context.Context) (string, error) {
	if !s.provider.LoginConfigured() {
		return "", pkgerrors.NewNotImplementedError("Google OAuth client id is not configured")
	}
	return s.provider.AuthCodeURL(uuid.NewString()), nil
}

// Callback handles the provider redirect
func (s *AuthService) Callback(ctx context.Context, code, providerError string) (*CallbackResult, error) {
	if providerError != "" {
		return nil, pkgerrors.NewValidationError("oauth error: " + providerError)
	}
	if strings.TrimSpace(code) == "" {
		return nil, pkgerrors.NewValidationError("code is required")
	}

	if !s.provider.ExchangeEnabled() {
		return &CallbackResult{
			Status:  "ok",
			Message: "Received code (placeholder)",
			Code:    code,
		}, nil
	}

	token, profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Upsert(ctx, *profile)
	if err != nil {
		return nil, err
	}

	expiresIn := 0
	if !token.Expiry.IsZero() {
		expiresIn = int(token.Expiry.Sub(s.now()).Seconds())
	}

	s.logger.Info("OAuth callback completed", zap.String("userID", user.ID))
	return &CallbackResult{
		Status: "ok",
		Tokens: &TokenSet{
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			TokenType:    token.TokenType,
			ExpiresIn:    expiresIn,
		},
		User: user,
	}, nil
}

// Me resolves the caller from an X-User-Id value or a bearer token
func (s *AuthService) Me(ctx context.Context, userID, authorization string) (*entities.User, error) {
	if userID = strings.TrimSpace(userID); userID != "" {
		return s.users.Get(ctx, userID)
	}

	token := bearerToken(authorization)
	if token == "" {
		return nil, pkgerrors.NewUnauthorizedError("missing credentials")
	}

	profile, ok := s.provider.ProfileForToken(ctx, token)
	if !ok {
		return nil, pkgerrors.NewUnauthorizedError("invalid access token")
	}

	user, err := s.users.Get(ctx, profile.ID)
	if err == nil {
		return user, nil
	}
	if !pkgerrors.IsNotFound(err) {
		return nil, err
	}

	name := profile.Name
	return &entities.User{
		ID:        profile.ID,
		Email:     profile.Email,
		Name:      &name,
		CreatedAt: s.now().UTC(),
	}, nil
}

// Logout deletes the stored account of the caller
func (s *AuthService) Logout(ctx context.Context, userID, authorization string) error {
	user, err := s.Me(ctx, userID, authorization)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, user.ID)
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
