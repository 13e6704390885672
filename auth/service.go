// Package auth is responsible for authentication: validating credentials at
// login, minting time-bounded session tokens, and resolving the acting
// identity from tokens presented on protected requests. Tokens are stateless;
// nothing is stored server-side and there is no revocation mechanism.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"github.com/user/bookshop-go/apperror"
	"github.com/user/bookshop-go/config"
	"github.com/user/bookshop-go/users"
)

const tokenIssuer = "bookshop"

// Claims defines the session token payload: the authenticated username plus
// the registered issued-at/expiry claims.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service implements credential validation and token handling. Login never
// mutates shared state, so it is safe to call from any number of concurrent
// requests; registry mutation happens only in registration.
type Service struct {
	registry *users.Registry
	cfg      config.AuthConfig
	sessions *sessions.CookieStore
}

// NewService creates an auth Service backed by the given user registry.
func NewService(registry *users.Registry, cfg config.AuthConfig) *Service {
	return &Service{
		registry: registry,
		cfg:      cfg,
		sessions: sessions.NewCookieStore([]byte(cfg.SigningSecret)),
	}
}

// Login validates the credentials and returns a freshly minted session token.
// A missing field is a validation error; a failed exact match against the
// registry is a credential error.
func (s *Service) Login(req LoginRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperror.NewValidationError("Error logging in", nil)
	}

	user, ok := s.registry.Lookup(req.Username, req.Password)
	if !ok {
		return nil, apperror.NewCredentialError("Invalid Login. Check username and password", nil)
	}

	token, expiresAt, err := s.IssueToken(user.Username)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue session token", err)
	}

	return &TokenResponse{
		Message:     "Customer successfully logged in",
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	}, nil
}

// IssueToken mints a signed session token bound to the username, valid for
// the configured TTL.
func (s *Service) IssueToken(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SigningSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ResolveToken verifies a token's signature and expiry and returns the
// subject username. Every failure mode, a missing, malformed, mis-signed, or
// expired token, resolves to an auth error; the caller never learns which.
func (s *Service) ResolveToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperror.NewAuthError("User not authenticated", nil)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningSecret), nil
	})
	if err != nil {
		return "", apperror.NewAuthError("User not authenticated", err)
	}
	if !token.Valid || claims.Username == "" {
		return "", apperror.NewAuthError("User not authenticated", nil)
	}

	return claims.Username, nil
}
