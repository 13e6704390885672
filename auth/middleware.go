package auth

import (
	"net/http"
	"strings"

	"github.com/user/bookshop-go/apperror"
)

const sessionTokenKey = "access_token"

// Middleware returns the session authentication middleware for protected
// routes. It accepts the token either from an "Authorization: Bearer" header
// or from the session cookie written at login, verifies it, and stores the
// resolved username in the request context. Requests without a valid token
// are rejected before any handler runs.
func (s *Service) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := s.tokenFromRequest(r)
			if err != nil {
				apperror.WriteError(w, r, err)
				return
			}

			username, err := s.ResolveToken(tokenString)
			if err != nil {
				apperror.WriteError(w, r, err)
				return
			}

			ctx := NewContextWithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest extracts the raw token, preferring the Authorization
// header over the session cookie.
func (s *Service) tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", apperror.NewAuthError("Authorization header format must be Bearer {token}", nil)
		}
		return parts[1], nil
	}

	// The cookie store verifies its own MAC; a tampered cookie simply
	// yields an empty session here and is rejected as unauthenticated.
	session, _ := s.sessions.Get(r, s.cfg.CookieName)
	if token, ok := session.Values[sessionTokenKey].(string); ok && token != "" {
		return token, nil
	}

	return "", apperror.NewAuthError("User not authenticated", nil)
}

// saveSession writes the issued token and username into the session cookie,
// mirroring the upstream behaviour of attaching the authorization to the
// server-side session at login.
func (s *Service) saveSession(w http.ResponseWriter, r *http.Request, username, token string) error {
	session, _ := s.sessions.Get(r, s.cfg.CookieName)
	session.Values[sessionTokenKey] = token
	session.Values["username"] = username
	session.Options.HttpOnly = true
	session.Options.MaxAge = int(s.cfg.TokenTTL.Seconds())
	return session.Save(r, w)
}
