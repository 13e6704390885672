package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/bookshop-go/apperror"
	"github.com/user/bookshop-go/config"
	"github.com/user/bookshop-go/users"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		SigningSecret: "test-secret",
		TokenTTL:      time.Hour,
		CookieName:    "bookshop-session",
	}
}

func newTestService(t *testing.T, cfg config.AuthConfig) *Service {
	t.Helper()
	registry := users.NewRegistry()
	require.NoError(t, registry.Register("alice", "pw1"))
	return NewService(registry, cfg)
}

func TestIssueAndResolveToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testConfig())

	token, expiresAt, err := svc.IssueToken("alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	username, err := svc.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestResolveExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.TokenTTL = -time.Second
	svc := newTestService(t, cfg)

	token, _, err := svc.IssueToken("alice")
	require.NoError(t, err)

	_, err = svc.ResolveToken(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestResolveTokenWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testConfig())
	token, _, err := svc.IssueToken("alice")
	require.NoError(t, err)

	other := testConfig()
	other.SigningSecret = "a-different-secret"
	otherSvc := newTestService(t, other)

	_, err = otherSvc.ResolveToken(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestResolveTokenMalformed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testConfig())

	for _, token := range []string{"", "not.a.token", "garbage"} {
		_, err := svc.ResolveToken(token)
		require.Error(t, err, "token %q", token)
		assert.True(t, apperror.IsAuthError(err))
	}
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testConfig())

	resp, err := svc.Login(LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "Customer successfully logged in", resp.Message)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.InDelta(t, 3600, resp.ExpiresIn, 5)

	username, err := svc.ResolveToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testConfig())

	_, err := svc.Login(LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperror.IsCredentialError(err))

	_, err = svc.Login(LoginRequest{Username: "nobody", Password: "pw1"})
	require.Error(t, err)
	assert.True(t, apperror.IsCredentialError(err))
}

func TestLoginMissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testConfig())

	for _, req := range []LoginRequest{
		{Username: "", Password: "pw1"},
		{Username: "alice", Password: ""},
		{},
	} {
		_, err := svc.Login(req)
		require.Error(t, err)
		assert.True(t, apperror.IsValidationError(err))
	}
}
