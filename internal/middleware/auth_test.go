// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
	"github.com/carterperez-dev/templates/contacts-api/internal/user"
)

type stubVerifier map[string]string

func (s stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*AccessTokenClaims, error) {
	if token == "expired" {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
	}
	id, ok := s[token]
	if !ok {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}
	return &AccessTokenClaims{UserID: id}, nil
}

type stubSessions struct {
	users map[string]*user.User
	err   error
}

func (s stubSessions) GetByID(_ context.Context, id string) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func strPtr(s string) *string { return &s }

func runAuth(
	t *testing.T,
	verifier TokenVerifier,
	sessions SessionStore,
	header string,
) (*httptest.ResponseRecorder, *user.User) {
	t.Helper()

	var seen *user.User
	h := Authenticator(verifier, sessions)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			seen = GetUser(r.Context())
			w.WriteHeader(http.StatusOK)
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, seen
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Not authorized", resp.Error.Message)
	return resp.Error.Code
}

func TestAuthenticator(t *testing.T) {
	ann := &user.User{ID: "u-1", Email: "ann@example.com", Token: strPtr("good")}
	loggedOut := &user.User{ID: "u-2", Email: "bob@example.com"}

	verifier := stubVerifier{
		"good":   "u-1",
		"stale":  "u-1",
		"ghost":  "u-9",
		"logout": "u-2",
	}
	sessions := stubSessions{users: map[string]*user.User{
		"u-1": ann,
		"u-2": loggedOut,
	}}

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing header", "", "UNAUTHORIZED"},
		{"wrong scheme", "Basic good", "UNAUTHORIZED"},
		{"invalid token", "Bearer nope", "TOKEN_INVALID"},
		{"expired token", "Bearer expired", "TOKEN_EXPIRED"},
		{"unknown user", "Bearer ghost", "UNAUTHORIZED"},
		{"replaced session", "Bearer stale", "TOKEN_REVOKED"},
		{"logged out", "Bearer logout", "TOKEN_REVOKED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, seen := runAuth(t, verifier, sessions, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}

	t.Run("valid session", func(t *testing.T) {
		rec, seen := runAuth(t, verifier, sessions, "bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "u-1", seen.ID)
	})
}

func TestAuthenticatorStoreFailure(t *testing.T) {
	rec, _ := runAuth(t,
		stubVerifier{"good": "u-1"},
		stubSessions{err: errors.New("db down")},
		"Bearer good",
	)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUserContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetUser(ctx))
	assert.Empty(t, GetUserID(ctx))

	ctx = WithUser(ctx, &user.User{ID: "u-1"})
	assert.Equal(t, "u-1", GetUserID(ctx))
}
