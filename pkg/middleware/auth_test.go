package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modece/storefront/pkg/auth"
)

func protected(tokens *auth.TokenService, adminOnly bool) http.Handler {
	var final http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromCtx(r.Context())
		if claims == nil {
			http.Error(w, "no claims in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if adminOnly {
		final = RequireAdmin(final)
	}
	return RequireAuth(tokens)(final)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	h := protected(tokens, false)

	for _, header := range []string{"", "Basic dXNlcg==", "Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	h := protected(tokens, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	token, err := tokens.Issue(auth.Claims{UserID: "u1"}, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(tokens, false).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthAttachesClaims(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	token, err := tokens.Issue(auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(tokens, false).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAdminRejectsUserToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	token, err := tokens.Issue(auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(tokens, true).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdminToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	token, err := tokens.Issue(auth.Claims{Email: "admin@modece.com", Role: auth.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(tokens, true).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
