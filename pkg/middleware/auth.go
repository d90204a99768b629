// Package middleware provides the HTTP middleware used by the storefront.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/modece/storefront/pkg/auth"
	"github.com/modece/storefront/pkg/response"
)

// claimsKey is the unexported key used to store verified claims in context.
type claimsKey struct{}

// ClaimsFromCtx returns the claims attached by RequireAuth, or nil.
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims
}

// RequireAuth validates the Authorization: Bearer header against tokens
// and attaches the decoded claims to the request context.
// Missing or malformed headers and invalid or expired tokens are rejected
// with 401.
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Fail(w, http.StatusUnauthorized, "Access denied")
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				response.Fail(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose claims lack the admin role flag.
// Must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ClaimsFromCtx(r.Context()).IsAdmin() {
			response.Fail(w, http.StatusForbidden, "Admins only")
			return
		}
		next.ServeHTTP(w, r)
	})
}
