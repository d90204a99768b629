// Package auth issues and verifies the signed session tokens carried by
// storefront clients, and hashes user passwords.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleAdmin marks an admin session in the token claims.
	RoleAdmin = "admin"

	// UserTokenTTL is the lifetime of a regular session.
	UserTokenTTL = 72 * time.Hour

	// AdminTokenTTL is the shorter lifetime of an admin session.
	AdminTokenTTL = 24 * time.Hour
)

var (
	// ErrTokenInvalid covers malformed tokens, signature mismatches and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("auth: invalid token")

	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
)

// Claims is the typed JWT payload. Regular sessions carry the user id;
// admin sessions carry the admin email and the admin role flag.
type Claims struct {
	UserID string `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the admin role flag.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// TokenService signs and verifies session tokens with a single
// server-held secret. Tokens are stateless: there is no revocation list,
// and rotating the secret invalidates every outstanding session.
type TokenService struct {
	secret []byte
}

// NewTokenService returns a TokenService signing with secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs claims with an expiry of now + ttl.
func (s *TokenService) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry of token and returns its claims.
func (s *TokenService) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
