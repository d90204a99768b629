// Package services holds the business logic between the HTTP controllers
// and the repositories.
package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/repositories"
	"github.com/modece/storefront/config"
	"github.com/modece/storefront/pkg/auth"
	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/validate"
)

var (
	ErrInvalidEmail = errors.New("services: please enter a valid email")

	ErrWeakPassword = errors.New("services: please enter a strong password")

	ErrDuplicateUser = errors.New("services: user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password
	// so a login probe cannot tell registered emails apart.
	ErrInvalidCredentials = errors.New("services: invalid credentials")
)

const minPasswordLen = 8

// AuthService registers shoppers and issues session tokens for shoppers
// and for the single configured admin.
type AuthService struct {
	users  repositories.UserRepository
	tokens *auth.TokenService
	cfg    *config.Config
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenService, cfg *config.Config) *AuthService {
	return &AuthService{users: users, tokens: tokens, cfg: cfg}
}

// Register creates a user and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if !validate.Email(email) {
		return "", ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return "", ErrWeakPassword
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", ErrDuplicateUser
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{Name: name, Email: email, Password: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return "", ErrDuplicateUser
		}
		return "", err
	}

	logger.WithCtx(ctx).Info("user registered", "user_id", user.ID.Hex())

	return s.tokens.Issue(auth.Claims{UserID: user.ID.Hex()}, auth.UserTokenTTL)
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(auth.Claims{UserID: user.ID.Hex()}, auth.UserTokenTTL)
}

// LoginAdmin checks the submitted pair against the configured admin
// credentials and returns a short-lived admin token. Both comparisons run
// in constant time and both run unconditionally.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.AdminEmail))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword))
	if emailOK&passOK != 1 {
		return "", ErrInvalidCredentials
	}

	logger.WithCtx(ctx).Info("admin login", "email", email)

	return s.tokens.Issue(auth.Claims{Email: email, Role: auth.RoleAdmin}, auth.AdminTokenTTL)
}
