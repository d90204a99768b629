// Package controllers holds the HTTP handlers. Controllers translate the
// wire format in and out and map service errors to status codes; all
// business rules live in the services.
package controllers

import (
	"errors"
	"net/http"

	"github.com/modece/storefront/app/services"
	"github.com/modece/storefront/pkg/bind"
	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/response"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.FailValidation(w, errs)
		return
	}

	token, err := c.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		response.Fail(w, http.StatusBadRequest, "Please enter a valid email")
	case errors.Is(err, services.ErrWeakPassword):
		response.Fail(w, http.StatusBadRequest, "Please enter a strong password")
	case errors.Is(err, services.ErrDuplicateUser):
		response.Fail(w, http.StatusBadRequest, "User already exists")
	case err != nil:
		logger.WithCtx(r.Context()).Error("register failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.Success(w, http.StatusOK, response.M{"token": token})
	}
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.FailValidation(w, errs)
		return
	}

	token, err := c.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Fail(w, http.StatusBadRequest, "Invalid credentials")
	case err != nil:
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.Success(w, http.StatusOK, response.M{"token": token})
	}
}

// Admin handles POST /api/auth/admin.
func (c *AuthController) Admin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.FailValidation(w, errs)
		return
	}

	token, err := c.auth.LoginAdmin(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Fail(w, http.StatusBadRequest, "Invalid credentials")
	case err != nil:
		logger.WithCtx(r.Context()).Error("admin login failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.Success(w, http.StatusOK, response.M{"token": token})
	}
}
