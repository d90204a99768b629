package controllers

import (
	"errors"
	"net/http"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/services"
	"github.com/modece/storefront/pkg/bind"
	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/middleware"
	"github.com/modece/storefront/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type placeOrderRequest struct {
	Address string             `json:"address" validate:"required"`
	Items   []models.OrderLine `json:"items"`
}

// Place handles POST /api/order/place (authenticated).
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil || claims.UserID == "" {
		response.Fail(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req placeOrderRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.FailValidation(w, errs)
		return
	}

	order, err := c.orders.Place(r.Context(), claims.UserID, req.Address, req.Items)
	switch {
	case errors.Is(err, services.ErrEmptyOrder):
		response.Fail(w, http.StatusBadRequest, "Order has no items")
	case err != nil:
		logger.WithCtx(r.Context()).Error("order place failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.Success(w, http.StatusCreated, response.M{
			"message": "Order placed",
			"order":   order,
		})
	}
}

// History handles GET /api/order/list (authenticated).
func (c *OrderController) History(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil || claims.UserID == "" {
		response.Fail(w, http.StatusUnauthorized, "Access denied")
		return
	}

	orders, err := c.orders.History(r.Context(), claims.UserID)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order history failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, http.StatusOK, response.M{"orders": orders})
}
