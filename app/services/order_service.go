package services

import (
	"context"
	"errors"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/repositories"
	"github.com/modece/storefront/pkg/cart"
	"github.com/modece/storefront/pkg/logger"
)

var ErrEmptyOrder = errors.New("services: order has no items")

// OrderService turns submitted carts into pending orders. There is no
// payment integration: every order lands as "pending".
type OrderService struct {
	orders  repositories.OrderRepository
	catalog *CatalogService
}

func NewOrderService(orders repositories.OrderRepository, catalog *CatalogService) *OrderService {
	return &OrderService{orders: orders, catalog: catalog}
}

// Place replays the submitted lines through a cart, recomputes the total
// against the current catalog and persists a pending order. The client's
// idea of the amount is never trusted.
func (s *OrderService) Place(ctx context.Context, userID, address string, lines []models.OrderLine) (*models.Order, error) {
	c := cart.New()
	for _, line := range lines {
		c.Add(line.ProductID, line.Size, line.Quantity)
	}
	if c.Count() == 0 {
		return nil, ErrEmptyOrder
	}

	prices, err := s.catalog.PriceSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]models.OrderLine, 0, len(lines))
	for _, item := range c.Items() {
		kept = append(kept, models.OrderLine{
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	order := &models.Order{
		UserID:  userID,
		Lines:   kept,
		Address: address,
		Amount:  c.Amount(cart.Snapshot(prices)),
		Status:  models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("order placed",
		"order_id", order.ID.Hex(), "user_id", userID, "amount", order.Amount)

	return order, nil
}

// History returns the user's past orders, newest first.
func (s *OrderService) History(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ByUser(ctx, userID)
}
