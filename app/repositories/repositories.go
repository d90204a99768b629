// Package repositories provides the MongoDB-backed stores.
//
// Each store is exposed as an interface so services can be tested against
// in-memory fakes; the Mongo* implementations are the production drivers.
package repositories

import (
	"context"
	"errors"

	"github.com/modece/storefront/app/models"
)

var (
	// ErrNotFound is returned when no document matches the query, or
	// when a supplied id is not a valid ObjectID hex string.
	ErrNotFound = errors.New("repositories: not found")

	// ErrDuplicateEmail is returned when a user insert violates the
	// unique email index.
	ErrDuplicateEmail = errors.New("repositories: email already taken")
)

// UserRepository is the credential store.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ProductRepository is the catalog store.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository persists checkout-stub orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ByUser(ctx context.Context, userID string) ([]models.Order, error)
}
