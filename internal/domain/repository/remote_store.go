package repository

import (
	"context"

	"shopsync/internal/domain/entity"
)

// The backend is the single source of truth for cart, wishlist, orders and
// the catalog. These ports are its client-side contract; every write
// returns the canonical state the server settled on, which may differ from
// what was requested (quantities are clamped against stock server-side).

type CartRemote interface {
	// Get fetches the user's current cart.
	Get(ctx context.Context, userID string) ([]entity.CartLine, error)

	// SetQuantity sets the absolute quantity for a product. A quantity at
	// or below zero removes the line. Returns the canonical cart.
	SetQuantity(ctx context.Context, userID, productID string, quantity int) ([]entity.CartLine, error)
}

type WishlistRemote interface {
	// Get fetches the user's current wishlist membership.
	Get(ctx context.Context, userID string) ([]string, error)

	// Toggle flips membership for a product and returns the canonical
	// membership set.
	Toggle(ctx context.Context, userID, productID string) ([]string, error)
}

type ProductQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

type ProductRemote interface {
	List(ctx context.Context, query ProductQuery) ([]entity.Product, int64, error)
	GetByID(ctx context.Context, productID string) (*entity.Product, error)
}

type OrderRemote interface {
	List(ctx context.Context, userID string) ([]entity.Order, error)
	Place(ctx context.Context, userID string, address entity.ShippingAddress) (*entity.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error)
	Return(ctx context.Context, userID, orderID string) (*entity.Order, error)
}

type AuthRemote interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
