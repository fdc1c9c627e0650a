package service

import (
	"context"

	"zigueroutine/internal/model"

	"github.com/google/uuid"
)

// OrderService defines the order intake workflow.
type OrderService interface {
	// PlaceOrder validates a submission, allocates a unique order code,
	// persists the record and dispatches the operator notification.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderConfirmation, error)

	// GetByCode retrieves a persisted order by its code.
	GetByCode(ctx context.Context, code string) (*model.Order, error)
}

// CatalogService defines read access to the tire catalogue.
type CatalogService interface {
	// ListTires returns the catalogue grouped by brand, optionally filtered
	// by brand and vehicle class.
	ListTires(ctx context.Context, brand, class string) ([]model.TireGroup, error)

	// GetTire retrieves a single tire by id.
	GetTire(ctx context.Context, id int) (*model.Tire, error)
}

// CartService defines cart operations for the storefront UI.
type CartService interface {
	// Create creates a new empty cart.
	Create(ctx context.Context) (*model.CartResponse, error)

	// Get retrieves a cart with its computed totals.
	Get(ctx context.Context, id uuid.UUID) (*model.CartResponse, error)

	// AddItem adds a tire to the cart, merging into an existing line.
	AddItem(ctx context.Context, id uuid.UUID, tireID, qty int) (*model.CartResponse, error)

	// SetQty sets a line quantity; a quantity below one removes the line.
	SetQty(ctx context.Context, id uuid.UUID, tireID, qty int) (*model.CartResponse, error)

	// RemoveItem decrements a line by one, removing it at zero.
	RemoveItem(ctx context.Context, id uuid.UUID, tireID int) (*model.CartResponse, error)

	// Checkout submits the cart as an order and clears it on success.
	Checkout(ctx context.Context, id uuid.UUID, req *model.CheckoutRequest) (*model.OrderConfirmation, error)
}
