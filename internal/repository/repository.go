package repository

import (
	"context"
	"errors"

	"zigueroutine/internal/model"
)

// ErrCodeExists is returned by Create when a record for the order code is
// already present in storage.
var ErrCodeExists = errors.New("order code already exists")

// OrderRepository defines the interface for order storage.
type OrderRepository interface {
	// Create persists a new order record keyed by its code. The write is
	// all-or-nothing: either the full record lands, or nothing is visible.
	// Returns ErrCodeExists if a record with the same code already exists.
	Create(ctx context.Context, order *model.Order) error

	// GetByCode retrieves an order by its code. Returns nil if no record
	// exists for the code.
	GetByCode(ctx context.Context, code string) (*model.Order, error)

	// ListCodes enumerates the codes of all persisted orders.
	ListCodes(ctx context.Context) ([]string, error)
}
