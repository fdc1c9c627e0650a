package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one tire line in a cart, a snapshot of the tire at the time it
// was added plus the accumulated quantity.
type CartItem struct {
	TireID int     `json:"tireId"`
	Brand  string  `json:"brand"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Class  string  `json:"class"`
	Qty    int     `json:"qty"`
}

// Cart holds an in-memory shopping cart. Carts are not persisted.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Totals is the price breakdown of a cart. EcoFee is zero unless the eco-fee
// catalogue variant is enabled; VAT is applied on subtotal plus eco-fee.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	EcoFee   float64 `json:"ecoFee"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

// CartResponse is the cart together with its computed totals.
type CartResponse struct {
	Cart
	Totals Totals `json:"totals"`
}

// AddItemRequest is the payload for adding a tire to a cart.
type AddItemRequest struct {
	TireID int `json:"tireId"`
	Qty    int `json:"qty"`
}

// SetQtyRequest is the payload for setting a cart line quantity.
type SetQtyRequest struct {
	Qty int `json:"qty"`
}

// CheckoutRequest is the payload for turning a cart into an order.
type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
}
