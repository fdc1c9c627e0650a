package model

import "time"

// LineItem represents a single tire line in an order.
type LineItem struct {
	Brand string  `json:"brand"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Subtotal returns the line total (unit price times quantity).
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Qty)
}

// Order represents a persisted customer order. Orders are immutable once
// written; there is no update or delete path.
type Order struct {
	Code         string     `json:"code"`
	CustomerName string     `json:"customerName"`
	Phone        string     `json:"phone"`
	Items        []LineItem `json:"items"`
	Total        float64    `json:"total"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// OrderRequest represents the request payload for submitting an order.
// Item shape and the caller-computed total are trusted as received.
type OrderRequest struct {
	CustomerName string     `json:"customerName" validate:"required,notblank"`
	Phone        string     `json:"phone" validate:"required,notblank"`
	Items        []LineItem `json:"items" validate:"required,min=1"`
	Total        float64    `json:"total"`
}

// OrderConfirmation represents the response payload for a placed order.
type OrderConfirmation struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}
