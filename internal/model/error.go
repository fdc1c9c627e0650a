package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeInvalidCustomerName = "INVALID_CUSTOMER_NAME"
	ErrCodeInvalidPhone        = "INVALID_PHONE"
	ErrCodeEmptyOrder          = "EMPTY_ORDER"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeTireNotFound        = "TIRE_NOT_FOUND"
	ErrCodeCartNotFound        = "CART_NOT_FOUND"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodePersistFailed       = "PERSIST_FAILED"
	ErrCodeNotifyFailed        = "NOTIFY_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-logic error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCustomerName = NewDomainError(ErrCodeInvalidCustomerName, "Customer name is required")
	ErrInvalidPhone        = NewDomainError(ErrCodeInvalidPhone, "Phone number is required")
	ErrEmptyOrder          = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrTireNotFound        = NewDomainError(ErrCodeTireNotFound, "Tire not found")
	ErrCartNotFound        = NewDomainError(ErrCodeCartNotFound, "Cart not found")
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrNotifyFailed        = NewDomainError(ErrCodeNotifyFailed, "Failed to send order notification")
)
