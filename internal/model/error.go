package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeNotAuthenticated     = "NOT_AUTHENTICATED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeDataUnavailable      = "DATA_UNAVAILABLE"
	ErrCodePartialOrderFailure  = "PARTIAL_ORDER_FAILURE"
	ErrCodeDuplicateCheckout    = "DUPLICATE_CHECKOUT"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeCartItemNotFound     = "CART_ITEM_NOT_FOUND"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeInvalidPaymentMethod = "INVALID_PAYMENT_METHOD"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError carries a machine-readable code alongside the message so
// handlers can map business failures to HTTP statuses without string
// matching.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotAuthenticated     = NewDomainError(ErrCodeNotAuthenticated, "No valid session")
	ErrForbidden            = NewDomainError(ErrCodeForbidden, "Role does not permit this action")
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrDataUnavailable      = NewDomainError(ErrCodeDataUnavailable, "Failed to read from the store, safe to retry")
	ErrDuplicateCheckout    = NewDomainError(ErrCodeDuplicateCheckout, "Checkout attempt already processed")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCartItemNotFound     = NewDomainError(ErrCodeCartItemNotFound, "Cart item not found")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPaymentMethod = NewDomainError(ErrCodeInvalidPaymentMethod, "Unknown payment method")
)

// ValidationError reports the first missing shipping address field.
// It short-circuits checkout before any store access.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// PartialOrderError reports a seller partition whose write sequence
// failed after the order row was created. The partially written order
// is left in place; no compensation is attempted.
type PartialOrderError struct {
	SellerID    string
	OrderNumber string
	Err         error
}

func (e *PartialOrderError) Error() string {
	return fmt.Sprintf("order fan-out failed for seller %s (order %s): %v", e.SellerID, e.OrderNumber, e.Err)
}

func (e *PartialOrderError) Unwrap() error {
	return e.Err
}
