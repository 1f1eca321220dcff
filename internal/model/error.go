package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeInvalidCoupon       = "INVALID_COUPON"
	ErrCodeInvalidCouponLength = "INVALID_COUPON_LENGTH"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeProfileNotFound     = "PROFILE_NOT_FOUND"
	ErrCodeAddressNotFound     = "ADDRESS_NOT_FOUND"
	ErrCodeBannerNotFound      = "BANNER_NOT_FOUND"
	ErrCodeCartEmpty           = "CART_EMPTY"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidPostalCode   = "INVALID_POSTAL_CODE"
	ErrCodeInvalidStatus       = "INVALID_STATUS_TRANSITION"
	ErrCodeEmailTaken          = "EMAIL_TAKEN"
	ErrCodeBadCredentials      = "BAD_CREDENTIALS"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeShippingConfig      = "SHIPPING_NOT_CONFIGURED"
	ErrCodeCarrierError        = "CARRIER_ERROR"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
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
	ErrInvalidCoupon       = NewDomainError(ErrCodeInvalidCoupon, "Coupon code must appear in at least two coupon files")
	ErrInvalidCouponLength = NewDomainError(ErrCodeInvalidCouponLength, "Coupon code must be between 8 and 10 characters")
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrProfileNotFound     = NewDomainError(ErrCodeProfileNotFound, "Profile not found")
	ErrAddressNotFound     = NewDomainError(ErrCodeAddressNotFound, "Address not found")
	ErrBannerNotFound      = NewDomainError(ErrCodeBannerNotFound, "Banner not found")
	ErrCartEmpty           = NewDomainError(ErrCodeCartEmpty, "Cart is empty")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPostalCode   = NewDomainError(ErrCodeInvalidPostalCode, "Postal code must be exactly 8 digits")
	ErrInvalidStatus       = NewDomainError(ErrCodeInvalidStatus, "Order status can only move forward")
	ErrEmailTaken          = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrBadCredentials      = NewDomainError(ErrCodeBadCredentials, "Invalid email or password")
	ErrShippingConfig      = NewDomainError(ErrCodeShippingConfig, "Shipping token is not configured on the server")
)
