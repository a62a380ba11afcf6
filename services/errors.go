package services

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCartChanged        = errors.New("cart changed during checkout")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrOrderExpired       = errors.New("order payment window has expired")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrInvalidCard        = errors.New("invalid card details")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUploadsDisabled    = errors.New("image uploads are not configured")
)
