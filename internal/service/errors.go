package service

import "errors"

// Sentinel errors mapped to HTTP responses by the handler layer.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrMissingField      = errors.New("required field missing")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidCardNumber = errors.New("card number must be 16 digits")
	ErrInvalidExpiry     = errors.New("invalid card expiry")
	ErrInvalidCVV        = errors.New("invalid card cvv")
	ErrCheckoutInFlight  = errors.New("checkout already in progress")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrPaymentNotRefundable = errors.New("payment cannot be refunded")

	ErrSlugTaken           = errors.New("slug already in use")
	ErrInvalidSettingValue = errors.New("setting value does not match its declared type")

	ErrDiscountCodeInvalid = errors.New("discount code is invalid")
	ErrDiscountCodeExpired = errors.New("discount code has expired")
	ErrDiscountMinNotMet   = errors.New("order does not reach the code minimum")
	ErrDiscountUsedUp      = errors.New("discount code usage limit reached")

	ErrAlreadySubscribed = errors.New("email already subscribed")

	ErrEmailDisabled      = errors.New("email sending is disabled")
	ErrEmailNotConfigured = errors.New("smtp is not configured")
)
