package service

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhone       = errors.New("invalid phone")
	ErrInvalidName        = errors.New("invalid name")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidPassword    = errors.New("invalid password")

	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotAvailable = errors.New("product not available")
	ErrProductInvalid      = errors.New("product invalid")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryInvalid     = errors.New("category invalid")
	ErrCategoryInUse       = errors.New("category in use")
	ErrSlugExists          = errors.New("slug already exists")

	ErrCartItemExists    = errors.New("product already in cart")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrGuestTokenMissing = errors.New("guest token missing")

	ErrCheckoutValidation   = errors.New("checkout validation failed")
	ErrPaymentMethodInvalid = errors.New("payment method invalid")

	ErrDeliveryChargeExists   = errors.New("delivery charge already exists")
	ErrDeliveryChargeInvalid  = errors.New("delivery charge invalid")
	ErrDeliveryChargeNotFound = errors.New("delivery charge not found")

	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderStatusInvalid  = errors.New("order status invalid")
	ErrOrderStatusTerminal = errors.New("order status is terminal")

	ErrAdminLimitReached    = errors.New("admin limit reached")
	ErrAdminRequestPending  = errors.New("admin request pending")
	ErrAdminPendingApproval = errors.New("admin pending approval")
	ErrAdminRejected        = errors.New("admin request rejected")
	ErrAdminRequestNotFound = errors.New("admin request not found")
	ErrAdminRequestReviewed = errors.New("admin request already reviewed")

	ErrUploadTooLarge    = errors.New("upload too large")
	ErrUploadTypeInvalid = errors.New("upload type invalid")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
