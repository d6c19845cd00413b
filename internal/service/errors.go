package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto
// response codes and i18n keys.
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderFetchFailed     = errors.New("order fetch failed")
	ErrOrderUpdateFailed    = errors.New("order update failed")
	ErrOrderCreateFailed    = errors.New("order create failed")
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrOrderCancelled       = errors.New("order is cancelled")
	ErrCancelNotAllowed     = errors.New("order can no longer be cancelled")
	ErrOrderStatusInvalid   = errors.New("invalid order status")
	ErrPaymentStatusInvalid = errors.New("invalid payment status")

	ErrInvalidInput = errors.New("invalid input")

	ErrCartEmpty       = errors.New("cart is empty")
	ErrCartLineInvalid = errors.New("invalid cart line")
	ErrCartStoreFailed = errors.New("cart store unavailable")

	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotAvailable = errors.New("product not available")
	ErrBundleNotFound      = errors.New("bundle not found")
	ErrBundleNotAvailable  = errors.New("bundle not available")
	ErrBundlePriceInvalid  = errors.New("bundle price unreadable")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSlugTaken           = errors.New("slug already in use")
	ErrCategoryNotEmpty    = errors.New("category still has products")
)
