package public

import (
	"errors"

	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps one business error onto a response code and
// message key.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrBundleNotFound, code: response.CodeNotFound, key: "error.bundle_not_found"},
	{target: service.ErrBundleNotAvailable, code: response.CodeBadRequest, key: "error.bundle_not_available"},
	{target: service.ErrBundlePriceInvalid, code: response.CodeBadRequest, key: "error.bundle_price_invalid"},
	{target: service.ErrCartLineInvalid, code: response.CodeBadRequest, key: "error.cart_line_invalid"},
	{target: service.ErrCartStoreFailed, code: response.CodeInternal, key: "error.cart_store_failed"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrCartLineInvalid, code: response.CodeBadRequest, key: "error.cart_line_invalid"},
	{target: service.ErrCartStoreFailed, code: response.CodeInternal, key: "error.cart_store_failed"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrBundleNotAvailable, code: response.CodeBadRequest, key: "error.bundle_not_available"},
	{target: service.ErrBundlePriceInvalid, code: response.CodeBadRequest, key: "error.bundle_price_invalid"},
	{target: service.ErrNotAuthorized, code: response.CodeUnauthorized, key: "error.unauthorized"},
}

var orderQueryErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
}

var orderCancelErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrCancelNotAllowed, code: response.CodeForbidden, key: "error.order_cancel_denied"},
	{target: service.ErrNotAuthorized, code: response.CodeForbidden, key: "error.forbidden"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_create_failed")
}

func respondOrderQueryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderQueryErrorRules, response.CodeInternal, "error.order_fetch_failed")
}

func respondOrderCancelError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCancelErrorRules, response.CodeInternal, "error.order_update_failed")
}
