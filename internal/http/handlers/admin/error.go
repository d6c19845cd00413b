package admin

import (
	"errors"

	handlershared "github.com/dentora-store/internal/http/handlers/shared"
	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

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

var paymentTransitionErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrInvalidAmount, code: response.CodeBadRequest, key: "error.invalid_amount"},
	{target: service.ErrOrderCancelled, code: response.CodeBadRequest, key: "error.order_cancelled"},
	{target: service.ErrPaymentStatusInvalid, code: response.CodeBadRequest, key: "error.payment_status_invalid"},
	{target: service.ErrNotAuthorized, code: response.CodeForbidden, key: "error.forbidden"},
}

var statusTransitionErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
	{target: service.ErrNotAuthorized, code: response.CodeForbidden, key: "error.forbidden"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrBundleNotFound, code: response.CodeNotFound, key: "error.bundle_not_found"},
	{target: service.ErrBundlePriceInvalid, code: response.CodeBadRequest, key: "error.bundle_price_invalid"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrCategoryNotEmpty, code: response.CodeConflict, key: "error.category_not_empty"},
	{target: service.ErrSlugTaken, code: response.CodeConflict, key: "error.slug_taken"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.invalid_input"},
}

func respondPaymentTransitionError(c *gin.Context, err error) {
	respondWithMappedError(c, err, paymentTransitionErrorRules, response.CodeInternal, "error.order_update_failed")
}

func respondStatusTransitionError(c *gin.Context, err error) {
	respondWithMappedError(c, err, statusTransitionErrorRules, response.CodeInternal, "error.order_update_failed")
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
}
