package public

import (
	"errors"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service error to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, msg: "invalid email address"},
	{target: service.ErrMissingField, code: response.CodeBadRequest, msg: "missing required field"},
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrInvalidCardNumber, code: response.CodeBadRequest, msg: "invalid card number"},
	{target: service.ErrInvalidExpiry, code: response.CodeBadRequest, msg: "invalid card expiry"},
	{target: service.ErrInvalidCVV, code: response.CodeBadRequest, msg: "invalid card cvv"},
	{target: service.ErrCheckoutInFlight, code: response.CodeConflict, msg: "checkout already in progress"},
}

var discountErrorRules = []mappedHandlerError{
	{target: service.ErrDiscountCodeInvalid, code: response.CodeBadRequest, msg: "discount code invalid"},
	{target: service.ErrDiscountCodeExpired, code: response.CodeBadRequest, msg: "discount code expired"},
	{target: service.ErrDiscountUsedUp, code: response.CodeBadRequest, msg: "discount code usage limit reached"},
	{target: service.ErrDiscountMinNotMet, code: response.CodeBadRequest, msg: "order amount below discount minimum"},
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "checkout failed")
}

func respondDiscountError(c *gin.Context, err error) {
	respondWithMappedError(c, err, discountErrorRules, response.CodeInternal, "discount validation failed")
}
