package public

import (
	"github.com/straatfanaat/shop/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ValidateDiscountRequest checks a code against a cart subtotal.
type ValidateDiscountRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required"`
}

// ValidateDiscount checks a discount code and returns the amount it
// would take off the cart.
func (h *Handler) ValidateDiscount(c *gin.Context) {
	var req ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	validation, err := h.DiscountService.Validate(req.Code, decimal.NewFromFloat(req.Subtotal))
	if err != nil {
		respondDiscountError(c, err)
		return
	}

	response.Success(c, validation)
}
