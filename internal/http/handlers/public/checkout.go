package public

import (
	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteCartRequest prices a cart before checkout.
type QuoteCartRequest struct {
	Items []service.CheckoutItem `json:"items" binding:"required"`
}

// QuoteCartResponse is the priced cart.
type QuoteCartResponse struct {
	Subtotal   models.Money `json:"subtotal"`
	Shipping   models.Money `json:"shipping"`
	GrandTotal models.Money `json:"grand_total"`
}

// QuoteCart returns the subtotal, shipping and grand total for a cart.
func (h *Handler) QuoteCart(c *gin.Context) {
	var req QuoteCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	totals := h.CheckoutService.ComputeTotals(req.Items)
	response.Success(c, QuoteCartResponse{
		Subtotal:   models.NewMoneyFromDecimal(totals.Subtotal),
		Shipping:   models.NewMoneyFromDecimal(totals.Shipping),
		GrandTotal: models.NewMoneyFromDecimal(totals.GrandTotal),
	})
}

// ValidateStepRequest checks one checkout step ahead of submit.
type ValidateStepRequest struct {
	Step string `json:"step" binding:"required"`
	service.CheckoutInput
}

// ValidateCheckoutStep runs the validation for a single checkout step,
// mirroring the storefront's step-by-step form gating.
func (h *Handler) ValidateCheckoutStep(c *gin.Context) {
	var req ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	var err error
	switch req.Step {
	case "info":
		err = h.CheckoutService.ValidateInfo(req.CheckoutInput)
	case "shipping":
		err = h.CheckoutService.ValidateShipping(req.CheckoutInput)
	case "payment":
		err = h.CheckoutService.ValidatePayment(req.CheckoutInput)
	default:
		respondError(c, response.CodeBadRequest, "unknown checkout step", nil)
		return
	}
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, gin.H{"valid": true})
}

// SubmitCheckout runs the full checkout sequence for a cart.
func (h *Handler) SubmitCheckout(c *gin.Context) {
	var req service.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	result, err := h.CheckoutService.Submit(req)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	requestLog(c).Infow("checkout_order_placed",
		"order_id", result.OrderID,
		"order_number", result.OrderNumber,
	)
	response.Success(c, result)
}
