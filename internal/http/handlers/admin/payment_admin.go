package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/repository"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPayments lists payments for the back office.
func (h *Handler) GetPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orderID, _ := strconv.ParseUint(c.Query("order_id"), 10, 64)

	filter := repository.PaymentListFilter{
		Page:     page,
		PageSize: pageSize,
		OrderID:  uint(orderID),
		Status:   strings.TrimSpace(c.Query("status")),
		Provider: strings.TrimSpace(c.Query("provider")),
	}

	payments, total, err := h.PaymentService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load payments", err)
		return
	}

	response.SuccessWithPage(c, payments, response.NewPagination(page, pageSize, total))
}

// RefundPayment refunds a succeeded payment and marks its order refunded.
func (h *Handler) RefundPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.PaymentService.Refund(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "payment not found", nil)
			return
		}
		if errors.Is(err, service.ErrPaymentNotRefundable) {
			respondError(c, response.CodeBadRequest, "payment not refundable", nil)
			return
		}
		respondError(c, response.CodeInternal, "refund failed", err)
		return
	}

	requestLog(c).Infow("admin_payment_refunded", "payment_id", id, "order_id", payment.OrderID)
	response.Success(c, payment)
}

// MarkPaymentFailed flags a payment as failed.
func (h *Handler) MarkPaymentFailed(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.PaymentService.MarkFailed(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "payment not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update payment", err)
		return
	}

	response.Success(c, nil)
}
