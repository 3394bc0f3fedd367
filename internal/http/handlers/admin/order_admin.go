package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/repository"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetOrders lists orders for the back office.
func (h *Handler) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	customerID, _ := strconv.ParseUint(c.Query("customer_id"), 10, 64)

	filter := repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		CustomerID:    uint(customerID),
		Status:        strings.TrimSpace(c.Query("status")),
		PaymentStatus: strings.TrimSpace(c.Query("payment_status")),
		OrderNumber:   strings.TrimSpace(c.Query("order_number")),
		Email:         strings.TrimSpace(c.Query("email")),
	}
	if from, err := parseTimeNullable(c.Query("from")); err == nil {
		filter.CreatedFrom = from
	}
	if to, err := parseTimeNullable(c.Query("to")); err == nil {
		filter.CreatedTo = to
	}

	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}

	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder returns one order with items and payments.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.OrderService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load order", err)
		return
	}

	response.Success(c, order)
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along the allowed status graph.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			respondError(c, response.CodeBadRequest, "unknown order status", nil)
			return
		}
		if errors.Is(err, service.ErrInvalidTransition) {
			respondError(c, response.CodeBadRequest, "status transition not allowed", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update order", err)
		return
	}

	requestLog(c).Infow("admin_order_status_updated", "order_id", id, "status", req.Status)
	response.Success(c, order)
}

// UpdateOrderFulfillmentRequest sets the shipment progress directly.
type UpdateOrderFulfillmentRequest struct {
	FulfillmentStatus string `json:"fulfillment_status" binding:"required"`
	TrackingNumber    string `json:"tracking_number"`
}

// UpdateOrderFulfillment records the fulfillment state of an order,
// optionally attaching a tracking number (which stamps shipped_at).
func (h *Handler) UpdateOrderFulfillment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderFulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.UpdateFulfillment(id, req.FulfillmentStatus, req.TrackingNumber)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			respondError(c, response.CodeBadRequest, "unknown fulfillment status", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update order", err)
		return
	}

	requestLog(c).Infow("admin_order_fulfillment_updated", "order_id", id, "fulfillment_status", req.FulfillmentStatus)
	response.Success(c, order)
}

// UpdateOrderTrackingRequest sets the shipment tracking reference.
type UpdateOrderTrackingRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	TrackingURL    string `json:"tracking_url"`
}

// UpdateOrderTracking attaches tracking details to an order.
func (h *Handler) UpdateOrderTracking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.SetTracking(id, req.TrackingNumber, req.TrackingURL)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update order", err)
		return
	}

	response.Success(c, order)
}

// UpdateOrderNotesRequest sets operator-only notes.
type UpdateOrderNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateOrderNotes stores internal notes on an order.
func (h *Handler) UpdateOrderNotes(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.OrderService.SetInternalNotes(id, req.Notes); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update order", err)
		return
	}

	response.Success(c, nil)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

func parseTimeNullable(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
