package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetDiscountCodes lists discount codes for the back office.
func (h *Handler) GetDiscountCodes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.DiscountCodeListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		OnlyActive: c.Query("active") == "true",
	}

	codes, total, err := h.DiscountService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load discount codes", err)
		return
	}

	response.SuccessWithPage(c, codes, response.NewPagination(page, pageSize, total))
}

// DiscountCodeRequest is the create/update payload for a code.
type DiscountCodeRequest struct {
	Code           string     `json:"code" binding:"required"`
	Description    string     `json:"description"`
	DiscountType   string     `json:"discount_type" binding:"required"`
	DiscountValue  float64    `json:"discount_value" binding:"required"`
	MinOrderAmount float64    `json:"min_order_amount"`
	UsageLimit     int        `json:"usage_limit"`
	IsActive       *bool      `json:"is_active"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// CreateDiscountCode adds a promotional code.
func (h *Handler) CreateDiscountCode(c *gin.Context) {
	var req DiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	code := &models.DiscountCode{
		Code:           req.Code,
		Description:    req.Description,
		DiscountType:   req.DiscountType,
		DiscountValue:  models.NewMoneyFromFloat(req.DiscountValue),
		MinOrderAmount: models.NewMoneyFromFloat(req.MinOrderAmount),
		UsageLimit:     req.UsageLimit,
		IsActive:       true,
		ExpiresAt:      req.ExpiresAt,
	}
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}

	if err := h.DiscountService.Create(code); err != nil {
		if errors.Is(err, service.ErrDiscountCodeInvalid) {
			respondError(c, response.CodeBadRequest, "discount code invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create discount code", err)
		return
	}

	response.Success(c, code)
}

// UpdateDiscountCode replaces a code's editable fields.
func (h *Handler) UpdateDiscountCode(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req DiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	updates := map[string]interface{}{
		"description":      req.Description,
		"discount_type":    req.DiscountType,
		"discount_value":   models.NewMoneyFromFloat(req.DiscountValue),
		"min_order_amount": models.NewMoneyFromFloat(req.MinOrderAmount),
		"usage_limit":      req.UsageLimit,
		"expires_at":       req.ExpiresAt,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	code, err := h.DiscountService.Update(id, updates)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "discount code not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update discount code", err)
		return
	}

	response.Success(c, code)
}

// DeleteDiscountCode soft-deletes a code.
func (h *Handler) DeleteDiscountCode(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.DiscountService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "discount code not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete discount code", err)
		return
	}

	response.Success(c, nil)
}
