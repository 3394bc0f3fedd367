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

// GetCustomers lists customers for the back office.
func (h *Handler) GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CustomerListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("search")),
	}

	customers, total, err := h.CustomerService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load customers", err)
		return
	}

	response.SuccessWithPage(c, customers, response.NewPagination(page, pageSize, total))
}

// GetCustomer returns one customer with their orders and addresses.
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.CustomerService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "customer not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load customer", err)
		return
	}

	response.Success(c, detail)
}

// UpdateCustomerMarketingRequest toggles the marketing opt-in.
type UpdateCustomerMarketingRequest struct {
	AcceptsMarketing bool `json:"accepts_marketing"`
}

// UpdateCustomerMarketing sets a customer's marketing opt-in flag.
func (h *Handler) UpdateCustomerMarketing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCustomerMarketingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.CustomerService.SetMarketingOptIn(id, req.AcceptsMarketing); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "customer not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update customer", err)
		return
	}

	response.Success(c, nil)
}
