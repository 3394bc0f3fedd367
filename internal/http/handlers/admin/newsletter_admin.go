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

// GetNewsletterSubscribers lists newsletter subscribers.
func (h *Handler) GetNewsletterSubscribers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.NewsletterListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		OnlyActive: c.Query("active") == "true",
	}

	subscribers, total, err := h.NewsletterService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load subscribers", err)
		return
	}

	response.SuccessWithPage(c, subscribers, response.NewPagination(page, pageSize, total))
}

// DeleteNewsletterSubscriber removes a subscriber.
func (h *Handler) DeleteNewsletterSubscriber(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.NewsletterService.Remove(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "subscriber not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to remove subscriber", err)
		return
	}

	response.Success(c, nil)
}
