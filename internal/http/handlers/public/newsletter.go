package public

import (
	"errors"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscribeRequest is a newsletter signup.
type SubscribeRequest struct {
	Email    string `json:"email" binding:"required"`
	Language string `json:"language"`
}

// SubscribeNewsletter signs an email address up for the newsletter.
func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	subscriber, err := h.NewsletterService.Subscribe(req.Email, req.Language)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			respondError(c, response.CodeBadRequest, "invalid email address", nil)
			return
		}
		if errors.Is(err, service.ErrAlreadySubscribed) {
			respondError(c, response.CodeConflict, "already subscribed", nil)
			return
		}
		respondError(c, response.CodeInternal, "subscription failed", err)
		return
	}

	response.Success(c, gin.H{
		"email":    subscriber.Email,
		"language": subscriber.Language,
	})
}

// UnsubscribeNewsletter deactivates a newsletter subscription.
func (h *Handler) UnsubscribeNewsletter(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.NewsletterService.Unsubscribe(req.Email); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "subscription not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "unsubscribe failed", err)
		return
	}

	response.Success(c, nil)
}
