package public

import (
	"github.com/straatfanaat/shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// StylingAdviceRequest asks the stylist for advice on a product.
type StylingAdviceRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Language    string `json:"language"`
}

// GetStylingAdvice returns styling copy for a product. The call always
// succeeds; backend failures show up as canned fallback lines.
func (h *Handler) GetStylingAdvice(c *gin.Context) {
	var req StylingAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	advice := h.StylistClient.Advice(c.Request.Context(), req.ProductName, req.Language)
	response.Success(c, gin.H{"advice": advice})
}
