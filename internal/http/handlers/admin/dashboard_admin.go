package admin

import (
	"github.com/straatfanaat/shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the back office dashboard counters, the
// recent order list and the revenue trend.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	response.Success(c, h.DashboardService.GetStats())
}
