package public

import (
	"github.com/straatfanaat/shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPublicSettings returns the public storefront settings as a
// key/value map.
func (h *Handler) GetPublicSettings(c *gin.Context) {
	settings, err := h.SettingService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load settings", err)
		return
	}

	data := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		data[setting.Key] = setting.Value
	}
	response.Success(c, data)
}
