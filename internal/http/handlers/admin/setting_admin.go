package admin

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSettings lists settings, optionally scoped to one category.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.SettingService.List(strings.TrimSpace(c.Query("category")))
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load settings", err)
		return
	}

	response.Success(c, settings)
}

// GetSetting returns one setting by key.
func (h *Handler) GetSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	setting, err := h.SettingService.Get(key)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "setting not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load setting", err)
		return
	}

	response.Success(c, setting)
}

// UpdateSettingRequest carries the new value for a setting.
type UpdateSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// UpdateSetting replaces a setting's value. The value must match the
// setting's declared type.
func (h *Handler) UpdateSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	setting, err := h.SettingService.Update(key, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "setting not found", nil)
			return
		}
		if errors.Is(err, service.ErrInvalidSettingValue) {
			respondError(c, response.CodeBadRequest, "value does not match setting type", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update setting", err)
		return
	}

	requestLog(c).Infow("admin_setting_updated", "key", key)
	response.Success(c, setting)
}
