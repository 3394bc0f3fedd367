package service

import (
	"encoding/json"

	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"
)

// SettingService serves the typed key/value configuration. Values are
// stored as raw JSON and checked against the row's declared type on
// every write.
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService creates the setting service.
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// List returns settings for the admin panel.
func (s *SettingService) List(category string) ([]models.Setting, error) {
	return s.repo.List(category, false)
}

// ListPublic returns the storefront-visible subset.
func (s *SettingService) ListPublic() ([]models.Setting, error) {
	return s.repo.List("", true)
}

// Get loads one setting row.
func (s *SettingService) Get(key string) (*models.Setting, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrNotFound
	}
	return setting, nil
}

// Update overwrites a setting value after checking it decodes as the
// row's declared type.
func (s *SettingService) Update(key string, value json.RawMessage) (*models.Setting, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrNotFound
	}
	if !valueMatchesType(value, setting.Type) {
		return nil, ErrInvalidSettingValue
	}
	if err := s.repo.UpdateValue(key, models.JSONValue(value)); err != nil {
		return nil, err
	}
	return s.repo.GetByKey(key)
}

// GetBool decodes a boolean setting, falling back on any failure.
func (s *SettingService) GetBool(key string, fallback bool) bool {
	setting, err := s.repo.GetByKey(key)
	if err != nil || setting == nil || setting.Type != constants.SettingTypeBoolean {
		return fallback
	}
	var v bool
	if err := json.Unmarshal(setting.Value, &v); err != nil {
		return fallback
	}
	return v
}

// GetNumber decodes a numeric setting, falling back on any failure.
func (s *SettingService) GetNumber(key string, fallback float64) float64 {
	setting, err := s.repo.GetByKey(key)
	if err != nil || setting == nil || setting.Type != constants.SettingTypeNumber {
		return fallback
	}
	var v float64
	if err := json.Unmarshal(setting.Value, &v); err != nil {
		return fallback
	}
	return v
}

// GetString decodes a string setting, falling back on any failure.
func (s *SettingService) GetString(key string, fallback string) string {
	setting, err := s.repo.GetByKey(key)
	if err != nil || setting == nil || setting.Type != constants.SettingTypeString {
		return fallback
	}
	var v string
	if err := json.Unmarshal(setting.Value, &v); err != nil {
		return fallback
	}
	return v
}

// GetStrings decodes an array setting, falling back on any failure.
func (s *SettingService) GetStrings(key string, fallback []string) []string {
	setting, err := s.repo.GetByKey(key)
	if err != nil || setting == nil || setting.Type != constants.SettingTypeArray {
		return fallback
	}
	var v []string
	if err := json.Unmarshal(setting.Value, &v); err != nil {
		return fallback
	}
	return v
}

func valueMatchesType(value json.RawMessage, settingType string) bool {
	switch settingType {
	case constants.SettingTypeBoolean:
		var v bool
		return json.Unmarshal(value, &v) == nil
	case constants.SettingTypeNumber:
		var v float64
		return json.Unmarshal(value, &v) == nil
	case constants.SettingTypeString:
		var v string
		return json.Unmarshal(value, &v) == nil
	case constants.SettingTypeArray:
		var v []interface{}
		return json.Unmarshal(value, &v) == nil
	default:
		return false
	}
}
