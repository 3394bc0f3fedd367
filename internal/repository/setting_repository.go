package repository

import (
	"errors"

	"github.com/straatfanaat/shop/internal/models"

	"gorm.io/gorm"
)

// SettingRepository is the settings data access interface.
type SettingRepository interface {
	GetByKey(key string) (*models.Setting, error)
	List(category string, onlyPublic bool) ([]models.Setting, error)
	UpdateValue(key string, value models.JSONValue) error
	Upsert(setting *models.Setting) error
}

// GormSettingRepository is the GORM implementation.
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a setting repository.
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetByKey loads a setting row.
func (r *GormSettingRepository) GetByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// List returns settings, optionally restricted to one category or the
// public subset.
func (r *GormSettingRepository) List(category string, onlyPublic bool) ([]models.Setting, error) {
	var settings []models.Setting
	query := r.db.Model(&models.Setting{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if onlyPublic {
		query = query.Where("is_public = ?", true)
	}
	if err := query.Order("key asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateValue overwrites the value of an existing setting.
func (r *GormSettingRepository) UpdateValue(key string, value models.JSONValue) error {
	result := r.db.Model(&models.Setting{}).Where("key = ?", key).Update("value", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Upsert creates the setting or updates the existing row in place.
func (r *GormSettingRepository) Upsert(setting *models.Setting) error {
	var existing models.Setting
	err := r.db.Where("key = ?", setting.Key).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(setting).Error
		}
		return err
	}
	setting.ID = existing.ID
	return r.db.Model(&existing).Updates(map[string]interface{}{
		"value":       setting.Value,
		"type":        setting.Type,
		"category":    setting.Category,
		"description": setting.Description,
		"is_public":   setting.IsPublic,
	}).Error
}
