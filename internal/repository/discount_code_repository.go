package repository

import (
	"errors"
	"strings"

	"github.com/straatfanaat/shop/internal/models"

	"gorm.io/gorm"
)

// DiscountCodeRepository is the discount code data access interface.
type DiscountCodeRepository interface {
	Create(code *models.DiscountCode) error
	GetByID(id uint) (*models.DiscountCode, error)
	GetByCode(code string) (*models.DiscountCode, error)
	List(filter DiscountCodeListFilter) ([]models.DiscountCode, int64, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	IncrementUsage(id uint) error
}

// GormDiscountCodeRepository is the GORM implementation.
type GormDiscountCodeRepository struct {
	db *gorm.DB
}

// NewDiscountCodeRepository creates a discount code repository.
func NewDiscountCodeRepository(db *gorm.DB) *GormDiscountCodeRepository {
	return &GormDiscountCodeRepository{db: db}
}

// Create inserts a code.
func (r *GormDiscountCodeRepository) Create(code *models.DiscountCode) error {
	return r.db.Create(code).Error
}

// GetByID loads a code.
func (r *GormDiscountCodeRepository) GetByID(id uint) (*models.DiscountCode, error) {
	var code models.DiscountCode
	if err := r.db.First(&code, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

// GetByCode looks up a code case-insensitively.
func (r *GormDiscountCodeRepository) GetByCode(code string) (*models.DiscountCode, error) {
	var row models.DiscountCode
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if err := r.db.Where("UPPER(code) = ?", normalized).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// List returns the admin code list.
func (r *GormDiscountCodeRepository) List(filter DiscountCodeListFilter) ([]models.DiscountCode, int64, error) {
	var codes []models.DiscountCode
	query := r.db.Model(&models.DiscountCode{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("code LIKE ?", "%"+strings.ToUpper(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at desc").Find(&codes).Error; err != nil {
		return nil, 0, err
	}
	return codes, total, nil
}

// Update applies a partial update.
func (r *GormDiscountCodeRepository) Update(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.DiscountCode{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a code.
func (r *GormDiscountCodeRepository) Delete(id uint) error {
	return r.db.Delete(&models.DiscountCode{}, id).Error
}

// IncrementUsage bumps the usage counter.
func (r *GormDiscountCodeRepository) IncrementUsage(id uint) error {
	return r.db.Model(&models.DiscountCode{}).Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}
