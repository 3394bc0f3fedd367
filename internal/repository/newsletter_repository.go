package repository

import (
	"errors"
	"strings"

	"github.com/straatfanaat/shop/internal/models"

	"gorm.io/gorm"
)

// NewsletterRepository is the subscriber data access interface.
type NewsletterRepository interface {
	Create(subscriber *models.NewsletterSubscriber) error
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	List(filter NewsletterListFilter) ([]models.NewsletterSubscriber, int64, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
}

// GormNewsletterRepository is the GORM implementation.
type GormNewsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a subscriber repository.
func NewNewsletterRepository(db *gorm.DB) *GormNewsletterRepository {
	return &GormNewsletterRepository{db: db}
}

// Create inserts a subscriber.
func (r *GormNewsletterRepository) Create(subscriber *models.NewsletterSubscriber) error {
	return r.db.Create(subscriber).Error
}

// GetByEmail looks up a subscriber case-insensitively.
func (r *GormNewsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.Where("LOWER(email) = ?", normalized).First(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

// List returns the admin subscriber list.
func (r *GormNewsletterRepository) List(filter NewsletterListFilter) ([]models.NewsletterSubscriber, int64, error) {
	var subscribers []models.NewsletterSubscriber
	query := r.db.Model(&models.NewsletterSubscriber{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("email LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at desc").Find(&subscribers).Error; err != nil {
		return nil, 0, err
	}
	return subscribers, total, nil
}

// Update applies a partial update.
func (r *GormNewsletterRepository) Update(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.NewsletterSubscriber{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a subscriber.
func (r *GormNewsletterRepository) Delete(id uint) error {
	return r.db.Delete(&models.NewsletterSubscriber{}, id).Error
}
