package repository

import (
	"errors"

	"github.com/straatfanaat/shop/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the product data access interface.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	List(filter ProductListFilter) ([]models.Product, int64, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
	IncrementSalesCount(id uint, quantity int) error
	CountActive() (int64, error)
	CountLowStock() (int64, error)
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID loads a product with its category.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug loads a product by url key.
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// List returns products matching the filter.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.OnlyFeatured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.OnlyNew {
		query = query.Where("is_new = ?", true)
	}
	if filter.OnlyOnSale {
		query = query.Where("is_on_sale = ?", true)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		keyword := "%" + filter.Search + "%"
		query = query.Where("slug LIKE ? OR sku LIKE ? OR name_json LIKE ?", keyword, keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	if err := query.Order(orderBy).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update applies a partial update.
func (r *GormProductRepository) Update(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a product.
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// IncrementViewCount bumps the view counter.
func (r *GormProductRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// IncrementSalesCount bumps the sales counter and decrements stock.
func (r *GormProductRepository) IncrementSalesCount(id uint, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	return r.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"sales_count":    gorm.Expr("sales_count + ?", quantity),
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
		}).Error
}

// CountActive counts storefront-visible products.
func (r *GormProductRepository) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}

// CountLowStock counts active products at or under their own threshold.
func (r *GormProductRepository) CountLowStock() (int64, error) {
	var total int64
	err := r.db.Model(&models.Product{}).
		Where("is_active = ? AND stock_quantity <= low_stock_threshold", true).
		Count(&total).Error
	return total, err
}
