package service

import (
	"context"
	"strings"
	"time"

	"github.com/straatfanaat/shop/internal/cache"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"
)

const (
	catalogCacheTTL          = 5 * time.Minute
	categoriesCacheKey       = "catalog:categories"
	featuredProductsCacheKey = "catalog:featured"
)

// CatalogService serves the storefront read path and the admin product
// and category mutations.
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates the catalog service.
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ListProducts returns storefront products. Only active products are
// visible on the public path.
func (s *CatalogService) ListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyActive = true
	filter.WithCategory = true
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 24
	}
	return s.productRepo.List(filter)
}

// ListFeatured returns the featured products, cached briefly.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if hit, err := cache.GetJSON(ctx, featuredProductsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	products, _, err := s.productRepo.List(repository.ProductListFilter{
		Page:         1,
		PageSize:     12,
		OnlyActive:   true,
		OnlyFeatured: true,
		WithCategory: true,
	})
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, featuredProductsCacheKey, products, catalogCacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", featuredProductsCacheKey, "error", err)
	}
	return products, nil
}

// GetProduct loads an active product by slug and counts the view.
func (s *CatalogService) GetProduct(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	if err := s.productRepo.IncrementViewCount(product.ID); err != nil {
		logger.Warnw("product_view_count_failed", "product_id", product.ID, "error", err)
	}
	return product, nil
}

// ListCategories returns the active categories, cached briefly.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if hit, err := cache.GetJSON(ctx, categoriesCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(true)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoriesCacheKey, categories, catalogCacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", categoriesCacheKey, "error", err)
	}
	return categories, nil
}

// AdminListProducts returns all products regardless of visibility.
func (s *CatalogService) AdminListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 50
	}
	filter.WithCategory = true
	return s.productRepo.List(filter)
}

// AdminGetProduct loads any product by id.
func (s *CatalogService) AdminGetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// CreateProduct validates the slug and inserts.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	product.Slug = strings.TrimSpace(product.Slug)
	if product.Slug == "" || len(product.NameJSON) == 0 {
		return ErrMissingField
	}
	existing, err := s.productRepo.GetBySlug(product.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.invalidateCatalogCache()
	logger.Infow("product_created", "product_id", product.ID, "slug", product.Slug)
	return nil
}

// UpdateProduct applies a partial update.
func (s *CatalogService) UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if slug, ok := updates["slug"].(string); ok {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			return nil, ErrMissingField
		}
		other, err := s.productRepo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrSlugTaken
		}
		updates["slug"] = slug
	}
	if err := s.productRepo.Update(id, updates); err != nil {
		return nil, err
	}
	s.invalidateCatalogCache()
	return s.productRepo.GetByID(id)
}

// DeleteProduct soft-deletes a product.
func (s *CatalogService) DeleteProduct(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalogCache()
	logger.Infow("product_deleted", "product_id", id)
	return nil
}

// AdminListCategories returns every category including hidden ones.
func (s *CatalogService) AdminListCategories() ([]models.Category, error) {
	return s.categoryRepo.List(false)
}

// CreateCategory validates the slug and inserts.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	category.Slug = strings.TrimSpace(category.Slug)
	if category.Slug == "" || len(category.NameJSON) == 0 {
		return ErrMissingField
	}
	existing, err := s.categoryRepo.GetBySlug(category.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}
	s.invalidateCatalogCache()
	return nil
}

// UpdateCategory applies a partial update.
func (s *CatalogService) UpdateCategory(id uint, updates map[string]interface{}) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	if err := s.categoryRepo.Update(id, updates); err != nil {
		return nil, err
	}
	s.invalidateCatalogCache()
	return s.categoryRepo.GetByID(id)
}

// DeleteCategory soft-deletes a category.
func (s *CatalogService) DeleteCategory(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalogCache()
	return nil
}

func (s *CatalogService) invalidateCatalogCache() {
	ctx := context.Background()
	_ = cache.Del(ctx, categoriesCacheKey)
	_ = cache.Del(ctx, featuredProductsCacheKey)
}
