package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts lists products for the back office, soft-deleted rows
// excluded, inactive rows included.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	}

	products, total, err := h.CatalogService.AdminListProducts(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct returns one product by id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.CatalogService.AdminGetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}

	response.Success(c, product)
}

// ProductRequest is the create/update payload for a product.
type ProductRequest struct {
	Slug              string                 `json:"slug" binding:"required"`
	SKU               string                 `json:"sku"`
	Name              map[string]interface{} `json:"name" binding:"required"`
	Description       map[string]interface{} `json:"description"`
	Price             float64                `json:"price" binding:"required"`
	CompareAtPrice    *float64               `json:"compare_at_price"`
	CategoryID        *uint                  `json:"category_id"`
	ImageURL          string                 `json:"image_url"`
	Images            []string               `json:"images"`
	Sizes             []string               `json:"sizes"`
	Colors            []string               `json:"colors"`
	StockQuantity     int                    `json:"stock_quantity"`
	LowStockThreshold *int                   `json:"low_stock_threshold"`
	IsActive          *bool                  `json:"is_active"`
	IsFeatured        bool                   `json:"is_featured"`
	IsNew             bool                   `json:"is_new"`
	IsOnSale          bool                   `json:"is_on_sale"`
}

// CreateProduct adds a product to the catalog.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	product := &models.Product{
		Slug:            strings.TrimSpace(req.Slug),
		SKU:             strings.TrimSpace(req.SKU),
		NameJSON:        models.JSON(req.Name),
		DescriptionJSON: models.JSON(req.Description),
		Price:           models.NewMoneyFromFloat(req.Price),
		CategoryID:      req.CategoryID,
		ImageURL:        req.ImageURL,
		Images:          models.StringArray(req.Images),
		Sizes:           models.StringArray(req.Sizes),
		Colors:          models.StringArray(req.Colors),
		StockQuantity:   req.StockQuantity,
		IsActive:        true,
		IsFeatured:      req.IsFeatured,
		IsNew:           req.IsNew,
		IsOnSale:        req.IsOnSale,
	}
	if req.CompareAtPrice != nil {
		compareAt := models.NewMoneyFromFloat(*req.CompareAtPrice)
		product.CompareAtPrice = &compareAt
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	} else {
		product.LowStockThreshold = 5
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.CatalogService.CreateProduct(product); err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			respondError(c, response.CodeConflict, "slug already in use", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create product", err)
		return
	}

	requestLog(c).Infow("admin_product_created", "product_id", product.ID, "slug", product.Slug)
	response.Success(c, product)
}

// UpdateProduct replaces a product's editable fields.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	updates := map[string]interface{}{
		"slug":           strings.TrimSpace(req.Slug),
		"sku":            strings.TrimSpace(req.SKU),
		"name_json":      models.JSON(req.Name),
		"price":          models.NewMoneyFromFloat(req.Price),
		"category_id":    req.CategoryID,
		"image_url":      req.ImageURL,
		"images":         models.StringArray(req.Images),
		"sizes":          models.StringArray(req.Sizes),
		"colors":         models.StringArray(req.Colors),
		"stock_quantity": req.StockQuantity,
		"is_featured":    req.IsFeatured,
		"is_new":         req.IsNew,
		"is_on_sale":     req.IsOnSale,
	}
	if req.Description != nil {
		updates["description_json"] = models.JSON(req.Description)
	}
	if req.CompareAtPrice != nil {
		updates["compare_at_price"] = models.NewMoneyFromFloat(*req.CompareAtPrice)
	}
	if req.LowStockThreshold != nil {
		updates["low_stock_threshold"] = *req.LowStockThreshold
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	product, err := h.CatalogService.UpdateProduct(id, updates)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		if errors.Is(err, service.ErrSlugTaken) {
			respondError(c, response.CodeConflict, "slug already in use", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update product", err)
		return
	}

	response.Success(c, product)
}

// DeleteProduct soft-deletes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.CatalogService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete product", err)
		return
	}

	requestLog(c).Infow("admin_product_deleted", "product_id", id)
	response.Success(c, nil)
}

// GetCategories lists all categories including inactive ones.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.AdminListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}

	response.Success(c, categories)
}

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Slug      string                 `json:"slug" binding:"required"`
	Name      map[string]interface{} `json:"name" binding:"required"`
	ImageURL  string                 `json:"image_url"`
	ParentID  *uint                  `json:"parent_id"`
	SortOrder int                    `json:"sort_order"`
	IsActive  *bool                  `json:"is_active"`
}

// CreateCategory adds a catalog category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category := &models.Category{
		Slug:      strings.TrimSpace(req.Slug),
		NameJSON:  models.JSON(req.Name),
		ImageURL:  req.ImageURL,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.CatalogService.CreateCategory(category); err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			respondError(c, response.CodeConflict, "slug already in use", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create category", err)
		return
	}

	response.Success(c, category)
}

// UpdateCategory replaces a category's editable fields.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	updates := map[string]interface{}{
		"slug":       strings.TrimSpace(req.Slug),
		"name_json":  models.JSON(req.Name),
		"image_url":  req.ImageURL,
		"parent_id":  req.ParentID,
		"sort_order": req.SortOrder,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	category, err := h.CatalogService.UpdateCategory(id, updates)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
		if errors.Is(err, service.ErrSlugTaken) {
			respondError(c, response.CodeConflict, "slug already in use", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update category", err)
		return
	}

	response.Success(c, category)
}

// DeleteCategory soft-deletes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.CatalogService.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete category", err)
		return
	}

	response.Success(c, nil)
}
