package public

import (
	"strconv"
	"strings"

	"github.com/straatfanaat/shop/internal/http/response"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetProducts lists active catalog products.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "24"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	search := strings.TrimSpace(c.Query("search"))

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: uint(categoryID),
		Search:     search,
		OnlyNew:    c.Query("is_new") == "true",
		OnlyOnSale: c.Query("is_on_sale") == "true",
		OrderBy:    c.Query("sort"),
	}

	products, total, err := h.CatalogService.ListProducts(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct returns one product by slug and counts the view.
func (h *Handler) GetProduct(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "bad request", nil)
		return
	}

	product, err := h.CatalogService.GetProduct(slug)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	if product == nil {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return
	}

	response.Success(c, product)
}

// GetFeaturedProducts returns the featured selection.
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.CatalogService.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	response.Success(c, products)
}

// GetCategories lists active categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}

	response.Success(c, categories)
}
