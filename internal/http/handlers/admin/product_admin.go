package admin

import (
	"strconv"
	"strings"

	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/repository"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest carries product create/update fields.
type ProductRequest struct {
	CategoryID  uint         `json:"category_id"`
	Name        string       `json:"name"`
	Brand       string       `json:"brand"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url"`
	IsActive    bool         `json:"is_active"`
	SortOrder   int          `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Brand:       r.Brand,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// AdminListProducts lists products including inactive ones.
func (h *Handler) AdminListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       strings.TrimSpace(c.Query("search")),
		Brand:        strings.TrimSpace(c.Query("brand")),
		WithCategory: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// AdminGetProduct fetches one product.
func (h *Handler) AdminGetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// AdminCreateProduct adds a product.
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// AdminUpdateProduct saves product fields.
func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// AdminDeleteProduct removes a product.
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
