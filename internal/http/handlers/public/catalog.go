package public

import (
	"errors"
	"strconv"

	handlershared "github.com/dentora-store/internal/http/handlers/shared"
	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/repository"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCategories lists the catalog categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetProducts lists active products.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       c.Query("search"),
		Brand:        c.Query("brand"),
		OnlyActive:   true,
		WithCategory: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"products": products}, buildPagination(page, pageSize, total))
}

// GetProduct fetches one active product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetPublic(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		case errors.Is(err, service.ErrProductNotAvailable):
			respondError(c, response.CodeNotFound, "error.product_not_available", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, gin.H{"product": product})
}

// GetBundles lists active bundles.
func (h *Handler) GetBundles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	bundles, total, err := h.BundleService.List(repository.BundleListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     c.Query("search"),
		OnlyActive: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"bundles": bundles}, buildPagination(page, pageSize, total))
}

// GetBundle fetches one active bundle.
func (h *Handler) GetBundle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	bundle, err := h.BundleService.GetPublic(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBundleNotFound):
			respondError(c, response.CodeNotFound, "error.bundle_not_found", nil)
		case errors.Is(err, service.ErrBundleNotAvailable):
			respondError(c, response.CodeNotFound, "error.bundle_not_available", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, gin.H{"bundle": bundle})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}
