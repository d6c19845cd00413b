package admin

import (
	"strconv"
	"strings"

	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/repository"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// BundleProductRequest is one product line in a bundle definition.
type BundleProductRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// BundleRequest carries bundle create/update fields. The price is a
// display string like "32,900 DZD".
type BundleRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       string                 `json:"price"`
	ImageURL    string                 `json:"image_url"`
	IsActive    bool                   `json:"is_active"`
	SortOrder   int                    `json:"sort_order"`
	Products    []BundleProductRequest `json:"products"`
}

func (r BundleRequest) toInput() service.BundleInput {
	products := make([]service.BundleProductInput, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, service.BundleProductInput{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		})
	}
	return service.BundleInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
		Products:    products,
	}
}

// AdminListBundles lists bundles including inactive ones.
func (h *Handler) AdminListBundles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	bundles, total, err := h.BundleService.List(repository.BundleListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	response.SuccessWithPage(c, gin.H{"bundles": bundles}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// AdminGetBundle fetches one bundle with its product lines.
func (h *Handler) AdminGetBundle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	bundle, err := h.BundleService.Get(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"bundle": bundle})
}

// AdminCreateBundle adds a bundle.
func (h *Handler) AdminCreateBundle(c *gin.Context) {
	var req BundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	bundle, err := h.BundleService.Create(req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"bundle": bundle})
}

// AdminUpdateBundle saves bundle fields and replaces its product lines.
func (h *Handler) AdminUpdateBundle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req BundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	bundle, err := h.BundleService.Update(id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"bundle": bundle})
}

// AdminDeleteBundle removes a bundle.
func (h *Handler) AdminDeleteBundle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.BundleService.Delete(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
