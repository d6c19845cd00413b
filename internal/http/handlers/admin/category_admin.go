package admin

import (
	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest carries category create/update fields.
type CategoryRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// AdminListCategories lists all categories.
func (h *Handler) AdminListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// AdminCreateCategory adds a category.
func (h *Handler) AdminCreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category, err := h.CategoryService.Create(service.CategoryInput{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"category": category})
}

// AdminUpdateCategory saves category fields.
func (h *Handler) AdminUpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category, err := h.CategoryService.Update(id, service.CategoryInput{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"category": category})
}

// AdminDeleteCategory removes an empty category.
func (h *Handler) AdminDeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
