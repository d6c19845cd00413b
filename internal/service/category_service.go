package service

import (
	"strings"

	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/repository"
)

// CategoryInput carries category create/update fields.
type CategoryInput struct {
	Slug        string
	Name        string
	Description string
	SortOrder   int
}

// CategoryService manages the catalog categories.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Get fetches a category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create adds a category with a unique slug.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.categoryRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}
	category := &models.Category{
		Slug:        slug,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		SortOrder:   input.SortOrder,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update saves category fields, keeping the slug unique.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	slug := strings.TrimSpace(input.Slug)
	if slug != "" && slug != category.Slug {
		count, err := s.categoryRepo.CountBySlug(slug, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugTaken
		}
		category.Slug = slug
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		category.Name = name
	}
	category.Description = strings.TrimSpace(input.Description)
	category.SortOrder = input.SortOrder
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes an empty category.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}
	count, err := s.categoryRepo.CountProducts(category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	return s.categoryRepo.Delete(category.ID)
}
