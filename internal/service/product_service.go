package service

import (
	"strings"

	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/repository"
)

// ProductInput carries product create/update fields.
type ProductInput struct {
	CategoryID  uint
	Name        string
	Brand       string
	Description string
	Price       models.Money
	ImageURL    string
	IsActive    bool
	SortOrder   int
}

// ProductService manages the product catalog.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// List returns a filtered product page.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get fetches a product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetPublic fetches a product visible to the storefront.
func (s *ProductService) GetPublic(id uint) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	return product, nil
}

// Create adds a product to the catalog.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Price.Decimal.IsNegative() {
		return nil, ErrInvalidInput
	}
	if input.CategoryID != 0 {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}
	product := &models.Product{
		CategoryID:  input.CategoryID,
		Name:        name,
		Brand:       strings.TrimSpace(input.Brand),
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves product fields.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if input.Price.Decimal.IsNegative() {
		return nil, ErrInvalidInput
	}
	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		product.Name = name
	}
	product.CategoryID = input.CategoryID
	product.Brand = strings.TrimSpace(input.Brand)
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.IsActive = input.IsActive
	product.SortOrder = input.SortOrder
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product. Existing order snapshots keep their copied
// name and price.
func (s *ProductService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(product.ID)
}
