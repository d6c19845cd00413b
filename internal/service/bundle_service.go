package service

import (
	"strings"

	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/repository"
)

// BundleProductInput is one product line inside a bundle definition.
type BundleProductInput struct {
	ProductID uint
	Quantity  int
}

// BundleInput carries bundle create/update fields. The price stays a
// display string end to end; it only has to parse.
type BundleInput struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	IsActive    bool
	SortOrder   int
	Products    []BundleProductInput
}

// BundleService manages the bundle catalog.
type BundleService struct {
	bundleRepo  repository.BundleRepository
	productRepo repository.ProductRepository
}

// NewBundleService creates a bundle service.
func NewBundleService(bundleRepo repository.BundleRepository, productRepo repository.ProductRepository) *BundleService {
	return &BundleService{
		bundleRepo:  bundleRepo,
		productRepo: productRepo,
	}
}

// List returns a filtered bundle page.
func (s *BundleService) List(filter repository.BundleListFilter) ([]models.Bundle, int64, error) {
	return s.bundleRepo.List(filter)
}

// Get fetches a bundle.
func (s *BundleService) Get(id uint) (*models.Bundle, error) {
	bundle, err := s.bundleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, ErrBundleNotFound
	}
	return bundle, nil
}

// GetPublic fetches a bundle visible to the storefront.
func (s *BundleService) GetPublic(id uint) (*models.Bundle, error) {
	bundle, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !bundle.IsActive {
		return nil, ErrBundleNotAvailable
	}
	return bundle, nil
}

// Create adds a bundle with its product lines.
func (s *BundleService) Create(input BundleInput) (*models.Bundle, error) {
	name := strings.TrimSpace(input.Name)
	price := strings.TrimSpace(input.Price)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if _, err := models.ParseDisplayPrice(price); err != nil {
		return nil, ErrBundlePriceInvalid
	}
	products, err := s.resolveProducts(input.Products)
	if err != nil {
		return nil, err
	}
	bundle := &models.Bundle{
		Name:        name,
		Description: input.Description,
		Price:       price,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.bundleRepo.Create(bundle, products); err != nil {
		return nil, err
	}
	return s.Get(bundle.ID)
}

// Update saves bundle fields and replaces its product lines.
func (s *BundleService) Update(id uint, input BundleInput) (*models.Bundle, error) {
	bundle, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	price := strings.TrimSpace(input.Price)
	if _, err := models.ParseDisplayPrice(price); err != nil {
		return nil, ErrBundlePriceInvalid
	}
	products, err := s.resolveProducts(input.Products)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		bundle.Name = name
	}
	bundle.Description = input.Description
	bundle.Price = price
	bundle.ImageURL = strings.TrimSpace(input.ImageURL)
	bundle.IsActive = input.IsActive
	bundle.SortOrder = input.SortOrder
	bundle.Products = nil
	if err := s.bundleRepo.Update(bundle); err != nil {
		return nil, err
	}
	if err := s.bundleRepo.ReplaceProducts(bundle.ID, products); err != nil {
		return nil, err
	}
	return s.Get(bundle.ID)
}

// Delete removes a bundle. Existing order snapshots keep their copied
// name and price string.
func (s *BundleService) Delete(id uint) error {
	bundle, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.bundleRepo.Delete(bundle.ID)
}

func (s *BundleService) resolveProducts(inputs []BundleProductInput) ([]models.BundleProduct, error) {
	products := make([]models.BundleProduct, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID == 0 || in.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
		product, err := s.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		products = append(products, models.BundleProduct{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		})
	}
	return products, nil
}
