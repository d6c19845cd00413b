package repository

import (
	"errors"
	"strings"

	"github.com/dentora-store/internal/models"

	"gorm.io/gorm"
)

// BundleRepository is the bundle data access interface.
type BundleRepository interface {
	List(filter BundleListFilter) ([]models.Bundle, int64, error)
	GetByID(id uint) (*models.Bundle, error)
	ListByIDs(ids []uint) ([]models.Bundle, error)
	Create(bundle *models.Bundle, products []models.BundleProduct) error
	Update(bundle *models.Bundle) error
	ReplaceProducts(bundleID uint, products []models.BundleProduct) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormBundleRepository
}

// GormBundleRepository is the GORM implementation.
type GormBundleRepository struct {
	db *gorm.DB
}

// NewBundleRepository creates a bundle repository.
func NewBundleRepository(db *gorm.DB) *GormBundleRepository {
	return &GormBundleRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormBundleRepository) WithTx(tx *gorm.DB) *GormBundleRepository {
	if tx == nil {
		return r
	}
	return &GormBundleRepository{db: tx}
}

func (r *GormBundleRepository) withProducts(query *gorm.DB) *gorm.DB {
	return query.Preload("Products").Preload("Products.Product")
}

// List returns a filtered bundle page.
func (r *GormBundleRepository) List(filter BundleListFilter) ([]models.Bundle, int64, error) {
	var bundles []models.Bundle

	query := r.db.Model(&models.Bundle{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := r.withProducts(query).Order("sort_order DESC, created_at DESC").Find(&bundles).Error; err != nil {
		return nil, 0, err
	}
	return bundles, total, nil
}

// GetByID fetches a bundle with its product lines.
func (r *GormBundleRepository) GetByID(id uint) (*models.Bundle, error) {
	var bundle models.Bundle
	if err := r.withProducts(r.db).First(&bundle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bundle, nil
}

// ListByIDs fetches bundles by ID set.
func (r *GormBundleRepository) ListByIDs(ids []uint) ([]models.Bundle, error) {
	var bundles []models.Bundle
	if len(ids) == 0 {
		return bundles, nil
	}
	if err := r.withProducts(r.db).Where("id IN ?", ids).Find(&bundles).Error; err != nil {
		return nil, err
	}
	return bundles, nil
}

// Create persists a bundle with its product lines.
func (r *GormBundleRepository) Create(bundle *models.Bundle, products []models.BundleProduct) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bundle).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].BundleID = bundle.ID
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves bundle columns only; product lines go through ReplaceProducts.
func (r *GormBundleRepository) Update(bundle *models.Bundle) error {
	return r.db.Omit("Products").Save(bundle).Error
}

// ReplaceProducts swaps the bundle's product lines.
func (r *GormBundleRepository) ReplaceProducts(bundleID uint, products []models.BundleProduct) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bundle_id = ?", bundleID).Delete(&models.BundleProduct{}).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].BundleID = bundleID
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a bundle and its product lines.
func (r *GormBundleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bundle_id = ?", id).Delete(&models.BundleProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bundle{}, id).Error
	})
}
