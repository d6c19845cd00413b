package repository

import (
	"errors"

	"github.com/dentora-store/internal/models"

	"gorm.io/gorm"
)

// CartRepository mirrors authenticated carts into the database so a
// customer's cart survives a cache flush. Writes are best effort; the
// cart store stays authoritative.
type CartRepository interface {
	ListByUser(userID string) ([]models.CartItem, error)
	Upsert(item *models.CartItem) error
	DeleteByUserAndLine(userID, kind string, refID uint) error
	ClearByUser(userID string) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser returns a user's mirrored cart lines.
func (r *GormCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert adds or updates a mirrored cart line.
func (r *GormCartRepository) Upsert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	var existing models.CartItem
	err := r.db.Where("user_id = ? AND kind = ? AND ref_id = ?", item.UserID, item.Kind, item.RefID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(item).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("quantity", item.Quantity).Error
}

// DeleteByUserAndLine removes a mirrored cart line.
func (r *GormCartRepository) DeleteByUserAndLine(userID, kind string, refID uint) error {
	return r.db.Where("user_id = ? AND kind = ? AND ref_id = ?", userID, kind, refID).Delete(&models.CartItem{}).Error
}

// ClearByUser drops all mirrored lines for a user.
func (r *GormCartRepository) ClearByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
