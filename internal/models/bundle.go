package models

import (
	"time"

	"gorm.io/gorm"
)

// Bundle is a fixed-composition, fixed-price group of products sold as one
// cart line. Its price is persisted as a display string (e.g. "32,900 DZD");
// numeric computations go through ParseDisplayPrice. Products carry numeric
// prices instead; the asymmetry is part of the persisted data format.
type Bundle struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `json:"description,omitempty"`
	Price       string         `gorm:"not null" json:"price"` // display string
	ImageURL    string         `json:"image_url,omitempty"`
	IsActive    bool           `gorm:"index" json:"is_active"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Products []BundleProduct `gorm:"foreignKey:BundleID" json:"products,omitempty"`
}

// TableName sets the table name.
func (Bundle) TableName() string {
	return "bundles"
}

// BundleProduct is one product entry in a bundle's fixed composition.
type BundleProduct struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	BundleID  uint      `gorm:"not null;uniqueIndex:idx_bundle_product" json:"bundle_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_bundle_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (BundleProduct) TableName() string {
	return "bundle_products"
}
