package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog product with a numeric price.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Brand       string         `gorm:"index" json:"brand,omitempty"`
	Description string         `json:"description,omitempty"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	ImageURL    string         `json:"image_url,omitempty"`
	IsActive    bool           `gorm:"index" json:"is_active"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
