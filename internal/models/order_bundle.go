package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderBundle is a snapshot of one bundle line at checkout time.
// BundlePrice keeps the display-string format of the source bundle.
type OrderBundle struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OrderID     uint           `gorm:"index;not null" json:"order_id"`
	BundleName  string         `gorm:"not null" json:"bundle_name"`
	BundlePrice string         `gorm:"not null" json:"bundle_price"` // display string
	Quantity    int            `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderBundle) TableName() string {
	return "order_bundles"
}
