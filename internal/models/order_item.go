package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a snapshot of one product line at checkout time.
// It deliberately carries no product foreign key.
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	OrderID      uint           `gorm:"index;not null" json:"order_id"`
	ProductName  string         `gorm:"not null" json:"product_name"`
	ProductPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"product_price"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
