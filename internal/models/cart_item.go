package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem mirrors one cart line of an authenticated session into the
// database. The Redis session store stays authoritative; this table is a
// loose server-side copy kept on a best-effort basis.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    string         `gorm:"not null;uniqueIndex:idx_cart_user_line" json:"user_id"`
	Kind      string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_cart_user_line" json:"kind"` // product / bundle
	RefID     uint           `gorm:"not null;uniqueIndex:idx_cart_user_line" json:"ref_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
