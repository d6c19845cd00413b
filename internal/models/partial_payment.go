package models

import (
	"time"
)

// PartialPayment is one entry of an order's partial-payment ledger.
// Entries are append-only; they are deleted in bulk when a reset transition
// (pending / paid / refunded) clears the history.
type PartialPayment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	Amount     Money     `gorm:"type:decimal(20,2);not null" json:"amount"`
	PaidAt     time.Time `gorm:"index;not null" json:"paid_at"`
	RecordedBy string    `gorm:"not null" json:"recorded_by"` // acting admin subject
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name.
func (PartialPayment) TableName() string {
	return "partial_payments"
}
