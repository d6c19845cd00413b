package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a checkout snapshot. Line items are copied at creation time so
// historical orders are immune to later catalog edits; TotalAmount is frozen
// at creation and AmountPaid moves only through the payment state machine.
type Order struct {
	ID                    uint           `gorm:"primarykey" json:"id"`
	OrderNo               string         `gorm:"uniqueIndex;not null" json:"order_no"`
	UserID                string         `gorm:"index;not null" json:"user_id"`
	TotalAmount           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	AmountPaid            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount_paid"`
	RemainingBalance      Money          `gorm:"-" json:"remaining_balance"` // derived, never stored
	PaymentStatus         string         `gorm:"index;not null" json:"payment_status"`
	Status                string         `gorm:"index;not null" json:"status"`
	PreferredDeliveryDate *time.Time     `json:"preferred_delivery_date,omitempty"`
	Notes                 string         `json:"notes,omitempty"`
	CancelledAt           *time.Time     `gorm:"index" json:"cancelled_at,omitempty"`
	CreatedAt             time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`

	Items           []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Bundles         []OrderBundle    `gorm:"foreignKey:OrderID" json:"bundles,omitempty"`
	PartialPayments []PartialPayment `gorm:"foreignKey:OrderID" json:"partial_payments,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// AfterFind derives RemainingBalance so it can never drift from its inputs.
func (o *Order) AfterFind(tx *gorm.DB) error {
	o.ComputeRemainingBalance()
	return nil
}

// ComputeRemainingBalance refreshes the derived balance field.
func (o *Order) ComputeRemainingBalance() {
	remaining := o.TotalAmount.Decimal.Sub(o.AmountPaid.Decimal)
	if remaining.LessThan(decimal.Zero) {
		remaining = decimal.Zero
	}
	o.RemainingBalance = NewMoneyFromDecimal(remaining)
}
