package repository

import "time"

// ProductListFilter filters product listings.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	Brand        string
	OnlyActive   bool
	WithCategory bool
}

// BundleListFilter filters bundle listings.
type BundleListFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}

// CategoryListFilter filters category listings.
type CategoryListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// OrderListFilter filters order listings.
type OrderListFilter struct {
	Page          int
	PageSize      int
	UserID        string
	Status        string
	PaymentStatus string
	OrderNo       string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}
