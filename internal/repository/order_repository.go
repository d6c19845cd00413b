package repository

import (
	"errors"
	"time"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem, bundles []models.OrderBundle) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndUser(id uint, userID string) (*models.Order, error)
	GetByOrderNo(orderNo string) (*models.Order, error)
	GetByOrderNoAndUser(orderNo string, userID string) (*models.Order, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	AddPartialPayment(id uint, amount models.Money, paidAt time.Time, recordedBy string) (bool, error)
	MarkPaid(id uint) error
	ResetPayment(id uint, paymentStatus string, updates map[string]interface{}) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withLines(query *gorm.DB) *gorm.DB {
	return query.Preload("Items").Preload("Bundles").Preload("PartialPayments")
}

// Create persists an order together with its line snapshots.
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem, bundles []models.OrderBundle) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	for i := range bundles {
		bundles[i].OrderID = order.ID
	}
	if len(bundles) > 0 {
		if err := r.db.Create(&bundles).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches an order by ID.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withLines(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndUser fetches an order scoped to its owner.
func (r *GormOrderRepository) GetByIDAndUser(id uint, userID string) (*models.Order, error) {
	var order models.Order
	if err := r.withLines(r.db).Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo fetches an order by order number.
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	var order models.Order
	if err := r.withLines(r.db).Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNoAndUser fetches an order by order number scoped to its owner.
func (r *GormOrderRepository) GetByOrderNoAndUser(orderNo string, userID string) (*models.Order, error) {
	var order models.Order
	if err := r.withLines(r.db).Where("order_no = ? AND user_id = ?", orderNo, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser lists a customer's own orders.
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{}).Where("user_id = ?", filter.UserID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no LIKE ?", "%"+filter.OrderNo+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := r.withLines(query).Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListAdmin lists orders for the back office.
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := r.withLines(query).Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus updates the fulfillment status plus any extra columns.
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = status
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// AddPartialPayment atomically increments amount_paid and appends a ledger
// entry. The guard rejects concurrent increments that would push the paid
// amount past the order total; the bool result reports whether the guard
// accepted the increment.
func (r *GormOrderRepository) AddPartialPayment(id uint, amount models.Money, paidAt time.Time, recordedBy string) (bool, error) {
	accepted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("id = ? AND amount_paid + ? <= total_amount", id, amount).
			Updates(map[string]interface{}{
				"amount_paid":    gorm.Expr("amount_paid + ?", amount),
				"payment_status": constants.PaymentStatusPartial,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		accepted = true
		entry := models.PartialPayment{
			OrderID:    id,
			Amount:     amount,
			PaidAt:     paidAt,
			RecordedBy: recordedBy,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return false, err
	}
	return accepted, nil
}

// MarkPaid settles the order in full and clears the partial ledger.
func (r *GormOrderRepository) MarkPaid(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"amount_paid":    gorm.Expr("total_amount"),
				"payment_status": constants.PaymentStatusPaid,
			}).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", id).Delete(&models.PartialPayment{}).Error
	})
}

// ResetPayment zeroes amount_paid, clears the partial ledger and applies
// any extra column updates in the same transaction.
func (r *GormOrderRepository) ResetPayment(id uint, paymentStatus string, updates map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if updates == nil {
			updates = map[string]interface{}{}
		}
		updates["amount_paid"] = models.NewMoneyFromInt(0)
		updates["payment_status"] = paymentStatus
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", id).Delete(&models.PartialPayment{}).Error
	})
}
