package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:order_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.OrderBundle{},
		&models.PartialPayment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func createTestOrder(t *testing.T, repo OrderRepository, userID string, total int64) *models.Order {
	t.Helper()

	order := &models.Order{
		OrderNo:       fmt.Sprintf("DT%d", time.Now().UnixNano()),
		UserID:        userID,
		TotalAmount:   models.NewMoneyFromInt(total),
		AmountPaid:    models.NewMoneyFromInt(0),
		PaymentStatus: constants.PaymentStatusPending,
		Status:        constants.OrderStatusPending,
	}
	items := []models.OrderItem{
		{ProductName: "Nitrile Gloves M (100 pcs)", ProductPrice: models.NewMoneyFromInt(total), Quantity: 1},
	}
	if err := repo.Create(order, items, nil); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderRepositoryCreatePersistsLines(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	order := createTestOrder(t, repo, "user-1", 5000)

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected order, got nil")
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(loaded.Items))
	}
	if loaded.Items[0].OrderID != order.ID {
		t.Fatalf("expected item bound to order %d, got %d", order.ID, loaded.Items[0].OrderID)
	}
	if !loaded.RemainingBalance.Decimal.Equal(loaded.TotalAmount.Decimal) {
		t.Fatalf("expected remaining balance %s, got %s", loaded.TotalAmount, loaded.RemainingBalance)
	}
}

func TestOrderRepositoryGetByIDAndUserScopesOwner(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	order := createTestOrder(t, repo, "owner", 1000)

	other, err := repo.GetByIDAndUser(order.ID, "intruder")
	if err != nil {
		t.Fatalf("get by id and user failed: %v", err)
	}
	if other != nil {
		t.Fatalf("expected nil for foreign user, got order %d", other.ID)
	}

	own, err := repo.GetByIDAndUser(order.ID, "owner")
	if err != nil {
		t.Fatalf("get by id and user failed: %v", err)
	}
	if own == nil {
		t.Fatalf("expected owner to see the order")
	}
}

func TestAddPartialPaymentAccumulatesAndRecords(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	order := createTestOrder(t, repo, "user-1", 10000)

	accepted, err := repo.AddPartialPayment(order.ID, models.NewMoneyFromInt(3000), time.Now(), "admin-1")
	if err != nil {
		t.Fatalf("add partial payment failed: %v", err)
	}
	if !accepted {
		t.Fatalf("expected increment to be accepted")
	}
	accepted, err = repo.AddPartialPayment(order.ID, models.NewMoneyFromInt(2500), time.Now(), "admin-1")
	if err != nil {
		t.Fatalf("add partial payment failed: %v", err)
	}
	if !accepted {
		t.Fatalf("expected second increment to be accepted")
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if !loaded.AmountPaid.Decimal.Equal(models.NewMoneyFromInt(5500).Decimal) {
		t.Fatalf("expected amount paid 5500.00, got %s", loaded.AmountPaid)
	}
	if loaded.PaymentStatus != constants.PaymentStatusPartial {
		t.Fatalf("expected payment status partial, got %s", loaded.PaymentStatus)
	}
	if len(loaded.PartialPayments) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(loaded.PartialPayments))
	}
	if loaded.PartialPayments[0].RecordedBy != "admin-1" {
		t.Fatalf("expected ledger entry recorded by admin-1, got %s", loaded.PartialPayments[0].RecordedBy)
	}
}

func TestAddPartialPaymentRejectsOvershoot(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	order := createTestOrder(t, repo, "user-1", 1000)

	accepted, err := repo.AddPartialPayment(order.ID, models.NewMoneyFromInt(800), time.Now(), "admin-1")
	if err != nil || !accepted {
		t.Fatalf("expected first increment accepted, accepted=%v err=%v", accepted, err)
	}

	// 800 + 300 > 1000: the guard must refuse without touching the row.
	accepted, err = repo.AddPartialPayment(order.ID, models.NewMoneyFromInt(300), time.Now(), "admin-1")
	if err != nil {
		t.Fatalf("add partial payment failed: %v", err)
	}
	if accepted {
		t.Fatalf("expected overshoot increment to be refused")
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if !loaded.AmountPaid.Decimal.Equal(models.NewMoneyFromInt(800).Decimal) {
		t.Fatalf("expected amount paid unchanged at 800.00, got %s", loaded.AmountPaid)
	}
	if len(loaded.PartialPayments) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(loaded.PartialPayments))
	}
}

func TestAddPartialPaymentExactRemainderAccepted(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	order := createTestOrder(t, repo, "user-1", 1000)

	accepted, err := repo.AddPartialPayment(order.ID, models.NewMoneyFromInt(1000), time.Now(), "admin-1")
	if err != nil {
		t.Fatalf("add partial payment failed: %v", err)
	}
	if !accepted {
		t.Fatalf("expected increment equal to the total to be accepted")
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if !loaded.AmountPaid.Decimal.Equal(loaded.TotalAmount.Decimal) {
		t.Fatalf("expected amount paid %s, got %s", loaded.TotalAmount, loaded.AmountPaid)
	}
	if !loaded.RemainingBalance.Decimal.IsZero() {
		t.Fatalf("expected zero remaining balance, got %s", loaded.RemainingBalance)
	}
}

func TestMarkPaidSettlesAndClearsLedger(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	order := createTestOrder(t, repo, "user-1", 7000)

	if _, err := repo.AddPartialPayment(order.ID, models.NewMoneyFromInt(2000), time.Now(), "admin-1"); err != nil {
		t.Fatalf("add partial payment failed: %v", err)
	}
	if err := repo.MarkPaid(order.ID); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if loaded.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("expected payment status paid, got %s", loaded.PaymentStatus)
	}
	if !loaded.AmountPaid.Decimal.Equal(loaded.TotalAmount.Decimal) {
		t.Fatalf("expected amount paid %s, got %s", loaded.TotalAmount, loaded.AmountPaid)
	}
	if len(loaded.PartialPayments) != 0 {
		t.Fatalf("expected empty ledger after settle, got %d entries", len(loaded.PartialPayments))
	}
}

func TestResetPaymentZeroesAndAppliesUpdates(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	order := createTestOrder(t, repo, "user-1", 4000)

	if _, err := repo.AddPartialPayment(order.ID, models.NewMoneyFromInt(1500), time.Now(), "admin-1"); err != nil {
		t.Fatalf("add partial payment failed: %v", err)
	}

	now := time.Now()
	err := repo.ResetPayment(order.ID, constants.PaymentStatusRefunded, map[string]interface{}{
		"status":       constants.OrderStatusCancelled,
		"cancelled_at": now,
	})
	if err != nil {
		t.Fatalf("reset payment failed: %v", err)
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if !loaded.AmountPaid.Decimal.IsZero() {
		t.Fatalf("expected zero amount paid, got %s", loaded.AmountPaid)
	}
	if loaded.PaymentStatus != constants.PaymentStatusRefunded {
		t.Fatalf("expected payment status refunded, got %s", loaded.PaymentStatus)
	}
	if loaded.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected order cancelled, got %s", loaded.Status)
	}
	if loaded.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be set")
	}
	if len(loaded.PartialPayments) != 0 {
		t.Fatalf("expected empty ledger after reset, got %d entries", len(loaded.PartialPayments))
	}
}

func TestListAdminFilters(t *testing.T) {
	repo := NewOrderRepository(newOrderTestDB(t))
	first := createTestOrder(t, repo, "user-a", 1000)
	createTestOrder(t, repo, "user-b", 2000)

	if err := repo.UpdateStatus(first.ID, constants.OrderStatusShipped, nil); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	orders, total, err := repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, Status: constants.OrderStatusShipped})
	if err != nil {
		t.Fatalf("list admin failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected 1 shipped order, got total=%d len=%d", total, len(orders))
	}
	if orders[0].ID != first.ID {
		t.Fatalf("expected order %d, got %d", first.ID, orders[0].ID)
	}

	orders, total, err = repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, UserID: "user-b"})
	if err != nil {
		t.Fatalf("list admin failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected 1 order for user-b, got total=%d len=%d", total, len(orders))
	}
}
