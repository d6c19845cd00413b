package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/provider"
	"github.com/dentora-store/internal/repository"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminOrderHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_order_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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

	orderRepo := repository.NewOrderRepository(db)
	h := &Handler{Container: &provider.Container{
		OrderRepo:          orderRepo,
		OrderService:       service.NewOrderService(orderRepo, nil, nil, nil, nil),
		PaymentService:     service.NewPaymentService(orderRepo, nil),
		FulfillmentService: service.NewFulfillmentService(orderRepo, nil),
	}}
	return h, db
}

func seedHandlerOrder(t *testing.T, db *gorm.DB, total int64) *models.Order {
	t.Helper()

	order := &models.Order{
		OrderNo:       fmt.Sprintf("DT%d", time.Now().UnixNano()),
		UserID:        "customer-1",
		TotalAmount:   models.NewMoneyFromInt(total),
		AmountPaid:    models.NewMoneyFromInt(0),
		PaymentStatus: constants.PaymentStatusPending,
		Status:        constants.OrderStatusPending,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func performAdminRequest(h *Handler, handler gin.HandlerFunc, method, path string, body interface{}, orderID uint) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", orderID)}}
	c.Set("subject", "admin-1")
	c.Set("role", constants.RoleAdmin)

	handler(c)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response failed: %v (%s)", err, w.Body.String())
	}
	return envelope
}

func TestAdminSetPaymentStatusPartial(t *testing.T) {
	h, db := setupAdminOrderHandlerTest(t)
	order := seedHandlerOrder(t, db, 10000)

	w := performAdminRequest(h, h.AdminSetPaymentStatus, http.MethodPut,
		fmt.Sprintf("/admin/orders/%d/payment-status", order.ID),
		gin.H{"payment_status": "partial", "partial_amount": "2500"},
		order.ID,
	)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body %s", w.Code, w.Body.String())
	}
	envelope := decodeEnvelope(t, w)
	if code, _ := envelope["status_code"].(float64); code != 0 {
		t.Fatalf("status_code want 0 got %v", envelope["status_code"])
	}

	loaded, err := repository.NewOrderRepository(db).GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if !loaded.AmountPaid.Decimal.Equal(models.NewMoneyFromInt(2500).Decimal) {
		t.Fatalf("expected amount paid 2500.00, got %s", loaded.AmountPaid)
	}
	if len(loaded.PartialPayments) != 1 || loaded.PartialPayments[0].RecordedBy != "admin-1" {
		t.Fatalf("unexpected ledger %+v", loaded.PartialPayments)
	}
}

func TestAdminSetPaymentStatusRejectsOvershoot(t *testing.T) {
	h, db := setupAdminOrderHandlerTest(t)
	order := seedHandlerOrder(t, db, 1000)

	w := performAdminRequest(h, h.AdminSetPaymentStatus, http.MethodPut,
		fmt.Sprintf("/admin/orders/%d/payment-status", order.ID),
		gin.H{"payment_status": "partial", "partial_amount": "1500"},
		order.ID,
	)

	envelope := decodeEnvelope(t, w)
	if code, _ := envelope["status_code"].(float64); code != 400 {
		t.Fatalf("status_code want 400 got %v body %s", envelope["status_code"], w.Body.String())
	}

	loaded, err := repository.NewOrderRepository(db).GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if !loaded.AmountPaid.Decimal.IsZero() {
		t.Fatalf("expected amount paid untouched, got %s", loaded.AmountPaid)
	}
}

func TestAdminSetPaymentStatusMissingOrder(t *testing.T) {
	h, _ := setupAdminOrderHandlerTest(t)

	w := performAdminRequest(h, h.AdminSetPaymentStatus, http.MethodPut,
		"/admin/orders/9999/payment-status",
		gin.H{"payment_status": "paid"},
		9999,
	)
	envelope := decodeEnvelope(t, w)
	if code, _ := envelope["status_code"].(float64); code != 404 {
		t.Fatalf("status_code want 404 got %v body %s", envelope["status_code"], w.Body.String())
	}
}

func TestAdminSetOrderStatus(t *testing.T) {
	h, db := setupAdminOrderHandlerTest(t)
	order := seedHandlerOrder(t, db, 1000)

	w := performAdminRequest(h, h.AdminSetOrderStatus, http.MethodPut,
		fmt.Sprintf("/admin/orders/%d/status", order.ID),
		gin.H{"status": "shipped"},
		order.ID,
	)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body %s", w.Code, w.Body.String())
	}

	loaded, err := repository.NewOrderRepository(db).GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if loaded.Status != constants.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", loaded.Status)
	}
}

func TestAdminSetOrderStatusRejectsUnknown(t *testing.T) {
	h, db := setupAdminOrderHandlerTest(t)
	order := seedHandlerOrder(t, db, 1000)

	w := performAdminRequest(h, h.AdminSetOrderStatus, http.MethodPut,
		fmt.Sprintf("/admin/orders/%d/status", order.ID),
		gin.H{"status": "archived"},
		order.ID,
	)
	envelope := decodeEnvelope(t, w)
	if code, _ := envelope["status_code"].(float64); code != 400 {
		t.Fatalf("status_code want 400 got %v body %s", envelope["status_code"], w.Body.String())
	}
}
