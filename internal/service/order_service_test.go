package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/repository"
)

type checkoutFixture struct {
	cart   *cartFixture
	orders *OrderService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	cart := newCartFixture(t)
	orderRepo := repository.NewOrderRepository(cart.db)
	productRepo := repository.NewProductRepository(cart.db)
	bundleRepo := repository.NewBundleRepository(cart.db)
	return &checkoutFixture{
		cart:   cart,
		orders: NewOrderService(orderRepo, productRepo, bundleRepo, cart.svc, nil),
	}
}

func TestCheckoutRequiresUser(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.orders.Checkout(context.Background(), CheckoutInput{SessionID: "s:abc"})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.orders.Checkout(context.Background(), CheckoutInput{
		SessionID: "u:customer-1",
		UserID:    "customer-1",
	})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutSnapshotsCartAndClearsIt(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	if _, err := f.cart.svc.AddProduct(ctx, "u:customer-1", "customer-1", f.cart.product.ID); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	if _, err := f.cart.svc.UpdateProductQuantity(ctx, "u:customer-1", "customer-1", f.cart.product.ID, 2); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if _, err := f.cart.svc.AddBundle(ctx, "u:customer-1", "customer-1", f.cart.bundle.ID); err != nil {
		t.Fatalf("add bundle failed: %v", err)
	}

	order, err := f.orders.Checkout(ctx, CheckoutInput{
		SessionID: "u:customer-1",
		UserID:    "customer-1",
		Notes:     "deliver to the back entrance",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if !strings.HasPrefix(order.OrderNo, "DT") {
		t.Fatalf("expected order number with DT prefix, got %s", order.OrderNo)
	}
	if order.Status != constants.OrderStatusPending || order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("expected pending/pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	// 2 * 1800 + parse("12,500 DZD")
	if !order.TotalAmount.Decimal.Equal(models.NewMoneyFromInt(16100).Decimal) {
		t.Fatalf("expected total 16100.00, got %s", order.TotalAmount)
	}
	if !order.AmountPaid.Decimal.IsZero() {
		t.Fatalf("expected zero amount paid, got %s", order.AmountPaid)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected item snapshot %+v", order.Items)
	}
	if len(order.Bundles) != 1 || order.Bundles[0].BundlePrice != "12,500 DZD" {
		t.Fatalf("unexpected bundle snapshot %+v", order.Bundles)
	}
	if order.Notes != "deliver to the back entrance" {
		t.Fatalf("unexpected notes %q", order.Notes)
	}

	view, err := f.cart.svc.Get(ctx, "u:customer-1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if view.ItemCount != 0 {
		t.Fatalf("expected cart cleared after checkout, got count %d", view.ItemCount)
	}
}

func TestCheckoutSnapshotSurvivesLaterCatalogEdits(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	if _, err := f.cart.svc.AddProduct(ctx, "u:customer-1", "customer-1", f.cart.product.ID); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	order, err := f.orders.Checkout(ctx, CheckoutInput{
		SessionID: "u:customer-1",
		UserID:    "customer-1",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	f.cart.product.Price = models.NewMoneyFromInt(9999)
	if err := f.cart.db.Save(f.cart.product).Error; err != nil {
		t.Fatalf("reprice product failed: %v", err)
	}

	reloaded, err := f.orders.GetForUser(order.ID, "customer-1")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if !reloaded.Items[0].ProductPrice.Decimal.Equal(models.NewMoneyFromInt(1800).Decimal) {
		t.Fatalf("expected snapshotted price 1800.00, got %s", reloaded.Items[0].ProductPrice)
	}
	if !reloaded.TotalAmount.Decimal.Equal(models.NewMoneyFromInt(1800).Decimal) {
		t.Fatalf("expected frozen total 1800.00, got %s", reloaded.TotalAmount)
	}
}

func TestCheckoutRejectsDeactivatedProduct(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	if _, err := f.cart.svc.AddProduct(ctx, "u:customer-1", "customer-1", f.cart.product.ID); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	f.cart.product.IsActive = false
	if err := f.cart.db.Save(f.cart.product).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	_, err := f.orders.Checkout(ctx, CheckoutInput{
		SessionID: "u:customer-1",
		UserID:    "customer-1",
	})
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestGetForUserScopesOwner(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	if _, err := f.cart.svc.AddProduct(ctx, "u:customer-1", "customer-1", f.cart.product.ID); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	order, err := f.orders.Checkout(ctx, CheckoutInput{
		SessionID: "u:customer-1",
		UserID:    "customer-1",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := f.orders.GetForUser(order.ID, "intruder"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign user, got %v", err)
	}
	found, err := f.orders.GetByOrderNoForUser(order.OrderNo, "customer-1")
	if err != nil {
		t.Fatalf("get by order no failed: %v", err)
	}
	if found.ID != order.ID {
		t.Fatalf("expected order %d, got %d", order.ID, found.ID)
	}
}
