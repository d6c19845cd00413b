package service

import (
	"errors"
	"testing"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/repository"
)

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := repository.NewOrderRepository(newServiceTestDB(t))
	svc := NewFulfillmentService(repo, nil)

	_, err := svc.SetStatus(adminActor, 1, "archived")
	if !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}
}

func TestSetStatusAdminFreeChoice(t *testing.T) {
	repo := repository.NewOrderRepository(newServiceTestDB(t))
	svc := NewFulfillmentService(repo, nil)
	order := seedOrder(t, repo, "customer-1", 1000)

	for _, status := range []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusConfirmed, // admins may also move backwards
	} {
		updated, err := svc.SetStatus(adminActor, order.ID, status)
		if err != nil {
			t.Fatalf("admin transition to %s failed: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected status %s, got %s", status, updated.Status)
		}
	}
}

func TestSetStatusAdminCancelSetsCancelledAt(t *testing.T) {
	repo := repository.NewOrderRepository(newServiceTestDB(t))
	svc := NewFulfillmentService(repo, nil)
	order := seedOrder(t, repo, "customer-1", 1000)

	updated, err := svc.SetStatus(adminActor, order.ID, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
	if updated.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", updated.Status)
	}
	if updated.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be set")
	}
}

func TestSetStatusCustomerMayOnlyCancel(t *testing.T) {
	repo := repository.NewOrderRepository(newServiceTestDB(t))
	svc := NewFulfillmentService(repo, nil)
	order := seedOrder(t, repo, customerActor.Subject, 1000)

	_, err := svc.SetStatus(customerActor, order.ID, constants.OrderStatusShipped)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	updated, err := svc.SetStatus(customerActor, order.ID, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("customer cancel failed: %v", err)
	}
	if updated.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", updated.Status)
	}
}

func TestCancelOwnScopesOwner(t *testing.T) {
	repo := repository.NewOrderRepository(newServiceTestDB(t))
	svc := NewFulfillmentService(repo, nil)
	order := seedOrder(t, repo, "someone-else", 1000)

	_, err := svc.CancelOwn(customerActor, order.ID)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}
}

func TestCancelOwnAllowedStates(t *testing.T) {
	repo := repository.NewOrderRepository(newServiceTestDB(t))
	svc := NewFulfillmentService(repo, nil)

	confirmed := seedOrder(t, repo, customerActor.Subject, 1000)
	if err := repo.UpdateStatus(confirmed.ID, constants.OrderStatusConfirmed, nil); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if _, err := svc.CancelOwn(customerActor, confirmed.ID); err != nil {
		t.Fatalf("cancel of confirmed order failed: %v", err)
	}

	shipped := seedOrder(t, repo, customerActor.Subject, 1000)
	if err := repo.UpdateStatus(shipped.ID, constants.OrderStatusShipped, nil); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if _, err := svc.CancelOwn(customerActor, shipped.ID); !errors.Is(err, ErrCancelNotAllowed) {
		t.Fatalf("expected ErrCancelNotAllowed for shipped order, got %v", err)
	}

	delivered := seedOrder(t, repo, customerActor.Subject, 1000)
	if err := repo.UpdateStatus(delivered.ID, constants.OrderStatusDelivered, nil); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if _, err := svc.CancelOwn(customerActor, delivered.ID); !errors.Is(err, ErrCancelNotAllowed) {
		t.Fatalf("expected ErrCancelNotAllowed for delivered order, got %v", err)
	}
}
