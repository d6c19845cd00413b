package service

import (
	"time"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/queue"
	"github.com/dentora-store/internal/repository"
)

// FulfillmentService owns transitions of the order status. Admins may
// set any status directly; customers may only cancel their own order
// while it is still pending or confirmed.
type FulfillmentService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewFulfillmentService creates a fulfillment service.
func NewFulfillmentService(orderRepo repository.OrderRepository, queueClient *queue.Client) *FulfillmentService {
	return &FulfillmentService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// SetStatus applies one fulfillment transition on behalf of an actor.
func (s *FulfillmentService) SetStatus(actor Actor, orderID uint, newStatus string) (*models.Order, error) {
	if !constants.IsOrderStatus(newStatus) {
		return nil, ErrOrderStatusInvalid
	}
	if actor.IsAdmin() {
		return s.setStatusAdmin(actor, orderID, newStatus)
	}
	if newStatus != constants.OrderStatusCancelled {
		return nil, ErrNotAuthorized
	}
	return s.CancelOwn(actor, orderID)
}

func (s *FulfillmentService) setStatusAdmin(actor Actor, orderID uint, newStatus string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	if newStatus == constants.OrderStatusCancelled && order.CancelledAt == nil {
		updates["cancelled_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, newStatus, updates); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	publishOrderEvent(s.queueClient, updated, constants.OrderEventStatusUpdated, actor.Subject)
	return updated, nil
}

// CancelOwn cancels a customer's own order. Only pending and confirmed
// orders may still be cancelled by their owner.
func (s *FulfillmentService) CancelOwn(actor Actor, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, actor.Subject)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPending && order.Status != constants.OrderStatusConfirmed {
		return nil, ErrCancelNotAllowed
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at":   now,
		"cancelled_at": now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled, updates); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	publishOrderEvent(s.queueClient, updated, constants.OrderEventCancelledByClient, actor.Subject)
	return updated, nil
}
