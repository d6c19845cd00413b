package service

import (
	"time"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/queue"
	"github.com/dentora-store/internal/repository"
)

// SetPaymentStatusInput carries one payment transition request.
type SetPaymentStatusInput struct {
	OrderID       uint
	Status        string
	PartialAmount *models.Money
}

// PaymentService owns every transition of payment_status, amount_paid
// and the partial-payment ledger.
type PaymentService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewPaymentService creates a payment service.
func NewPaymentService(orderRepo repository.OrderRepository, queueClient *queue.Client) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// SetPaymentStatus applies one payment transition.
//
// pending and refunded reset amount_paid to zero, discard the partial
// ledger and cancel the order as a side effect. paid settles the order
// in full and discards the ledger. partial adds the given increment and
// appends a ledger entry; the increment must be positive and must not
// push amount_paid past total_amount.
func (s *PaymentService) SetPaymentStatus(actor Actor, input SetPaymentStatusInput) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	if !constants.IsPaymentStatus(input.Status) {
		return nil, ErrPaymentStatusInvalid
	}

	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	// A cancelled order accepts no further payment transitions; asking
	// for the status it already has is tolerated as a no-op.
	if order.Status == constants.OrderStatusCancelled {
		if input.Status == order.PaymentStatus && input.Status != constants.PaymentStatusPartial {
			return order, nil
		}
		return nil, ErrOrderCancelled
	}

	now := time.Now()
	switch input.Status {
	case constants.PaymentStatusPartial:
		if input.PartialAmount == nil || !input.PartialAmount.Decimal.IsPositive() {
			return nil, ErrInvalidAmount
		}
		accepted, err := s.orderRepo.AddPartialPayment(order.ID, *input.PartialAmount, now, actor.Subject)
		if err != nil {
			return nil, err
		}
		if !accepted {
			// The guard refused: the increment would exceed the order
			// total.
			return nil, ErrInvalidAmount
		}

	case constants.PaymentStatusPaid:
		if err := s.orderRepo.MarkPaid(order.ID); err != nil {
			return nil, err
		}

	case constants.PaymentStatusPending, constants.PaymentStatusRefunded:
		updates := map[string]interface{}{
			"status":       constants.OrderStatusCancelled,
			"cancelled_at": now,
			"updated_at":   now,
		}
		if err := s.orderRepo.ResetPayment(order.ID, input.Status, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	publishOrderEvent(s.queueClient, updated, constants.OrderEventPaymentUpdated, actor.Subject)
	return updated, nil
}
