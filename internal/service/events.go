package service

import (
	"time"

	"github.com/dentora-store/internal/logger"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/queue"
)

// publishOrderEvent pushes an order lifecycle notification. Delivery is
// best effort; a failed enqueue never fails the transition that caused it.
func publishOrderEvent(client *queue.Client, order *models.Order, event, actor string) {
	if client == nil || order == nil {
		return
	}
	payload := queue.OrderEventPayload{
		OrderID:       order.ID,
		OrderNo:       order.OrderNo,
		Event:         event,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		Actor:         actor,
		OccurredAt:    time.Now(),
	}
	if err := client.EnqueueOrderEvent(payload); err != nil {
		logger.Warnw("order_event_enqueue_failed", "order_id", order.ID, "event", event, "error", err)
	}
}
