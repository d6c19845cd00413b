package queue

import (
	"encoding/json"
	"time"

	"github.com/dentora-store/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderEvent carries order lifecycle notifications.
	TaskOrderEvent = constants.TaskOrderEvent
)

// OrderEventPayload is the order notification task payload.
type OrderEventPayload struct {
	OrderID       uint      `json:"order_id"`
	OrderNo       string    `json:"order_no"`
	Event         string    `json:"event"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Actor         string    `json:"actor"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewOrderEventTask creates an order notification task.
func NewOrderEventTask(payload OrderEventPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderEvent, body), nil
}
