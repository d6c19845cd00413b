package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dentora-store/internal/logger"
	"github.com/dentora-store/internal/provider"
	"github.com/dentora-store/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container

	httpClient *http.Client
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	timeout := 3 * time.Second
	if c != nil && c.Config != nil && c.Config.Notify.TimeoutMS > 0 {
		timeout = time.Duration(c.Config.Notify.TimeoutMS) * time.Millisecond
	}
	return &Consumer{
		Container:  c,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Register hooks the consumer into the task mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderEvent, c.handleOrderEvent)
}

// handleOrderEvent delivers an order notification. With a webhook URL
// configured the payload is POSTed there; otherwise it is only logged.
func (c *Consumer) handleOrderEvent(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderEventPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_event_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_event_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_event_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_event_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	webhookURL := ""
	if c.Config != nil {
		webhookURL = c.Config.Notify.WebhookURL
	}
	if webhookURL == "" {
		logger.Infow("order_event",
			"order_id", payload.OrderID,
			"order_no", payload.OrderNo,
			"event", payload.Event,
			"status", order.Status,
			"payment_status", order.PaymentStatus,
			"actor", payload.Actor,
		)
		return nil
	}
	return c.postWebhook(ctx, webhookURL, payload)
}

func (c *Consumer) postWebhook(ctx context.Context, url string, payload queue.OrderEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warnw("worker_order_event_webhook_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		logger.Warnw("worker_order_event_webhook_rejected", "order_id", payload.OrderID, "status", resp.StatusCode)
	}
	return nil
}
