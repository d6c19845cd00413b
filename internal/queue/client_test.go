package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dentora-store/internal/config"
	"github.com/dentora-store/internal/constants"
)

func TestDisabledClientSwallowsEnqueues(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("expected disabled client")
	}
	if err := client.EnqueueOrderEvent(OrderEventPayload{OrderID: 1}); err != nil {
		t.Fatalf("disabled enqueue should be a no-op, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestNilClientIsSafe(t *testing.T) {
	var client *Client
	if client.Enabled() {
		t.Fatalf("nil client should report disabled")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("nil close failed: %v", err)
	}
}

func TestNewOrderEventTask(t *testing.T) {
	payload := OrderEventPayload{
		OrderID:       7,
		OrderNo:       "DT20260831120000123456",
		Event:         constants.OrderEventPaymentUpdated,
		Status:        constants.OrderStatusPending,
		PaymentStatus: constants.PaymentStatusPartial,
		Actor:         "admin-1",
		OccurredAt:    time.Now(),
	}
	task, err := NewOrderEventTask(payload)
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != constants.TaskOrderEvent {
		t.Fatalf("task type want %s got %s", constants.TaskOrderEvent, task.Type())
	}

	var decoded OrderEventPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("unmarshal payload failed: %v", err)
	}
	if decoded.OrderID != 7 || decoded.OrderNo != payload.OrderNo || decoded.Event != payload.Event {
		t.Fatalf("unexpected payload %+v", decoded)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, serverCfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("addr want 127.0.0.1:6379 got %s", opt.Addr)
	}
	if serverCfg.Concurrency != 10 {
		t.Fatalf("concurrency want 10 got %d", serverCfg.Concurrency)
	}
	if len(serverCfg.Queues) != 1 || serverCfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected queues %v", serverCfg.Queues)
	}

	opt, serverCfg = BuildServerConfig(&config.QueueConfig{
		Host:        "redis.internal",
		Port:        6380,
		Concurrency: 4,
		Queues:      map[string]int{"default": 5, "low": 1},
	})
	if opt.Addr != "redis.internal:6380" {
		t.Fatalf("addr want redis.internal:6380 got %s", opt.Addr)
	}
	if serverCfg.Concurrency != 4 {
		t.Fatalf("concurrency want 4 got %d", serverCfg.Concurrency)
	}
	if serverCfg.Queues["default"] != 5 || serverCfg.Queues["low"] != 1 {
		t.Fatalf("unexpected queues %v", serverCfg.Queues)
	}
}
