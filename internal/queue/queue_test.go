package queue

import (
	"encoding/json"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
)

func TestDisabledClientIsNoop(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled without config")
	}
	if err := client.EnqueueOrderPlacedEmail(OrderPlacedEmailPayload{UserID: 1}); err != nil {
		t.Fatalf("disabled enqueue should be noop: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestNewOrderPlacedEmailTaskPayload(t *testing.T) {
	task, err := NewOrderPlacedEmailTask(OrderPlacedEmailPayload{
		UserID:           3,
		OrderIDs:         []uint{10, 11},
		DeliveryFee:      "200.00",
		DeliveryResolved: true,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if task.Type() != TaskOrderPlacedEmail {
		t.Fatalf("want %s got %s", TaskOrderPlacedEmail, task.Type())
	}
	var decoded OrderPlacedEmailPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded.OrderIDs) != 2 || decoded.DeliveryFee != "200.00" {
		t.Fatalf("unexpected payload %+v", decoded)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(&config.QueueConfig{Host: "redis", Port: 6380, DB: 2})
	if opt.Addr != "redis:6380" || opt.DB != 2 {
		t.Fatalf("unexpected redis opt %+v", opt)
	}
	if cfg.Concurrency != 10 {
		t.Fatalf("want default concurrency 10 got %d", cfg.Concurrency)
	}
	if cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("want default queue weight 1 got %v", cfg.Queues)
	}
}

func TestRedisOptFallsBackToLocalhost(t *testing.T) {
	opt := RedisOpt(&config.QueueConfig{Host: "  ", Password: "secret"})
	if opt.Addr != "127.0.0.1:6379" || opt.Password != "secret" {
		t.Fatalf("unexpected redis opt %+v", opt)
	}
	_, cfg := BuildServerConfig(&config.QueueConfig{Concurrency: 3, Queues: map[string]int{"critical": 6, DefaultQueue: 1}})
	if cfg.Concurrency != 3 || cfg.Queues["critical"] != 6 || cfg.ErrorHandler == nil {
		t.Fatalf("unexpected server config %+v", cfg)
	}
}
