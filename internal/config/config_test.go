package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr: %q", cfg.HTTPAddr)
	}
	if cfg.Live.QueueCapacity != 1024 {
		t.Fatalf("queue capacity: %d", cfg.Live.QueueCapacity)
	}
	if cfg.Kafka.Topic != "stocktrader" {
		t.Fatalf("topic: %q", cfg.Kafka.Topic)
	}
}

func TestLoadJSONOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"httpAddr": ":9999", "kafka": {"topic": "trades"}, "live": {"queueCapacity": 8}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("http addr not overlaid: %q", cfg.HTTPAddr)
	}
	if cfg.Kafka.Topic != "trades" {
		t.Fatalf("topic not overlaid: %q", cfg.Kafka.Topic)
	}
	if cfg.Live.QueueCapacity != 8 {
		t.Fatalf("queue capacity not overlaid: %d", cfg.Live.QueueCapacity)
	}
	// untouched defaults survive
	if cfg.Mongo.Database != "trade_history" {
		t.Fatalf("default lost: %q", cfg.Mongo.Database)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TRADEHIST_KAFKA_BROKERS", "b1:9092, b2:9092")
	t.Setenv("TRADEHIST_LIVE_QUEUE_CAP", "99")
	t.Setenv("TRADEHIST_LIVE_RATE_PER_SEC", "2.5")
	t.Setenv("TRADEHIST_LOG_LEVEL", "debug")
	cfg := Default()
	FromEnv(&cfg)
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b2:9092" {
		t.Fatalf("brokers: %v", cfg.Kafka.Brokers)
	}
	if cfg.Live.QueueCapacity != 99 {
		t.Fatalf("queue cap: %d", cfg.Live.QueueCapacity)
	}
	if cfg.Live.RatePerSec != 2.5 {
		t.Fatalf("rate: %v", cfg.Live.RatePerSec)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level: %q", cfg.Log.Level)
	}
}

func TestFromEnvQueueCapCeiling(t *testing.T) {
	t.Setenv("TRADEHIST_LIVE_QUEUE_CAP", "1000000")
	cfg := Default()
	FromEnv(&cfg)
	if cfg.Live.QueueCapacity != 65536 {
		t.Fatalf("expected capped value, got %d", cfg.Live.QueueCapacity)
	}
}
