package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config is the top-level configuration loaded from defaults, file, and env.
type Config struct {
	HTTPAddr string      `json:"httpAddr"`
	Kafka    KafkaConfig `json:"kafka"`
	Mongo    MongoConfig `json:"mongo"`
	Live     LiveConfig  `json:"live"`
	Log      LogConfig   `json:"log"`
}

// KafkaConfig describes the upstream broker the ingester consumes from.
type KafkaConfig struct {
	Brokers []string `json:"brokers"`
	Topic   string   `json:"topic"`
	Group   string   `json:"group"`
	// PollTimeoutMs bounds a single blocking poll so terminate is observed
	// within a poll interval even on an idle topic.
	PollTimeoutMs int `json:"pollTimeoutMs"`
}

// MongoConfig describes the durable trade store.
type MongoConfig struct {
	URI              string `json:"uri"`
	Database         string `json:"database"`
	ConnectTimeoutMs int    `json:"connectTimeoutMs"`
}

// LiveConfig tunes the per-connection streaming pipeline.
type LiveConfig struct {
	// QueueCapacity bounds the hand-off queue between ingester and dispatcher.
	QueueCapacity int `json:"queueCapacity"`
	// PollIntervalMs is the dispatcher's queue poll wait.
	PollIntervalMs int `json:"pollIntervalMs"`
	// EnqueueRetryMs is the ingester's wait per enqueue attempt on a full queue.
	EnqueueRetryMs int `json:"enqueueRetryMs"`
	// RatePerSec caps records pushed to a client per second. 0 disables the cap.
	RatePerSec float64 `json:"ratePerSec"`
}

// LogConfig mirrors pkg/log.Config.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		Kafka: KafkaConfig{
			Brokers:       []string{"localhost:9092"},
			Topic:         "stocktrader",
			Group:         "trade-history",
			PollTimeoutMs: 1000,
		},
		Mongo: MongoConfig{
			URI:              "mongodb://localhost:27017",
			Database:         "trade_history",
			ConnectTimeoutMs: 10_000,
		},
		Live: LiveConfig{
			QueueCapacity:  1024,
			PollIntervalMs: 1000,
			EnqueueRetryMs: 1000,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a JSON file overlaid on defaults. An empty
// path returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PollTimeout returns the broker poll timeout as a duration.
func (k KafkaConfig) PollTimeout() time.Duration {
	return time.Duration(k.PollTimeoutMs) * time.Millisecond
}

// ConnectTimeout returns the store connect timeout as a duration.
func (m MongoConfig) ConnectTimeout() time.Duration {
	return time.Duration(m.ConnectTimeoutMs) * time.Millisecond
}

// PollInterval returns the dispatcher poll wait as a duration.
func (l LiveConfig) PollInterval() time.Duration {
	return time.Duration(l.PollIntervalMs) * time.Millisecond
}

// EnqueueRetry returns the ingester enqueue-retry wait as a duration.
func (l LiveConfig) EnqueueRetry() time.Duration {
	return time.Duration(l.EnqueueRetryMs) * time.Millisecond
}
