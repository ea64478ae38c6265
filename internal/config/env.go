package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays TRADEHIST_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("TRADEHIST_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("TRADEHIST_KAFKA_BROKERS"); v != "" {
		parts := strings.Split(v, ",")
		cfg.Kafka.Brokers = nil
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, p)
			}
		}
	}
	if v := os.Getenv("TRADEHIST_KAFKA_TOPIC"); v != "" {
		cfg.Kafka.Topic = v
	}
	if v := os.Getenv("TRADEHIST_KAFKA_GROUP"); v != "" {
		cfg.Kafka.Group = v
	}
	if v := os.Getenv("TRADEHIST_KAFKA_POLL_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Kafka.PollTimeoutMs = n
		}
	}
	if v := os.Getenv("TRADEHIST_MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("TRADEHIST_MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("TRADEHIST_MONGO_CONNECT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Mongo.ConnectTimeoutMs = n
		}
	}
	if v := os.Getenv("TRADEHIST_LIVE_QUEUE_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 65536 { // cap unbounded values
				n = 65536
			}
			cfg.Live.QueueCapacity = n
		}
	}
	if v := os.Getenv("TRADEHIST_LIVE_POLL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Live.PollIntervalMs = n
		}
	}
	if v := os.Getenv("TRADEHIST_LIVE_ENQUEUE_RETRY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Live.EnqueueRetryMs = n
		}
	}
	if v := os.Getenv("TRADEHIST_LIVE_RATE_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Live.RatePerSec = f
		}
	}
	if v := os.Getenv("TRADEHIST_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TRADEHIST_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
