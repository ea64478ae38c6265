// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecordsIngested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tradehist",
		Subsystem: "live",
		Name:      "records_ingested_total",
		Help:      "Total number of records pulled from the broker per topic",
	}, []string{"topic"})

	RecordsPersisted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tradehist",
		Subsystem: "live",
		Name:      "records_persisted_total",
		Help:      "Total number of purchases written to the store per topic",
	}, []string{"topic"})

	RecordsDelivered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradehist",
		Subsystem: "live",
		Name:      "records_delivered_total",
		Help:      "Total number of records pushed to stream clients",
	})

	RecordsFiltered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradehist",
		Subsystem: "live",
		Name:      "records_filtered_total",
		Help:      "Total number of records skipped by a session filter",
	})

	QueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tradehist",
		Subsystem: "live",
		Name:      "queue_depth",
		Help:      "Current number of records buffered between ingester and dispatcher",
	})

	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tradehist",
		Subsystem: "live",
		Name:      "sessions_active",
		Help:      "Number of open stream sessions",
	})
)

func init() {
	prometheus.MustRegister(RecordsIngested)
	prometheus.MustRegister(RecordsPersisted)
	prometheus.MustRegister(RecordsDelivered)
	prometheus.MustRegister(RecordsFiltered)
	prometheus.MustRegister(QueueDepth)
	prometheus.MustRegister(SessionsActive)
}
