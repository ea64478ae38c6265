// Package broker connects the live relay to Kafka through franz-go. One
// Consumer is built per stream session; each joins the configured consumer
// group and polls record batches until Shutdown.
package broker
