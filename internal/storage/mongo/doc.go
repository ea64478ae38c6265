// Package mongostore implements the durable trade store on MongoDB.
//
// Every record observed by the ingestion pipeline is written here keyed by its
// source topic (one collection per topic), regardless of live delivery state.
// The same store answers the historical REST queries (latest buy, trades and
// shares per owner, notional, ROI).
package mongostore
