// Package metrics exposes Prometheus counters for moves, position writes and
// reconcile latency, served at /metrics through Fiber's net/http adaptor.
package metrics
