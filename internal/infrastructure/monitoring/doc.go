// Package monitoring exposes Prometheus metrics for the launcher:
// HTTP adapter traffic, search latency and result counts, execution
// outcomes by candidate kind, and provider housekeeping counters.
package monitoring
