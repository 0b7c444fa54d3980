// Package monitoring exposes Prometheus metrics for the showcase service:
// catalog size gauges, snapshot and preview-render counters, WebSocket
// session gauges, and HTTP request instrumentation as gin middleware.
package monitoring
