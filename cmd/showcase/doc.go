// Package main is the entry point for the component showcase server.
//
// The showcase serves the process-wide component catalog over HTTP and
// WebSocket: component packages register themselves at init time, Init
// drains the queued registrations into the catalog, and the server renders
// previews on demand.
//
// The server provides:
//   - REST API for listing components, scopes and themes
//   - Preview rendering as JSON element trees
//   - WebSocket streaming for interactive clients
//   - Prometheus metrics and health checks
//
// Configuration:
//   - Environment variables (SHOWCASE_ prefix)
//   - Optional YAML file via -config
//   - Defaults for local development
//
// Usage:
//
//	# Default configuration
//	./showcase
//
//	# Explicit configuration file
//	./showcase -config showcase.yaml
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
