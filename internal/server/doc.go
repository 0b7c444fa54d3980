// Package server assembles the showcase HTTP service: router, middleware,
// handlers, metrics, and graceful shutdown.
package server
