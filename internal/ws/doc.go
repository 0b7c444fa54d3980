// Package ws implements the live showcase connection: a typed JSON message
// loop over a WebSocket through which the frontend pulls catalog snapshots
// and renders individual previews without re-requesting the whole page.
package ws
