// Package http contains the gin handlers for the showcase API: catalog
// listing, per-component lookup, preview rendering, scope grouping, and
// theme discovery. Handlers query fresh registry snapshots on every
// request; absence maps to 404/422, never to a catalog error.
package http
