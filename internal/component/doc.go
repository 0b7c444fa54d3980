// Package component implements the process-wide catalog of self-describing
// UI components.
//
// Component packages queue zero-argument registration callbacks from their
// init() functions via AddComponentRegistration and AddPreviewRegistration;
// linking a package into the binary is all it takes for its components to
// appear, with no central manifest to edit. Init drains the queued
// callbacks exactly once into the package default registry, and Components
// folds the accumulated registrations into an immutable, queryable
// snapshot keyed by component identity.
//
// Registration cannot fail: duplicate names resolve by last-write-wins when
// a snapshot is built, and unknown scope strings are preserved rather than
// rejected. A component that never registers simply never appears in any
// snapshot.
package component
