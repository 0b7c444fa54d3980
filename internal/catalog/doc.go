// Package catalog provides the presentation layer over component
// snapshots: deterministic grouping by scope for the showcase page, and the
// example/example-group value objects previews use to lay out their
// variants. Nothing here carries registry semantics.
package catalog
