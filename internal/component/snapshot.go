package component

import "sort"

// ID is the opaque, stable identity of a catalogued component, derived from
// its static name. Registrations sharing a name share an ID and collapse
// into one entry.
type ID string

// Metadata is the materialized, read-only view of one component: the last
// registration seen for its name joined with its preview, if any.
type Metadata struct {
	ID          ID          `json:"id"`
	Name        string      `json:"name"`
	Scope       Scope       `json:"scope"`
	Description string      `json:"description,omitempty"`
	Preview     PreviewFunc `json:"-"`
}

// HasPreview reports whether a preview callback was registered for the
// component.
func (m Metadata) HasPreview() bool { return m.Preview != nil }

// AllComponents is an immutable point-in-time snapshot of the catalog,
// keyed by component ID. It is built fresh on every query and safe to read
// without synchronization.
type AllComponents struct {
	byID map[ID]Metadata
}

// Get looks up one component by ID.
func (a *AllComponents) Get(id ID) (Metadata, bool) {
	m, ok := a.byID[id]
	return m, ok
}

// Len returns the number of distinct components in the snapshot.
func (a *AllComponents) Len() int { return len(a.byID) }

// All returns every component in unspecified order.
func (a *AllComponents) All() []Metadata {
	out := make([]Metadata, 0, len(a.byID))
	for _, m := range a.byID {
		out = append(out, m)
	}
	return out
}

// AllSorted returns every component in lexicographic name order.
func (a *AllComponents) AllSorted() []Metadata {
	out := a.All()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AllPreviews returns the components that have a preview, in unspecified
// order.
func (a *AllComponents) AllPreviews() []Metadata {
	out := make([]Metadata, 0, len(a.byID))
	for _, m := range a.byID {
		if m.HasPreview() {
			out = append(out, m)
		}
	}
	return out
}

// AllPreviewsSorted returns the components that have a preview, in
// lexicographic name order.
func (a *AllComponents) AllPreviewsSorted() []Metadata {
	out := a.AllPreviews()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
