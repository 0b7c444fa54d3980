package component

import "sync"

// registration is the raw tuple captured at registration time. The list is
// append-only; deduplication happens at snapshot time, not insertion time.
type registration struct {
	scope       Scope
	name        string
	description string
}

// Registry is the single source of truth for registered component metadata
// and previews. Writers take the lock for one insert; readers take it for
// one snapshot fold. Snapshots share no state with the registry, so they
// stay safe to read concurrently with further registrations.
type Registry struct {
	mu         sync.RWMutex
	components []registration
	previews   map[string]PreviewFunc
}

// NewRegistry creates an empty registry. Tests and embedders build their
// own; the process-wide catalog uses the package Default.
func NewRegistry() *Registry {
	return &Registry{previews: make(map[string]PreviewFunc)}
}

// RegisterComponent appends a (scope, name, description) triple. It never
// fails: duplicates accumulate and resolve last-write-wins when the list is
// folded into a snapshot.
func (r *Registry) RegisterComponent(scope Scope, name, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components = append(r.components, registration{scope: scope, name: name, description: description})
}

// RegisterPreview associates a preview callback with a component name,
// overwriting any earlier callback for the same name. A nil callback is
// ignored.
func (r *Registry) RegisterPreview(name string, fn PreviewFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.previews[name] = fn
}

// Components folds the raw registration list into an immutable snapshot
// keyed by component ID, joining each entry with its same-named preview.
// Later registrations for a name overwrite earlier ones here; this is where
// last-write-wins takes effect. The fold is a single consistent read, and
// the returned snapshot is disconnected from the registry afterward.
func (r *Registry) Components() *AllComponents {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := make(map[ID]Metadata, len(r.components))
	for _, reg := range r.components {
		id := ID(reg.name)
		byID[id] = Metadata{
			ID:          id,
			Name:        reg.name,
			Scope:       reg.scope,
			Description: reg.description,
			Preview:     r.previews[reg.name],
		}
	}
	return &AllComponents{byID: byID}
}

// Stats summarizes registry contents for health reporting.
func (r *Registry) Stats() map[string]any {
	snapshot := r.Components()

	r.mu.RLock()
	raw := len(r.components)
	previews := len(r.previews)
	r.mu.RUnlock()

	scopes := make(map[string]int)
	for _, m := range snapshot.All() {
		if !m.Scope.IsZero() {
			scopes[m.Scope.Label()]++
		}
	}

	return map[string]any{
		"registrations": raw,
		"components":    snapshot.Len(),
		"previews":      previews,
		"scopes":        scopes,
	}
}
