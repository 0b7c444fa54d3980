package component

import "github.com/neunato/zed/internal/render"

// PreviewFunc produces a renderable element for a component given a render
// context. It must be pure: no stored state, no registry mutation.
type PreviewFunc func(rc *render.Context) render.Element

// Component is the capability every catalogued component supplies: a
// required static name plus optional scope and description.
type Component interface {
	// Name reports the component's unique static name. It doubles as the
	// catalog identity, so two components sharing a name collapse into one
	// entry.
	Name() string
	// Scope reports the functional area; the zero Scope means none.
	Scope() Scope
	// Description reports optional free text; empty means none.
	Description() string
}

// Previewable is a Component that can also render a preview of itself for
// the showcase.
type Previewable interface {
	Component
	Preview(rc *render.Context) render.Element
}
