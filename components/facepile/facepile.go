// Package facepile catalogs the collaborator facepile component.
package facepile

import (
	"github.com/neunato/zed/internal/catalog"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/render"
)

func init() {
	component.AddComponentRegistration(func() { component.Register(Facepile{}) })
	component.AddPreviewRegistration(func() { component.RegisterPreview(Facepile{}) })
}

// Facepile is an overlapping row of collaborator avatars.
type Facepile struct{}

func (Facepile) Name() string           { return "Facepile" }
func (Facepile) Scope() component.Scope { return component.ScopeCollaboration }
func (Facepile) Description() string {
	return "Overlapping row of collaborator avatars with an overflow count."
}

func (Facepile) Preview(rc *render.Context) render.Element {
	return catalog.Group(
		catalog.Single("Pair", pile(rc, 2)),
		catalog.Single("Crowd", pile(rc, 5).WithProp("overflow", 3)),
	).Render(rc)
}

func pile(rc *render.Context, n int) render.Element {
	el := render.El("facepile").WithProp("border", rc.Color("background"))
	for i := 0; i < n; i++ {
		el = el.WithChildren(render.El("avatar").WithProp("index", i))
	}
	return el
}
