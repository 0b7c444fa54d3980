// Package toast catalogs the toast notification component.
package toast

import (
	"github.com/neunato/zed/internal/catalog"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/render"
)

func init() {
	component.AddComponentRegistration(func() { component.Register(Toast{}) })
	component.AddPreviewRegistration(func() { component.RegisterPreview(Toast{}) })
}

// Toast is a transient notification banner.
type Toast struct{}

func (Toast) Name() string           { return "Toast" }
func (Toast) Scope() component.Scope { return component.ScopeNotification }
func (Toast) Description() string {
	return "Transient notification with optional action, dismissed automatically."
}

func (Toast) Preview(rc *render.Context) render.Element {
	return catalog.TitledGroup("Severity",
		catalog.Single("Info", toast(rc, "Settings saved", rc.Color("accent"))),
		catalog.Single("Error", toast(rc, "Connection lost", rc.Color("error"))),
	).Stacked().Render(rc)
}

func toast(rc *render.Context, message, tint string) render.Element {
	return render.El("toast", render.Text(message)).
		WithProp("tint", tint).
		WithProp("background", rc.Color("surface"))
}
