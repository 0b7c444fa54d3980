// Package button catalogs the button component.
package button

import (
	"github.com/neunato/zed/internal/catalog"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/render"
)

func init() {
	component.AddComponentRegistration(func() { component.Register(Button{}) })
	component.AddPreviewRegistration(func() { component.RegisterPreview(Button{}) })
}

// Button is a clickable action trigger.
type Button struct{}

func (Button) Name() string           { return "Button" }
func (Button) Scope() component.Scope { return component.ScopeInput }
func (Button) Description() string {
	return "Clickable action trigger with filled, outline and ghost styles."
}

func (Button) Preview(rc *render.Context) render.Element {
	styles := catalog.TitledGroup("Styles",
		catalog.Single("Filled", button(rc, "Save", "filled")),
		catalog.Single("Outline", button(rc, "Cancel", "outline")),
		catalog.Single("Ghost", button(rc, "Dismiss", "ghost")),
	)
	states := catalog.TitledGroup("States",
		catalog.Single("Default", button(rc, "Save", "filled")),
		catalog.Single("Disabled", button(rc, "Save", "filled").WithProp("disabled", true)),
	)
	return render.El("column", styles.Render(rc), states.Render(rc))
}

func button(rc *render.Context, label, style string) render.Element {
	return render.El("button", render.Text(label)).
		WithProp("style", style).
		WithProp("accent", rc.Color("accent"))
}
