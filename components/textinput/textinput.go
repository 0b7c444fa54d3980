// Package textinput catalogs the single-line text input component.
package textinput

import (
	"github.com/neunato/zed/internal/catalog"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/render"
)

func init() {
	component.AddComponentRegistration(func() { component.Register(TextInput{}) })
	component.AddPreviewRegistration(func() { component.RegisterPreview(TextInput{}) })
}

// TextInput is a single-line text field.
type TextInput struct{}

func (TextInput) Name() string           { return "TextInput" }
func (TextInput) Scope() component.Scope { return component.ScopeInput }
func (TextInput) Description() string {
	return "Single-line text field with placeholder and error states."
}

func (TextInput) Preview(rc *render.Context) render.Element {
	return catalog.Group(
		catalog.Single("Empty", field(rc).WithProp("placeholder", "Search…")).Grown(),
		catalog.Single("Filled", field(rc).WithProp("value", "src/main.rs")).Grown(),
		catalog.Single("Invalid", field(rc).WithProp("value", "???").WithProp("border", rc.Color("error"))).Grown(),
	).Render(rc)
}

func field(rc *render.Context) render.Element {
	return render.El("text_input").
		WithProp("border", rc.Color("border")).
		WithProp("background", rc.Color("surface"))
}
