// Package tabbar catalogs the editor tab bar component.
package tabbar

import (
	"github.com/neunato/zed/internal/catalog"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/render"
)

func init() {
	component.AddComponentRegistration(func() { component.Register(TabBar{}) })
	component.AddPreviewRegistration(func() { component.RegisterPreview(TabBar{}) })
}

// TabBar is the row of open-buffer tabs above an editor pane.
type TabBar struct{}

func (TabBar) Name() string           { return "TabBar" }
func (TabBar) Scope() component.Scope { return component.ScopeEditor }
func (TabBar) Description() string {
	return "Row of open-buffer tabs with active, dirty and pinned states."
}

func (TabBar) Preview(rc *render.Context) render.Element {
	bar := render.El("tab_bar",
		tab(rc, "main.go", true, false),
		tab(rc, "registry.go", false, true),
		tab(rc, "scope.go", false, false),
	).WithProp("background", rc.Color("surface"))

	return catalog.Single("Open buffers", bar).Grown().Render(rc)
}

func tab(rc *render.Context, title string, active, dirty bool) render.Element {
	return render.El("tab", render.Text(title)).
		WithProp("active", active).
		WithProp("dirty", dirty).
		WithProp("accent", rc.Color("accent"))
}
