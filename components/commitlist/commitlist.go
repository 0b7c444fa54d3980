// Package commitlist catalogs the commit list component.
package commitlist

import (
	"github.com/neunato/zed/internal/catalog"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/render"
)

func init() {
	component.AddComponentRegistration(func() { component.Register(CommitList{}) })
	component.AddPreviewRegistration(func() { component.RegisterPreview(CommitList{}) })
}

// CommitList is a scrollable list of commits with author and summary.
type CommitList struct{}

func (CommitList) Name() string           { return "CommitList" }
func (CommitList) Scope() component.Scope { return component.ScopeVersionControl }
func (CommitList) Description() string {
	return "Scrollable commit history with author, summary and relative time."
}

func (CommitList) Preview(rc *render.Context) render.Element {
	list := render.El("commit_list",
		commit(rc, "a1f9c02", "Fix race in watcher startup"),
		commit(rc, "8c44e17", "Add facepile overflow count"),
		commit(rc, "02b7d90", "Bump toolchain"),
	).WithProp("border", rc.Color("border"))

	return catalog.TitledGroup("History", catalog.Single("Recent", list).Grown()).Render(rc)
}

func commit(rc *render.Context, sha, summary string) render.Element {
	return render.El("commit",
		render.Text(sha).WithProp("color", rc.Color("text_muted")),
		render.Text(summary),
	)
}
