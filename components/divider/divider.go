// Package divider catalogs the divider component. It registers metadata
// only; a horizontal rule has nothing worth previewing.
package divider

import "github.com/neunato/zed/internal/component"

func init() {
	component.AddComponentRegistration(func() { component.Register(Divider{}) })
}

// Divider is a thin rule separating content regions.
type Divider struct{}

func (Divider) Name() string           { return "Divider" }
func (Divider) Scope() component.Scope { return component.ScopeLayout }
func (Divider) Description() string    { return "Thin rule separating content regions." }
