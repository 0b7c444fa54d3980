package catalog

import (
	"sort"

	"github.com/neunato/zed/internal/component"
)

// UncategorizedLabel heads the group of components that declared no scope.
const UncategorizedLabel = "Uncategorized"

// ScopeGroup is one section of the showcase page: a scope label and the
// components under it, sorted by name.
type ScopeGroup struct {
	Label      string               `json:"label"`
	Components []component.Metadata `json:"components"`
}

// Groups arranges a snapshot into sections: known scopes and unknown scope
// labels sorted lexicographically, with unscoped components last. The
// arrangement is deterministic for any snapshot with the same contents.
func Groups(snapshot *component.AllComponents) []ScopeGroup {
	byLabel := make(map[string][]component.Metadata)
	for _, m := range snapshot.AllSorted() {
		label := m.Scope.Label()
		if m.Scope.IsZero() {
			label = UncategorizedLabel
		}
		byLabel[label] = append(byLabel[label], m)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		if label != UncategorizedLabel {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	if _, ok := byLabel[UncategorizedLabel]; ok {
		labels = append(labels, UncategorizedLabel)
	}

	groups := make([]ScopeGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, ScopeGroup{Label: label, Components: byLabel[label]})
	}
	return groups
}
