package component

import "github.com/bytedance/sonic"

// Scope classifies a component's functional area. The taxonomy is closed,
// but unrecognized scope strings are carried through verbatim instead of
// being rejected, so catalogs built against a newer taxonomy still load.
//
// The zero Scope means the component did not declare a functional area.
type Scope struct {
	text  string
	known bool
}

// The closed scope taxonomy.
var (
	ScopeLayout         = Scope{"Layout", true}
	ScopeInput          = Scope{"Input", true}
	ScopeNotification   = Scope{"Notification", true}
	ScopeEditor         = Scope{"Editor", true}
	ScopeCollaboration  = Scope{"Collaboration", true}
	ScopeVersionControl = Scope{"Version Control", true}
)

// KnownScopes returns the closed taxonomy in display order.
func KnownScopes() []Scope {
	return []Scope{
		ScopeLayout,
		ScopeInput,
		ScopeNotification,
		ScopeEditor,
		ScopeCollaboration,
		ScopeVersionControl,
	}
}

// ParseScope maps text onto the taxonomy. Unrecognized input becomes an
// unknown scope preserving the text verbatim; parsing never fails.
func ParseScope(text string) Scope {
	switch text {
	case "Layout":
		return ScopeLayout
	case "Input":
		return ScopeInput
	case "Notification":
		return ScopeNotification
	case "Editor":
		return ScopeEditor
	case "Collaboration":
		return ScopeCollaboration
	case "Version Control", "VersionControl":
		return ScopeVersionControl
	default:
		return Scope{text: text}
	}
}

// String returns the scope's display text. Unknown scopes round-trip their
// raw text, so ParseScope(s.String()) always reproduces s.
func (s Scope) String() string { return s.text }

// Known reports whether s belongs to the closed taxonomy.
func (s Scope) Known() bool { return s.known }

// IsZero reports whether the scope was left unspecified.
func (s Scope) IsZero() bool { return s == Scope{} }

// Label returns the text shown in the showcase, marking scopes outside the
// taxonomy.
func (s Scope) Label() string {
	if s.known || s.text == "" {
		return s.text
	}
	return "Unknown: " + s.text
}

// MarshalJSON encodes the scope as its display text.
func (s Scope) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(s.text)
}

// UnmarshalJSON decodes a scope from its display text.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var text string
	if err := sonic.Unmarshal(data, &text); err != nil {
		return err
	}
	*s = ParseScope(text)
	return nil
}
