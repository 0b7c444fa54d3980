package render

import "github.com/bytedance/sonic"

// Element is a single renderable UI node. Previews build trees of elements;
// the frontend receives them as JSON.
type Element struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []Element      `json:"children,omitempty"`
}

// El creates an element of the given type with optional children.
func El(typ string, children ...Element) Element {
	return Element{Type: typ, Children: children}
}

// Text creates a text node.
func Text(s string) Element {
	return Element{Type: "text", Text: s}
}

// WithProp returns a copy of e with the given prop set. The receiver's prop
// map is never mutated, so elements can be shared between previews.
func (e Element) WithProp(key string, value any) Element {
	props := make(map[string]any, len(e.Props)+1)
	for k, v := range e.Props {
		props[k] = v
	}
	props[key] = value
	e.Props = props
	return e
}

// WithChildren returns a copy of e with the given children appended.
func (e Element) WithChildren(children ...Element) Element {
	combined := make([]Element, 0, len(e.Children)+len(children))
	combined = append(combined, e.Children...)
	combined = append(combined, children...)
	e.Children = combined
	return e
}

// JSON encodes the element tree.
func (e Element) JSON() ([]byte, error) {
	return sonic.Marshal(e)
}
