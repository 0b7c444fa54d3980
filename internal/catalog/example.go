package catalog

import "github.com/neunato/zed/internal/render"

// LabelSide says which side of a preview its variant label renders on.
type LabelSide string

const (
	LabelTop    LabelSide = "top"
	LabelBottom LabelSide = "bottom"
	LabelLeft   LabelSide = "left"
	LabelRight  LabelSide = "right"
)

// Example pairs one rendered component variant with its label and layout
// hints.
type Example struct {
	VariantName string
	Element     render.Element
	LabelSide   LabelSide
	Grow        bool
}

// Single creates an example with the default top label.
func Single(variantName string, element render.Element) Example {
	return Example{VariantName: variantName, Element: element, LabelSide: LabelTop}
}

// Grown returns a copy of the example that grows to fill available space.
func (e Example) Grown() Example {
	e.Grow = true
	return e
}

// WithLabelSide returns a copy of the example with the label on the given
// side.
func (e Example) WithLabelSide(side LabelSide) Example {
	e.LabelSide = side
	return e
}

// Render produces the element for one labelled example.
func (e Example) Render(rc *render.Context) render.Element {
	label := render.Text(e.VariantName).WithProp("color", rc.Color("text_muted"))

	el := render.El("example").
		WithProp("label_side", string(e.LabelSide)).
		WithProp("grow", e.Grow)

	// Label-before for top/left, label-after for bottom/right.
	switch e.LabelSide {
	case LabelTop, LabelLeft:
		return el.WithChildren(label, e.Element)
	default:
		return el.WithChildren(e.Element, label)
	}
}

// ExampleGroup is an optionally titled row or column of examples.
type ExampleGroup struct {
	Title    string
	Examples []Example
	Grow     bool
	Vertical bool
}

// Group creates an untitled group of examples.
func Group(examples ...Example) ExampleGroup {
	return ExampleGroup{Examples: examples}
}

// TitledGroup creates a group of examples with a title.
func TitledGroup(title string, examples ...Example) ExampleGroup {
	return ExampleGroup{Title: title, Examples: examples}
}

// Grown returns a copy of the group that grows to fill available space.
func (g ExampleGroup) Grown() ExampleGroup {
	g.Grow = true
	return g
}

// Stacked returns a copy of the group laid out vertically.
func (g ExampleGroup) Stacked() ExampleGroup {
	g.Vertical = true
	return g
}

// Render produces the element for the whole group.
func (g ExampleGroup) Render(rc *render.Context) render.Element {
	el := render.El("example_group").
		WithProp("grow", g.Grow).
		WithProp("vertical", g.Vertical)
	if g.Title != "" {
		el = el.WithProp("title", g.Title).WithProp("border", rc.Color("border"))
	}
	for _, example := range g.Examples {
		el = el.WithChildren(example.Render(rc))
	}
	return el
}
