// Package render defines the renderable element tree produced by component
// previews and the context a preview renders against. The backend never
// interprets elements beyond encoding them; the showcase frontend owns
// layout and styling.
package render
