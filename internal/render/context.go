package render

// Default viewport a preview is laid out in when the caller does not say
// otherwise.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Context carries the immutable inputs available to a preview while it
// renders. Previews must treat it as read-only.
type Context struct {
	theme  Theme
	width  int
	height int
}

// NewContext creates a render context for the given theme with the default
// viewport.
func NewContext(theme Theme) *Context {
	return &Context{theme: theme, width: DefaultWidth, height: DefaultHeight}
}

// WithViewport returns a copy of the context with the given viewport.
func (c *Context) WithViewport(width, height int) *Context {
	out := *c
	out.width = width
	out.height = height
	return &out
}

// Theme returns the active theme.
func (c *Context) Theme() Theme { return c.theme }

// Width returns the viewport width in logical pixels.
func (c *Context) Width() int { return c.width }

// Height returns the viewport height in logical pixels.
func (c *Context) Height() int { return c.height }

// Color resolves a theme color by role, returning the empty string for
// roles the theme does not define.
func (c *Context) Color(role string) string {
	return c.theme.Colors[role]
}
