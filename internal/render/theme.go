package render

// Theme describes the visual palette a preview renders against.
type Theme struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Kind   string            `json:"kind"` // "dark" or "light"
	Colors map[string]string `json:"colors"`
}

// Dark returns the built-in dark theme.
func Dark() Theme {
	return Theme{
		ID:   "one-dark",
		Name: "One Dark",
		Kind: "dark",
		Colors: map[string]string{
			"background": "#282c33",
			"surface":    "#2f343e",
			"border":     "#464b57",
			"text":       "#dce0e5",
			"text_muted": "#878a98",
			"accent":     "#74ade8",
			"error":      "#d07277",
		},
	}
}

// Light returns the built-in light theme.
func Light() Theme {
	return Theme{
		ID:   "one-light",
		Name: "One Light",
		Kind: "light",
		Colors: map[string]string{
			"background": "#fafafa",
			"surface":    "#ffffff",
			"border":     "#c9c9ca",
			"text":       "#383a41",
			"text_muted": "#7f8188",
			"accent":     "#5c78e2",
			"error":      "#d36151",
		},
	}
}

// Themes lists every built-in theme.
func Themes() []Theme {
	return []Theme{Dark(), Light()}
}

// ThemeByID looks a theme up by id.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range Themes() {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeOrDefault resolves id, falling back to fallbackID and finally to the
// dark theme. Resolution never fails; previews always get a usable theme.
func ThemeOrDefault(id, fallbackID string) Theme {
	if t, ok := ThemeByID(id); ok {
		return t
	}
	if t, ok := ThemeByID(fallbackID); ok {
		return t
	}
	return Dark()
}
