// Package theme defines the toolkit's styling tokens: a color palette,
// per-widget token structs derived from it, and helpers for turning colors
// into CSS values. Styles stay data until render time; widgets read tokens
// and the stylesheet builder turns a theme into the CSS the showcase and
// preview pages embed.
package theme

// Theme bundles a palette with optional per-widget token overrides.
// Component themes left nil derive from the palette on access.
type Theme struct {
	// Palette is the color scheme tokens derive from.
	Palette Palette

	// Component themes - optional, derived from Palette if nil.
	BadgeTheme     *BadgeThemeData
	SnackbarTheme  *SnackbarThemeData
	TabsTheme      *TabsThemeData
	TextFieldTheme *TextFieldThemeData
	RippleTheme    *RippleThemeData
}

// Default returns the light theme.
func Default() *Theme {
	return &Theme{Palette: Light()}
}

// DefaultDark returns the dark theme.
func DefaultDark() *Theme {
	return &Theme{Palette: Dark()}
}

// BadgeThemeOf returns the badge theme, deriving from Palette if not set.
func (t *Theme) BadgeThemeOf() BadgeThemeData {
	if t.BadgeTheme != nil {
		return *t.BadgeTheme
	}
	return DefaultBadgeTheme(t.Palette)
}

// SnackbarThemeOf returns the snackbar theme, deriving from Palette if not set.
func (t *Theme) SnackbarThemeOf() SnackbarThemeData {
	if t.SnackbarTheme != nil {
		return *t.SnackbarTheme
	}
	return DefaultSnackbarTheme(t.Palette)
}

// TabsThemeOf returns the tabs theme, deriving from Palette if not set.
func (t *Theme) TabsThemeOf() TabsThemeData {
	if t.TabsTheme != nil {
		return *t.TabsTheme
	}
	return DefaultTabsTheme(t.Palette)
}

// TextFieldThemeOf returns the text field theme, deriving from Palette if not set.
func (t *Theme) TextFieldThemeOf() TextFieldThemeData {
	if t.TextFieldTheme != nil {
		return *t.TextFieldTheme
	}
	return DefaultTextFieldTheme(t.Palette)
}

// RippleThemeOf returns the ripple theme, deriving from Palette if not set.
func (t *Theme) RippleThemeOf() RippleThemeData {
	if t.RippleTheme != nil {
		return *t.RippleTheme
	}
	return DefaultRippleTheme(t.Palette)
}
