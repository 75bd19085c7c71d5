package theme

import (
	"image/color"
	"time"
)

// DefaultShowDuration is how long a snackbar stays open before it
// auto-dismisses, when the theme does not override it.
const DefaultShowDuration = 4 * time.Second

// DefaultFadeDuration is the press-feedback fade-out length, when the theme
// does not override it.
const DefaultFadeDuration = 300 * time.Millisecond

// BadgeThemeData defines default styling for Badge widgets.
type BadgeThemeData struct {
	// Background is the badge fill color.
	Background color.RGBA
	// Text is the label color.
	Text color.RGBA
	// Position is the corner the badge anchors to when the widget does not
	// choose one: "top-right", "top-left", "bottom-right" or "bottom-left".
	Position string
}

// SnackbarThemeData defines default styling for Snackbar widgets.
type SnackbarThemeData struct {
	// Background is the bar fill color.
	Background color.RGBA
	// Text is the message color.
	Text color.RGBA
	// Action is the action button color.
	Action color.RGBA
	// ShowDuration is how long the bar stays open before auto-dismissing.
	ShowDuration time.Duration
}

// TabsThemeData defines default styling for Tabs widgets.
type TabsThemeData struct {
	// Active is the color of the selected tab.
	Active color.RGBA
	// Inactive is the color of unselected tabs.
	Inactive color.RGBA
	// Indicator is the selection underline color.
	Indicator color.RGBA
}

// TextFieldThemeData defines default styling for TextField widgets.
type TextFieldThemeData struct {
	// Text is the input text color.
	Text color.RGBA
	// Label is the floating label color at rest.
	Label color.RGBA
	// Border is the underline color at rest.
	Border color.RGBA
	// Focus is the label and underline color while focused.
	Focus color.RGBA
	// Error is the underline color in the invalid state.
	Error color.RGBA
}

// RippleThemeData defines default styling for press feedback.
type RippleThemeData struct {
	// Ink is the translucent feedback color.
	Ink color.RGBA
	// Duration is the fade-out length.
	Duration time.Duration
}

// DefaultBadgeTheme returns BadgeThemeData derived from a Palette.
func DefaultBadgeTheme(p Palette) BadgeThemeData {
	return BadgeThemeData{
		Background: p.Error,
		Text:       p.OnError,
		Position:   "top-right",
	}
}

// DefaultSnackbarTheme returns SnackbarThemeData derived from a Palette.
// The bar renders inverted against the palette's surface so it reads as a
// transient layer.
func DefaultSnackbarTheme(p Palette) SnackbarThemeData {
	return SnackbarThemeData{
		Background:   p.OnSurface,
		Text:         p.Surface,
		Action:       p.Primary,
		ShowDuration: DefaultShowDuration,
	}
}

// DefaultTabsTheme returns TabsThemeData derived from a Palette.
func DefaultTabsTheme(p Palette) TabsThemeData {
	return TabsThemeData{
		Active:    p.Primary,
		Inactive:  p.OnSurfaceVariant,
		Indicator: p.Primary,
	}
}

// DefaultTextFieldTheme returns TextFieldThemeData derived from a Palette.
func DefaultTextFieldTheme(p Palette) TextFieldThemeData {
	return TextFieldThemeData{
		Text:   p.OnSurface,
		Label:  p.OnSurfaceVariant,
		Border: p.Outline,
		Focus:  p.Primary,
		Error:  p.Error,
	}
}

// DefaultRippleTheme returns RippleThemeData derived from a Palette.
func DefaultRippleTheme(p Palette) RippleThemeData {
	return RippleThemeData{
		Ink:      p.Ink,
		Duration: DefaultFadeDuration,
	}
}
