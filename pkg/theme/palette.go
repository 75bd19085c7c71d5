package theme

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette is the color scheme component tokens derive from when a theme
// does not override them.
type Palette struct {
	// Primary is the brand color used for emphasis: active tabs, focused
	// fields, snackbar actions.
	Primary color.RGBA
	// OnPrimary is the text color used on Primary surfaces.
	OnPrimary color.RGBA
	// Surface is the default widget background.
	Surface color.RGBA
	// OnSurface is the default text color on Surface.
	OnSurface color.RGBA
	// SurfaceVariant is the muted background for secondary surfaces.
	SurfaceVariant color.RGBA
	// OnSurfaceVariant is the muted text color for labels and inactive items.
	OnSurfaceVariant color.RGBA
	// Outline is the default border color.
	Outline color.RGBA
	// Error is the attention color used by badges and invalid fields.
	Error color.RGBA
	// OnError is the text color used on Error surfaces.
	OnError color.RGBA
	// Ink is the translucent press-feedback color.
	Ink color.RGBA
}

// Light returns the toolkit's light palette.
func Light() Palette {
	return Palette{
		Primary:          color.RGBA{R: 0x67, G: 0x50, B: 0xA4, A: 0xFF},
		OnPrimary:        colornames.White,
		Surface:          colornames.White,
		OnSurface:        color.RGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 0xFF},
		SurfaceVariant:   color.RGBA{R: 0xE7, G: 0xE0, B: 0xEC, A: 0xFF},
		OnSurfaceVariant: color.RGBA{R: 0x49, G: 0x45, B: 0x4F, A: 0xFF},
		Outline:          color.RGBA{R: 0x79, G: 0x74, B: 0x7E, A: 0xFF},
		Error:            color.RGBA{R: 0xB3, G: 0x26, B: 0x1E, A: 0xFF},
		OnError:          colornames.White,
		Ink:              color.RGBA{R: 0x67, G: 0x50, B: 0xA4, A: 0x40},
	}
}

// Dark returns the toolkit's dark palette.
func Dark() Palette {
	return Palette{
		Primary:          color.RGBA{R: 0xD0, G: 0xBC, B: 0xFF, A: 0xFF},
		OnPrimary:        color.RGBA{R: 0x38, G: 0x1E, B: 0x72, A: 0xFF},
		Surface:          color.RGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 0xFF},
		OnSurface:        color.RGBA{R: 0xE6, G: 0xE1, B: 0xE5, A: 0xFF},
		SurfaceVariant:   color.RGBA{R: 0x49, G: 0x45, B: 0x4F, A: 0xFF},
		OnSurfaceVariant: color.RGBA{R: 0xCA, G: 0xC4, B: 0xD0, A: 0xFF},
		Outline:          color.RGBA{R: 0x93, G: 0x8F, B: 0x99, A: 0xFF},
		Error:            color.RGBA{R: 0xF2, G: 0xB8, B: 0xB5, A: 0xFF},
		OnError:          color.RGBA{R: 0x60, G: 0x14, B: 0x10, A: 0xFF},
		Ink:              color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x33},
	}
}
