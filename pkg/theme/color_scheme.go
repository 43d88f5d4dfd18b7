// Package theme provides color schemes, component style defaults and the
// style registry that supplies type-wide defaults to widgets.
package theme

import "github.com/go-drift/segmented/pkg/graphics"

// Brightness indicates whether a scheme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns "light" or "dark".
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme defines the palette component defaults are derived from.
type ColorScheme struct {
	Brightness       Brightness
	Primary          graphics.Color
	OnPrimary        graphics.Color
	Surface          graphics.Color
	OnSurface        graphics.Color
	SurfaceVariant   graphics.Color
	OnSurfaceVariant graphics.Color
	Outline          graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Brightness:       BrightnessLight,
		Primary:          graphics.RGB(0x00, 0x7A, 0xFF),
		OnPrimary:        graphics.ColorWhite,
		Surface:          graphics.RGB(0xFF, 0xFF, 0xFF),
		OnSurface:        graphics.RGB(0x1C, 0x1B, 0x1F),
		SurfaceVariant:   graphics.RGB(0xEE, 0xEE, 0xF0),
		OnSurfaceVariant: graphics.RGB(0x49, 0x45, 0x4F),
		Outline:          graphics.RGB(0xC7, 0xC7, 0xCC),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Brightness:       BrightnessDark,
		Primary:          graphics.RGB(0x0A, 0x84, 0xFF),
		OnPrimary:        graphics.ColorWhite,
		Surface:          graphics.RGB(0x1C, 0x1C, 0x1E),
		OnSurface:        graphics.RGB(0xE6, 0xE1, 0xE5),
		SurfaceVariant:   graphics.RGB(0x2C, 0x2C, 0x2E),
		OnSurfaceVariant: graphics.RGB(0xCA, 0xC4, 0xD0),
		Outline:          graphics.RGB(0x48, 0x48, 0x4A),
	}
}

// ColorSchemeFor returns the default palette for a brightness.
func ColorSchemeFor(b Brightness) ColorScheme {
	if b == BrightnessDark {
		return DarkColorScheme()
	}
	return LightColorScheme()
}
