package graphics

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 13
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// ParseFontWeight parses a weight name or number ("bold", "700").
func ParseFontWeight(s string) (FontWeight, error) {
	switch s {
	case "", "normal", "regular":
		return FontWeightNormal, nil
	case "medium":
		return FontWeightMedium, nil
	case "semibold":
		return FontWeightSemibold, nil
	case "bold":
		return FontWeightBold, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 900 {
		return 0, fmt.Errorf("invalid font weight %q", s)
	}
	return FontWeight(n), nil
}

// TextStyle describes how a segment title is drawn.
type TextStyle struct {
	Color      Color
	FontSize   float64
	FontWeight FontWeight
	// ShadowColor draws a one pixel drop shadow below the text when non-zero.
	ShadowColor Color
}

// EffectiveFontSize returns FontSize, or the default size when unset.
func (s TextStyle) EffectiveFontSize() float64 {
	if s.FontSize <= 0 {
		return defaultFontSize
	}
	return s.FontSize
}

// IsBold reports whether the weight should be rendered bold.
func (s TextStyle) IsBold() bool {
	return s.FontWeight >= FontWeightSemibold
}

// Face returns the bitmap face used to shape and measure labels.
// Labels are shaped at the face's native size and scaled by TextScale.
func Face() font.Face {
	return basicfont.Face7x13
}

// TextScale returns the factor between the native face height and the style's size.
func TextScale(style TextStyle) float64 {
	return style.EffectiveFontSize() / float64(basicfont.Face7x13.Height)
}

// MeasureText returns the laid-out size of a single line of text.
func MeasureText(text string, style TextStyle) Size {
	if text == "" {
		return Size{}
	}
	scale := TextScale(style)
	advance := font.MeasureString(Face(), text).Ceil()
	if style.IsBold() {
		advance++
	}
	return Size{
		Width:  math.Ceil(float64(advance) * scale),
		Height: math.Ceil(float64(basicfont.Face7x13.Height) * scale),
	}
}
