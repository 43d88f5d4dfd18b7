package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Gradient    *Gradient  // If set, overrides Color for the fill
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels
}

// FillPaint returns a solid fill paint.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// StrokePaint returns a solid stroke paint of the given width.
func StrokePaint(c Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width}
}

// IsVisible reports whether drawing with this paint would produce any pixels.
func (p Paint) IsVisible() bool {
	if p.Style == PaintStyleStroke && p.StrokeWidth <= 0 {
		return false
	}
	if p.Gradient.IsValid() {
		return true
	}
	return p.Color.A() != 0
}
