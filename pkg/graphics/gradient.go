package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// Gradient describes a gradient fill.
//
// Start and End are expressed in unit coordinates of the rectangle being
// filled: (0,0) is its top-left corner and (1,1) its bottom-right corner.
// This lets a single gradient value style containers of any size.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// VerticalGradient returns a top-to-bottom gradient between two colors.
func VerticalGradient(top, bottom Color) *Gradient {
	return NewLinearGradient(Offset{X: 0.5, Y: 0}, Offset{X: 0.5, Y: 1}, []GradientStop{
		{Position: 0, Color: top},
		{Position: 1, Color: bottom},
	})
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil || g.Type != GradientTypeLinear {
		return nil
	}
	return g.Linear.Stops
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil || g.Type != GradientTypeLinear {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	for i, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
		if i > 0 && stop.Position < stops[i-1].Position {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the gradient.
func (g *Gradient) Clone() *Gradient {
	if g == nil {
		return nil
	}
	c := *g
	c.Linear.Stops = cloneGradientStops(g.Linear.Stops)
	return &c
}

// ColorAt samples the gradient at parameter t in [0, 1].
func (g *Gradient) ColorAt(t float64) Color {
	stops := g.Stops()
	if len(stops) == 0 {
		return ColorTransparent
	}
	t = clamp01(t)
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if floatEqual(span, 0) {
			return b.Color
		}
		return Lerp(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

// ColorAtPoint samples the gradient at p for a fill covering rect.
func (g *Gradient) ColorAtPoint(rect Rect, p Offset) Color {
	if g == nil || rect.IsEmpty() {
		return ColorTransparent
	}
	sx := rect.Left + g.Linear.Start.X*rect.Width()
	sy := rect.Top + g.Linear.Start.Y*rect.Height()
	ex := rect.Left + g.Linear.End.X*rect.Width()
	ey := rect.Top + g.Linear.End.Y*rect.Height()
	dx, dy := ex-sx, ey-sy
	lenSq := dx*dx + dy*dy
	if lenSq <= epsilon {
		return g.ColorAt(0)
	}
	t := ((p.X-sx)*dx + (p.Y-sy)*dy) / lenSq
	return g.ColorAt(math.Max(0, math.Min(1, t)))
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
