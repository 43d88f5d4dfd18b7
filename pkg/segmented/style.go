package segmented

import (
	"github.com/go-drift/segmented/pkg/errors"
	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/layout"
	"github.com/go-drift/segmented/pkg/theme"
)

// gradientShade is how far ShowsGradient lightens the top and darkens the
// bottom of a derived gradient.
const gradientShade = 0.15

// Style returns the fully resolved style: instance values over the registry
// snapshot over color scheme defaults.
func (c *Control) Style() theme.SegmentedControlStyle {
	return c.style.Merge(c.defaults)
}

// BaseColor returns the resolved fill color of the base container.
func (c *Control) BaseColor() graphics.Color {
	return c.style.BaseColor.Merge(c.defaults.BaseColor).Or(graphics.ColorTransparent)
}

// SetBaseColor sets the fill color of the base container.
func (c *Control) SetBaseColor(color graphics.Color) {
	c.style.BaseColor = theme.Some(color)
}

// BaseGradient returns the gradient filling the base container, or nil when
// the base is a flat color. An explicit gradient wins; otherwise, when
// ShowsGradient is on, a vertical gradient is derived from BaseColor.
func (c *Control) BaseGradient() *graphics.Gradient {
	if g, ok := c.style.BaseGradient.Merge(c.defaults.BaseGradient).Get(); ok && g.IsValid() {
		return g.Clone()
	}
	if c.ShowsGradient() {
		return shade(c.BaseColor())
	}
	return nil
}

// SetBaseGradient sets the gradient filling the base container.
// Nil removes the instance gradient.
func (c *Control) SetBaseGradient(g *graphics.Gradient) {
	if g == nil {
		c.style.BaseGradient = theme.Opt[*graphics.Gradient]{}
		return
	}
	c.style.BaseGradient = theme.Some(g.Clone())
}

// StrokeColor returns the resolved outline color.
func (c *Control) StrokeColor() graphics.Color {
	return c.style.StrokeColor.Merge(c.defaults.StrokeColor).Or(graphics.ColorTransparent)
}

// SetStrokeColor sets the outline color.
func (c *Control) SetStrokeColor(color graphics.Color) {
	c.style.StrokeColor = theme.Some(color)
}

// StrokeWidth returns the resolved outline width.
func (c *Control) StrokeWidth() float64 {
	return c.style.StrokeWidth.Merge(c.defaults.StrokeWidth).Or(0)
}

// SetStrokeWidth sets the outline width. Negative widths are treated as zero.
func (c *Control) SetStrokeWidth(width float64) {
	c.style.StrokeWidth = theme.Some(max(width, 0))
}

// CornerRadius returns the resolved corner radius of the base container.
func (c *Control) CornerRadius() float64 {
	return c.style.CornerRadius.Merge(c.defaults.CornerRadius).Or(0)
}

// SetCornerRadius sets the corner radius. Negative radii are treated as zero.
func (c *Control) SetCornerRadius(radius float64) {
	c.style.CornerRadius = theme.Some(max(radius, 0))
}

// ShowsGradient reports whether gradients are derived from flat colors.
func (c *Control) ShowsGradient() bool {
	return c.style.ShowsGradient.Merge(c.defaults.ShowsGradient).Or(false)
}

// SetShowsGradient turns derived gradients on or off.
func (c *Control) SetShowsGradient(on bool) {
	c.style.ShowsGradient = theme.Some(on)
}

// SegmentEdgeInsets returns the padding between the base and its segments.
func (c *Control) SegmentEdgeInsets() layout.EdgeInsets {
	return c.style.SegmentEdgeInsets.Merge(c.defaults.SegmentEdgeInsets).Or(layout.EdgeInsets{})
}

// SetSegmentEdgeInsets sets the padding between the base and its segments.
func (c *Control) SetSegmentEdgeInsets(insets layout.EdgeInsets) {
	c.style.SegmentEdgeInsets = theme.Some(insets)
}

// ContentEdgeInsets returns the padding inside each segment.
func (c *Control) ContentEdgeInsets() layout.EdgeInsets {
	return c.style.ContentEdgeInsets.Merge(c.defaults.ContentEdgeInsets).Or(layout.EdgeInsets{})
}

// SetContentEdgeInsets sets the padding inside each segment.
func (c *Control) SetContentEdgeInsets(insets layout.EdgeInsets) {
	c.style.ContentEdgeInsets = theme.Some(insets)
}

// TitleEdgeInsets returns the padding around titles.
func (c *Control) TitleEdgeInsets() layout.EdgeInsets {
	return c.style.TitleEdgeInsets.Merge(c.defaults.TitleEdgeInsets).Or(layout.EdgeInsets{})
}

// SetTitleEdgeInsets sets the padding around titles.
func (c *Control) SetTitleEdgeInsets(insets layout.EdgeInsets) {
	c.style.TitleEdgeInsets = theme.Some(insets)
}

// ImageEdgeInsets returns the padding around images.
func (c *Control) ImageEdgeInsets() layout.EdgeInsets {
	return c.style.ImageEdgeInsets.Merge(c.defaults.ImageEdgeInsets).Or(layout.EdgeInsets{})
}

// SetImageEdgeInsets sets the padding around images.
func (c *Control) SetImageEdgeInsets(insets layout.EdgeInsets) {
	c.style.ImageEdgeInsets = theme.Some(insets)
}

// SegmentBackgroundColor returns the control-wide background of the
// selected segment.
func (c *Control) SegmentBackgroundColor() graphics.Color {
	return c.style.SegmentBackgroundColor.Merge(c.defaults.SegmentBackgroundColor).Or(graphics.ColorTransparent)
}

// SetSegmentBackgroundColor sets the control-wide segment background.
// Per-index overrides set with SetSegmentBackgroundColorAt still win.
func (c *Control) SetSegmentBackgroundColor(color graphics.Color) {
	c.style.SegmentBackgroundColor = theme.Some(color)
}

// SegmentBackgroundColorAt returns the background of the segment at index:
// its own override if any, the control-wide color otherwise.
func (c *Control) SegmentBackgroundColorAt(index int) graphics.Color {
	if c.validIndex(index) {
		if col, ok := c.segments[index].BackgroundColor.Get(); ok {
			return col
		}
	}
	return c.SegmentBackgroundColor()
}

// SetSegmentBackgroundColorAt overrides the background of one segment.
// Other segments are unaffected.
func (c *Control) SetSegmentBackgroundColorAt(color graphics.Color, index int) error {
	if !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.SetSegmentBackgroundColorAt", index, len(c.segments)))
	}
	c.segments[index].BackgroundColor = theme.Some(color)
	return nil
}

// ImageColor returns the control-wide icon tint for state, falling back to
// the StateNormal color when no layer defines state.
func (c *Control) ImageColor(state ControlState) graphics.Color {
	col, _ := lookupState(c.style.ImageColors, c.defaults.ImageColors, state)
	return col
}

// SetImageColor sets the control-wide icon tint for state.
func (c *Control) SetImageColor(color graphics.Color, state ControlState) {
	if c.style.ImageColors == nil {
		c.style.ImageColors = make(map[ControlState]graphics.Color)
	}
	c.style.ImageColors[state] = color
}

// ImageColorAt returns the icon tint of the segment at index for state.
// A per-segment color for state wins, then the control-wide color for
// state, then the per-segment and control-wide StateNormal colors.
func (c *Control) ImageColorAt(index int, state ControlState) graphics.Color {
	var own map[ControlState]graphics.Color
	if c.validIndex(index) {
		own = c.segments[index].ImageColors
	}
	if col, ok := own[state]; ok {
		return col
	}
	if col, ok := stateOnly(c.style.ImageColors, c.defaults.ImageColors, state); ok {
		return col
	}
	if col, ok := own[StateNormal]; ok {
		return col
	}
	return c.ImageColor(StateNormal)
}

// SetSegmentImageColor overrides the icon tint of one segment for state.
func (c *Control) SetSegmentImageColor(color graphics.Color, state ControlState, index int) error {
	if !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.SetSegmentImageColor", index, len(c.segments)))
	}
	s := &c.segments[index]
	if s.ImageColors == nil {
		s.ImageColors = make(map[ControlState]graphics.Color)
	}
	s.ImageColors[state] = color
	return nil
}

// TextAttributes returns the title style for state. Each field comes from
// the first layer that sets it for state, then from the StateNormal styles.
func (c *Control) TextAttributes(state ControlState) graphics.TextStyle {
	attrs := c.style.TextAttributes[state].Merge(c.defaults.TextAttributes[state])
	if state != StateNormal {
		normal := c.style.TextAttributes[StateNormal].Merge(c.defaults.TextAttributes[StateNormal])
		attrs = attrs.Merge(normal)
	}
	return attrs.TextStyle()
}

// SetTextAttributes sets the title style for state.
func (c *Control) SetTextAttributes(style graphics.TextStyle, state ControlState) {
	if c.style.TextAttributes == nil {
		c.style.TextAttributes = make(map[ControlState]theme.TextAttributes)
	}
	c.style.TextAttributes[state] = theme.TextAttributesOf(style)
}

// segmentGradient returns the gradient for a segment background, or nil
// when the background is flat.
func (c *Control) segmentGradient(index int) *graphics.Gradient {
	if !c.ShowsGradient() {
		return nil
	}
	return shade(c.SegmentBackgroundColorAt(index))
}

func shade(base graphics.Color) *graphics.Gradient {
	return graphics.VerticalGradient(base.Lighten(gradientShade), base.Darken(gradientShade))
}

// lookupState finds state in any layer, then StateNormal in any layer.
func lookupState[V any](instance, defaults map[ControlState]V, state ControlState) (V, bool) {
	if v, ok := stateOnly(instance, defaults, state); ok {
		return v, true
	}
	return stateOnly(instance, defaults, StateNormal)
}

func stateOnly[V any](instance, defaults map[ControlState]V, state ControlState) (V, bool) {
	if v, ok := instance[state]; ok {
		return v, true
	}
	v, ok := defaults[state]
	return v, ok
}
