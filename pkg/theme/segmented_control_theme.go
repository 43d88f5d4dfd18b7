package theme

import (
	"maps"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/layout"
)

// SegmentedControlStyle holds the styling options of a segmented control.
//
// Every field is optional. Unset fields fall through to the next layer:
// instance values, then the registry style, then the defaults derived from
// the registry's color scheme.
type SegmentedControlStyle struct {
	// BaseColor fills the base container.
	BaseColor Opt[graphics.Color]
	// BaseGradient fills the base container instead of BaseColor when valid.
	BaseGradient Opt[*graphics.Gradient]
	// StrokeColor outlines the base container.
	StrokeColor Opt[graphics.Color]
	// StrokeWidth is the outline width. Zero disables the outline.
	StrokeWidth Opt[float64]
	// CornerRadius rounds the base container.
	CornerRadius Opt[float64]
	// ShowsGradient derives gradients from BaseColor and segment backgrounds
	// when no explicit gradient is configured.
	ShowsGradient Opt[bool]
	// SegmentEdgeInsets pads the segments inside the base container.
	SegmentEdgeInsets Opt[layout.EdgeInsets]
	// ContentEdgeInsets pads a segment's content inside the segment.
	ContentEdgeInsets Opt[layout.EdgeInsets]
	// TitleEdgeInsets pads the title within its slot.
	TitleEdgeInsets Opt[layout.EdgeInsets]
	// ImageEdgeInsets pads the image within its slot.
	ImageEdgeInsets Opt[layout.EdgeInsets]
	// SegmentBackgroundColor is the default fill of a selected segment.
	SegmentBackgroundColor Opt[graphics.Color]
	// ImageColors tints icons per state. Missing states fall back to StateNormal.
	ImageColors map[ControlState]graphics.Color
	// TextAttributes styles titles per state. Missing states and unset
	// fields fall back to StateNormal.
	TextAttributes map[ControlState]TextAttributes
}

// Clone returns a copy that shares no maps or gradients with s.
func (s SegmentedControlStyle) Clone() SegmentedControlStyle {
	c := s
	c.ImageColors = maps.Clone(s.ImageColors)
	c.TextAttributes = maps.Clone(s.TextAttributes)
	if g, ok := s.BaseGradient.Get(); ok {
		c.BaseGradient = Some(g.Clone())
	}
	return c
}

// Merge returns s with every unset field taken from fallback.
// Per-state maps are merged key by key, with s winning. Text attributes
// present in both are merged field by field.
func (s SegmentedControlStyle) Merge(fallback SegmentedControlStyle) SegmentedControlStyle {
	out := SegmentedControlStyle{
		BaseColor:              s.BaseColor.Merge(fallback.BaseColor),
		BaseGradient:           s.BaseGradient.Merge(fallback.BaseGradient),
		StrokeColor:            s.StrokeColor.Merge(fallback.StrokeColor),
		StrokeWidth:            s.StrokeWidth.Merge(fallback.StrokeWidth),
		CornerRadius:           s.CornerRadius.Merge(fallback.CornerRadius),
		ShowsGradient:          s.ShowsGradient.Merge(fallback.ShowsGradient),
		SegmentEdgeInsets:      s.SegmentEdgeInsets.Merge(fallback.SegmentEdgeInsets),
		ContentEdgeInsets:      s.ContentEdgeInsets.Merge(fallback.ContentEdgeInsets),
		TitleEdgeInsets:        s.TitleEdgeInsets.Merge(fallback.TitleEdgeInsets),
		ImageEdgeInsets:        s.ImageEdgeInsets.Merge(fallback.ImageEdgeInsets),
		SegmentBackgroundColor: s.SegmentBackgroundColor.Merge(fallback.SegmentBackgroundColor),
	}
	out.ImageColors = mergeStates(s.ImageColors, fallback.ImageColors)
	out.TextAttributes = mergeStates(s.TextAttributes, fallback.TextAttributes)
	for state, attrs := range s.TextAttributes {
		out.TextAttributes[state] = attrs.Merge(fallback.TextAttributes[state])
	}
	return out.Clone()
}

func mergeStates[V any](primary, fallback map[ControlState]V) map[ControlState]V {
	if len(primary) == 0 && len(fallback) == 0 {
		return nil
	}
	out := make(map[ControlState]V, len(primary)+len(fallback))
	maps.Copy(out, fallback)
	maps.Copy(out, primary)
	return out
}

// DefaultSegmentedControlStyle returns a fully populated style derived from a ColorScheme.
func DefaultSegmentedControlStyle(colors ColorScheme) SegmentedControlStyle {
	return SegmentedControlStyle{
		BaseColor:              Some(colors.SurfaceVariant),
		StrokeColor:            Some(colors.Outline),
		StrokeWidth:            Some(1.0),
		CornerRadius:           Some(8.0),
		ShowsGradient:          Some(false),
		SegmentEdgeInsets:      Some(layout.EdgeInsetsAll(2)),
		ContentEdgeInsets:      Some(layout.EdgeInsetsSymmetric(8, 4)),
		TitleEdgeInsets:        Some(layout.EdgeInsets{}),
		ImageEdgeInsets:        Some(layout.EdgeInsets{}),
		SegmentBackgroundColor: Some(colors.Primary),
		ImageColors: map[ControlState]graphics.Color{
			StateNormal:   colors.OnSurfaceVariant,
			StateSelected: colors.OnPrimary,
			StateDisabled: colors.Outline,
		},
		TextAttributes: map[ControlState]TextAttributes{
			StateNormal:   TextAttributesOf(graphics.TextStyle{Color: colors.OnSurfaceVariant, FontSize: 13, FontWeight: graphics.FontWeightMedium}),
			StateSelected: TextAttributesOf(graphics.TextStyle{Color: colors.OnPrimary, FontSize: 13, FontWeight: graphics.FontWeightSemibold}),
			StateDisabled: TextAttributesOf(graphics.TextStyle{Color: colors.Outline, FontSize: 13, FontWeight: graphics.FontWeightMedium}),
		},
	}
}
