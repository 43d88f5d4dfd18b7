package segmented

import (
	"testing"

	"github.com/go-drift/segmented/pkg/errors"
	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/layout"
	"github.com/go-drift/segmented/pkg/theme"
)

func TestRegistryDefaultsAreInherited(t *testing.T) {
	blue := graphics.RGB(0x3B, 0x82, 0xF6)
	reg := theme.NewRegistry()
	reg.UpdateSegmentedControl(func(s *theme.SegmentedControlStyle) {
		s.SegmentBackgroundColor = theme.Some(blue)
		s.CornerRadius = theme.Some(3.0)
	})

	inherits, err := NewWithTitles([]string{"A", "B"}, testOptions(reg)...)
	if err != nil {
		t.Fatal(err)
	}
	overrides, err := NewWithTitles([]string{"A", "B"}, testOptions(reg)...)
	if err != nil {
		t.Fatal(err)
	}
	overrides.SetSegmentBackgroundColor(graphics.ColorRed)

	if got := inherits.SegmentBackgroundColor(); got != blue {
		t.Errorf("expected registry color %s, got %s", blue, got)
	}
	if got := overrides.SegmentBackgroundColor(); got != graphics.ColorRed {
		t.Errorf("expected instance override, got %s", got)
	}
	if inherits.CornerRadius() != 3 {
		t.Errorf("expected registry radius 3, got %v", inherits.CornerRadius())
	}
	if inherits.StrokeWidth() != 1 {
		t.Errorf("unset registry fields should come from scheme defaults, got stroke %v", inherits.StrokeWidth())
	}
}

func TestRegistryIsSnapshotAtConstruction(t *testing.T) {
	reg := theme.NewRegistry()
	c, err := NewWithTitles([]string{"A"}, testOptions(reg)...)
	if err != nil {
		t.Fatal(err)
	}
	before := c.BaseColor()

	reg.UpdateSegmentedControl(func(s *theme.SegmentedControlStyle) {
		s.BaseColor = theme.Some(graphics.ColorGreen)
	})
	if c.BaseColor() != before {
		t.Error("registry edits after construction leaked into an existing control")
	}

	later, _ := NewWithTitles([]string{"A"}, testOptions(reg)...)
	if later.BaseColor() != graphics.ColorGreen {
		t.Errorf("controls constructed later should see the edit, got %s", later.BaseColor())
	}
}

func TestColorSchemeDefaults(t *testing.T) {
	reg := theme.NewRegistry()
	reg.SetColorScheme(theme.DarkColorScheme())
	c, _ := NewWithTitles([]string{"A"}, testOptions(reg)...)

	dark := theme.DarkColorScheme()
	if c.BaseColor() != dark.SurfaceVariant {
		t.Errorf("expected dark surface variant, got %s", c.BaseColor())
	}
	if c.SegmentBackgroundColor() != dark.Primary {
		t.Errorf("expected dark primary, got %s", c.SegmentBackgroundColor())
	}
}

func TestSegmentBackgroundOverrideTouchesOnlyIndex(t *testing.T) {
	c := newTitles(t, []string{"A", "B", "C"})
	base := c.SegmentBackgroundColor()

	if err := c.SetSegmentBackgroundColorAt(graphics.ColorRed, 1); err != nil {
		t.Fatal(err)
	}
	for i, want := range []graphics.Color{base, graphics.ColorRed, base} {
		if got := c.SegmentBackgroundColorAt(i); got != want {
			t.Errorf("segment %d: expected %s, got %s", i, want, got)
		}
	}

	c.SetSegmentBackgroundColor(graphics.ColorBlue)
	if c.SegmentBackgroundColorAt(0) != graphics.ColorBlue || c.SegmentBackgroundColorAt(1) != graphics.ColorRed {
		t.Error("control-wide color should not replace per-index overrides")
	}

	captureErrors(t)
	if err := c.SetSegmentBackgroundColorAt(graphics.ColorRed, 3); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
}

func TestImageColorFallsBackToNormal(t *testing.T) {
	reg := theme.NewRegistry()
	reg.SetSegmentedControl(theme.SegmentedControlStyle{
		ImageColors: map[ControlState]graphics.Color{StateNormal: graphics.ColorBlack},
	})
	c, _ := NewWithTitles([]string{"A"}, testOptions(reg)...)

	if got := c.ImageColor(StateHighlighted); got != graphics.ColorBlack {
		t.Errorf("expected fallback to normal, got %s", got)
	}

	c.SetImageColor(graphics.ColorRed, StateNormal)
	if got := c.ImageColor(StateHighlighted); got != graphics.ColorRed {
		t.Errorf("expected instance normal, got %s", got)
	}

	c.defaults.ImageColors[StateHighlighted] = graphics.ColorGreen
	if got := c.ImageColor(StateHighlighted); got != graphics.ColorGreen {
		t.Errorf("a state-specific default should beat the instance normal color, got %s", got)
	}
}

func TestImageColorAt(t *testing.T) {
	c := newTitles(t, []string{"A", "B"})
	c.SetImageColor(graphics.ColorBlue, StateSelected)

	if err := c.SetSegmentImageColor(graphics.ColorRed, StateSelected, 0); err != nil {
		t.Fatal(err)
	}
	if got := c.ImageColorAt(0, StateSelected); got != graphics.ColorRed {
		t.Errorf("segment override should win, got %s", got)
	}
	if got := c.ImageColorAt(1, StateSelected); got != graphics.ColorBlue {
		t.Errorf("other segments use the control color, got %s", got)
	}
	if got := c.ImageColorAt(0, StateNormal); got != c.ImageColor(StateNormal) {
		t.Errorf("unset segment state falls through, got %s", got)
	}
}

func TestTextAttributesLayers(t *testing.T) {
	c := newTitles(t, []string{"A"})
	scheme := theme.LightColorScheme()

	if got := c.TextAttributes(StateSelected); got.Color != scheme.OnPrimary || got.FontWeight != graphics.FontWeightSemibold {
		t.Errorf("unexpected default selected style %+v", got)
	}

	bold := graphics.TextStyle{Color: graphics.ColorRed, FontSize: 15, FontWeight: graphics.FontWeightBold}
	c.SetTextAttributes(bold, StateSelected)
	if got := c.TextAttributes(StateSelected); got != bold {
		t.Errorf("expected instance style, got %+v", got)
	}
	if got := c.TextAttributes(StateHighlighted); got != c.TextAttributes(StateNormal) {
		t.Errorf("highlighted should fall back to normal, got %+v", got)
	}
}

func TestPartialStyleFileKeepsTitleColor(t *testing.T) {
	f, err := theme.ParseStyle([]byte("segmentedControl:\n  textAttributes:\n    selected: {fontWeight: bold}\n    highlighted: {fontSize: 16}\n"))
	if err != nil {
		t.Fatal(err)
	}
	reg := theme.NewRegistry()
	reg.Apply(f)
	c, err := NewWithTitles([]string{"A", "B"}, testOptions(reg)...)
	if err != nil {
		t.Fatal(err)
	}
	scheme := theme.LightColorScheme()

	selected := c.TextAttributes(StateSelected)
	if selected.Color != scheme.OnPrimary || selected.FontWeight != graphics.FontWeightBold || selected.FontSize != 13 {
		t.Errorf("selected style should keep the default color and size, got %+v", selected)
	}
	highlighted := c.TextAttributes(StateHighlighted)
	if highlighted.Color != scheme.OnSurfaceVariant || highlighted.FontSize != 16 || highlighted.FontWeight != graphics.FontWeightMedium {
		t.Errorf("highlighted style should fill unset fields from normal, got %+v", highlighted)
	}
}

func TestBaseGradient(t *testing.T) {
	c := newTitles(t, []string{"A"})
	if c.BaseGradient() != nil {
		t.Fatal("flat by default")
	}

	c.SetBaseColor(graphics.RGB(0x80, 0x80, 0x80))
	c.SetShowsGradient(true)
	g := c.BaseGradient()
	if !g.IsValid() {
		t.Fatal("expected a derived gradient")
	}
	base := c.BaseColor()
	if g.ColorAt(0) != base.Lighten(gradientShade) || g.ColorAt(1) != base.Darken(gradientShade) {
		t.Errorf("unexpected derived stops %v", g.Stops())
	}

	explicit := graphics.VerticalGradient(graphics.ColorRed, graphics.ColorBlue)
	c.SetBaseGradient(explicit)
	if got := c.BaseGradient(); got.ColorAt(0) != graphics.ColorRed {
		t.Errorf("explicit gradient should win, got %v", got.Stops())
	}
	explicit.Linear.Stops[0].Color = graphics.ColorGreen
	if c.BaseGradient().ColorAt(0) != graphics.ColorRed {
		t.Error("SetBaseGradient should copy its argument")
	}

	c.SetBaseGradient(nil)
	if got := c.BaseGradient(); got.ColorAt(0) != base.Lighten(gradientShade) {
		t.Error("clearing the gradient should fall back to the derived one")
	}
}

func TestSegmentGradientFollowsShowsGradient(t *testing.T) {
	c := newTitles(t, []string{"A", "B"})
	if c.segmentGradient(0) != nil {
		t.Error("no segment gradient without ShowsGradient")
	}
	c.SetShowsGradient(true)
	_ = c.SetSegmentBackgroundColorAt(graphics.ColorRed, 1)
	if got := c.segmentGradient(1).ColorAt(0); got != graphics.ColorRed.Lighten(gradientShade) {
		t.Errorf("expected gradient from the per-index color, got %s", got)
	}
}

func TestScalarSetters(t *testing.T) {
	c := newTitles(t, []string{"A"})
	c.SetStrokeColor(graphics.ColorRed)
	c.SetStrokeWidth(-2)
	c.SetCornerRadius(-1)
	c.SetSegmentEdgeInsets(layout.EdgeInsetsAll(5))
	c.SetContentEdgeInsets(layout.EdgeInsetsAll(6))
	c.SetTitleEdgeInsets(layout.EdgeInsetsAll(7))
	c.SetImageEdgeInsets(layout.EdgeInsetsAll(8))

	if c.StrokeColor() != graphics.ColorRed || c.StrokeWidth() != 0 || c.CornerRadius() != 0 {
		t.Errorf("unexpected scalars: %s %v %v", c.StrokeColor(), c.StrokeWidth(), c.CornerRadius())
	}
	if c.SegmentEdgeInsets().Top != 5 || c.ContentEdgeInsets().Top != 6 ||
		c.TitleEdgeInsets().Top != 7 || c.ImageEdgeInsets().Top != 8 {
		t.Error("insets were not stored")
	}

	s := c.Style()
	if s.StrokeColor.Or(0) != graphics.ColorRed || !s.BaseColor.IsSet() {
		t.Errorf("Style should merge instance values over defaults")
	}
}
