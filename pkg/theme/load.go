package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	drifterrors "github.com/go-drift/segmented/pkg/errors"
	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/layout"
)

// StyleFile is the decoded form of a YAML style file.
type StyleFile struct {
	// Brightness selects the color scheme defaults derive from, when set.
	Brightness Opt[Brightness]
	// SegmentedControl is the segmented control style.
	SegmentedControl SegmentedControlStyle
}

type styleDoc struct {
	Brightness       string               `yaml:"brightness,omitempty"`
	SegmentedControl *segmentedControlDoc `yaml:"segmentedControl,omitempty"`
}

type segmentedControlDoc struct {
	BaseColor              *hexColor               `yaml:"baseColor,omitempty"`
	BaseGradient           []hexColor              `yaml:"baseGradient,omitempty"`
	StrokeColor            *hexColor               `yaml:"strokeColor,omitempty"`
	StrokeWidth            *float64                `yaml:"strokeWidth,omitempty"`
	CornerRadius           *float64                `yaml:"cornerRadius,omitempty"`
	ShowsGradient          *bool                   `yaml:"showsGradient,omitempty"`
	SegmentEdgeInsets      *insetsDoc              `yaml:"segmentEdgeInsets,omitempty"`
	ContentEdgeInsets      *insetsDoc              `yaml:"contentEdgeInsets,omitempty"`
	TitleEdgeInsets        *insetsDoc              `yaml:"titleEdgeInsets,omitempty"`
	ImageEdgeInsets        *insetsDoc              `yaml:"imageEdgeInsets,omitempty"`
	SegmentBackgroundColor *hexColor               `yaml:"segmentBackgroundColor,omitempty"`
	ImageColors            map[string]hexColor     `yaml:"imageColors,omitempty"`
	TextAttributes         map[string]textStyleDoc `yaml:"textAttributes,omitempty"`
}

type insetsDoc struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

type textStyleDoc struct {
	Color       *hexColor `yaml:"color,omitempty"`
	FontSize    *float64  `yaml:"fontSize,omitempty"`
	FontWeight  string    `yaml:"fontWeight,omitempty"`
	ShadowColor *hexColor `yaml:"shadowColor,omitempty"`
}

// hexColor decodes "#RRGGBB"-style scalars.
type hexColor graphics.Color

func (c *hexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a string: %w", value.Line, err)
	}
	parsed, err := graphics.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = hexColor(parsed)
	return nil
}

// LoadStyleFile reads and parses a YAML style file.
func LoadStyleFile(path string) (*StyleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, drifterrors.Config("theme.LoadStyleFile", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return ParseStyle(data)
}

// ParseStyle parses a YAML style document. Unknown keys are rejected.
func ParseStyle(data []byte) (*StyleFile, error) {
	const op = "theme.ParseStyle"

	var doc styleDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, drifterrors.Config(op, fmt.Errorf("failed to parse style: %w", err))
	}

	out := &StyleFile{}
	switch doc.Brightness {
	case "":
	case "light":
		out.Brightness = Some(BrightnessLight)
	case "dark":
		out.Brightness = Some(BrightnessDark)
	default:
		return nil, drifterrors.Config(op, fmt.Errorf("unknown brightness %q", doc.Brightness))
	}

	if doc.SegmentedControl != nil {
		style, err := doc.SegmentedControl.toStyle()
		if err != nil {
			return nil, drifterrors.Config(op, err)
		}
		out.SegmentedControl = style
	}
	return out, nil
}

// LoadFile parses a style file and applies it to the registry.
func (r *Registry) LoadFile(path string) error {
	f, err := LoadStyleFile(path)
	if err != nil {
		return err
	}
	r.Apply(f)
	return nil
}

// Apply registers the styles of a decoded style file.
func (r *Registry) Apply(f *StyleFile) {
	if f == nil {
		return
	}
	if b, ok := f.Brightness.Get(); ok {
		r.SetColorScheme(ColorSchemeFor(b))
	}
	r.SetSegmentedControl(f.SegmentedControl)
}

func (d *segmentedControlDoc) toStyle() (SegmentedControlStyle, error) {
	var s SegmentedControlStyle
	if d.BaseColor != nil {
		s.BaseColor = Some(graphics.Color(*d.BaseColor))
	}
	switch n := len(d.BaseGradient); {
	case n == 1:
		return s, fmt.Errorf("baseGradient needs at least two colors")
	case n > 1:
		stops := make([]graphics.GradientStop, n)
		for i, c := range d.BaseGradient {
			stops[i] = graphics.GradientStop{Position: float64(i) / float64(n-1), Color: graphics.Color(c)}
		}
		s.BaseGradient = Some(graphics.NewLinearGradient(graphics.Offset{X: 0.5, Y: 0}, graphics.Offset{X: 0.5, Y: 1}, stops))
	}
	if d.StrokeColor != nil {
		s.StrokeColor = Some(graphics.Color(*d.StrokeColor))
	}
	if d.StrokeWidth != nil {
		if *d.StrokeWidth < 0 {
			return s, fmt.Errorf("strokeWidth must not be negative")
		}
		s.StrokeWidth = Some(*d.StrokeWidth)
	}
	if d.CornerRadius != nil {
		if *d.CornerRadius < 0 {
			return s, fmt.Errorf("cornerRadius must not be negative")
		}
		s.CornerRadius = Some(*d.CornerRadius)
	}
	if d.ShowsGradient != nil {
		s.ShowsGradient = Some(*d.ShowsGradient)
	}
	s.SegmentEdgeInsets = d.SegmentEdgeInsets.opt()
	s.ContentEdgeInsets = d.ContentEdgeInsets.opt()
	s.TitleEdgeInsets = d.TitleEdgeInsets.opt()
	s.ImageEdgeInsets = d.ImageEdgeInsets.opt()
	if d.SegmentBackgroundColor != nil {
		s.SegmentBackgroundColor = Some(graphics.Color(*d.SegmentBackgroundColor))
	}

	if len(d.ImageColors) > 0 {
		s.ImageColors = make(map[ControlState]graphics.Color, len(d.ImageColors))
		for name, c := range d.ImageColors {
			state, err := ParseControlState(name)
			if err != nil {
				return s, fmt.Errorf("imageColors: %w", err)
			}
			s.ImageColors[state] = graphics.Color(c)
		}
	}
	if len(d.TextAttributes) > 0 {
		s.TextAttributes = make(map[ControlState]TextAttributes, len(d.TextAttributes))
		for name, td := range d.TextAttributes {
			state, err := ParseControlState(name)
			if err != nil {
				return s, fmt.Errorf("textAttributes: %w", err)
			}
			ts, err := td.toTextAttributes()
			if err != nil {
				return s, fmt.Errorf("textAttributes.%s: %w", name, err)
			}
			s.TextAttributes[state] = ts
		}
	}
	return s, nil
}

func (d *insetsDoc) opt() Opt[layout.EdgeInsets] {
	if d == nil {
		return Opt[layout.EdgeInsets]{}
	}
	return Some(layout.EdgeInsets{Top: d.Top, Left: d.Left, Bottom: d.Bottom, Right: d.Right})
}

func (d textStyleDoc) toTextAttributes() (TextAttributes, error) {
	var a TextAttributes
	if d.FontWeight != "" {
		weight, err := graphics.ParseFontWeight(d.FontWeight)
		if err != nil {
			return a, err
		}
		a.FontWeight = Some(weight)
	}
	if d.FontSize != nil {
		if *d.FontSize <= 0 {
			return a, fmt.Errorf("fontSize must be positive, got %v", *d.FontSize)
		}
		a.FontSize = Some(*d.FontSize)
	}
	if d.Color != nil {
		a.Color = Some(graphics.Color(*d.Color))
	}
	if d.ShadowColor != nil {
		a.ShadowColor = Some(graphics.Color(*d.ShadowColor))
	}
	return a, nil
}
