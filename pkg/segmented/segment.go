package segmented

import (
	"image"
	"maps"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/theme"
)

// Segment is one selectable unit of a control.
type Segment struct {
	// Title is the label text. Empty means no label.
	Title string
	// Image is the icon. Nil means no icon.
	Image image.Image
	// BackgroundColor overrides the control-wide segment background.
	BackgroundColor theme.Opt[graphics.Color]
	// ImageColors overrides the control-wide image colors per state.
	ImageColors map[ControlState]graphics.Color
	// Enabled reports whether taps can select the segment.
	Enabled bool
}

func newSegment(title string, img image.Image) Segment {
	return Segment{Title: title, Image: img, Enabled: true}
}

// HasTitle reports whether the segment shows a label.
func (s Segment) HasTitle() bool {
	return s.Title != ""
}

// HasImage reports whether the segment shows an icon.
func (s Segment) HasImage() bool {
	return s.Image != nil && !s.Image.Bounds().Empty()
}

func (s Segment) clone() Segment {
	s.ImageColors = maps.Clone(s.ImageColors)
	return s
}
