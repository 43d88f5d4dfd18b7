package segmented

import "github.com/go-drift/segmented/pkg/graphics"

// Widget is the surface a host needs to lay out, draw and query a
// segmented control.
type Widget interface {
	SelectedIndex() int
	Segments() []Segment
	Layout(size graphics.Size) []SegmentFrame
	Paint(canvas graphics.Canvas, size graphics.Size)
}

var _ Widget = (*Control)(nil)
