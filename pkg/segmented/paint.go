package segmented

import (
	"math"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/imaging"
	"github.com/go-drift/segmented/pkg/layout"
)

// highlightAlpha scales the segment background of a pressed, unselected segment.
const highlightAlpha = 0.35

// Paint draws the control onto canvas at the origin, sized to size.
//
// Drawing order: base fill, then for each segment its background (selected
// or highlighted only), icon and title clipped to the segment, then the
// outline on top.
func (c *Control) Paint(canvas graphics.Canvas, size graphics.Size) {
	if canvas == nil || size.IsEmpty() {
		return
	}
	bounds := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	radius := c.CornerRadius()

	base := graphics.FillPaint(c.BaseColor())
	base.Gradient = c.BaseGradient()
	canvas.DrawRRect(graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(radius)), base)

	inner := math.Max(radius-c.SegmentEdgeInsets().Min(), 0)
	for _, f := range c.Layout(size) {
		c.paintSegment(canvas, f, inner)
	}

	if w := c.StrokeWidth(); w > 0 {
		half := w / 2
		rect := layout.EdgeInsetsAll(half).Deflate(bounds)
		rrect := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(math.Max(radius-half, 0)))
		canvas.DrawRRect(rrect, graphics.StrokePaint(c.StrokeColor(), w))
	}
}

func (c *Control) paintSegment(canvas graphics.Canvas, f SegmentFrame, radius float64) {
	seg := c.segments[f.Index]
	state := c.State(f.Index)
	clip := graphics.RRectFromRectAndRadius(f.Bounds, graphics.CircularRadius(radius))

	canvas.Save()
	defer canvas.Restore()
	canvas.ClipRRect(clip)

	switch state {
	case StateSelected:
		bg := graphics.FillPaint(c.SegmentBackgroundColorAt(f.Index))
		bg.Gradient = c.segmentGradient(f.Index)
		canvas.DrawRRect(clip, bg)
	case StateHighlighted:
		col := c.SegmentBackgroundColorAt(f.Index)
		canvas.DrawRRect(clip, graphics.FillPaint(col.WithAlpha(col.Alpha()*highlightAlpha)))
	}

	if seg.HasImage() && !f.ImageRect.IsEmpty() {
		canvas.DrawImageRect(imaging.Tint(seg.Image, c.ImageColorAt(f.Index, state)), f.ImageRect)
	}
	if seg.HasTitle() && !f.TitleRect.IsEmpty() {
		canvas.Save()
		canvas.ClipRRect(graphics.RRect{Rect: f.TitleRect})
		canvas.DrawText(seg.Title, c.TextAttributes(state), graphics.Offset{X: f.TitleRect.Left, Y: f.TitleRect.Top})
		canvas.Restore()
	}
}
