package segmented

import (
	"math"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/imaging"
	"github.com/go-drift/segmented/pkg/layout"
)

// contentSpacing separates the image and title slots of a segment.
const contentSpacing = 4

// SegmentFrame is the computed geometry of one segment.
type SegmentFrame struct {
	Index int
	// Bounds is the segment area, used for backgrounds and hit testing.
	Bounds graphics.Rect
	// ImageRect is where the icon is drawn. Empty when the segment has no icon.
	ImageRect graphics.Rect
	// TitleRect is where the title is drawn. Empty when the segment has no title.
	TitleRect graphics.Rect
}

// Layout computes the frames of every segment for a control of the given size.
//
// The base is deflated by SegmentEdgeInsets and divided equally among the
// segments along the orientation axis. Each segment's content area is its
// bounds deflated by ContentEdgeInsets; the image and title are centered in
// it, ordered by ImagePosition and arranged by SegmentLayout. Titles that do
// not fit are narrowed; images are scaled down to fit.
func (c *Control) Layout(size graphics.Size) []SegmentFrame {
	n := len(c.segments)
	if n == 0 || size.IsEmpty() {
		return nil
	}
	inner := c.SegmentEdgeInsets().Deflate(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	content := c.ContentEdgeInsets()

	frames := make([]SegmentFrame, n)
	for i := range c.segments {
		bounds := segmentBounds(inner, c.orientation, i, n)
		frames[i] = SegmentFrame{Index: i, Bounds: bounds}
		frames[i].ImageRect, frames[i].TitleRect = c.layoutContent(i, content.Deflate(bounds))
	}
	return frames
}

func segmentBounds(inner graphics.Rect, o Orientation, i, n int) graphics.Rect {
	if o == OrientationVertical {
		h := inner.Height() / float64(n)
		return graphics.Rect{
			Left:   inner.Left,
			Top:    inner.Top + h*float64(i),
			Right:  inner.Right,
			Bottom: inner.Top + h*float64(i+1),
		}
	}
	w := inner.Width() / float64(n)
	return graphics.Rect{
		Left:   inner.Left + w*float64(i),
		Top:    inner.Top,
		Right:  inner.Left + w*float64(i+1),
		Bottom: inner.Bottom,
	}
}

func (c *Control) layoutContent(i int, area graphics.Rect) (imageRect, titleRect graphics.Rect) {
	seg := c.segments[i]
	imgInsets := c.ImageEdgeInsets()
	titleInsets := c.TitleEdgeInsets()

	var imgSlot, titleSlot graphics.Size
	if seg.HasImage() {
		imgSlot = insetSize(fitImage(seg, area.Size(), imgInsets), imgInsets)
	}
	if seg.HasTitle() {
		titleSlot = insetSize(graphics.MeasureText(seg.Title, c.TextAttributes(c.State(i))), titleInsets)
	}
	gap := 0.0
	if seg.HasImage() && seg.HasTitle() {
		gap = contentSpacing
	}
	imageFirst := c.imagePosition == ImagePositionLeft

	var imgOrigin, titleOrigin graphics.Offset
	if c.segmentLayout == SegmentLayoutVertical {
		titleSlot.Width = math.Min(titleSlot.Width, area.Width())
		titleSlot.Height = math.Max(math.Min(titleSlot.Height, area.Height()-imgSlot.Height-gap), 0)
		total := imgSlot.Height + gap + titleSlot.Height
		y := area.Top + (area.Height()-total)/2
		imgOrigin = graphics.Offset{X: area.Left + (area.Width()-imgSlot.Width)/2}
		titleOrigin = graphics.Offset{X: area.Left + (area.Width()-titleSlot.Width)/2}
		if imageFirst {
			imgOrigin.Y, titleOrigin.Y = y, y+imgSlot.Height+gap
		} else {
			titleOrigin.Y, imgOrigin.Y = y, y+titleSlot.Height+gap
		}
	} else {
		titleSlot.Width = math.Max(math.Min(titleSlot.Width, area.Width()-imgSlot.Width-gap), 0)
		titleSlot.Height = math.Min(titleSlot.Height, area.Height())
		total := imgSlot.Width + gap + titleSlot.Width
		x := area.Left + (area.Width()-total)/2
		imgOrigin = graphics.Offset{Y: area.Top + (area.Height()-imgSlot.Height)/2}
		titleOrigin = graphics.Offset{Y: area.Top + (area.Height()-titleSlot.Height)/2}
		if imageFirst {
			imgOrigin.X, titleOrigin.X = x, x+imgSlot.Width+gap
		} else {
			titleOrigin.X, imgOrigin.X = x, x+titleSlot.Width+gap
		}
	}

	if seg.HasImage() {
		imageRect = imgInsets.Deflate(graphics.RectFromLTWH(imgOrigin.X, imgOrigin.Y, imgSlot.Width, imgSlot.Height))
	}
	if seg.HasTitle() {
		titleRect = titleInsets.Deflate(graphics.RectFromLTWH(titleOrigin.X, titleOrigin.Y, titleSlot.Width, titleSlot.Height))
	}
	return imageRect, titleRect
}

// fitImage returns the drawn size of a segment icon: its natural size,
// scaled down to fit the content area minus the image insets.
func fitImage(seg Segment, area graphics.Size, insets layout.EdgeInsets) graphics.Size {
	b := seg.Image.Bounds()
	maxW := int(math.Max(area.Width-insets.Horizontal(), 0))
	maxH := int(math.Max(area.Height-insets.Vertical(), 0))
	if maxW == 0 || maxH == 0 {
		return graphics.Size{}
	}
	w, h := imaging.FitSize(b.Dx(), b.Dy(), maxW, maxH)
	return graphics.Size{Width: float64(w), Height: float64(h)}
}

func insetSize(s graphics.Size, insets layout.EdgeInsets) graphics.Size {
	if s.IsEmpty() {
		return graphics.Size{}
	}
	return graphics.Size{Width: s.Width + insets.Horizontal(), Height: s.Height + insets.Vertical()}
}
