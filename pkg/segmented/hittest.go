package segmented

import "github.com/go-drift/segmented/pkg/graphics"

// IndexAt returns the segment under point for a control of the given size,
// or NoSegment when point misses every segment.
func (c *Control) IndexAt(size graphics.Size, point graphics.Offset) int {
	for _, f := range c.Layout(size) {
		if f.Bounds.Contains(point) {
			return f.Index
		}
	}
	return NoSegment
}

// Tap selects the enabled segment under point, as a user tap would, and
// clears any highlight. It returns the segment index, or NoSegment when the
// tap missed or hit a disabled segment; in that case the selection is
// unchanged.
func (c *Control) Tap(size graphics.Size, point graphics.Offset) int {
	c.highlighted = NoSegment
	index := c.IndexAt(size, point)
	if index == NoSegment || !c.segments[index].Enabled {
		return NoSegment
	}
	c.setSelected(index)
	return index
}
