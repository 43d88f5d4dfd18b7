package segmented

import (
	"image"
	"slices"

	"github.com/go-logr/logr"

	"github.com/go-drift/segmented/pkg/errors"
	"github.com/go-drift/segmented/pkg/logger"
	"github.com/go-drift/segmented/pkg/theme"
)

// ChangeHandler is called after the selected index changes.
// index is the new selected index, NoSegment when the selection was cleared.
type ChangeHandler func(index int, control *Control)

// Control is a segmented control.
type Control struct {
	segments      []Segment
	selectedIndex int
	highlighted   int
	onChange      ChangeHandler

	orientation   Orientation
	segmentLayout SegmentLayout
	imagePosition ImagePosition

	// style holds values set on this instance; defaults is the registry
	// snapshot taken at construction, filled with color scheme defaults.
	style    theme.SegmentedControlStyle
	defaults theme.SegmentedControlStyle

	log logr.Logger
}

// Option configures a Control at construction.
type Option func(*config)

type config struct {
	registry      *theme.Registry
	log           *logr.Logger
	orientation   Orientation
	segmentLayout SegmentLayout
	imagePosition ImagePosition
	selected      int
}

// WithRegistry sets the style registry consulted for defaults.
// Without it the control uses theme.DefaultRegistry.
func WithRegistry(r *theme.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l logr.Logger) Option {
	return func(c *config) { c.log = &l }
}

// WithOrientation sets the segment layout direction.
func WithOrientation(o Orientation) Option {
	return func(c *config) { c.orientation = o }
}

// WithSegmentLayout sets how content is arranged inside each segment.
func WithSegmentLayout(l SegmentLayout) Option {
	return func(c *config) { c.segmentLayout = l }
}

// WithImagePosition sets where icons sit relative to titles.
func WithImagePosition(p ImagePosition) Option {
	return func(c *config) { c.imagePosition = p }
}

// WithSelectedIndex sets the initial selection. No handler is called.
func WithSelectedIndex(index int) Option {
	return func(c *config) { c.selected = index }
}

// NewWithTitles creates a control with one text segment per title.
func NewWithTitles(titles []string, opts ...Option) (*Control, error) {
	return newControl("segmented.NewWithTitles", titles, nil, opts)
}

// NewWithIcons creates a control with one icon segment per image.
func NewWithIcons(icons []image.Image, opts ...Option) (*Control, error) {
	return newControl("segmented.NewWithIcons", nil, icons, opts)
}

// NewWithTitlesAndIcons creates a control pairing titles and icons by index.
// The shorter list is padded with empty values, so the control has
// max(len(titles), len(icons)) segments.
func NewWithTitlesAndIcons(titles []string, icons []image.Image, opts ...Option) (*Control, error) {
	return newControl("segmented.NewWithTitlesAndIcons", titles, icons, opts)
}

func newControl(op string, titles []string, icons []image.Image, opts []Option) (*Control, error) {
	cfg := config{selected: NoSegment}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := *logger.GetGlobalLogger()
	if cfg.log != nil {
		log = *cfg.log
	}

	n := max(len(titles), len(icons))
	if n == 0 {
		err := &errors.WidgetError{Op: op, Kind: errors.KindInvalidArgument, Index: -1, Err: errors.ErrNoSegments}
		errors.Report(err)
		return nil, err
	}
	if cfg.selected != NoSegment && (cfg.selected < 0 || cfg.selected >= n) {
		err := errors.InvalidIndex(op, cfg.selected, n)
		errors.Report(err)
		return nil, err
	}

	reg := cfg.registry
	if reg == nil {
		reg = theme.DefaultRegistry()
	}

	segments := make([]Segment, n)
	for i := range segments {
		var title string
		var icon image.Image
		if i < len(titles) {
			title = titles[i]
		}
		if i < len(icons) {
			icon = icons[i]
		}
		segments[i] = newSegment(title, icon)
	}

	c := &Control{
		segments:      segments,
		selectedIndex: cfg.selected,
		highlighted:   NoSegment,
		orientation:   cfg.orientation,
		segmentLayout: cfg.segmentLayout,
		imagePosition: cfg.imagePosition,
		defaults:      reg.ResolvedSegmentedControl(),
		log:           log.WithName("segmented"),
	}
	c.log.V(1).Info("control created", "segments", n, "selected", c.selectedIndex)
	return c, nil
}

// Orientation returns the segment layout direction.
func (c *Control) Orientation() Orientation {
	return c.orientation
}

// SetOrientation sets the segment layout direction.
func (c *Control) SetOrientation(o Orientation) {
	c.orientation = o
}

// SegmentLayout returns how content is arranged inside each segment.
func (c *Control) SegmentLayout() SegmentLayout {
	return c.segmentLayout
}

// SetSegmentLayout sets how content is arranged inside each segment.
func (c *Control) SetSegmentLayout(l SegmentLayout) {
	c.segmentLayout = l
}

// ImagePosition returns where icons sit relative to titles.
func (c *Control) ImagePosition() ImagePosition {
	return c.imagePosition
}

// SetImagePosition sets where icons sit relative to titles.
func (c *Control) SetImagePosition(p ImagePosition) {
	c.imagePosition = p
}

// SetControlEventHandler registers the selection handler, replacing any
// previous one. Passing nil removes the handler.
func (c *Control) SetControlEventHandler(h ChangeHandler) {
	c.onChange = h
}

// NumberOfSegments returns the number of segments.
func (c *Control) NumberOfSegments() int {
	return len(c.segments)
}

// Segments returns a copy of the segments in display order.
func (c *Control) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	for i, s := range c.segments {
		out[i] = s.clone()
	}
	return out
}

// Segment returns a copy of the segment at index.
func (c *Control) Segment(index int) (Segment, bool) {
	if !c.validIndex(index) {
		return Segment{}, false
	}
	return c.segments[index].clone(), true
}

// SelectedIndex returns the selected segment index, or NoSegment.
func (c *Control) SelectedIndex() int {
	return c.selectedIndex
}

// SetSelectedIndex selects the segment at index, or clears the selection
// when index is NoSegment. The handler runs only when the index changes.
func (c *Control) SetSelectedIndex(index int) error {
	if index != NoSegment && !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.SetSelectedIndex", index, len(c.segments)))
	}
	c.setSelected(index)
	return nil
}

// InsertSegment inserts a segment at index, shifting the segments at index
// and above up by one. index may equal NumberOfSegments to append.
//
// The selection follows the selected segment to its new index without
// calling the handler. animated is a rendering hint and does not affect
// the model.
func (c *Control) InsertSegment(title string, img image.Image, index int, animated bool) error {
	if index < 0 || index > len(c.segments) {
		return c.reject(errors.InvalidIndex("segmented.InsertSegment", index, len(c.segments)+1))
	}
	c.segments = slices.Insert(c.segments, index, newSegment(title, img))
	if c.selectedIndex != NoSegment && c.selectedIndex >= index {
		c.selectedIndex++
	}
	if c.highlighted != NoSegment && c.highlighted >= index {
		c.highlighted++
	}
	c.log.V(1).Info("segment inserted", "index", index, "title", title, "animated", animated)
	return nil
}

// RemoveSegment removes the segment at index. Removing the selected segment
// clears the selection and calls the handler with NoSegment; removing a
// segment below the selection shifts the selection down without a call.
func (c *Control) RemoveSegment(index int) error {
	if !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.RemoveSegment", index, len(c.segments)))
	}
	c.segments = slices.Delete(c.segments, index, index+1)
	c.highlighted = NoSegment
	c.log.V(1).Info("segment removed", "index", index)
	switch {
	case c.selectedIndex == index:
		c.setSelected(NoSegment)
	case c.selectedIndex > index:
		c.selectedIndex--
	}
	return nil
}

// RemoveAllSegments removes every segment, clearing the selection.
func (c *Control) RemoveAllSegments() {
	c.segments = nil
	c.highlighted = NoSegment
	c.log.V(1).Info("all segments removed")
	c.setSelected(NoSegment)
}

// SetTitle replaces the title of the segment at index.
func (c *Control) SetTitle(title string, index int) error {
	if !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.SetTitle", index, len(c.segments)))
	}
	c.segments[index].Title = title
	return nil
}

// SetImage replaces the image of the segment at index.
func (c *Control) SetImage(img image.Image, index int) error {
	if !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.SetImage", index, len(c.segments)))
	}
	c.segments[index].Image = img
	return nil
}

// SetEnabled enables or disables the segment at index. Disabled segments
// ignore taps but can still be selected programmatically.
func (c *Control) SetEnabled(enabled bool, index int) error {
	if !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.SetEnabled", index, len(c.segments)))
	}
	c.segments[index].Enabled = enabled
	return nil
}

// IsEnabled reports whether the segment at index exists and is enabled.
func (c *Control) IsEnabled(index int) bool {
	return c.validIndex(index) && c.segments[index].Enabled
}

// HighlightedIndex returns the pressed segment, or NoSegment.
func (c *Control) HighlightedIndex() int {
	return c.highlighted
}

// SetHighlightedIndex marks a segment as pressed, for hosts that forward
// touch-down events. NoSegment clears it. Highlighting never changes the
// selection.
func (c *Control) SetHighlightedIndex(index int) error {
	if index != NoSegment && !c.validIndex(index) {
		return c.reject(errors.InvalidIndex("segmented.SetHighlightedIndex", index, len(c.segments)))
	}
	c.highlighted = index
	return nil
}

// State returns the interaction state of the segment at index.
func (c *Control) State(index int) ControlState {
	switch {
	case !c.IsEnabled(index):
		return StateDisabled
	case index == c.selectedIndex:
		return StateSelected
	case index == c.highlighted:
		return StateHighlighted
	default:
		return StateNormal
	}
}

func (c *Control) setSelected(index int) {
	if index == c.selectedIndex {
		return
	}
	prev := c.selectedIndex
	c.selectedIndex = index
	c.log.V(1).Info("selection changed", "from", prev, "to", index)
	c.notify()
}

func (c *Control) notify() {
	h := c.onChange
	if h == nil {
		return
	}
	defer errors.Recover("segmented.Control.notify")
	h(c.selectedIndex, c)
}

func (c *Control) validIndex(index int) bool {
	return index >= 0 && index < len(c.segments)
}

func (c *Control) reject(err *errors.WidgetError) error {
	c.log.V(1).Info("rejected argument", "op", err.Op, "index", err.Index)
	errors.Report(err)
	return err
}
