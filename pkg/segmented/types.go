package segmented

import (
	"fmt"

	"github.com/go-drift/segmented/pkg/theme"
)

// NoSegment is the selected index of a control without a selection.
const NoSegment = -1

// Orientation is the direction segments are laid out in the base container.
type Orientation int

const (
	// OrientationHorizontal lays segments out in a row.
	OrientationHorizontal Orientation = iota
	// OrientationVertical lays segments out in a column.
	OrientationVertical
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses "horizontal" or "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// SegmentLayout arranges the image and title inside a segment.
type SegmentLayout int

const (
	// SegmentLayoutDefault places image and title side by side.
	SegmentLayoutDefault SegmentLayout = iota
	// SegmentLayoutVertical stacks image and title.
	SegmentLayoutVertical
)

// String returns a human-readable representation of the segment layout.
func (l SegmentLayout) String() string {
	switch l {
	case SegmentLayoutDefault:
		return "default"
	case SegmentLayoutVertical:
		return "vertical"
	default:
		return fmt.Sprintf("SegmentLayout(%d)", int(l))
	}
}

// ParseSegmentLayout parses "default" or "vertical".
func ParseSegmentLayout(s string) (SegmentLayout, error) {
	switch s {
	case "default", "":
		return SegmentLayoutDefault, nil
	case "vertical":
		return SegmentLayoutVertical, nil
	default:
		return 0, fmt.Errorf("unknown segment layout %q", s)
	}
}

// ImagePosition places the image relative to the title. In
// SegmentLayoutVertical, left means above the title and right below it.
type ImagePosition int

const (
	ImagePositionLeft ImagePosition = iota
	ImagePositionRight
)

// String returns a human-readable representation of the image position.
func (p ImagePosition) String() string {
	switch p {
	case ImagePositionLeft:
		return "left"
	case ImagePositionRight:
		return "right"
	default:
		return fmt.Sprintf("ImagePosition(%d)", int(p))
	}
}

// ParseImagePosition parses "left" or "right".
func ParseImagePosition(s string) (ImagePosition, error) {
	switch s {
	case "left", "":
		return ImagePositionLeft, nil
	case "right":
		return ImagePositionRight, nil
	default:
		return 0, fmt.Errorf("unknown image position %q", s)
	}
}

// ControlState is the interaction state per-state styles are keyed by.
type ControlState = theme.ControlState

const (
	StateNormal      = theme.StateNormal
	StateHighlighted = theme.StateHighlighted
	StateSelected    = theme.StateSelected
	StateDisabled    = theme.StateDisabled
)
