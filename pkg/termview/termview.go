// Package termview renders a segmented control as styled terminal text.
package termview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/segmented"
)

// IconGlyph stands in for a segment icon.
const IconGlyph = "◼"

// Options controls terminal rendering.
type Options struct {
	// NoColor disables ANSI styling. Selected segments are bracketed and
	// disabled ones parenthesized instead.
	NoColor bool
}

// Render returns the control drawn with box characters. Horizontal controls
// render as one row of equal-width cells separated by bars; vertical ones as
// a column. The border follows the control's stroke: none when the stroke
// width is zero, rounded when the corner radius is positive.
func Render(c *segmented.Control, opts Options) string {
	segs := c.Segments()
	if len(segs) == 0 {
		return ""
	}

	labels := make([]string, len(segs))
	width := 0
	for i, s := range segs {
		labels[i] = Label(s, c.ImagePosition())
		width = max(width, lipgloss.Width(labels[i]))
	}

	cells := make([]string, len(segs))
	for i, label := range labels {
		cells[i] = cellStyle(c, i, width, opts).Render(decorate(label, c.State(i), opts))
	}

	var body string
	if c.Orientation() == segmented.OrientationVertical {
		body = lipgloss.JoinVertical(lipgloss.Center, cells...)
	} else {
		sep := lipgloss.NewStyle()
		if !opts.NoColor {
			sep = sep.Foreground(termColor(c.StrokeColor())).Background(termColor(c.BaseColor()))
		}
		parts := make([]string, 0, 2*len(cells)-1)
		for i, cell := range cells {
			if i > 0 {
				parts = append(parts, sep.Render("│"))
			}
			parts = append(parts, cell)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	if c.StrokeWidth() <= 0 {
		return body
	}
	border := lipgloss.NormalBorder()
	if c.CornerRadius() > 0 {
		border = lipgloss.RoundedBorder()
	}
	frame := lipgloss.NewStyle().Border(border)
	if !opts.NoColor {
		frame = frame.BorderForeground(termColor(c.StrokeColor()))
	}
	return frame.Render(body)
}

// Label returns the text shown for a segment: its title, with IconGlyph on
// the side given by pos when it has an icon.
func Label(s segmented.Segment, pos segmented.ImagePosition) string {
	switch {
	case s.HasImage() && s.HasTitle():
		if pos == segmented.ImagePositionRight {
			return s.Title + " " + IconGlyph
		}
		return IconGlyph + " " + s.Title
	case s.HasImage():
		return IconGlyph
	default:
		return s.Title
	}
}

func decorate(label string, state segmented.ControlState, opts Options) string {
	if !opts.NoColor {
		return " " + label + " "
	}
	switch state {
	case segmented.StateSelected:
		return "[" + label + "]"
	case segmented.StateDisabled:
		return "(" + label + ")"
	default:
		return " " + label + " "
	}
}

func cellStyle(c *segmented.Control, i, width int, opts Options) lipgloss.Style {
	st := lipgloss.NewStyle().Width(width + 2).Align(lipgloss.Center)
	if opts.NoColor {
		return st
	}
	state := c.State(i)
	text := c.TextAttributes(state)
	st = st.Foreground(termColor(text.Color)).Bold(text.IsBold())
	switch state {
	case segmented.StateSelected:
		st = st.Background(termColor(c.SegmentBackgroundColorAt(i)))
	case segmented.StateDisabled:
		st = st.Background(termColor(c.BaseColor())).Faint(true)
	default:
		st = st.Background(termColor(c.BaseColor()))
	}
	return st
}

// termColor maps a color to a terminal color, dropping alpha.
// Fully transparent colors map to no color.
func termColor(c graphics.Color) lipgloss.TerminalColor {
	if c.A() == 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B()))
}
