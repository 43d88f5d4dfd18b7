// Package segmented provides a segmented control: a row or column of
// mutually exclusive segments, each showing a title, an icon, or both.
//
// # Construction
//
// A control is created from titles, icons, or both paired by index:
//
//	c, err := segmented.NewWithTitles([]string{"Day", "Week", "Month"})
//	c, err := segmented.NewWithIcons(icons)
//	c, err := segmented.NewWithTitlesAndIcons(titles, icons,
//	    segmented.WithOrientation(segmented.OrientationVertical),
//	    segmented.WithSelectedIndex(0),
//	)
//
// When both lists are given and their lengths differ, the shorter one is
// padded with empty values. At least one list must be non-empty.
//
// # Selection
//
// A new control has no selection (NoSegment). SetSelectedIndex and Tap
// change it. The handler registered with SetControlEventHandler runs
// synchronously, exactly once per change. Selecting the segment that is
// already selected does nothing and does not call the handler.
//
//	c.SetControlEventHandler(func(index int, c *segmented.Control) {
//	    s.SetState(func() { s.period = index })
//	})
//
// # Styling
//
// Every visual property resolves in three layers: the value set on the
// instance, then the style registered in the control's theme.Registry, then
// defaults derived from the registry's color scheme. The registry is read
// once, when the control is constructed. Per-state properties (image color,
// text attributes) look for the requested state in every layer before
// falling back to StateNormal.
//
//	reg := theme.NewRegistry()
//	reg.UpdateSegmentedControl(func(s *theme.SegmentedControlStyle) {
//	    s.SegmentBackgroundColor = theme.Some(graphics.RGB(0x3B, 0x82, 0xF6))
//	})
//	c, _ := segmented.NewWithTitles(titles, segmented.WithRegistry(reg))
//
// # Rendering
//
// Control implements Widget: Layout computes segment, image and title
// frames for a size, and Paint draws the control onto any graphics.Canvas.
// The control is not safe for concurrent use; drive it from the UI thread.
package segmented
