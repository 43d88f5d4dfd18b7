// Package layout provides spacing primitives shared by widgets.
package layout

import "github.com/go-drift/segmented/pkg/graphics"

// EdgeInsets represents padding on four sides.
type EdgeInsets struct {
	Top, Bottom, Left, Right float64
}

// EdgeInsetsAll creates uniform padding on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Top: value, Bottom: value, Left: value, Right: value}
}

// EdgeInsetsSymmetric creates symmetric horizontal and vertical padding.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Bottom: vertical, Left: horizontal, Right: horizontal}
}

// EdgeInsetsOnly creates padding with specific values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Top: top, Bottom: bottom, Left: left, Right: right}
}

// Horizontal returns the total horizontal inset.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical inset.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero reports whether all sides are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Min returns the smallest of the four sides.
func (e EdgeInsets) Min() float64 {
	m := e.Top
	for _, v := range []float64{e.Bottom, e.Left, e.Right} {
		if v < m {
			m = v
		}
	}
	return m
}

// Deflate shrinks rect by the insets. The result never has negative size:
// when the insets exceed the rect, it collapses to a zero-size rect.
func (e EdgeInsets) Deflate(rect graphics.Rect) graphics.Rect {
	r := graphics.Rect{
		Left:   rect.Left + e.Left,
		Top:    rect.Top + e.Top,
		Right:  rect.Right - e.Right,
		Bottom: rect.Bottom - e.Bottom,
	}
	if r.Right < r.Left {
		mid := (r.Left + r.Right) / 2
		r.Left, r.Right = mid, mid
	}
	if r.Bottom < r.Top {
		mid := (r.Top + r.Bottom) / 2
		r.Top, r.Bottom = mid, mid
	}
	return r
}
