// Package graphics provides colors, geometry, gradients, text styles and the
// Canvas drawing interface used to paint widgets.
package graphics

import "image"

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current clip state.
	Save()
	// Restore pops the most recent clip state.
	Restore()
	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)
	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)
	// DrawImageRect draws an image scaled into dst.
	DrawImageRect(img image.Image, dst Rect)
	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, style TextStyle, position Offset)
	// Size returns the size of the canvas in pixels.
	Size() Size
}
