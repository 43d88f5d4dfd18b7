// Package testing provides helpers for asserting on what widgets draw.
package testing

import (
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/go-drift/segmented/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements graphics.Canvas and records every call as a
// DisplayOp. Coordinates are rounded to two decimals and colors are
// serialized as 0xAARRGGBB strings so recordings compare stably.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas returns an empty recording canvas of the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) ClipRRect(rrect graphics.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRRect",
		Params: sortedMap("rect", serializeRect(rrect.Rect), "radius", serializeRadius(rrect)),
	})
}

func (c *RecordingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	params := sortedMap(
		"rect", serializeRect(rrect.Rect),
		"radius", serializeRadius(rrect),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String(),
	)
	if paint.Style == graphics.PaintStyleStroke {
		params["strokeWidth"] = round2(paint.StrokeWidth)
	}
	if paint.Gradient.IsValid() {
		params["gradient"] = serializeGradient(paint.Gradient)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: params})
}

func (c *RecordingCanvas) DrawImageRect(img image.Image, dst graphics.Rect) {
	params := sortedMap("dst", serializeRect(dst))
	if img != nil {
		b := img.Bounds()
		params["width"], params["height"] = b.Dx(), b.Dy()
		if col, ok := firstOpaque(img); ok {
			params["color"] = serializeColor(col)
		}
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImageRect", Params: params})
}

func (c *RecordingCanvas) DrawText(text string, style graphics.TextStyle, position graphics.Offset) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"color", serializeColor(style.Color),
			"fontSize", round2(style.EffectiveFontSize()),
			"fontWeight", style.FontWeight.String(),
		),
	})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// Ops returns the recorded operations in call order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// Find returns the recorded operations named op, in call order.
func (c *RecordingCanvas) Find(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Texts returns the strings passed to DrawText, in call order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, o := range c.Find("drawText") {
		out = append(out, o.Params["text"].(string))
	}
	return out
}

// Reset discards the recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

// JSON returns the recording as indented JSON, suitable for golden files.
func (c *RecordingCanvas) JSON() ([]byte, error) {
	return json.MarshalIndent(c.ops, "", "  ")
}

// Balanced reports whether every Save has a matching Restore.
func (c *RecordingCanvas) Balanced() bool {
	depth := 0
	for _, o := range c.ops {
		switch o.Op {
		case "save":
			depth++
		case "restore":
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	return sortedMap("x", round2(rr.Radius.X), "y", round2(rr.Radius.Y))
}

func serializeGradient(g *graphics.Gradient) []string {
	stops := g.Stops()
	out := make([]string, len(stops))
	for i, s := range stops {
		out[i] = fmt.Sprintf("%s@%.2f", serializeColor(s.Color), s.Position)
	}
	return out
}

// SerializeColor formats c the way recorded operations do.
func SerializeColor(c graphics.Color) string {
	return serializeColor(c)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func firstOpaque(img image.Image) (graphics.Color, bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			col := graphics.FromColor(img.At(x, y))
			if col.A() == 0xFF {
				return col, true
			}
		}
	}
	return 0, false
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
