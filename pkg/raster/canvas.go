// Package raster implements graphics.Canvas on top of an in-memory image.
//
// Shapes are rasterized with golang.org/x/image/vector, text with the
// bitmap face from graphics.Face, and images are scaled with
// golang.org/x/image/draw. All drawing composites with draw.Over.
package raster

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/imaging"
)

// Canvas draws into an *image.NRGBA.
type Canvas struct {
	dst *image.NRGBA
	// clip is the coverage of the current clip, nil when unclipped.
	clip  *image.Alpha
	stack []*image.Alpha
}

var _ graphics.Canvas = (*Canvas)(nil)

// New returns a transparent canvas of the given pixel size.
func New(width, height int) *Canvas {
	return &Canvas{dst: image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Image returns the backing image. It is not copied.
func (c *Canvas) Image() *image.NRGBA {
	return c.dst
}

// Size returns the size of the canvas in pixels.
func (c *Canvas) Size() graphics.Size {
	b := c.dst.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear replaces every pixel with col, ignoring the clip.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.dst)
}

// Save pushes the current clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.clip)
}

// Restore pops the most recent clip. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.clip = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// ClipRRect intersects the current clip with rrect.
func (c *Canvas) ClipRRect(rrect graphics.RRect) {
	c.clip = c.withClip(c.shapeMask(func(z *vector.Rasterizer) {
		c.addRRect(z, rrect, true)
	}))
}

// DrawRRect fills or strokes rrect. Strokes are centered on the outline.
func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	if !paint.IsVisible() || rrect.Rect.IsEmpty() {
		return
	}
	var mask *image.Alpha
	if paint.Style == graphics.PaintStyleStroke {
		half := paint.StrokeWidth / 2
		outer := grow(rrect, half)
		inner := grow(rrect, -half)
		mask = c.shapeMask(func(z *vector.Rasterizer) {
			c.addRRect(z, outer, true)
			if !inner.Rect.IsEmpty() {
				c.addRRect(z, inner, false)
			}
		})
	} else {
		mask = c.shapeMask(func(z *vector.Rasterizer) {
			c.addRRect(z, rrect, true)
		})
	}

	var src image.Image = image.NewUniform(paint.Color)
	if paint.Gradient.IsValid() {
		src = gradientImage(paint.Gradient, rrect.Rect, c.dst.Bounds())
	}
	c.composite(src, c.withClip(mask))
}

// DrawImageRect scales img into dst.
func (c *Canvas) DrawImageRect(img image.Image, dst graphics.Rect) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	r := pixelRect(dst).Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	full := pixelRect(dst)
	scaled := imaging.Resize(img, full.Dx(), full.Dy())
	sp := r.Min.Sub(full.Min).Add(scaled.Bounds().Min)
	if c.clip == nil {
		draw.Draw(c.dst, r, scaled, sp, draw.Over)
		return
	}
	draw.DrawMask(c.dst, r, scaled, sp, c.clip, r.Min, draw.Over)
}

// DrawText draws a single line of text with its top-left corner at position.
// Text is shaped at the face's native size and scaled to the style's size;
// bold weights are drawn twice, one pixel apart.
func (c *Canvas) DrawText(text string, style graphics.TextStyle, position graphics.Offset) {
	if text == "" {
		return
	}
	face := graphics.Face()
	metrics := face.Metrics()
	advance := font.MeasureString(face, text).Ceil()
	if style.IsBold() {
		advance++
	}
	native := image.NewAlpha(image.Rect(0, 0, advance, metrics.Height.Ceil()))
	d := font.Drawer{Dst: native, Src: image.Opaque, Face: face, Dot: fixed.P(0, metrics.Ascent.Ceil())}
	d.DrawString(text)
	if style.IsBold() {
		d.Dot = fixed.P(1, metrics.Ascent.Ceil())
		d.DrawString(text)
	}

	size := graphics.MeasureText(text, style)
	x, y := int(math.Round(position.X)), int(math.Round(position.Y))
	mask := image.NewAlpha(image.Rect(x, y, x+int(size.Width), y+int(size.Height)))
	draw.ApproxBiLinear.Scale(mask, mask.Rect, native, native.Rect, draw.Src, nil)

	if style.ShadowColor.A() != 0 {
		shadow := *mask
		shadow.Rect = mask.Rect.Add(image.Pt(0, 1))
		c.composite(image.NewUniform(style.ShadowColor), c.withClip(&shadow))
	}
	c.composite(image.NewUniform(style.Color), c.withClip(mask))
}

func (c *Canvas) composite(src image.Image, mask *image.Alpha) {
	r := mask.Rect.Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(c.dst, r, src, r.Min, mask, r.Min, draw.Over)
}

// withClip returns mask attenuated by the current clip.
func (c *Canvas) withClip(mask *image.Alpha) *image.Alpha {
	if c.clip == nil {
		return mask
	}
	r := mask.Rect.Intersect(c.clip.Rect)
	out := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := uint32(mask.AlphaAt(x, y).A) * uint32(c.clip.AlphaAt(x, y).A)
			out.Pix[out.PixOffset(x, y)] = uint8((a + 127) / 255)
		}
	}
	return out
}

// shapeMask rasterizes the path built by fn into a canvas-sized coverage mask.
func (c *Canvas) shapeMask(fn func(z *vector.Rasterizer)) *image.Alpha {
	b := c.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	fn(z)
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	return mask
}

// kappa places cubic control points so a quarter curve approximates an ellipse arc.
const kappa = 0.5522847498

// addRRect appends a closed rounded-rect contour. Contours added in opposite
// directions cancel, which is how stroke rings are cut out.
func (c *Canvas) addRRect(z *vector.Rasterizer, rr graphics.RRect, clockwise bool) {
	w, h := c.Size().Width, c.Size().Height
	px := func(v float64) float32 { return float32(math.Min(math.Max(v, 0), w)) }
	py := func(v float64) float32 { return float32(math.Min(math.Max(v, 0), h)) }

	l, t, r, b := rr.Rect.Left, rr.Rect.Top, rr.Rect.Right, rr.Rect.Bottom
	rx, ry := rr.Radius.X, rr.Radius.Y
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(px(l+rx), py(t))
	if clockwise {
		z.LineTo(px(r-rx), py(t))
		z.CubeTo(px(r-rx+kx), py(t), px(r), py(t+ry-ky), px(r), py(t+ry))
		z.LineTo(px(r), py(b-ry))
		z.CubeTo(px(r), py(b-ry+ky), px(r-rx+kx), py(b), px(r-rx), py(b))
		z.LineTo(px(l+rx), py(b))
		z.CubeTo(px(l+rx-kx), py(b), px(l), py(b-ry+ky), px(l), py(b-ry))
		z.LineTo(px(l), py(t+ry))
		z.CubeTo(px(l), py(t+ry-ky), px(l+rx-kx), py(t), px(l+rx), py(t))
	} else {
		z.CubeTo(px(l+rx-kx), py(t), px(l), py(t+ry-ky), px(l), py(t+ry))
		z.LineTo(px(l), py(b-ry))
		z.CubeTo(px(l), py(b-ry+ky), px(l+rx-kx), py(b), px(l+rx), py(b))
		z.LineTo(px(r-rx), py(b))
		z.CubeTo(px(r-rx+kx), py(b), px(r), py(b-ry+ky), px(r), py(b-ry))
		z.LineTo(px(r), py(t+ry))
		z.CubeTo(px(r), py(t+ry-ky), px(r-rx+kx), py(t), px(r-rx), py(t))
	}
	z.ClosePath()
}

// grow offsets rr outward by d (inward when negative), adjusting the radius.
func grow(rr graphics.RRect, d float64) graphics.RRect {
	rect := graphics.Rect{
		Left:   rr.Rect.Left - d,
		Top:    rr.Rect.Top - d,
		Right:  rr.Rect.Right + d,
		Bottom: rr.Rect.Bottom + d,
	}
	if rect.IsEmpty() {
		return graphics.RRect{Rect: rect}
	}
	return graphics.RRectFromRectAndRadius(rect, graphics.Radius{
		X: math.Max(rr.Radius.X+d, 0),
		Y: math.Max(rr.Radius.Y+d, 0),
	})
}

// gradientImage evaluates g at every pixel center of rect.
func gradientImage(g *graphics.Gradient, rect graphics.Rect, bounds image.Rectangle) *image.NRGBA {
	r := pixelRect(rect).Intersect(bounds)
	img := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			col := g.ColorAtPoint(rect, graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			img.SetNRGBA(x, y, col.NRGBA())
		}
	}
	return img
}

// pixelRect returns the smallest integer rectangle covering r.
func pixelRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)),
		int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)),
		int(math.Ceil(r.Bottom)),
	)
}
