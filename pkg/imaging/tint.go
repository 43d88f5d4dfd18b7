// Package imaging provides pure image transforms used when painting segment icons.
package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/go-drift/segmented/pkg/graphics"
)

// Tint returns a new image with every pixel recolored to c while keeping the
// source alpha mask. The output alpha is the source alpha scaled by c's alpha,
// never rounded down to zero, so retinting keeps the same set of visible pixels.
// A fully transparent c yields a fully transparent image.
//
// The input is never modified. A nil or empty input yields an empty image.
func Tint(img image.Image, c graphics.Color) *image.NRGBA {
	if img == nil || img.Bounds().Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// Normalize to NRGBA first so the alpha channel can be read directly,
	// whatever the source color model.
	src := image.NewNRGBA(dst.Rect)
	draw.Draw(src, src.Rect, img, b.Min, draw.Src)

	tint := c.NRGBA()
	if tint.A == 0 {
		return dst
	}
	for y := 0; y < dst.Rect.Dy(); y++ {
		for x := 0; x < dst.Rect.Dx(); x++ {
			a := src.NRGBAAt(x, y).A
			if a == 0 {
				continue
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: tint.R,
				G: tint.G,
				B: tint.B,
				A: uint8(max((uint32(a)*uint32(tint.A)+127)/255, 1)),
			})
		}
	}
	return dst
}

// Resize scales img to exactly width x height. Images already that size are
// returned unchanged; scaled images have their origin at (0, 0).
func Resize(img image.Image, width, height int) image.Image {
	if img == nil || width <= 0 || height <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}

// FitSize returns the largest size with the aspect ratio of (w, h) that fits
// within (maxW, maxH). Sizes that already fit are returned unchanged.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || (w <= maxW && h <= maxH) {
		return w, h
	}
	// Compare w/maxW against h/maxH without floating point.
	if w*maxH >= h*maxW {
		nh := h * maxW / w
		return maxW, max(nh, 1)
	}
	nw := w * maxH / h
	return max(nw, 1), maxH
}
