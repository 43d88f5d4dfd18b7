package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-logr/logr"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/segmented"
	"github.com/go-drift/segmented/pkg/theme"
)

func at(c *Canvas, x, y int) graphics.Color {
	return graphics.FromColor(c.Image().At(x, y))
}

func rect(l, t, w, h float64) graphics.RRect {
	return graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(l, t, w, h), graphics.Radius{})
}

func TestFillRect(t *testing.T) {
	c := New(10, 10)
	c.DrawRRect(rect(0, 0, 10, 10), graphics.FillPaint(graphics.ColorRed))
	if got := at(c, 5, 5); got != graphics.ColorRed {
		t.Errorf("expected red, got %s", got)
	}
	if c.Size() != (graphics.Size{Width: 10, Height: 10}) {
		t.Errorf("unexpected size %v", c.Size())
	}
}

func TestFillRoundedCorners(t *testing.T) {
	c := New(20, 20)
	rr := graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 20, 20), graphics.CircularRadius(10))
	c.DrawRRect(rr, graphics.FillPaint(graphics.ColorRed))

	if got := at(c, 0, 0); got.A() != 0 {
		t.Errorf("corner should stay transparent, got %s", got)
	}
	if got := at(c, 10, 10); got != graphics.ColorRed {
		t.Errorf("center should be filled, got %s", got)
	}
}

func TestStrokeLeavesInteriorEmpty(t *testing.T) {
	c := New(20, 20)
	c.DrawRRect(rect(1, 1, 18, 18), graphics.StrokePaint(graphics.ColorBlack, 2))

	if got := at(c, 0, 10); got != graphics.ColorBlack {
		t.Errorf("outline pixel should be black, got %s", got)
	}
	if got := at(c, 10, 10); got.A() != 0 {
		t.Errorf("interior should be empty, got %s", got)
	}
}

func TestClipSaveRestore(t *testing.T) {
	c := New(20, 10)
	c.Save()
	c.ClipRRect(rect(0, 0, 10, 10))
	c.DrawRRect(rect(0, 0, 20, 10), graphics.FillPaint(graphics.ColorRed))
	c.Restore()

	if got := at(c, 5, 5); got != graphics.ColorRed {
		t.Errorf("inside the clip should be filled, got %s", got)
	}
	if got := at(c, 15, 5); got.A() != 0 {
		t.Errorf("outside the clip should be empty, got %s", got)
	}

	c.DrawRRect(rect(0, 0, 20, 10), graphics.FillPaint(graphics.ColorBlue))
	if got := at(c, 15, 5); got != graphics.ColorBlue {
		t.Errorf("restore should drop the clip, got %s", got)
	}
	c.Restore()
}

func TestNestedClipsIntersect(t *testing.T) {
	c := New(30, 10)
	c.ClipRRect(rect(0, 0, 20, 10))
	c.ClipRRect(rect(10, 0, 20, 10))
	c.DrawRRect(rect(0, 0, 30, 10), graphics.FillPaint(graphics.ColorRed))

	for _, tt := range []struct {
		x    int
		fill bool
	}{{5, false}, {15, true}, {25, false}} {
		if got := at(c, tt.x, 5).A() != 0; got != tt.fill {
			t.Errorf("x=%d: filled=%v, want %v", tt.x, got, tt.fill)
		}
	}
}

func TestGradientFill(t *testing.T) {
	c := New(4, 100)
	p := graphics.FillPaint(graphics.ColorBlack)
	p.Gradient = graphics.VerticalGradient(graphics.ColorWhite, graphics.ColorBlack)
	c.DrawRRect(rect(0, 0, 4, 100), p)

	top, bottom := at(c, 2, 1), at(c, 2, 98)
	if top.R() <= bottom.R() {
		t.Errorf("expected lighter top, got %s over %s", top, bottom)
	}
}

func TestDrawImageRectScales(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		src.SetNRGBA(i%2, i/2, color.NRGBA{R: 0xFF, A: 0xFF})
	}
	c := New(10, 10)
	c.DrawImageRect(src, graphics.RectFromLTWH(2, 2, 6, 6))

	if got := at(c, 5, 5); got != graphics.ColorRed {
		t.Errorf("expected scaled red image, got %s", got)
	}
	if got := at(c, 0, 0); got.A() != 0 {
		t.Errorf("outside the destination should be empty, got %s", got)
	}
	c.DrawImageRect(nil, graphics.RectFromLTWH(0, 0, 5, 5))
}

func TestDrawText(t *testing.T) {
	c := New(40, 20)
	c.DrawText("Hi", graphics.TextStyle{Color: graphics.ColorBlack}, graphics.Offset{X: 2, Y: 2})

	inked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if at(c, x, y).A() == 0 {
				continue
			}
			inked++
			if x < 2 || x >= 16 || y < 2 || y >= 15 {
				t.Fatalf("ink outside the measured box at (%d,%d)", x, y)
			}
		}
	}
	if inked == 0 {
		t.Error("expected some ink")
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(3, 2)
	c.Clear(graphics.ColorGreen)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 || graphics.FromColor(img.At(1, 1)) != graphics.ColorGreen {
		t.Error("round trip lost pixels")
	}
}

func TestPaintControl(t *testing.T) {
	reg := theme.NewRegistry()
	ctl, err := segmented.NewWithTitles([]string{"One", "Two", "Three"},
		segmented.WithRegistry(reg), segmented.WithLogger(logr.Discard()), segmented.WithSelectedIndex(1))
	if err != nil {
		t.Fatal(err)
	}
	c := New(300, 40)
	ctl.Paint(c, c.Size())

	scheme := reg.ColorScheme()
	if got := at(c, 110, 6); got != scheme.Primary {
		t.Errorf("selected segment background: expected %s, got %s", scheme.Primary, got)
	}
	if got := at(c, 10, 6); got != scheme.SurfaceVariant {
		t.Errorf("unselected segment shows the base: expected %s, got %s", scheme.SurfaceVariant, got)
	}
	if got := at(c, 150, 0); got != scheme.Outline {
		t.Errorf("outline: expected %s, got %s", scheme.Outline, got)
	}
}
