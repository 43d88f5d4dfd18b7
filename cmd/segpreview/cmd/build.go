package cmd

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/go-drift/segmented/pkg/graphics"
	"github.com/go-drift/segmented/pkg/logger"
	"github.com/go-drift/segmented/pkg/segmented"
	"github.com/go-drift/segmented/pkg/theme"
)

// buildControl constructs the control described by the flags.
func (o *options) buildControl() (*segmented.Control, error) {
	log := logger.FromContext(o.ctx)

	reg := theme.NewRegistry()
	if o.style != "" {
		if err := reg.LoadFile(o.style); err != nil {
			return nil, err
		}
		log.V(1).Info("loaded style", "path", o.style)
	}

	orientation, err := segmented.ParseOrientation(o.orientation)
	if err != nil {
		return nil, err
	}
	layout, err := segmented.ParseSegmentLayout(o.segmentLayout)
	if err != nil {
		return nil, err
	}
	position, err := segmented.ParseImagePosition(o.imagePosition)
	if err != nil {
		return nil, err
	}

	icons := make([]image.Image, 0, len(o.icons))
	for _, path := range o.icons {
		img, err := loadImage(path)
		if err != nil {
			return nil, err
		}
		icons = append(icons, img)
	}

	c, err := segmented.NewWithTitlesAndIcons(o.titles, icons,
		segmented.WithRegistry(reg),
		segmented.WithLogger(*log),
		segmented.WithOrientation(orientation),
		segmented.WithSegmentLayout(layout),
		segmented.WithImagePosition(position),
		segmented.WithSelectedIndex(o.selected),
	)
	if err != nil {
		return nil, err
	}
	c.SetControlEventHandler(func(index int, _ *segmented.Control) {
		log.Info("selection changed", "index", index)
	})

	if len(o.tap) > 0 {
		if len(o.tap) != 2 {
			return nil, fmt.Errorf("--tap expects x,y, got %d values", len(o.tap))
		}
		c.Tap(o.size(), graphics.Offset{X: o.tap[0], Y: o.tap[1]})
	}
	return c, nil
}

func (o *options) size() graphics.Size {
	return graphics.Size{Width: float64(o.width), Height: float64(o.height)}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return img, nil
}
