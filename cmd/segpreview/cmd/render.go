package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/segmented/pkg/raster"
)

func newRenderCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the control to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.width <= 0 || o.height <= 0 {
				return fmt.Errorf("--width and --height must be positive, got %dx%d", o.width, o.height)
			}
			c, err := o.buildControl()
			if err != nil {
				return err
			}

			canvas := raster.New(o.width, o.height)
			c.Paint(canvas, canvas.Size())

			if out == "-" {
				return canvas.EncodePNG(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := canvas.EncodePNG(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, selected %d)\n", out, o.width, o.height, c.SelectedIndex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "segmented.png", "output PNG path, or - for stdout")
	return cmd
}
