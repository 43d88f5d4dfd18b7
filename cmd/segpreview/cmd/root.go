// Package cmd implements the segpreview command line.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/go-drift/segmented/pkg/logger"
)

// options holds the flags shared by every subcommand.
type options struct {
	style         string
	titles        []string
	icons         []string
	selected      int
	orientation   string
	segmentLayout string
	imagePosition string
	width         int
	height        int
	tap           []float64
	debug         bool

	ctx context.Context
}

func newRootCmd() *cobra.Command {
	o := &options{ctx: context.Background()}

	root := &cobra.Command{
		Use:   "segpreview",
		Short: "Preview a segmented control styled from a YAML file",
		Long: "segpreview builds a segmented control from titles, icons and an optional\n" +
			"YAML style file, then renders it to a PNG or to the terminal.",
		Example: "\n  segpreview render --titles Day,Week,Month --selected 1 --out control.png\n" +
			"  segpreview show --style style.yaml --titles One,Two --orientation vertical\n",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// --debug maps to zap.DebugLevel (-1) so V(1) entries are written.
			var level int8
			if o.debug {
				level = -1
			}
			lgr := logger.Get(level)
			lgr = logger.WithValues(lgr, logger.CommandKey, cmd.Name())
			o.ctx = logger.WithLogger(context.Background(), lgr)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&o.style, "style", "", "path to a YAML style file")
	f.StringSliceVar(&o.titles, "titles", nil, "comma-separated segment titles")
	f.StringSliceVar(&o.icons, "icons", nil, "comma-separated PNG icon paths, paired with titles by index")
	f.IntVar(&o.selected, "selected", -1, "initially selected segment (-1 for none)")
	f.StringVar(&o.orientation, "orientation", "horizontal", "segment direction: horizontal|vertical")
	f.StringVar(&o.segmentLayout, "segment-layout", "default", "content layout inside a segment: default|vertical")
	f.StringVar(&o.imagePosition, "image-position", "left", "icon position relative to the title: left|right")
	f.IntVar(&o.width, "width", 320, "control width in pixels")
	f.IntVar(&o.height, "height", 36, "control height in pixels")
	f.Float64SliceVar(&o.tap, "tap", nil, "simulate a tap at x,y before rendering")
	f.BoolVar(&o.debug, "debug", false, "write debug logs to stderr")

	root.AddCommand(newRenderCmd(o), newShowCmd(o))
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
