package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/segmented/pkg/termview"
)

func newShowCmd(o *options) *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the control to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.buildControl()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), termview.Render(c, termview.Options{NoColor: noColor}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	return cmd
}
