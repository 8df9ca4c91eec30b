package commands

import (
	"fmt"

	"github.com/marykwonn/Project-Texas/internal/application/render"
	"github.com/marykwonn/Project-Texas/internal/core/shaper"
	"github.com/spf13/cobra"
)

func newMarkersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "markers",
		Short: "List the distinct marker codes of the selected wells",
		Long:  `Prints one marker code per line in first-seen order, after the F0 to FO correction. These are the options of the scene's marker selector.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := setup(opts)
			if err != nil {
				return err
			}
			r, err := render.New(rc)
			if err != nil {
				return err
			}

			table, _, err := r.Table(cmd.Context())
			if err != nil {
				return err
			}
			for _, code := range shaper.DistinctMarkers(table) {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
}
