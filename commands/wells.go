package commands

import (
	"fmt"

	"github.com/marykwonn/Project-Texas/internal/application/render"
	"github.com/spf13/cobra"
)

func newWellsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "wells",
		Short: "List the well identities left after normalization",
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
			for _, id := range table.WellIDs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", id, len(table.Well(id)))
			}
			return nil
		},
	}
}
