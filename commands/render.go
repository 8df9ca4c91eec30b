package commands

import (
	"context"
	"io"

	"github.com/marykwonn/Project-Texas/internal/application/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Write the scene traces for the selected wells",
		Long:  `Loads the sample table, normalizes it and writes the figure. This is also what wellviz does without a subcommand.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
}

func runRender(cmd *cobra.Command, opts *options) error {
	rc, err := setup(opts)
	if err != nil {
		return err
	}

	r, err := render.New(rc)
	if err != nil {
		return err
	}
	return renderTo(cmd.Context(), cmd, r, opts.outPath)
}

func renderTo(ctx context.Context, cmd *cobra.Command, r *render.Renderer, outPath string) error {
	return writeOutput(cmd, outPath, func(w io.Writer) error {
		return r.Run(ctx, w)
	})
}
