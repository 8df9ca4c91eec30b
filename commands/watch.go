package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/marykwonn/Project-Texas/internal/application/render"
	"github.com/marykwonn/Project-Texas/internal/data/watcher"
	"github.com/marykwonn/Project-Texas/internal/util"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Render, then render again whenever an input file changes",
		Long: `Renders once and keeps watching the sample table and the fault file.
Saves that leave a file's content unchanged are ignored. Stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}
}

func runWatch(cmd *cobra.Command, opts *options) error {
	rc, err := setup(opts)
	if err != nil {
		return err
	}
	r, err := render.New(rc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := []string{rc.InputPath}
	if rc.FaultPath != "" {
		paths = append(paths, rc.FaultPath)
	}

	fw, err := watcher.NewFileWatcher(paths)
	if err != nil {
		return err
	}
	defer fw.Close()

	detector := watcher.NewChangeDetector()
	for _, p := range paths {
		detector.Changed(p)
	}

	if err := renderTo(ctx, cmd, r, opts.outPath); err != nil {
		return err
	}
	util.LogInfof("Watching %d files", len(paths))

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Watch stopped")
			return nil

		case event, ok := <-fw.Events():
			if !ok {
				return nil
			}
			if !detector.Changed(event.Path) {
				continue
			}
			util.LogInfo("Input changed, rendering again",
				util.F("path", event.Path), util.F("op", event.Operation))
			// A half-written input fails to parse; keep watching for the
			// next save.
			if err := renderTo(ctx, cmd, r, opts.outPath); err != nil {
				util.LogErrorf("Render failed: %v", err)
			}
		}
	}
}
