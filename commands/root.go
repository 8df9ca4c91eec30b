package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/marykwonn/Project-Texas/internal/application/render"
	"github.com/marykwonn/Project-Texas/internal/config"
	"github.com/marykwonn/Project-Texas/internal/util"
	"github.com/spf13/cobra"
)

// options holds the flag values shared by every subcommand.
type options struct {
	// Logging related
	debug      bool
	configPath string

	// Input data
	input       string
	sheet       string
	faultPath   string
	faultName   string
	headerLines int

	// Well selection
	region   string
	wells    []string
	allWells bool

	// Output related
	title        string
	outputFormat string
	outPath      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "wellviz [flags]",
		Short: "Shape well survey samples into 3D plot traces",
		Long: `wellviz reads an exported well sample table (surveys, markers and perforations),
normalizes it and writes the 3D scene traces for each selected well: path,
markers, perforations, fracs and an optional fault surface.

Examples:
  wellviz --input lbu.csv                              # Render the default region as JSON
  wellviz --input lbu.xlsx --sheet Samples -o summary  # Per-well counts from a workbook
  wellviz --input lbu.csv --wells A374,A547 --out plot.json
  wellviz --input lbu.jsonl --fault WILM.dat --header-lines 20
  wellviz markers --input lbu.csv                      # List marker codes
  wellviz watch --input lbu.csv --out plot.json        # Re-render on change`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&opts.input, "input", "i", "",
		"Sample table export (.csv, .jsonl, .xlsx)")
	flags.StringVar(&opts.sheet, "sheet", "",
		"Worksheet of an .xlsx input (default first sheet)")
	flags.StringVar(&opts.faultPath, "fault", "",
		"Fault geometry file of X Y Z triples")
	flags.StringVar(&opts.faultName, "fault-name", "",
		"Legend name of the fault trace (default from config)")
	flags.IntVar(&opts.headerLines, "header-lines", -1,
		"Header lines to skip in the fault file (default from config)")

	flags.StringVar(&opts.region, "region", config.DefaultRegion,
		"Named well set from the config")
	flags.StringSliceVar(&opts.wells, "wells", nil,
		"Well common names, overrides --region")
	flags.BoolVar(&opts.allWells, "all-wells", false,
		"Keep every well in the input")

	flags.StringVar(&opts.title, "title", "",
		"Scene title (default region title)")
	flags.StringVarP(&opts.outputFormat, "output", "o", "json",
		"Output format (json, csv, table, summary)")
	flags.StringVar(&opts.outPath, "out", "-",
		"Output file, - for stdout")

	flags.StringVar(&opts.configPath, "config", "",
		"YAML config file")
	flags.BoolVar(&opts.debug, "debug", false,
		"Enable debug mode")

	rootCmd.AddCommand(
		newRenderCmd(opts),
		newMarkersCmd(opts),
		newWellsCmd(opts),
		newWatchCmd(opts),
	)
	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}

// setup loads the config, starts logging and resolves the flags into a
// render configuration.
func setup(opts *options) (*render.Config, error) {
	cfgPath := opts.configPath
	if cfgPath != "" {
		cfgPath = expandPath(cfgPath)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logLevel := cfg.Logging.Level
	if opts.debug {
		logLevel = "debug"
	}
	logFile := cfg.Logging.File
	if logFile != "" {
		logFile = expandPath(logFile)
		if err := ensureDir(filepath.Dir(logFile)); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	if err := util.InitLogger(logLevel, logFile, opts.debug, util.LogFormat(cfg.Logging.Format)); err != nil {
		return nil, err
	}

	if opts.input == "" {
		return nil, fmt.Errorf("--input is required")
	}

	title := opts.title
	var wells []string
	switch {
	case opts.allWells:
	case len(opts.wells) > 0:
		wells = opts.wells
	default:
		region, err := cfg.Region(opts.region)
		if err != nil {
			return nil, fmt.Errorf("%w (configured: %s)", err, strings.Join(cfg.RegionNames(), ", "))
		}
		wells = region.Wells
		if title == "" {
			title = region.Title
		}
	}

	faultPath := opts.faultPath
	if faultPath == "" {
		faultPath = cfg.Fault.Path
	}
	if faultPath != "" {
		faultPath = expandPath(faultPath)
	}
	faultName := opts.faultName
	if faultName == "" {
		faultName = cfg.Fault.Name
	}
	headerLines := opts.headerLines
	if headerLines < 0 {
		headerLines = cfg.Fault.HeaderLines
	}

	rc := &render.Config{
		InputPath:    expandPath(opts.input),
		Sheet:        opts.sheet,
		Wells:        wells,
		FaultPath:    faultPath,
		FaultName:    faultName,
		HeaderLines:  headerLines,
		Palette:      cfg.BuildPalette(),
		Layout:       cfg.BuildLayout(title),
		OutputFormat: opts.outputFormat,
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}

	util.LogDebugf("Render config: input=%s wells=%d fault=%s format=%s",
		rc.InputPath, len(rc.Wells), rc.FaultPath, rc.OutputFormat)
	return rc, nil
}

// writeOutput runs write against path; "-" and "" mean the command's stdout.
// A file is written to a temporary sibling and renamed over path only when
// write succeeds, so a failed render leaves the previous output in place.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}

	path = expandPath(path)
	dir := filepath.Dir(path)
	if err := ensureDir(dir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
