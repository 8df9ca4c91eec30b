package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/marykwonn/Project-Texas/internal/core/fault"
	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/core/shaper"
	"github.com/marykwonn/Project-Texas/internal/data/loader"
	"github.com/marykwonn/Project-Texas/internal/data/source"
	"github.com/marykwonn/Project-Texas/internal/presentation/formatter"
	"github.com/marykwonn/Project-Texas/internal/util"
)

// Renderer runs load, normalize, build and output for one configuration.
// Parsed inputs are cached between runs, so a watch loop only re-reads the
// files that changed.
type Renderer struct {
	config *Config
	source source.Source
	caches *loader.Caches
}

func New(config *Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	src, err := source.Open(config.InputPath)
	if err != nil {
		return nil, err
	}
	src.Sheet = config.Sheet
	return &Renderer{config: config, source: src, caches: loader.NewCaches(config.InputPath)}, nil
}

// NewWithSource uses src instead of opening InputPath.
func NewWithSource(config *Config, src source.Source) (*Renderer, error) {
	if config.InputPath == "" {
		config.InputPath = "-"
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{config: config, source: src, caches: loader.NewCaches("")}, nil
}

// Table loads the input and returns the normalized table together with the
// fault geometry, if any.
func (r *Renderer) Table(ctx context.Context) (shaper.Table, *fault.Geometry, error) {
	loadStart := time.Now()
	in, err := loader.Load(ctx, loader.Request{
		Source:    r.source,
		Query:     source.Query{Wells: r.config.Wells},
		FaultPath: r.config.FaultPath,
		FaultOpts: fault.Options{HeaderLines: r.config.HeaderLines},
		Caches:    r.caches,
	})
	if err != nil {
		return nil, nil, err
	}
	util.LogDebug(fmt.Sprintf("Phase 1 - Load duration: %v, rows: %d", time.Since(loadStart), len(in.Rows)))

	normStart := time.Now()
	table := shaper.Normalize(in.Rows)
	if dropped := len(in.Rows) - len(table); dropped > 0 {
		util.LogInfo(fmt.Sprintf("Dropped %d rows without an API suffix", dropped))
	}
	util.LogDebug(fmt.Sprintf("Phase 2 - Normalize duration: %v, rows: %d", time.Since(normStart), len(table)))

	return table, in.Fault, nil
}

// Build produces the report for the configured input.
func (r *Renderer) Build(ctx context.Context) (formatter.Report, error) {
	startTime := time.Now()
	util.LogInfo("Starting render of " + r.config.InputPath)

	table, geometry, err := r.Table(ctx)
	if err != nil {
		return formatter.Report{}, err
	}

	buildStart := time.Now()
	var faultTrace *model.Trace
	if geometry != nil {
		t := fault.BuildFaultTrace(*geometry, r.config.FaultName)
		faultTrace = &t
	}
	traces := shaper.Build(table, r.config.Palette, faultTrace)
	util.LogDebug(fmt.Sprintf("Phase 3 - Build duration: %v, traces: %d", time.Since(buildStart), len(traces)))

	report := formatter.Report{
		Figure: model.Figure{
			Data:          traces,
			Layout:        r.config.Layout,
			MarkerOptions: shaper.DistinctMarkers(table),
		},
		Wells: summarize(table, traces),
	}
	if len(report.Wells) == 0 {
		util.LogWarn("No wells with an API suffix matched the selection")
	}
	util.LogInfo(fmt.Sprintf("Rendered %d wells, %d traces in %v", len(report.Wells), len(traces), time.Since(startTime)))
	return report, nil
}

// Run builds the report and writes it to w in the configured format. Nothing
// is written when the build fails.
func (r *Renderer) Run(ctx context.Context, w io.Writer) error {
	f, err := formatter.New(r.config.OutputFormat, w)
	if err != nil {
		return err
	}

	report, err := r.Build(ctx)
	if err != nil {
		return err
	}

	outputStart := time.Now()
	if err := f.Format(report); err != nil {
		return fmt.Errorf("failed to write %s output: %w", r.config.OutputFormat, err)
	}
	util.LogDebug(fmt.Sprintf("Phase 4 - Output duration: %v", time.Since(outputStart)))
	return nil
}

// summarize counts points per well from the built traces. Build emits the
// per-well traces in three blocks: path+marker pairs, perfs, fracs.
func summarize(table shaper.Table, traces []model.Trace) []formatter.WellSummary {
	wells := table.WellIDs()
	n := len(wells)
	out := make([]formatter.WellSummary, n)
	for i, id := range wells {
		out[i] = formatter.WellSummary{
			WellID:  id,
			Samples: traces[2*i].Len(),
			Markers: traces[2*i+1].Len(),
			Perfs:   traces[2*n+i].Len(),
			Fracs:   traces[3*n+i].Len(),
		}
	}
	return out
}
