package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/marykwonn/Project-Texas/internal/core/fault"
	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/data/cache"
	"github.com/marykwonn/Project-Texas/internal/data/source"
	"github.com/marykwonn/Project-Texas/internal/util"
	"golang.org/x/sync/errgroup"
)

// Request describes what to load.
type Request struct {
	Source source.Source
	Query  source.Query

	// FaultPath is optional. When empty no fault geometry is loaded.
	FaultPath string
	FaultOpts fault.Options

	// Caches is optional. With it, files unchanged since the previous Load
	// are not parsed again.
	Caches *Caches
}

// Caches keeps parsed inputs between loads. SourcePath names the file
// behind Request.Source; empty disables row caching.
type Caches struct {
	SourcePath string
	Rows       *cache.FileCache[[]model.SampleRow]
	Faults     *cache.FileCache[fault.Geometry]
}

func NewCaches(sourcePath string) *Caches {
	return &Caches{
		SourcePath: sourcePath,
		Rows:       cache.New[[]model.SampleRow](),
		Faults:     cache.New[fault.Geometry](),
	}
}

// Input is the materialized snapshot the shaper works on.
type Input struct {
	Rows  []model.SampleRow
	Fault *fault.Geometry
}

// Load reads the sample rows and the fault geometry concurrently, then
// applies the query selection to the rows.
func Load(ctx context.Context, req Request) (*Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	var rows []model.SampleRow
	g.Go(func() error {
		loaded, err := loadRows(gctx, req)
		if err != nil {
			return fmt.Errorf("failed to load sample rows: %w", err)
		}
		rows = loaded
		return nil
	})

	var geometry *fault.Geometry
	if req.FaultPath != "" {
		g.Go(func() error {
			geo, err := loadFault(req)
			if err != nil {
				return fmt.Errorf("failed to load fault geometry: %w", err)
			}
			geometry = &geo
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	selected := req.Query.Apply(rows)
	util.LogDebugf("Load finished in %v: %d rows read, %d selected", time.Since(start), len(rows), len(selected))

	return &Input{Rows: selected, Fault: geometry}, nil
}

func loadRows(ctx context.Context, req Request) ([]model.SampleRow, error) {
	if req.Caches == nil || req.Caches.SourcePath == "" {
		return req.Source.Load(ctx)
	}
	return req.Caches.Rows.GetOrLoad(req.Caches.SourcePath, func() ([]model.SampleRow, error) {
		return req.Source.Load(ctx)
	})
}

func loadFault(req Request) (fault.Geometry, error) {
	if req.Caches == nil {
		return fault.ReadFile(req.FaultPath, req.FaultOpts)
	}
	return req.Caches.Faults.GetOrLoad(req.FaultPath, func() (fault.Geometry, error) {
		return fault.ReadFile(req.FaultPath, req.FaultOpts)
	})
}
