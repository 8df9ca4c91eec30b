package shaper

import (
	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/core/palette"
)

// Build assembles the full trace list: path and marker traces per well,
// then perforation traces, then frac traces, then the fault surface when
// one is given.
func Build(t Table, pal palette.Palette, fault *model.Trace) []model.Trace {
	wells := t.WellIDs()
	traces := make([]model.Trace, 0, 4*len(wells)+1)

	for _, id := range wells {
		traces = append(traces, BuildPathTrace(t, id), BuildMarkerTrace(t, id, pal))
	}
	for _, id := range wells {
		traces = append(traces, BuildPerfTrace(t, id, pal))
	}
	for _, id := range wells {
		traces = append(traces, BuildFracTrace(t, id))
	}

	if fault != nil {
		traces = append(traces, *fault)
	}
	return traces
}
