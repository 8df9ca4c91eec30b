package palette

import "github.com/marykwonn/Project-Texas/internal/core/model"

// DefaultMarkerCodes is the ordered list of stratigraphic marker codes that
// receive a color.
var DefaultMarkerCodes = []string{
	"A", "AA", "AB", "AC", "AD", "AE", "AI", "AM", "AO", "AR", "AU", "AX", "BA", "F", "FO",
	"G", "G4", "G5", "G6", "H", "H1", "HX", "HX1", "HXA", "HXB", "HXC", "HXO", "J", "K", "M",
	"M1", "S", "T", "W", "X", "Y", "Y4", "Z",
}

// DefaultMarkerColors is cycled over the marker codes.
var DefaultMarkerColors = []string{
	"#1f77b4", "#ff7f0e", "#d62728", "#8c564b", "#2ca02c",
	"#a667bd", "#e377b5", "#7f7f7f", "#6522bd", "#17c5cf",
}

// DefaultStatusColors maps perforation status to a color.
var DefaultStatusColors = map[string]string{
	model.PerfStatusActive:   "green",
	model.PerfStatusInactive: "#f57b42",
}

// Fallback colors for codes and statuses missing from the tables.
const (
	DefaultMarkerFallback = "#c7c7c7"
	DefaultStatusFallback = "#c7c7c7"
)

// Palette holds the immutable color lookups used by the trace builders.
// The zero value is usable and resolves everything to "".
type Palette struct {
	markers        map[string]string
	statuses       map[string]string
	markerFallback string
	statusFallback string
}

// Options describes a palette. Empty slices and maps select the defaults.
type Options struct {
	MarkerCodes    []string
	MarkerColors   []string
	StatusColors   map[string]string
	MarkerFallback string
	StatusFallback string
}

// Default returns the LBU dashboard palette.
func Default() Palette {
	return New(Options{})
}

// New builds a palette. Marker code i is assigned color i mod len(colors).
func New(opts Options) Palette {
	codes := opts.MarkerCodes
	if len(codes) == 0 {
		codes = DefaultMarkerCodes
	}
	colors := opts.MarkerColors
	if len(colors) == 0 {
		colors = DefaultMarkerColors
	}
	status := opts.StatusColors
	if len(status) == 0 {
		status = DefaultStatusColors
	}

	p := Palette{
		markers:        make(map[string]string, len(codes)),
		statuses:       make(map[string]string, len(status)),
		markerFallback: opts.MarkerFallback,
		statusFallback: opts.StatusFallback,
	}
	if p.markerFallback == "" {
		p.markerFallback = DefaultMarkerFallback
	}
	if p.statusFallback == "" {
		p.statusFallback = DefaultStatusFallback
	}

	for i, code := range codes {
		p.markers[code] = colors[i%len(colors)]
	}
	for k, v := range status {
		p.statuses[k] = v
	}
	return p
}

// MarkerColor returns the color for a marker code and whether the code is
// in the table.
func (p Palette) MarkerColor(code string) (string, bool) {
	if c, ok := p.markers[code]; ok {
		return c, true
	}
	return p.markerFallback, false
}

// StatusColor returns the color for a perforation status and whether the
// status is in the table.
func (p Palette) StatusColor(status string) (string, bool) {
	if c, ok := p.statuses[status]; ok {
		return c, true
	}
	return p.statusFallback, false
}
