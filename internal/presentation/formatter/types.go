package formatter

import (
	"fmt"
	"io"

	"github.com/marykwonn/Project-Texas/internal/core/model"
)

// Report is what a render run hands to a formatter.
type Report struct {
	Figure model.Figure
	Wells  []WellSummary
}

// WellSummary counts what was drawn for one well identity.
type WellSummary struct {
	WellID  string
	Samples int
	Markers int
	Perfs   int
	Fracs   int
}

// Formatter writes a report in one output format.
type Formatter interface {
	Format(r Report) error
}

// Output format names.
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatTable   = "table"
	FormatSummary = "summary"
)

// New returns the formatter for format writing to w.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatJSON, "":
		return NewJSONFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatSummary:
		return NewSummaryFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (json, csv, table, summary)", format)
	}
}

func traceRecord(t model.Trace) []string {
	return []string{
		t.Name,
		t.Type,
		t.Mode,
		t.LegendGroup,
		fmt.Sprintf("%d", t.Len()),
	}
}

var traceHeaders = []string{"Trace", "Type", "Mode", "Legend Group", "Points"}
