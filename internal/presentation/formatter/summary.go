package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/marykwonn/Project-Texas/internal/core/model"
)

// SummaryFormatter prints per-well counts and totals.
type SummaryFormatter struct {
	w io.Writer
}

func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

func (f *SummaryFormatter) Format(r Report) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	title := r.Figure.Layout.Title
	if title == "" {
		title = "Well Survey"
	}
	b.WriteString(title + " Summary\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(r.Wells) == 0 {
		b.WriteString("No wells to summarize\n\n")
		b.WriteString(strings.Repeat("=", 60) + "\n")
		_, err := io.WriteString(f.w, b.String())
		return err
	}

	var total WellSummary
	fmt.Fprintf(&b, "%-16s %8s %8s %8s %8s\n", "Well", "Samples", "Markers", "Perfs", "Fracs")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, w := range r.Wells {
		fmt.Fprintf(&b, "%-16s %8d %8d %8d %8d\n", w.WellID, w.Samples, w.Markers, w.Perfs, w.Fracs)
		total.Samples += w.Samples
		total.Markers += w.Markers
		total.Perfs += w.Perfs
		total.Fracs += w.Fracs
	}
	b.WriteString(strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "%-16s %8d %8d %8d %8d\n\n", "Total", total.Samples, total.Markers, total.Perfs, total.Fracs)

	fmt.Fprintf(&b, "Wells: %d\n", len(r.Wells))
	fmt.Fprintf(&b, "Traces: %d\n", len(r.Figure.Data))
	if len(r.Figure.MarkerOptions) > 0 {
		fmt.Fprintf(&b, "Markers: %s\n", strings.Join(r.Figure.MarkerOptions, ", "))
	}
	for _, t := range r.Figure.Data {
		if t.Type == model.TraceMesh3D {
			fmt.Fprintf(&b, "Fault: %s (%d points)\n", t.Name, t.Len())
		}
	}

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	_, err := io.WriteString(f.w, b.String())
	return err
}
