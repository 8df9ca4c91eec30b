package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// minColumnWidth keeps narrow columns readable.
const minColumnWidth = 6

// TableFormatter draws a boxed table of traces.
type TableFormatter struct {
	w       io.Writer
	headers []string
	// maxWidth caps the table width; 0 means unlimited.
	maxWidth int
}

// NewTableFormatter sizes the table to the terminal when w is one.
func NewTableFormatter(w io.Writer) *TableFormatter {
	f := &TableFormatter{w: w, headers: traceHeaders}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			f.maxWidth = width
		}
	}
	return f
}

func (f *TableFormatter) Format(r Report) error {
	rows := make([][]string, 0, len(r.Figure.Data))
	total := 0
	for _, t := range r.Figure.Data {
		rows = append(rows, traceRecord(t))
		total += t.Len()
	}
	totalRow := []string{"Total", "", "", "", fmt.Sprintf("%d", total)}

	widths := f.calculateColumnWidths(append(rows, totalRow))

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, row := range rows {
		f.writeRow(&b, row, widths)
	}
	f.writeBorder(&b, widths, "middle")
	f.writeRow(&b, totalRow, widths)
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(f.w, b.String())
	return err
}

// calculateColumnWidths sizes columns to content, shrinking the first
// column when the table would overflow maxWidth.
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, h := range f.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}

	if f.maxWidth > 0 {
		// Each column adds two padding spaces and one border.
		used := 1
		for _, w := range widths {
			used += w + 3
		}
		if over := used - f.maxWidth; over > 0 {
			widths[0] -= over
			if widths[0] < minColumnWidth {
				widths[0] = minColumnWidth
			}
		}
	}
	return widths
}

func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// writeRow left-aligns text columns and right-aligns the point count.
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	last := len(values) - 1
	for i, value := range values {
		value = runewidth.Truncate(value, widths[i], "…")
		if i == last {
			b.WriteString(" " + runewidth.FillLeft(value, widths[i]) + " │")
		} else {
			b.WriteString(" " + runewidth.FillRight(value, widths[i]) + " │")
		}
	}
	b.WriteString("\n")
}
