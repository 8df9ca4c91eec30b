package formatter

import (
	"encoding/csv"
	"io"
)

// CSVFormatter writes one line per trace.
type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(r Report) error {
	w := csv.NewWriter(f.w)

	if err := w.Write(traceHeaders); err != nil {
		return err
	}
	for _, t := range r.Figure.Data {
		if err := w.Write(traceRecord(t)); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
