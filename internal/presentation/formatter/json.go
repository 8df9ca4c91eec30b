package formatter

import (
	"io"

	"github.com/bytedance/sonic"
)

// JSONFormatter writes the figure as a plotly {data, layout} document.
type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

func (f *JSONFormatter) Format(r Report) error {
	data, err := sonic.ConfigDefault.MarshalIndent(r.Figure, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.w.Write(data)
	return err
}
