package model

import (
	"bytes"
	"math"
	"strconv"

	"github.com/bytedance/sonic"
)

// Trace types understood by the rendering surface.
const (
	TraceScatter3D = "scatter3d"
	TraceMesh3D    = "mesh3d"
)

// Trace modes.
const (
	ModeLines       = "lines"
	ModeMarkers     = "markers"
	ModeMarkersText = "markers+text"
)

// Series is a coordinate sequence. NaN entries encode as JSON null.
type Series []float64

func (s Series) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (s *Series) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Series, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	*s = out
	return nil
}

// Color is either a single color for every point or one color per point.
type Color struct {
	Single string
	Each   []string
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c.Each != nil {
		return sonic.Marshal(c.Each)
	}
	return sonic.Marshal(c.Single)
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		return sonic.Unmarshal(data, &c.Each)
	}
	return sonic.Unmarshal(data, &c.Single)
}

type Line struct {
	Width int    `json:"width"`
	Color string `json:"color"`
}

type Marker struct {
	Color   Color   `json:"color"`
	Size    int     `json:"size,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

type Font struct {
	Size int `json:"size"`
}

// Trace is a renderable chart trace in the shape plotly.js accepts for its
// data array. Builders allocate every slice they hand out, so a Trace never
// aliases the table it was built from.
type Trace struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Mode         string   `json:"mode,omitempty"`
	X            Series   `json:"x"`
	Y            Series   `json:"y"`
	Z            Series   `json:"z"`
	Line         *Line    `json:"line,omitempty"`
	Marker       *Marker  `json:"marker,omitempty"`
	Text         []string `json:"text,omitempty"`
	TextPosition string   `json:"textposition,omitempty"`
	TextFont     *Font    `json:"textfont,omitempty"`
	LegendGroup  string   `json:"legendgroup,omitempty"`
	ShowLegend   bool     `json:"showlegend,omitempty"`

	// Mesh only
	Color        string  `json:"color,omitempty"`
	Opacity      float64 `json:"opacity,omitempty"`
	DelaunayAxis string  `json:"delaunayaxis,omitempty"`
	FlatShading  bool    `json:"flatshading,omitempty"`
}

// Len returns the number of points in the trace.
func (t Trace) Len() int {
	return len(t.X)
}

type Axis struct {
	Title           string `json:"title"`
	BackgroundColor string `json:"backgroundcolor,omitempty"`
	ShowBackground  bool   `json:"showbackground,omitempty"`
}

type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

type Layout struct {
	Title     string `json:"title"`
	ClickMode string `json:"clickmode,omitempty"`
	Height    int    `json:"height,omitempty"`
	Scene     Scene  `json:"scene"`
}

// Figure is the payload handed to the rendering surface. MarkerOptions holds
// the values for the marker filter control.
type Figure struct {
	Data          []Trace  `json:"data"`
	Layout        Layout   `json:"layout"`
	MarkerOptions []string `json:"markerOptions,omitempty"`
}
