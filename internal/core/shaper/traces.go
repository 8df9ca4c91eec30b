package shaper

import (
	"sort"

	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/core/palette"
)

// Trace styling.
const (
	pathLineWidth = 3
	pathColor     = "#f542f2"
	pointSize     = 5
	markerFont    = 10
	perfOpacity   = 0.1
	fracOpacity   = 0.08
	fracColor     = "black"
	symbolDiamond = "diamond"

	perfLegendGroup = "Perfs"
	fracLegendGroup = "Fracs"

	// missingMarker replaces a null marker name in perforation hover text.
	missingMarker = "N/A"
)

// Frac flag values that mark a fractured interval.
var fracFlags = map[string]bool{"F": true, "X": true}

// BuildPathTrace draws the well path through every sample of the well.
func BuildPathTrace(t Table, wellID string) model.Trace {
	rows := t.Well(wellID)
	x, y, z := coordinates(rows)
	return model.Trace{
		Type:        model.TraceScatter3D,
		Name:        wellID,
		Mode:        model.ModeLines,
		X:           x,
		Y:           y,
		Z:           z,
		Line:        &model.Line{Width: pathLineWidth, Color: pathColor},
		LegendGroup: wellID,
	}
}

// BuildMarkerTrace places one labelled point per marker code at the
// shallowest sample carrying it. Points are ordered by marker code.
func BuildMarkerTrace(t Table, wellID string, pal palette.Palette) model.Trace {
	first := make(map[string]model.CleanedRow)
	for _, row := range t.Well(wellID) {
		if row.Marker == nil {
			continue
		}
		if _, ok := first[*row.Marker]; !ok {
			first[*row.Marker] = row
		}
	}

	codes := make([]string, 0, len(first))
	for code := range first {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make(Table, len(codes))
	colors := make([]string, len(codes))
	for i, code := range codes {
		rows[i] = first[code]
		colors[i], _ = pal.MarkerColor(code)
	}
	x, y, z := coordinates(rows)

	return model.Trace{
		Type:         model.TraceScatter3D,
		Name:         wellID + "<br>Markers",
		Mode:         model.ModeMarkersText,
		X:            x,
		Y:            y,
		Z:            z,
		Marker:       &model.Marker{Color: model.Color{Each: colors}, Size: pointSize},
		Text:         codes,
		TextPosition: "middle right",
		TextFont:     &model.Font{Size: markerFont},
		LegendGroup:  wellID,
		ShowLegend:   true,
	}
}

// BuildPerfTrace places a point on every sample with a perforation status,
// colored by status.
func BuildPerfTrace(t Table, wellID string, pal palette.Palette) model.Trace {
	var rows Table
	for _, row := range t.Well(wellID) {
		if row.PerfStatus != nil {
			rows = append(rows, row)
		}
	}

	colors := make([]string, len(rows))
	text := make([]string, len(rows))
	for i, row := range rows {
		colors[i], _ = pal.StatusColor(*row.PerfStatus)
		marker := missingMarker
		if row.Marker != nil {
			marker = *row.Marker
		}
		text[i] = "Top Perf: " + model.FormatPyFloat(row.TopPerf) +
			"<br>Bottom Perf: " + model.FormatPyFloat(row.BotPerf) +
			"<br>Perf Status: " + *row.PerfStatus +
			"<br>Marker: " + marker
	}
	x, y, z := coordinates(rows)

	return model.Trace{
		Type: model.TraceScatter3D,
		Name: wellID + " Perfs",
		Mode: model.ModeMarkers,
		X:    x,
		Y:    y,
		Z:    z,
		Marker: &model.Marker{
			Color:   model.Color{Each: colors},
			Size:    pointSize,
			Symbol:  symbolDiamond,
			Opacity: perfOpacity,
		},
		Text:        text,
		LegendGroup: perfLegendGroup,
		ShowLegend:  true,
	}
}

// BuildFracTrace places a point on every sample flagged F or X. A sample
// without a marker name gets empty hover text.
func BuildFracTrace(t Table, wellID string) model.Trace {
	var rows Table
	for _, row := range t.Well(wellID) {
		if row.FracFlag != nil && fracFlags[*row.FracFlag] {
			rows = append(rows, row)
		}
	}

	text := make([]string, len(rows))
	for i, row := range rows {
		if row.Marker != nil {
			text[i] = "Fracs: True<br>Marker: " + *row.Marker
		}
	}
	x, y, z := coordinates(rows)

	return model.Trace{
		Type: model.TraceScatter3D,
		Name: wellID + " Fracs",
		Mode: model.ModeMarkers,
		X:    x,
		Y:    y,
		Z:    z,
		Marker: &model.Marker{
			Color:   model.Color{Single: fracColor},
			Size:    pointSize,
			Symbol:  symbolDiamond,
			Opacity: fracOpacity,
		},
		Text:        text,
		LegendGroup: fracLegendGroup,
		ShowLegend:  true,
	}
}

func coordinates(rows Table) (x, y, z model.Series) {
	x = make(model.Series, len(rows))
	y = make(model.Series, len(rows))
	z = make(model.Series, len(rows))
	for i, row := range rows {
		x[i] = row.MapEasting
		y[i] = row.MapNorthing
		z[i] = row.Z()
	}
	return x, y, z
}
