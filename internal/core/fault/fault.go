package fault

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/marykwonn/Project-Texas/internal/core/model"
)

// ErrNoGeometry is returned when a fault file holds no numeric triples.
var ErrNoGeometry = errors.New("fault file contains no geometry")

// Surface styling.
const (
	surfaceColor   = "#a9a9a9"
	surfaceOpacity = 0.35
)

// Options controls how a fault file is read.
type Options struct {
	// HeaderLines is the number of leading lines to skip.
	HeaderLines int
}

// Geometry holds fault points with Z already converted to elevation.
type Geometry struct {
	X, Y, Z model.Series
}

func (g Geometry) Len() int {
	return len(g.X)
}

// Read parses X Y Z triples separated by whitespace or commas. Lines that do
// not start with three numbers are skipped.
func Read(r io.Reader, opts Options) (Geometry, error) {
	var g Geometry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if line <= opts.HeaderLines {
			continue
		}
		x, y, z, ok := parseTriple(scanner.Text())
		if !ok {
			continue
		}
		g.X = append(g.X, x)
		g.Y = append(g.Y, y)
		g.Z = append(g.Z, -z)
	}
	if err := scanner.Err(); err != nil {
		return Geometry{}, fmt.Errorf("failed to read fault geometry: %w", err)
	}
	if g.Len() == 0 {
		return Geometry{}, ErrNoGeometry
	}
	return g, nil
}

// ReadFile reads a fault file from disk.
func ReadFile(path string, opts Options) (Geometry, error) {
	file, err := os.Open(path)
	if err != nil {
		return Geometry{}, err
	}
	defer file.Close()

	g, err := Read(file, opts)
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func parseTriple(text string) (x, y, z float64, ok bool) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
	if len(fields) < 3 {
		return 0, 0, 0, false
	}
	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}

// BuildFaultTrace renders the fault as a translucent triangulated surface.
func BuildFaultTrace(g Geometry, name string) model.Trace {
	return model.Trace{
		Type:         model.TraceMesh3D,
		Name:         name,
		X:            append(model.Series(nil), g.X...),
		Y:            append(model.Series(nil), g.Y...),
		Z:            append(model.Series(nil), g.Z...),
		Color:        surfaceColor,
		Opacity:      surfaceOpacity,
		DelaunayAxis: "z",
		ShowLegend:   true,
	}
}
