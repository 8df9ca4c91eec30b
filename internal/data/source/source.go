package source

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/util"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension has no reader.
	ErrUnsupportedFormat = errors.New("unsupported sample file format")
	// ErrMissingColumn is returned when a required view column is absent.
	ErrMissingColumn = errors.New("missing required column")
)

// requiredColumns must be present in every export.
var requiredColumns = []string{
	model.ColWellCommonName,
	model.ColAPISuffix,
	model.ColMD,
	model.ColTVDSS,
	model.ColMapNorthing,
	model.ColMapEasting,
}

// Source yields the completed result set of the well query.
type Source interface {
	Load(ctx context.Context) ([]model.SampleRow, error)
}

// FileSource loads an exported result set from disk. The reader is chosen
// by file extension: .csv, .jsonl or .xlsx.
type FileSource struct {
	Path string
	// Sheet selects the worksheet of an .xlsx export. Empty means the first.
	Sheet string
}

// Open returns a FileSource for path after checking its format is supported.
func Open(path string) (*FileSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".jsonl", ".xlsx":
		return &FileSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func (s *FileSource) Load(ctx context.Context) ([]model.SampleRow, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []model.SampleRow
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".csv":
		rows, err = ReadCSV(ctx, file)
	case ".jsonl":
		rows, err = ReadJSONL(ctx, file)
	case ".xlsx":
		rows, err = ReadXLSX(ctx, file, s.Sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	util.LogDebugf("Loaded %d sample rows from %s", len(rows), s.Path)
	return rows, nil
}

// Query applies the selection the upstream SQL performs: keep the chosen
// well common names and order by measured depth.
type Query struct {
	// Wells restricts rows to these well common names. Empty keeps all.
	Wells []string
}

// Apply filters and stable-sorts rows by ascending MD. Missing depths sort
// first.
func (q Query) Apply(rows []model.SampleRow) []model.SampleRow {
	keep := make(map[string]struct{}, len(q.Wells))
	for _, w := range q.Wells {
		keep[w] = struct{}{}
	}

	out := make([]model.SampleRow, 0, len(rows))
	for _, row := range rows {
		if len(keep) > 0 {
			if _, ok := keep[row.WellCommonName]; !ok {
				continue
			}
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].MD, out[j].MD
		if math.IsNaN(a) {
			return !math.IsNaN(b)
		}
		return a < b
	})
	return out
}

// getter looks up a cell by canonical column name.
type getter func(col string) (string, bool)

// headerIndex maps lower-cased column names to positions.
func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func checkColumns(has func(col string) bool) error {
	for _, col := range requiredColumns {
		if !has(strings.ToLower(col)) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return nil
}

func recordGetter(idx map[string]int, record []string) getter {
	return func(col string) (string, bool) {
		i, ok := idx[strings.ToLower(col)]
		if !ok || i >= len(record) {
			return "", false
		}
		return record[i], true
	}
}

func isNull(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null", "nan", "none":
		return true
	}
	return false
}

func nullableString(get getter, col string) *string {
	v, ok := get(col)
	if !ok || isNull(v) {
		return nil
	}
	return &v
}

func plainString(get getter, col string) string {
	v, ok := get(col)
	if !ok || isNull(v) {
		return ""
	}
	return v
}

func number(get getter, col string) float64 {
	v, ok := get(col)
	if !ok || isNull(v) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		util.LogDebugf("Non-numeric %s value %q treated as missing", col, v)
		return math.NaN()
	}
	return f
}

func parseRow(get getter) model.SampleRow {
	return model.SampleRow{
		ProjectName:    plainString(get, model.ColProjectName),
		WellCommonName: plainString(get, model.ColWellCommonName),
		APISuffix:      nullableString(get, model.ColAPISuffix),
		MD:             number(get, model.ColMD),
		TVDSS:          number(get, model.ColTVDSS),
		MapNorthing:    number(get, model.ColMapNorthing),
		MapEasting:     number(get, model.ColMapEasting),
		Marker:         nullableString(get, model.ColMarker),
		TopPerf:        number(get, model.ColTopPerf),
		BotPerf:        number(get, model.ColBotPerf),
		FracFlag:       nullableString(get, model.ColFracFlag),
		PerfStatus:     nullableString(get, model.ColPerfStatus),
	}
}
