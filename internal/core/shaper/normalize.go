package shaper

import (
	"strings"

	"github.com/marykwonn/Project-Texas/internal/core/model"
)

// markerCorrections rewrites known data-entry mistakes in marker codes.
var markerCorrections = map[string]string{
	"F0": "FO",
}

// Table is the cleaned, well-identified sample table. Rows keep the order
// they were loaded in, which is ascending measured depth.
type Table []model.CleanedRow

// Normalize trims and corrects marker names, drops rows without an API
// suffix and derives the well identity of every remaining row.
func Normalize(rows []model.SampleRow) Table {
	table := make(Table, 0, len(rows))
	for _, row := range rows {
		if row.APISuffix == nil {
			continue
		}
		if row.Marker != nil {
			code := strings.TrimSpace(*row.Marker)
			if fixed, ok := markerCorrections[code]; ok {
				code = fixed
			}
			row.Marker = &code
		}
		table = append(table, model.CleanedRow{
			SampleRow: row,
			WellID:    model.WellID(row.WellCommonName, *row.APISuffix),
		})
	}
	return table
}

// WellIDs returns the distinct well identities in order of first appearance.
func (t Table) WellIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, row := range t {
		if _, ok := seen[row.WellID]; ok {
			continue
		}
		seen[row.WellID] = struct{}{}
		ids = append(ids, row.WellID)
	}
	return ids
}

// Well returns the rows of one well identity.
func (t Table) Well(wellID string) Table {
	var out Table
	for _, row := range t {
		if row.WellID == wellID {
			out = append(out, row)
		}
	}
	return out
}

// DistinctMarkers returns the non-null marker codes in order of first
// appearance. These are the values offered by the marker filter control.
func DistinctMarkers(t Table) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, row := range t {
		if row.Marker == nil {
			continue
		}
		if _, ok := seen[*row.Marker]; ok {
			continue
		}
		seen[*row.Marker] = struct{}{}
		codes = append(codes, *row.Marker)
	}
	return codes
}
