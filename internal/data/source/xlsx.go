package source

import (
	"context"
	"fmt"
	"io"

	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads an Excel export of the well view. The first row of the
// sheet is the header. An empty sheet name selects the first worksheet.
func ReadXLSX(ctx context.Context, r io.Reader, sheet string) ([]model.SampleRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := headerIndex(records[0])
	if err := checkColumns(func(col string) bool { _, ok := idx[col]; return ok }); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := make([]model.SampleRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, parseRow(recordGetter(idx, record)))
	}
	return rows, nil
}
