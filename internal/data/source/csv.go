package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/marykwonn/Project-Texas/internal/core/model"
)

// ReadCSV reads a header-mapped CSV export of the well view.
func ReadCSV(ctx context.Context, r io.Reader) ([]model.SampleRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	idx := headerIndex(headers)
	if err := checkColumns(func(col string) bool { _, ok := idx[col]; return ok }); err != nil {
		return nil, err
	}

	var rows []model.SampleRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("csv read error at line %d: %w", line, err)
		}
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rows = append(rows, parseRow(recordGetter(idx, record)))
	}
	return rows, nil
}
