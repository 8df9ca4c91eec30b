package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/util"
)

// ReadJSONL reads one JSON object per line keyed by view column names.
// Values may be strings, numbers or null. Lines that are not valid JSON
// objects are skipped.
func ReadJSONL(ctx context.Context, r io.Reader) ([]model.SampleRow, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var rows []model.SampleRow
	lineCount := 0
	checked := false
	for scanner.Scan() {
		lineCount++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var obj map[string]any
		if err := sonic.Unmarshal(line, &obj); err != nil {
			util.LogDebugf("Skip invalid JSON line %d - %v", lineCount, err)
			continue
		}
		fields := make(map[string]any, len(obj))
		for k, v := range obj {
			fields[strings.ToLower(k)] = v
		}
		if !checked {
			if err := checkColumns(func(col string) bool { _, ok := fields[col]; return ok }); err != nil {
				return nil, err
			}
			checked = true
		}
		if lineCount%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rows = append(rows, parseRow(objectGetter(fields)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func objectGetter(fields map[string]any) getter {
	return func(col string) (string, bool) {
		v, ok := fields[strings.ToLower(col)]
		if !ok || v == nil {
			return "", false
		}
		switch val := v.(type) {
		case string:
			return val, true
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64), true
		case bool:
			return strconv.FormatBool(val), true
		default:
			return fmt.Sprint(val), true
		}
	}
}
