package history

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// utf8BOM is written at the start of CSV files by some spreadsheet tools.
const utf8BOM = "\ufeff"

// csvCodec stores history as comma-separated text with the header
// operation,operand1,operand2,result.
type csvCodec struct{}

func (csvCodec) Encode(path string, records []types.HistoryRecord) error {
	return writeAtomic(path, func(f *os.File) error {
		bw := bufio.NewWriter(f)
		w := csv.NewWriter(bw)
		if err := w.Write(types.HistoryColumns); err != nil {
			return ioError("write header to", path, err)
		}
		for _, rec := range records {
			row := []string{
				string(rec.Operation),
				formatFloat(rec.Operand1),
				formatFloat(rec.Operand2),
				formatFloat(rec.Result),
			}
			if err := w.Write(row); err != nil {
				return ioError("write row to", path, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return ioError("flush", path, err)
		}
		if err := bw.Flush(); err != nil {
			return ioError("flush", path, err)
		}
		return nil
	})
}

func (csvCodec) Decode(path string) ([]types.HistoryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, formatError(path, "missing header row")
	}
	if err != nil {
		return nil, csvReadError(path, err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	// Columns may appear in any order; extra columns are ignored.
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range types.HistoryColumns {
		if _, ok := index[col]; !ok {
			return nil, formatError(path, "missing column %q", col)
		}
	}

	var records []types.HistoryRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvReadError(path, err)
		}
		rec, err := parseRow(func(col string) string { return row[index[col]] })
		if err != nil {
			return nil, formatError(path, "line %d: %v", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// csvReadError separates malformed CSV from read failures.
func csvReadError(path string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return formatError(path, "%v", perr)
	}
	return ioError("read", path, err)
}

// parseRow builds a record from string column values.
func parseRow(value func(col string) string) (types.HistoryRecord, error) {
	op, err := types.ParseOperation(value(types.ColumnOperation))
	if err != nil {
		return types.HistoryRecord{}, err
	}
	rec := types.HistoryRecord{Operation: op}
	fields := []struct {
		col string
		dst *float64
	}{
		{types.ColumnOperand1, &rec.Operand1},
		{types.ColumnOperand2, &rec.Operand2},
		{types.ColumnResult, &rec.Result},
	}
	for _, fd := range fields {
		v, err := strconv.ParseFloat(value(fd.col), 64)
		if err != nil {
			return types.HistoryRecord{}, err
		}
		*fd.dst = v
	}
	return rec, nil
}

// formatFloat uses the shortest representation that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
