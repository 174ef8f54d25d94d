package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// jsonlCodec stores one JSON object per line, keyed by the history column
// names. Blank lines are skipped; unknown fields are ignored.
type jsonlCodec struct{}

// jsonlRow is the on-disk form of a record.
type jsonlRow struct {
	Operation types.Operation `json:"operation"`
	Operand1  jsonFloat       `json:"operand1"`
	Operand2  jsonFloat       `json:"operand2"`
	Result    jsonFloat       `json:"result"`
}

// jsonFloat writes finite values as JSON numbers and infinities or NaN as
// the strings "+Inf", "-Inf" and "NaN", which JSON numbers cannot express.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.AppendQuote(nil, formatFloat(v)), nil
	}
	return []byte(formatFloat(v)), nil
}

func (f *jsonFloat) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || !(math.IsInf(v, 0) || math.IsNaN(v)) {
			return fmt.Errorf("number given as string %s", b)
		}
		*f = jsonFloat(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", b)
	}
	*f = jsonFloat(v)
	return nil
}

func (jsonlCodec) Encode(path string, records []types.HistoryRecord) error {
	lines := make([][]byte, 0, len(records))
	for i, rec := range records {
		b, err := json.Marshal(jsonlRow{
			Operation: rec.Operation,
			Operand1:  jsonFloat(rec.Operand1),
			Operand2:  jsonFloat(rec.Operand2),
			Result:    jsonFloat(rec.Result),
		})
		if err != nil {
			return ioError(fmt.Sprintf("encode record %d for", i), path, err)
		}
		lines = append(lines, b)
	}

	return writeAtomic(path, func(f *os.File) error {
		w := bufio.NewWriter(f)
		for _, line := range lines {
			if _, err := w.Write(line); err != nil {
				return ioError("write record to", path, err)
			}
			if err := w.WriteByte('\n'); err != nil {
				return ioError("write newline to", path, err)
			}
		}
		if err := w.Flush(); err != nil {
			return ioError("flush", path, err)
		}
		return nil
	})
}

func (jsonlCodec) Decode(path string) ([]types.HistoryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	var records []types.HistoryRecord
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, formatError(path, "line %d: %v", line, err)
		}
		for _, col := range types.HistoryColumns {
			if _, ok := obj[col]; !ok {
				return nil, formatError(path, "line %d: missing column %q", line, col)
			}
		}
		var row jsonlRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, formatError(path, "line %d: %v", line, err)
		}
		if !row.Operation.Valid() {
			return nil, formatError(path, "line %d: %v: %q", line, types.ErrUnknownOperation, row.Operation)
		}
		records = append(records, types.HistoryRecord{
			Operation: row.Operation,
			Operand1:  float64(row.Operand1),
			Operand2:  float64(row.Operand2),
			Result:    float64(row.Result),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError("scan", path, err)
	}
	return records, nil
}
