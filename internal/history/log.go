// Package history keeps the ordered log of performed arithmetic operations
// and converts it to and from flat tabular files.
package history

import (
	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Log is an append-only, ordered sequence of HistoryRecords. Order is the
// order in which operations were performed. Log is not safe for concurrent
// use.
type Log struct {
	records []types.HistoryRecord
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Record appends one operation to the log.
func (l *Log) Record(op types.Operation, a, b, result float64) {
	l.records = append(l.records, types.HistoryRecord{
		Operation: op,
		Operand1:  a,
		Operand2:  b,
		Result:    result,
	})
}

// Records returns a copy of the log in chronological order.
func (l *Log) Records() []types.HistoryRecord {
	out := make([]types.HistoryRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// Clear resets the log to empty.
func (l *Log) Clear() {
	l.records = nil
}

// Export writes every record to path, replacing any existing file. The
// file format is chosen from the path extension (see CodecFor).
func (l *Log) Export(path string) error {
	return CodecFor(path).Encode(path, l.records)
}

// Import replaces the log with the records stored at path, in file order.
// On error the log is left unchanged.
func (l *Log) Import(path string) error {
	records, err := CodecFor(path).Decode(path)
	if err != nil {
		return err
	}
	l.records = records
	return nil
}
