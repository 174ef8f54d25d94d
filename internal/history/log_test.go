package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

func seededLog() *Log {
	l := NewLog()
	l.Record(types.OpAdd, 1, 2, 3)
	l.Record(types.OpSubtract, 5, 2, 3)
	l.Record(types.OpMultiply, 1e10, 0.5, 5e9)
	l.Record(types.OpDivide, 1e-10, 2, 5e-11)
	return l
}

func TestLogRecordPreservesOrder(t *testing.T) {
	l := seededLog()

	got := l.Records()
	require.Len(t, got, 4)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, types.HistoryRecord{Operation: types.OpAdd, Operand1: 1, Operand2: 2, Result: 3}, got[0])
	assert.Equal(t, types.OpDivide, got[3].Operation)
}

func TestLogRecordsReturnsCopy(t *testing.T) {
	l := seededLog()

	got := l.Records()
	got[0].Result = 99

	assert.Equal(t, 3.0, l.Records()[0].Result)
}

func TestLogClear(t *testing.T) {
	tests := []struct {
		name string
		log  *Log
	}{
		{"empty log", NewLog()},
		{"populated log", seededLog()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.log.Clear()
			assert.Equal(t, 0, tt.log.Len())
			assert.Empty(t, tt.log.Records())
		})
	}
}

func TestLogExportImportRoundTrip(t *testing.T) {
	for _, name := range []string{"history.csv", "history.jsonl", "history.db", "history.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			src := seededLog()
			require.NoError(t, src.Export(path))

			dst := NewLog()
			dst.Record(types.OpAdd, 100, 100, 200)
			require.NoError(t, dst.Import(path))

			assert.Equal(t, src.Records(), dst.Records())
		})
	}
}

func TestLogExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export\n"), 0o644))

	l := NewLog()
	l.Record(types.OpAdd, 1, 2, 3)
	require.NoError(t, l.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "operation,operand1,operand2,result\nadd,1,2,3\n", string(data))
}

func TestLogExportUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "history.csv")
	err := seededLog().Export(path)
	assert.ErrorIs(t, err, types.ErrHistoryIO)
}

func TestLogImportFailureLeavesLogUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("operation,operand1\nadd,1\n"), 0o644))

	l := seededLog()
	before := l.Records()

	err := l.Import(path)
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
	assert.Equal(t, before, l.Records())
}

func TestLogImportMissingFile(t *testing.T) {
	l := NewLog()
	err := l.Import(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, types.ErrHistoryIO)
}

func TestLogSaveNewInstanceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")

	first := NewLog()
	first.Record(types.OpAdd, 1, 2, 3)
	require.NoError(t, first.Export(path))

	second := NewLog()
	require.NoError(t, second.Import(path))
	assert.Equal(t, []types.HistoryRecord{{Operation: types.OpAdd, Operand1: 1, Operand2: 2, Result: 3}}, second.Records())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"history.csv", FormatCSV},
		{"history", FormatCSV},
		{"HISTORY.JSONL", FormatJSONL},
		{"dir/history.db", FormatSQLite},
		{"history.sqlite", FormatSQLite},
		{"history.sqlite3", FormatSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.path))
		})
	}
}
