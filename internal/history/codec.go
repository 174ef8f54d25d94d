package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/plugcalc/internal/sqlite"
	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Codec reads and writes a complete history file.
type Codec interface {
	// Encode writes records to path, replacing existing content.
	Encode(path string, records []types.HistoryRecord) error

	// Decode reads every record stored at path, in file order.
	Decode(path string) ([]types.HistoryRecord, error)
}

// Codec names reported by Name.
const (
	FormatCSV    = "csv"
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
)

var sqliteExts = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// Format returns the codec name used for path: jsonl for .jsonl files,
// sqlite for .db/.sqlite/.sqlite3, csv for everything else.
func Format(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".jsonl":
		return FormatJSONL
	case sqliteExts[ext]:
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// CodecFor returns the Codec matching the extension of path.
func CodecFor(path string) Codec {
	switch Format(path) {
	case FormatJSONL:
		return jsonlCodec{}
	case FormatSQLite:
		return sqlite.HistoryCodec{}
	default:
		return csvCodec{}
	}
}

// ioError tags err as a history I/O failure.
func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", types.ErrHistoryIO, op, path, err)
}

// formatError tags a malformed source.
func formatError(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", types.ErrInvalidFormat, path, fmt.Sprintf(format, args...))
}

// writeAtomic writes the output of fill to path using the temp-file, fsync,
// rename pattern so a failed export never leaves a truncated file behind.
func writeAtomic(path string, fill func(f *os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".history-*.tmp")
	if err != nil {
		return ioError("create temp file for", path, err)
	}
	tmpName := tmp.Name()

	if err := fill(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return ioError("sync", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ioError("close", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return ioError("rename temp file to", path, err)
	}
	return nil
}
