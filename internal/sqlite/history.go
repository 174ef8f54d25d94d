package sqlite

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// HistoryCodec reads and writes history records as rows of the history
// table. It satisfies history.Codec.
type HistoryCodec struct{}

// Encode writes records to a fresh database at path. The database is built
// under a temporary name in the same directory and renamed into place, so
// an existing file is replaced only on success.
func (HistoryCodec) Encode(path string, records []types.HistoryRecord) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".history-*.db")
	if err != nil {
		return ioError("create temp file for", path, err)
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ioError("close", tmpName, err)
	}

	if err := writeHistory(tmpName, records); err != nil {
		os.Remove(tmpName)
		return ioError("write", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return ioError("rename temp file to", path, err)
	}
	return nil
}

// writeHistory creates the schema in dbPath and inserts every record in a
// single transaction.
func writeHistory(dbPath string, records []types.HistoryRecord) error {
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return err
	}
	err = populate(db, records)
	if cerr := db.Close(); err == nil {
		err = cerr
	}
	return err
}

func populate(db *sql.DB, records []types.HistoryRecord) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning write transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertHistory)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.Exec(generateUUID(), i, string(rec.Operation),
			sqlFloat(rec.Operand1), sqlFloat(rec.Operand2), sqlFloat(rec.Result))
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing write transaction: %w", err)
	}
	return nil
}

// Decode reads every row of the history table ordered by seq, or by rowid
// when the table has no seq column.
func (HistoryCodec) Decode(path string) ([]types.HistoryRecord, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ioError("open", path, err)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer db.Close()

	columns, err := tableColumns(db, historyTable)
	if err != nil {
		return nil, formatError(path, "%v", err)
	}
	if len(columns) == 0 {
		return nil, formatError(path, "missing table %q", historyTable)
	}
	for _, col := range types.HistoryColumns {
		if !columns[col] {
			return nil, formatError(path, "missing column %q", col)
		}
	}

	order := "rowid"
	if columns["seq"] {
		order = "seq"
	}
	rows, err := db.Query(fmt.Sprintf(
		"SELECT operation, operand1, operand2, result FROM %s ORDER BY %s", historyTable, order))
	if err != nil {
		return nil, ioError("query", path, err)
	}
	defer rows.Close()

	var records []types.HistoryRecord
	for row := 1; rows.Next(); row++ {
		var (
			opName                     string
			operand1, operand2, result sql.NullFloat64
		)
		if err := rows.Scan(&opName, &operand1, &operand2, &result); err != nil {
			return nil, formatError(path, "row %d: %v", row, err)
		}
		op, err := types.ParseOperation(opName)
		if err != nil {
			return nil, formatError(path, "row %d: %v", row, err)
		}
		records = append(records, types.HistoryRecord{
			Operation: op,
			Operand1:  goFloat(operand1),
			Operand2:  goFloat(operand2),
			Result:    goFloat(result),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, ioError("read", path, err)
	}
	return records, nil
}

// tableColumns returns the set of column names in table. A missing table
// yields an empty set; a file that is not a database yields an error.
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}

// sqlFloat maps NaN to NULL.
func sqlFloat(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// goFloat maps NULL back to NaN.
func goFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// generateUUID generates a new UUID v7 for history row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", types.ErrHistoryIO, op, path, err)
}

func formatError(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", types.ErrInvalidFormat, path, fmt.Sprintf(format, args...))
}
