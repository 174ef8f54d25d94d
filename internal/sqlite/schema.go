// Package sqlite stores calculator history as a single-table SQLite file.
package sqlite

// historyTable is the only table in a history database.
const historyTable = "history"

// Schema DDL for a history database. seq preserves the order in which
// records were performed; record_id is a UUID v7. SQLite stores NaN as
// NULL, so the numeric columns are nullable and NULL reads back as NaN.
const (
	createHistory = `CREATE TABLE history (
    record_id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    operation TEXT NOT NULL,
    operand1 REAL,
    operand2 REAL,
    result REAL
);`

	idxHistorySeq = `CREATE INDEX idx_history_seq ON history(seq);`
)

// schemaDDL lists the statements executed on a fresh history database.
var schemaDDL = []string{
	createHistory,
	idxHistorySeq,
}

const insertHistory = `INSERT INTO history (record_id, seq, operation, operand1, operand2, result) VALUES (?, ?, ?, ?, ?, ?)`
