package postgres

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/infra/targets/sqltable"
)

// DefaultCommitRows is how many rows a writer copies per transaction.
const DefaultCommitRows = 100000

type PostgresTarget struct {
	dsn        string
	schema     string
	commitRows int
	db         *sql.DB
}

func NewPostgresTarget(dsn, schema string) *PostgresTarget {
	if schema == "" {
		schema = "public"
	}
	return &PostgresTarget{
		dsn:        dsn,
		schema:     schema,
		commitRows: DefaultCommitRows,
	}
}

// WithCommitRows sets the rows per COPY transaction. Values below 1 keep
// the default.
func (t *PostgresTarget) WithCommitRows(n int) *PostgresTarget {
	if n > 0 {
		t.commitRows = n
	}
	return t
}

func (t *PostgresTarget) Connect() error {
	db, err := sql.Open("postgres", t.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}
	t.db = db
	return nil
}

func (t *PostgresTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *PostgresTarget) DB() *sql.DB { return t.db }

func (t *PostgresTarget) Open(name string, schema dataset.Schema, mode string) (exec.BatchWriter, error) {
	table := sqltable.Name(name)
	switch mode {
	case domain.TableModeCreate:
		if err := t.CreateTableIfNotExists(table, schema); err != nil {
			return nil, err
		}
	case domain.TableModeTruncate:
		if err := t.CreateTableIfNotExists(table, schema); err != nil {
			return nil, err
		}
		if err := t.TruncateTable(table); err != nil {
			return nil, err
		}
	case domain.TableModeAppend:
	default:
		return nil, fmt.Errorf("unknown table mode: %s", mode)
	}
	return &writer{
		db:         t.db,
		copySQL:    pq.CopyInSchema(t.schema, table, schema.Names()...),
		commitRows: t.commitRows,
	}, nil
}

func (t *PostgresTarget) CreateTableIfNotExists(table string, schema dataset.Schema) error {
	for _, stmt := range createStatements(t.schema, table, schema) {
		if _, err := t.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func createStatements(pgSchema, table string, schema dataset.Schema) []string {
	return []string{
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", sqltable.Quote(pgSchema)),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.%s (%s)",
			sqltable.Quote(pgSchema), sqltable.Quote(table), sqltable.ColumnDefs(schema, mapColumnType)),
	}
}

func mapColumnType(typ dataset.FieldType) string {
	switch typ {
	case dataset.TypeBool:
		return "BOOLEAN"
	case dataset.TypeInt64, dataset.TypeUint64:
		return "BIGINT"
	case dataset.TypeFloat64:
		return "DOUBLE PRECISION"
	case dataset.TypeString:
		return "TEXT"
	case dataset.TypeBytes:
		return "BYTEA"
	default:
		return "TEXT"
	}
}

func (t *PostgresTarget) TruncateTable(table string) error {
	_, err := t.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s.%s", sqltable.Quote(t.schema), sqltable.Quote(table)))
	return err
}

// writer streams rows into one COPY across batches. Every commitRows rows
// and on Close the COPY is flushed and its transaction committed. A failed
// row aborts the transaction, which Close then rolls back.
type writer struct {
	db         *sql.DB
	copySQL    string
	commitRows int

	tx      *sql.Tx
	stmt    *sql.Stmt
	pending int
	failed  bool
	vals    []any
}

func (w *writer) begin() error {
	tx, err := w.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(w.copySQL)
	if err != nil {
		tx.Rollback()
		return err
	}
	w.tx, w.stmt = tx, stmt
	return nil
}

func (w *writer) commit() error {
	tx, stmt := w.tx, w.stmt
	w.tx, w.stmt, w.pending = nil, nil, 0
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (w *writer) WriteBatch(b dataset.Batch) error {
	if b.Len() == 0 {
		return nil
	}
	if w.tx == nil {
		if err := w.begin(); err != nil {
			return err
		}
	}

	for i := 0; i < b.Len(); i++ {
		w.vals = b.AppendRow(i, w.vals[:0])
		if _, err := w.stmt.Exec(w.vals...); err != nil {
			w.failed = true
			return err
		}
	}

	w.pending += b.Len()
	if w.pending >= w.commitRows {
		return w.commit()
	}
	return nil
}

func (w *writer) Close() error {
	if w.tx == nil {
		return nil
	}
	if w.failed {
		w.stmt.Close()
		err := w.tx.Rollback()
		w.tx, w.stmt = nil, nil
		return err
	}
	return w.commit()
}
