package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/infra/targets/sqltable"
)

// DefaultCommitRows is how many rows a writer inserts per transaction.
const DefaultCommitRows = 50000

type SQLiteTarget struct {
	path       string
	commitRows int
	db         *sql.DB
}

func NewSQLiteTarget(path string) *SQLiteTarget {
	return &SQLiteTarget{path: path, commitRows: DefaultCommitRows}
}

// WithCommitRows sets the rows per transaction. Values below 1 keep the
// default.
func (t *SQLiteTarget) WithCommitRows(n int) *SQLiteTarget {
	if n > 0 {
		t.commitRows = n
	}
	return t
}

func (t *SQLiteTarget) Connect() error {
	db, err := sql.Open("sqlite3", t.path)
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

func (t *SQLiteTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

// DB exposes the connection for version checks.
func (t *SQLiteTarget) DB() *sql.DB { return t.db }

func (t *SQLiteTarget) Open(name string, schema dataset.Schema, mode string) (exec.BatchWriter, error) {
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

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(schema)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		sqltable.Quote(table), sqltable.Columns(schema), placeholders)
	return &writer{db: t.db, insertSQL: insertSQL, commitRows: t.commitRows}, nil
}

func (t *SQLiteTarget) CreateTableIfNotExists(table string, schema dataset.Schema) error {
	createSQL := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		sqltable.Quote(table), sqltable.ColumnDefs(schema, mapColumnType))
	_, err := t.db.Exec(createSQL)
	return err
}

func mapColumnType(typ dataset.FieldType) string {
	switch typ {
	case dataset.TypeBool, dataset.TypeInt64, dataset.TypeUint64:
		return "INTEGER"
	case dataset.TypeFloat64:
		return "REAL"
	case dataset.TypeString:
		return "TEXT"
	case dataset.TypeBytes:
		return "BLOB"
	default:
		return "TEXT"
	}
}

func (t *SQLiteTarget) TruncateTable(table string) error {
	_, err := t.db.Exec(fmt.Sprintf("DELETE FROM %s", sqltable.Quote(table)))
	return err
}

// writer keeps one transaction and prepared insert open across batches and
// commits every commitRows rows and on Close. After a failed insert, Close
// rolls the open transaction back.
type writer struct {
	db         *sql.DB
	insertSQL  string
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
	stmt, err := tx.Prepare(w.insertSQL)
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
		for j, v := range w.vals {
			if v, ok := v.(bool); ok {
				if v {
					w.vals[j] = 1
				} else {
					w.vals[j] = 0
				}
			}
		}
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
