// Package csv writes one CSV file per relation.
package csv

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/infra/targets/files"
)

const Ext = "csv"

type CSVTarget struct {
	dir string
}

func NewCSVTarget(dir string) *CSVTarget {
	return &CSVTarget{dir: dir}
}

func (t *CSVTarget) Connect() error {
	return os.MkdirAll(t.dir, 0o755)
}

func (t *CSVTarget) Close() error { return nil }

// Open writes a header row when the file is empty.
func (t *CSVTarget) Open(name string, schema dataset.Schema, mode string) (exec.BatchWriter, error) {
	f, fresh, err := files.Open(t.dir, name, Ext, mode)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriterSize(f, 1<<16)
	w := &writer{f: f, buf: buf, csv: csv.NewWriter(buf), record: make([]string, len(schema))}
	if fresh {
		if err := w.csv.Write(schema.Names()); err != nil {
			f.Close()
			return nil, err
		}
	}
	return w, nil
}

type writer struct {
	f      *os.File
	buf    *bufio.Writer
	csv    *csv.Writer
	vals   []any
	record []string
}

func (w *writer) WriteBatch(b dataset.Batch) error {
	for i := 0; i < b.Len(); i++ {
		w.vals = b.AppendRow(i, w.vals[:0])
		for j, v := range w.vals {
			w.record[j] = dataset.Text(v)
		}
		if err := w.csv.Write(w.record); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) Close() error {
	w.csv.Flush()
	err := w.csv.Error()
	if ferr := w.buf.Flush(); err == nil {
		err = ferr
	}
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}
