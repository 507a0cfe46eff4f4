// Package jsonl writes one file per relation with one JSON array per row.
// Bytes are arrays of numbers and integral floats keep a ".0" suffix.
package jsonl

import (
	"bufio"
	"encoding/json"
	"os"
	"strconv"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/infra/targets/files"
)

const Ext = "jsonl"

type JSONLTarget struct {
	dir string
}

func NewJSONLTarget(dir string) *JSONLTarget {
	return &JSONLTarget{dir: dir}
}

func (t *JSONLTarget) Connect() error {
	return os.MkdirAll(t.dir, 0o755)
}

func (t *JSONLTarget) Close() error { return nil }

func (t *JSONLTarget) Open(name string, _ dataset.Schema, mode string) (exec.BatchWriter, error) {
	f, _, err := files.Open(t.dir, name, Ext, mode)
	if err != nil {
		return nil, err
	}
	return &writer{f: f, buf: bufio.NewWriterSize(f, 1<<16)}, nil
}

type writer struct {
	f    *os.File
	buf  *bufio.Writer
	vals []any
	line []byte
}

func (w *writer) WriteBatch(b dataset.Batch) error {
	for i := 0; i < b.Len(); i++ {
		w.vals = b.AppendRow(i, w.vals[:0])
		line, err := AppendRow(w.line[:0], w.vals)
		if err != nil {
			return err
		}
		w.line = append(line, '\n')
		if _, err := w.buf.Write(w.line); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) Close() error {
	err := w.buf.Flush()
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// AppendRow appends vals as a JSON array.
func AppendRow(dst []byte, vals []any) ([]byte, error) {
	dst = append(dst, '[')
	for i, v := range vals {
		if i > 0 {
			dst = append(dst, ',')
		}
		switch v := v.(type) {
		case nil:
			dst = append(dst, "null"...)
		case []byte:
			dst = append(dst, '[')
			for j, c := range v {
				if j > 0 {
					dst = append(dst, ',')
				}
				dst = strconv.AppendUint(dst, uint64(c), 10)
			}
			dst = append(dst, ']')
		case bool, uint64, uint32, int64, int, float64:
			dst = dataset.AppendText(dst, v)
		default:
			enc, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			dst = append(dst, enc...)
		}
	}
	return append(dst, ']'), nil
}
