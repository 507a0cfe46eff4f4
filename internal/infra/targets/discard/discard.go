// Package discard is a target that drops every batch. It measures
// generation alone.
package discard

import (
	"sync/atomic"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/exec"
)

type DiscardTarget struct {
	rows atomic.Int64
}

func NewDiscardTarget() *DiscardTarget {
	return &DiscardTarget{}
}

func (t *DiscardTarget) Connect() error { return nil }

func (t *DiscardTarget) Close() error { return nil }

func (t *DiscardTarget) Open(string, dataset.Schema, string) (exec.BatchWriter, error) {
	return writer{t: t}, nil
}

// Rows returns the number of rows received so far.
func (t *DiscardTarget) Rows() int64 { return t.rows.Load() }

type writer struct {
	t *DiscardTarget
}

func (w writer) WriteBatch(b dataset.Batch) error {
	w.t.rows.Add(int64(b.Len()))
	return nil
}

func (w writer) Close() error { return nil }
