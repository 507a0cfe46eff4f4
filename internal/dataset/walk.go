package dataset

import (
	"bytes"
	"strings"
)

// Walk generates every batch of r in index order and calls fn with it. The
// same Batch is reused across calls, so fn must not retain it.
func Walk(r Relation, fn func(idx int, b Batch) error) error {
	b := r.NewBatch()
	for idx := 0; idx < r.NumBatches(); idx++ {
		r.GenBatch(idx, b)
		if err := fn(idx, b); err != nil {
			return err
		}
	}
	return nil
}

// GoodBytes generates all of r and returns the summed payload size.
func GoodBytes(r Relation) int {
	total := 0
	_ = Walk(r, func(_ int, b Batch) error {
		total += b.GoodBytes()
		return nil
	})
	return total
}

// Head returns copies of the first n rows of r as projected values.
func Head(r Relation, n int) [][]any {
	var rows [][]any
	b := r.NewBatch()
	for idx := 0; idx < r.NumBatches() && len(rows) < n; idx++ {
		r.GenBatch(idx, b)
		for i := 0; i < b.Len() && len(rows) < n; i++ {
			row := b.AppendRow(i, nil)
			for j, v := range row {
				switch v := v.(type) {
				case string:
					row[j] = strings.Clone(v)
				case []byte:
					row[j] = bytes.Clone(v)
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}
