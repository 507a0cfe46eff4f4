// Package dataset defines how relations are split into batches and grouped
// into sets.
//
// A batch's content is a pure function of the relation's configuration and
// the batch index, so batches can be generated in any order, on any number
// of goroutines, as long as each goroutine has its own relation instance.
package dataset

import "github.com/mmrzaf/dataz/internal/col"

// DynTable is the metadata view of a relation.
type DynTable interface {
	Name() string
	NumBatches() int
}

// Table is a relation with row type R.
type Table[R any] interface {
	DynTable
	// Schema describes the fields of R in order.
	Schema() Schema
	// NewBatch returns empty column storage for R.
	NewBatch() col.Col[R]
	// GenBatch clears batch and fills it with batch idx. An idx at or past
	// NumBatches leaves batch empty.
	GenBatch(idx int, batch col.Col[R])
}

// Forker is implemented by tables that hold scratch buffers. Fork returns an
// instance with the same configuration and its own buffers.
type Forker[R any] interface {
	Fork() Table[R]
}

// Set is a named group of relations sharing one configuration.
type Set interface {
	Name() string
	// Tables calls fn once per relation with a fresh instance.
	Tables(fn func(Relation))
}

// DynTables returns the metadata view of every relation in s.
func DynTables(s Set) []DynTable {
	var out []DynTable
	s.Tables(func(r Relation) {
		out = append(out, r)
	})
	return out
}

// Relations collects the relations of s.
func Relations(s Set) []Relation {
	var out []Relation
	s.Tables(func(r Relation) {
		out = append(out, r)
	})
	return out
}

// CeilDiv returns the number of batches of size batchSize covering total
// rows. A zero batch size yields zero batches.
func CeilDiv(total, batchSize int) int {
	if batchSize <= 0 || total <= 0 {
		return 0
	}
	return (total + batchSize - 1) / batchSize
}

// BatchRange returns the half-open row range owned by batch idx. The range
// is empty for indexes past the end.
func BatchRange(idx, batchSize, total int) (start, end int) {
	start = idx * batchSize
	end = min(start+batchSize, total)
	if start >= end {
		return start, start
	}
	return start, end
}
