package dataset

import "github.com/mmrzaf/dataz/internal/col"

// Batch is type-erased column storage produced by a Relation.
type Batch interface {
	Len() int
	GoodBytes() int
	Clear()
	// AppendRow appends the projected fields of row i to dst.
	AppendRow(i int, dst []any) []any
}

// Relation is a type-erased Table. Generation still runs through the
// table's concrete GenBatch; only the batch handle is erased.
type Relation interface {
	DynTable
	Schema() Schema
	NewBatch() Batch
	// GenBatch fills b, which must come from NewBatch of this relation or
	// one of its forks.
	GenBatch(idx int, b Batch)
	// Fork returns an instance safe to use from another goroutine.
	Fork() Relation
}

// Erase wraps t as a Relation.
func Erase[R col.Row](t Table[R]) Relation {
	return relation[R]{t: t}
}

type relation[R col.Row] struct {
	t Table[R]
}

func (r relation[R]) Name() string { return r.t.Name() }

func (r relation[R]) NumBatches() int { return r.t.NumBatches() }

func (r relation[R]) Schema() Schema { return r.t.Schema() }

func (r relation[R]) NewBatch() Batch { return &batch[R]{c: r.t.NewBatch()} }

func (r relation[R]) GenBatch(idx int, b Batch) {
	r.t.GenBatch(idx, b.(*batch[R]).c)
}

func (r relation[R]) Fork() Relation {
	if f, ok := r.t.(Forker[R]); ok {
		return relation[R]{t: f.Fork()}
	}
	return r
}

// Unwrap returns the typed table behind a Relation built by Erase.
func Unwrap[R col.Row](r Relation) (Table[R], bool) {
	rel, ok := r.(relation[R])
	if !ok {
		return nil, false
	}
	return rel.t, true
}

type batch[R col.Row] struct {
	c col.Col[R]
}

func (b *batch[R]) Len() int { return b.c.Len() }

func (b *batch[R]) GoodBytes() int { return b.c.GoodBytes() }

func (b *batch[R]) Clear() { b.c.Clear() }

func (b *batch[R]) AppendRow(i int, dst []any) []any {
	return b.c.Get(i).AppendValues(dst)
}

// Columns returns the typed column storage behind a Batch built by a
// Relation with row type R.
func Columns[R col.Row](b Batch) (col.Col[R], bool) {
	tb, ok := b.(*batch[R])
	if !ok {
		return nil, false
	}
	return tb.c, true
}
