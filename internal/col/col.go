// Package col holds columnar batch storage.
//
// Every field type maps to one column shape: primitives to Vec, optional
// values to Options, text and byte strings to Strings and Bytes, and
// fixed-arity rows to the TupleN columns. Values returned by Get are
// borrowed: they stay valid only until the column is next mutated.
//
//go:generate go run ./gen -out tuple.go
package col

import (
	"fmt"
	"unsafe"
)

// Col stores values of type R for one batch.
type Col[R any] interface {
	// Len returns the number of elements.
	Len() int
	// Get returns element i. It panics if i >= Len().
	Get(i int) R
	// Push appends one element.
	Push(r R)
	// Clear removes all elements and keeps the allocated capacity.
	Clear()
	// GoodBytes returns the payload size in bytes.
	GoodBytes() int
}

// Primitive is the set of fixed-width scalar field types.
type Primitive interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Unit is the empty field type.
type Unit struct{}

// Units is the column for Unit. It only counts.
type Units struct {
	n int
}

var _ Col[Unit] = (*Units)(nil)

func (u *Units) Len() int { return u.n }

func (u *Units) Get(i int) Unit {
	if i < 0 || i >= u.n {
		panic(outOfRange(i, u.n))
	}
	return Unit{}
}

func (u *Units) Push(Unit) { u.n++ }

func (u *Units) Clear() { u.n = 0 }

func (u *Units) GoodBytes() int { return 0 }

// Vec is the column for a primitive type: one contiguous slice.
type Vec[T Primitive] struct {
	vals []T
}

// NewVec returns an empty column with room for capacity elements.
func NewVec[T Primitive](capacity int) *Vec[T] {
	return &Vec[T]{vals: make([]T, 0, capacity)}
}

func (v *Vec[T]) Len() int { return len(v.vals) }

func (v *Vec[T]) Get(i int) T { return v.vals[i] }

func (v *Vec[T]) Push(x T) { v.vals = append(v.vals, x) }

func (v *Vec[T]) Clear() { v.vals = v.vals[:0] }

func (v *Vec[T]) GoodBytes() int {
	var zero T
	return len(v.vals) * int(unsafe.Sizeof(zero))
}

// Values returns the backing slice. It is borrowed like Get results.
func (v *Vec[T]) Values() []T { return v.vals }

func outOfRange(i, n int) string {
	return fmt.Sprintf("col: index %d out of range with length %d", i, n)
}
