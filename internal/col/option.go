package col

// Option is an optional field value.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Project returns nil for an absent value and the projected value otherwise.
func (o Option[T]) Project() any {
	if !o.Valid {
		return nil
	}
	return Project(o.Value)
}

// Options is the column for Option[T]. Absent entries keep a zero placeholder
// in the inner column so both stay the same length.
type Options[T any] struct {
	valid []bool
	inner Col[T]
}

// NewOptions wraps inner, which must be empty.
func NewOptions[T any](inner Col[T]) *Options[T] {
	return &Options[T]{inner: inner}
}

func (o *Options[T]) Len() int { return len(o.valid) }

func (o *Options[T]) Get(i int) Option[T] {
	if !o.valid[i] {
		return Option[T]{}
	}
	return Option[T]{Value: o.inner.Get(i), Valid: true}
}

func (o *Options[T]) Push(v Option[T]) {
	o.valid = append(o.valid, v.Valid)
	if v.Valid {
		o.inner.Push(v.Value)
		return
	}
	var zero T
	o.inner.Push(zero)
}

func (o *Options[T]) Clear() {
	o.valid = o.valid[:0]
	o.inner.Clear()
}

func (o *Options[T]) GoodBytes() int {
	return len(o.valid) + o.inner.GoodBytes()
}
