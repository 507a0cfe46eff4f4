package col

import (
	"bytes"
	"testing"
)

func TestVec(t *testing.T) {
	v := NewVec[uint64](4)
	for i := uint64(0); i < 5; i++ {
		v.Push(i * 10)
	}
	if v.Len() != 5 {
		t.Fatalf("expected 5 elements, got %d", v.Len())
	}
	if v.Get(3) != 30 {
		t.Fatalf("unexpected element: %d", v.Get(3))
	}
	if v.GoodBytes() != 40 {
		t.Fatalf("expected 40 good bytes, got %d", v.GoodBytes())
	}

	capBefore := cap(v.Values())
	v.Clear()
	if v.Len() != 0 || v.GoodBytes() != 0 {
		t.Fatalf("expected empty column after clear")
	}
	if cap(v.Values()) != capBefore {
		t.Fatalf("clear dropped capacity: %d -> %d", capBefore, cap(v.Values()))
	}
}

func TestVecGoodBytesBySize(t *testing.T) {
	b := NewVec[bool](0)
	b.Push(true)
	b.Push(false)
	if b.GoodBytes() != 2 {
		t.Fatalf("bool column: expected 2 good bytes, got %d", b.GoodBytes())
	}
	f := NewVec[float32](0)
	f.Push(1)
	if f.GoodBytes() != 4 {
		t.Fatalf("float32 column: expected 4 good bytes, got %d", f.GoodBytes())
	}
}

func TestUnits(t *testing.T) {
	var u Units
	u.Push(Unit{})
	u.Push(Unit{})
	if u.Len() != 2 || u.GoodBytes() != 0 {
		t.Fatalf("unexpected unit column state: len=%d good=%d", u.Len(), u.GoodBytes())
	}
	u.Clear()
	if u.Len() != 0 {
		t.Fatal("expected empty unit column")
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	cols := map[string]func(){
		"vec":     func() { NewVec[int64](0).Get(0) },
		"strings": func() { s := NewStrings(0, 0); s.Push("a"); s.Get(1) },
		"bytes":   func() { NewBytes(0, 0).Get(0) },
		"units":   func() { var u Units; u.Get(0) },
	}
	for name, fn := range cols {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic reading past the end", name)
				}
			}()
			fn()
		}()
	}
}

func TestStrings(t *testing.T) {
	s := NewStrings(2, 4)
	in := []string{"abc", "", "hello", "x"}
	for _, v := range in {
		s.Push(v)
	}
	for i, want := range in {
		if got := s.Get(i); got != want {
			t.Fatalf("element %d: got %q, want %q", i, got, want)
		}
	}
	if s.GoodBytes() != 4*8+9 {
		t.Fatalf("unexpected good bytes %d", s.GoodBytes())
	}

	s.Clear()
	s.Push("again")
	if s.Len() != 1 || s.Get(0) != "again" {
		t.Fatalf("column not reusable after clear")
	}
}

func TestBytesViewIsCapped(t *testing.T) {
	b := NewBytes(0, 0)
	b.Push([]byte{1, 2})
	b.Push([]byte{3, 4, 5})

	first := b.Get(0)
	_ = append(first, 9)
	if !bytes.Equal(b.Get(1), []byte{3, 4, 5}) {
		t.Fatalf("append to a borrowed value overwrote its neighbor: %v", b.Get(1))
	}
	if b.GoodBytes() != 2*8+5 {
		t.Fatalf("unexpected good bytes %d", b.GoodBytes())
	}
}

func TestOptions(t *testing.T) {
	o := NewOptions[uint64](NewVec[uint64](0))
	o.Push(Some[uint64](7))
	o.Push(None[uint64]())
	o.Push(Some[uint64](9))

	if o.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", o.Len())
	}
	if got := o.Get(0); !got.Valid || got.Value != 7 {
		t.Fatalf("element 0: %+v", got)
	}
	if got := o.Get(1); got.Valid {
		t.Fatalf("element 1 should be absent: %+v", got)
	}
	if got := o.Get(2); !got.Valid || got.Value != 9 {
		t.Fatalf("element 2: %+v", got)
	}
	if o.GoodBytes() != 3+3*8 {
		t.Fatalf("unexpected good bytes %d", o.GoodBytes())
	}
	if o.Get(1).Project() != nil {
		t.Fatal("absent option should project to nil")
	}
}

func TestTuple(t *testing.T) {
	c := NewTuple3[uint64, string, Option[int64]](
		NewVec[uint64](0), NewStrings(0, 0), NewOptions[int64](NewVec[int64](0)),
	)
	c.Push(T3[uint64, string, Option[int64]]{V0: 1, V1: "a", V2: Some[int64](-1)})
	c.Push(T3[uint64, string, Option[int64]]{V0: 2, V1: "bc", V2: None[int64]()})

	if c.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", c.Len())
	}
	row := c.Get(1)
	if row.V0 != 2 || row.V1 != "bc" || row.V2.Valid {
		t.Fatalf("unexpected row: %+v", row)
	}
	want := (2 * 8) + (2*8 + 3) + (2 + 2*8)
	if c.GoodBytes() != want {
		t.Fatalf("expected %d good bytes, got %d", want, c.GoodBytes())
	}

	vals := c.Get(0).AppendValues(nil)
	if len(vals) != 3 || vals[0] != uint64(1) || vals[1] != "a" || vals[2] != int64(-1) {
		t.Fatalf("unexpected values: %#v", vals)
	}
	if vals := row.AppendValues(nil); vals[2] != nil {
		t.Fatalf("absent field should append nil, got %#v", vals[2])
	}

	c.Clear()
	if c.Len() != 0 || c.GoodBytes() != 0 {
		t.Fatal("expected empty tuple after clear")
	}
}
