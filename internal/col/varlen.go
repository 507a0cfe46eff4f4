package col

import "unsafe"

// Strings is the column for text. Element i occupies
// buf[ends[i-1]:ends[i]], with an implicit start of 0 for the first.
type Strings struct {
	ends []int
	buf  []byte
}

var _ Col[string] = (*Strings)(nil)

// NewStrings returns an empty column sized for n elements of about avg bytes.
func NewStrings(n, avg int) *Strings {
	return &Strings{ends: make([]int, 0, n), buf: make([]byte, 0, n*avg)}
}

func (s *Strings) Len() int { return len(s.ends) }

// Get returns a string view of the buffer without copying.
func (s *Strings) Get(i int) string {
	start, end := bounds(s.ends, i)
	if start == end {
		return ""
	}
	return unsafe.String(&s.buf[start], end-start)
}

func (s *Strings) Push(v string) {
	s.buf = append(s.buf, v...)
	s.ends = append(s.ends, len(s.buf))
}

func (s *Strings) Clear() {
	s.ends = s.ends[:0]
	s.buf = s.buf[:0]
}

func (s *Strings) GoodBytes() int {
	return len(s.ends)*int(unsafe.Sizeof(int(0))) + len(s.buf)
}

// Bytes is the column for byte strings, laid out like Strings.
type Bytes struct {
	ends []int
	buf  []byte
}

var _ Col[[]byte] = (*Bytes)(nil)

// NewBytes returns an empty column sized for n elements of about avg bytes.
func NewBytes(n, avg int) *Bytes {
	return &Bytes{ends: make([]int, 0, n), buf: make([]byte, 0, n*avg)}
}

func (b *Bytes) Len() int { return len(b.ends) }

// Get returns a capacity-limited view of the buffer, so appending to it
// never overwrites the next element.
func (b *Bytes) Get(i int) []byte {
	start, end := bounds(b.ends, i)
	return b.buf[start:end:end]
}

func (b *Bytes) Push(v []byte) {
	b.buf = append(b.buf, v...)
	b.ends = append(b.ends, len(b.buf))
}

func (b *Bytes) Clear() {
	b.ends = b.ends[:0]
	b.buf = b.buf[:0]
}

func (b *Bytes) GoodBytes() int {
	return len(b.ends)*int(unsafe.Sizeof(int(0))) + len(b.buf)
}

func bounds(ends []int, i int) (int, int) {
	end := ends[i]
	if i == 0 {
		return 0, end
	}
	return ends[i-1], end
}
