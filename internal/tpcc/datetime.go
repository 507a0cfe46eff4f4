package tpcc

import "github.com/mmrzaf/dataz/internal/col"

// DateTime is a TPC-C timestamp.
type DateTime struct {
	// Date is the number of days since 1900-01-01.
	Date uint32
	// Time is the number of seconds since midnight.
	Time uint32
}

// Uint64 packs d as (Date << 32) | Time.
func (d DateTime) Uint64() uint64 {
	return uint64(d.Date)<<32 | uint64(d.Time)
}

// Project implements col.Projector.
func (d DateTime) Project() any { return d.Uint64() }

// DateTimes is the column for DateTime. Each value is stored as one
// uint64 whose little-endian bytes are Date then Time.
type DateTimes struct {
	vals []uint64
}

var _ col.Col[DateTime] = (*DateTimes)(nil)

// NewDateTimes returns an empty column with room for n values.
func NewDateTimes(n int) *DateTimes {
	return &DateTimes{vals: make([]uint64, 0, n)}
}

func (c *DateTimes) Len() int { return len(c.vals) }

func (c *DateTimes) Get(i int) DateTime {
	x := c.vals[i]
	return DateTime{Date: uint32(x), Time: uint32(x >> 32)}
}

func (c *DateTimes) Push(d DateTime) {
	c.vals = append(c.vals, uint64(d.Date)|uint64(d.Time)<<32)
}

func (c *DateTimes) Clear() { c.vals = c.vals[:0] }

func (c *DateTimes) GoodBytes() int { return len(c.vals) * 8 }
