// Package rng is the pseudo-random generator behind every generated field.
//
// The algorithm is part of the output format: changing any step changes
// every golden file. It is xoshiro256++ with its 256-bit state expanded from
// a 64-bit seed by a PCG32 stream, and range sampling by widening multiply
// with rejection.
package rng

import (
	"encoding/binary"
	"math"
	"math/bits"
	"math/rand/v2"
)

const (
	pcgMul = 6364136223846793005
	pcgInc = 11634580027462260723
)

var _ rand.Source = (*Rand)(nil)

// Rand is a xoshiro256++ generator. The zero value is not usable; call Seed
// or New first. A Rand is not safe for concurrent use.
type Rand struct {
	s [4]uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state as a pure function of seed.
func (r *Rand) Seed(seed uint64) {
	var buf [32]byte
	state := seed
	for i := 0; i < 8; i++ {
		state = state*pcgMul + pcgInc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		binary.LittleEndian.PutUint32(buf[i*4:], bits.RotateLeft32(xorshifted, -rot))
	}
	for i := range r.s {
		r.s[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	if r.s == [4]uint64{} {
		r.Seed(0)
	}
}

// Uint64 returns the next 64 random bits.
func (r *Rand) Uint64() uint64 {
	s := &r.s
	result := bits.RotateLeft64(s[0]+s[3], 23) + s[0]
	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)
	return result
}

// Uint32 returns the high 32 bits of the next draw.
func (r *Rand) Uint32() uint32 {
	return uint32(r.Uint64() >> 32)
}

// Uint64Inclusive returns a uniform value in [lo, hi]. It panics if lo > hi.
func (r *Rand) Uint64Inclusive(lo, hi uint64) uint64 {
	if lo > hi {
		panic("rng: empty range")
	}
	n := hi - lo + 1
	if n == 0 {
		return r.Uint64()
	}
	zone := (n << bits.LeadingZeros64(n)) - 1
	for {
		h, l := bits.Mul64(r.Uint64(), n)
		if l <= zone {
			return lo + h
		}
	}
}

// Uint32Inclusive is Uint64Inclusive over 32-bit draws.
func (r *Rand) Uint32Inclusive(lo, hi uint32) uint32 {
	if lo > hi {
		panic("rng: empty range")
	}
	n := hi - lo + 1
	if n == 0 {
		return r.Uint32()
	}
	zone := (n << bits.LeadingZeros32(n)) - 1
	for {
		h, l := bits.Mul32(r.Uint32(), n)
		if l <= zone {
			return lo + h
		}
	}
}

// IntInclusive returns a uniform int in [lo, hi] using 64-bit draws.
func (r *Rand) IntInclusive(lo, hi int) int {
	return lo + int(r.Uint64Inclusive(0, uint64(hi-lo)))
}

// IntN returns a uniform int in [0, n) using 64-bit draws.
func (r *Rand) IntN(n int) int {
	return int(r.Uint64Inclusive(0, uint64(n-1)))
}

// Float64Range returns a uniform float64 in [lo, hi).
func (r *Rand) Float64Range(lo, hi float64) float64 {
	scale := hi - lo
	for {
		v := math.Float64frombits(0x3FF0000000000000|r.Uint64()>>12) - 1.0
		res := v*scale + lo
		if res < hi {
			return res
		}
	}
}

// Shuffle permutes s in place with a Fisher-Yates pass from the back,
// drawing each swap index with 32-bit sampling.
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i >= 1; i-- {
		j := r.Uint32Inclusive(0, uint32(i))
		s[i], s[j] = s[j], s[i]
	}
}
