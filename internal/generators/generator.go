// Package generators synthesizes field values from a seeded generator.
//
// String generators append to a caller-owned scratch slice so a table can
// reuse one buffer per field across rows.
package generators

import (
	"unsafe"

	"github.com/mmrzaf/dataz/internal/rng"
)

const (
	// NString is the digits-only alphabet.
	NString = "0123456789"
	// AString is the mixed-case alphanumeric alphabet.
	AString = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// AppendString appends n characters drawn uniformly from alphabet.
func AppendString(dst []byte, r *rng.Rand, alphabet string, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, alphabet[r.IntN(len(alphabet))])
	}
	return dst
}

// AppendStringLen appends a string whose length is uniform in
// [minLen, maxLen]. A fixed length consumes no draw for the length.
func AppendStringLen(dst []byte, r *rng.Rand, alphabet string, minLen, maxLen int) []byte {
	if minLen == maxLen {
		return AppendString(dst, r, alphabet, minLen)
	}
	return AppendString(dst, r, alphabet, r.IntInclusive(minLen, maxLen))
}

// AppendState appends a two letter state code.
func AppendState(dst []byte, r *rng.Rand) []byte {
	return AppendString(dst, r, AString, 2)
}

// AppendZip appends four random digits and the constant "11111".
func AppendZip(dst []byte, r *rng.Rand) []byte {
	dst = AppendString(dst, r, NString, 4)
	return append(dst, "11111"...)
}

// View returns b as a string without copying. The string must not be used
// after b is modified.
func View(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
