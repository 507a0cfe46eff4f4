// Package invariants gates consistency checks that are too expensive for
// the generation hot path. Build with -tags invariants to turn them on.
package invariants

import "fmt"

// SameLen panics if any of lens differs from the first. It is a no-op
// unless Enabled.
func SameLen(what string, lens ...int) {
	if !Enabled || len(lens) == 0 {
		return
	}
	for i, n := range lens[1:] {
		if n != lens[0] {
			panic(fmt.Sprintf("invariants: %s: column %d has %d elements, column 0 has %d", what, i+1, n, lens[0]))
		}
	}
}
