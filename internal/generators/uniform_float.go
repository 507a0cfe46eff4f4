package generators

import "github.com/mmrzaf/dataz/internal/rng"

// Float returns a uniform value in [min, max).
func Float(r *rng.Rand, min, max float64) float64 {
	return r.Float64Range(min, max)
}

// Cents returns a uniform amount in [min, max] cents, in currency units.
func Cents(r *rng.Rand, min, max int) float64 {
	return float64(Int(r, min, max)) / 100.0
}
