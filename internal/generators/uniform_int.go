package generators

import "github.com/mmrzaf/dataz/internal/rng"

// Int returns a uniform integer in [min, max].
func Int(r *rng.Rand, min, max int) int {
	return r.IntInclusive(min, max)
}

// OneIn reports true with probability 1/n, drawing from [0, n).
func OneIn(r *rng.Rand, n uint32) bool {
	return r.Uint32Inclusive(0, n-1) == 0
}

// Tax returns a rate in [0.0000, 0.2000] with four decimal places.
func Tax(r *rng.Rand) float64 {
	return float64(Int(r, 0, 2000)) / 10000.0
}
