package generators

import "github.com/mmrzaf/dataz/internal/rng"

const original = "ORIGINAL"

// AppendOriginal appends 26 to 50 alphanumeric characters. One time in ten
// the marker "ORIGINAL" is embedded at a uniform offset.
func AppendOriginal(dst []byte, r *rng.Rand) []byte {
	n := Int(r, 26, 50)
	if !OneIn(r, 10) {
		return AppendString(dst, r, AString, n)
	}
	before := r.IntN(n - len(original))
	after := n - before - len(original)
	dst = AppendString(dst, r, AString, before)
	dst = append(dst, original...)
	return AppendString(dst, r, AString, after)
}
