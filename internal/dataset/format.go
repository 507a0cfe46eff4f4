package dataset

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

// AppendText appends the text form of a projected value: integral floats
// keep a ".0" suffix, nil is empty and bytes are lowercase hex.
func AppendText(dst []byte, v any) []byte {
	switch v := v.(type) {
	case nil:
		return dst
	case string:
		return append(dst, v...)
	case []byte:
		return hex.AppendEncode(dst, v)
	case bool:
		return strconv.AppendBool(dst, v)
	case uint64:
		return strconv.AppendUint(dst, v, 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(v), 10)
	case int64:
		return strconv.AppendInt(dst, v, 10)
	case int:
		return strconv.AppendInt(dst, int64(v), 10)
	case float64:
		dst = strconv.AppendFloat(dst, v, 'f', -1, 64)
		if !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v) {
			dst = append(dst, ".0"...)
		}
		return dst
	default:
		return fmt.Append(dst, v)
	}
}

// Text returns the text form of a projected value.
func Text(v any) string {
	return string(AppendText(nil, v))
}
