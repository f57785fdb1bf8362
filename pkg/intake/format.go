package intake

import (
	"math"
	"strconv"
)

var sizeUnits = [...]string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count as a human-readable string using
// base-1024 units. The unit is the largest one whose mantissa is >= 1,
// clamped to the unit table; the mantissa is rounded to two decimal places
// with trailing zeros trimmed. Zero (and anything below) formats as
// "0 Bytes".
//
//	FormatSize(0)        == "0 Bytes"
//	FormatSize(1024)     == "1 KB"
//	FormatSize(1536)     == "1.5 KB"
//	FormatSize(10 << 20) == "10 MB"
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
