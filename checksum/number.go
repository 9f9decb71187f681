package checksum

import (
	"math"
	"strconv"
	"strings"
)

// Number is a numeric scalar, hashed as the UTF-8 encoding of its
// default decimal string form
type Number struct {
	text string
}

// Int returns the Number for a signed integer
func Int(i int64) Number {
	return Number{text: strconv.FormatInt(i, 10)}
}

// Uint returns the Number for an unsigned integer
func Uint(u uint64) Number {
	return Number{text: strconv.FormatUint(u, 10)}
}

// Float returns the Number for a float64
func Float(f float64) Number {
	return Number{text: formatFloat(f, 64)}
}

// Float32 returns the Number for a float32, using the shortest
// representation that round-trips at 32 bits
func Float32(f float32) Number {
	return Number{text: formatFloat(float64(f), 32)}
}

// String returns the decimal string form that is hashed
func (n Number) String() string {
	if n.text == "" {
		return "0"
	}
	return n.text
}

// formatFloat renders f the way ECMAScript Number.prototype.toString does:
// plain decimal notation for magnitudes in [1e-6, 1e21) and exponent
// notation without zero padding ("1e+21", "1.5e-7") outside that range.
func formatFloat(f float64, bitSize int) string {

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0" // Includes negative zero
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	parts := strings.SplitN(s, "e", 2)
	if len(parts) != 2 || len(parts[1]) < 2 {
		return s
	}
	sign, digits := parts[1][:1], strings.TrimLeft(parts[1][1:], "0")
	if digits == "" {
		digits = "0"
	}
	return parts[0] + "e" + sign + digits
}
