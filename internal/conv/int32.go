package conv

import (
	"github.com/itsmethaqueenb/hermes/internal/helpers"
)

// Converts a double to a 32-bit integer using the ECMAScript "ToInt32" rule.
// NaN and the infinities become 0. Everything else is truncated toward zero
// into a (conceptually) infinite-width integer and the low 32 bits of that
// integer are returned. Reinterpreting the result as a "uint32" gives the
// "ToUint32" result, since both conversions have the same bit pattern.
func TruncateToInt32(d float64) int32 {
	// The easy way
	if i := int32(d); float64(i) == d {
		return i
	}

	// The hard way
	return truncateToInt32SlowPath(d)
}

func TruncateToUint32(d float64) uint32 {
	return uint32(TruncateToInt32(d))
}

// This is "ToUint16", which is what "String.fromCharCode" uses. The low 16
// bits of the truncated integer are the same as the low 16 bits of the
// "ToInt32" result.
func TruncateToUint16(d float64) uint16 {
	return uint16(TruncateToInt32(d))
}

func truncateToInt32SlowPath(d float64) int32 {
	bits := helpers.BitsOf(d)
	exp := bits.BiasedExponent()

	// Zero and subnormal numbers always truncate to 0
	if exp == 0 {
		return 0
	}

	sign := bits.Sign()
	m := bits.Significand()

	// Subtract the bias and also move the binary point to the right of the
	// 53-bit significand
	exp -= helpers.F64ExponentBias + helpers.F64MantissaWidth

	if exp >= 0 {
		// Everything above bit 31 is shifted out of the result. This also
		// catches Infinity and NaN, which have the largest exponent.
		if exp > 31 {
			return 0
		}
		return int32(sign) * int32(uint32(m<<uint(exp)))
	}

	// The whole significand is shifted out
	if exp <= -53 {
		return 0
	}

	// This is done in 64 bits so that "-1 * 2147483648" doesn't overflow
	return int32(sign * int64(m>>uint(-exp)))
}

// Returns the value as an array index if it's an integer in the range
// [0, 2^32 - 2]. Note that -0 is a valid array index (it's the same as 0).
func DoubleToArrayIndex(d float64) (uint32, bool) {
	if d >= 0 && d <= maxArrayIndex {
		if i := uint32(d); float64(i) == d {
			return i, true
		}
	}
	return 0, false
}

const maxArrayIndex = 1<<32 - 2
