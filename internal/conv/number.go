package conv

import (
	"fmt"
	"math"

	"github.com/itsmethaqueenb/hermes/internal/helpers"
)

// This is the minimum size of the buffer passed to "NumberToString". The
// longest possible output is 25 characters plus the terminating zero byte:
//
//	-0.00000ddddddddddddddddd    (small fraction, 17 digits)
//	-d.ddddddddddddddddde-324    (exponential, 17 digits)
//
// Seventeen significant digits are always enough to round-trip a double and
// exponents never have more than three digits.
const NumberToStringBufSize = 32

// Formats numbers using a specific digit generator. The zero value uses
// "ShortestDigits".
type Formatter struct {
	Digits DigitGenerator
}

func NewFormatter(digits DigitGenerator) Formatter {
	return Formatter{Digits: digits}
}

var defaultFormatter Formatter

// Writes the canonical string for "m" into "dest" followed by a zero byte and
// returns the length, not counting the zero byte. This implements the
// Number::toString algorithm from the ECMAScript specification (section
// 9.8.1 in ES5.1). The buffer must be at least "NumberToStringBufSize" bytes.
func NumberToString(m float64, dest []byte) int {
	return defaultFormatter.NumberToString(m, dest)
}

// Appends the canonical string for "m" to "dst"
func AppendNumber(dst []byte, m float64) []byte {
	return defaultFormatter.AppendNumber(dst, m)
}

func FormatNumber(m float64) string {
	return defaultFormatter.FormatNumber(m)
}

func (f Formatter) AppendNumber(dst []byte, m float64) []byte {
	var temp [NumberToStringBufSize]byte
	n := f.NumberToString(m, temp[:])
	return append(dst, temp[:n]...)
}

func (f Formatter) FormatNumber(m float64) string {
	var temp [NumberToStringBufSize]byte
	n := f.NumberToString(m, temp[:])
	return string(temp[:n])
}

func (f Formatter) NumberToString(m float64, dest []byte) (length int) {
	if len(dest) < NumberToStringBufSize {
		panic(fmt.Sprintf("Internal error: number buffer has %d bytes but needs %d", len(dest), NumberToStringBufSize))
	}

	// These never touch the digit generator. Note that -0 is printed as "0".
	if m != m {
		return terminate(append(dest[:0], "NaN"...))
	}
	if m == 0 {
		return terminate(append(dest[:0], '0'))
	}
	if math.IsInf(m, 1) {
		return terminate(append(dest[:0], "Infinity"...))
	}
	if math.IsInf(m, -1) {
		return terminate(append(dest[:0], "-Infinity"...))
	}

	gen := f.Digits
	if gen == nil {
		gen = ShortestDigits
	}

	withDigits(gen, m, func(digits Digits) {
		length = terminate(appendDigits(dest[:0], digits))
	})
	return
}

// Lays out the digits using whichever of the five forms applies. With "k" as
// the digit count and "n" as the decimal point index, the first match wins:
//
//	k <= n <= 21    "123000"     integer, padded with zeros
//	0 < n <= 21     "123.45"     integer with fraction
//	-6 < n <= 0     "0.000123"   fraction with leading zeros
//	k == 1          "1e+21"      exponential, single digit
//	otherwise       "1.23e-7"    exponential
func appendDigits(buf []byte, digits Digits) []byte {
	s := digits.Digits
	k := len(s)
	n := digits.Point

	if digits.Negative {
		buf = append(buf, '-')
	}

	switch {
	case k <= n && n <= 21:
		buf = append(buf, s...)
		for i := k; i < n; i++ {
			buf = append(buf, '0')
		}

	case 0 < n && n <= 21:
		buf = append(buf, s[:n]...)
		buf = append(buf, '.')
		buf = append(buf, s[n:]...)

	case -6 < n && n <= 0:
		buf = append(buf, '0', '.')
		for i := n; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, s...)

	case k == 1:
		buf = append(buf, s[0])
		buf = appendExponent(buf, n-1)

	default:
		buf = append(buf, s[0], '.')
		buf = append(buf, s[1:]...)
		buf = appendExponent(buf, n-1)
	}

	return buf
}

// The exponent always has an explicit sign: "e+21", "e-7"
func appendExponent(buf []byte, exponent int) []byte {
	buf = append(buf, 'e')
	if exponent < 0 {
		buf = append(buf, '-')
		exponent = -exponent
	} else {
		buf = append(buf, '+')
	}
	return helpers.AppendSmallInt(buf, exponent)
}

// Adds the zero byte and returns the length without it. The buffer was
// sliced from the caller's buffer, so as long as it stays under the minimum
// size every append above happened in place.
func terminate(buf []byte) int {
	if len(buf) >= NumberToStringBufSize {
		panic(fmt.Sprintf("Internal error: number text %q is longer than %d bytes", buf, NumberToStringBufSize-1))
	}
	buf = append(buf, 0)
	return len(buf) - 1
}
