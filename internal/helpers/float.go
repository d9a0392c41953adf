package helpers

import "math"

// This is the IEEE-754 layout of a float64. Go's "math.Float64bits" is the
// only way we look at the bits of a float. Reinterpreting memory through an
// "unsafe.Pointer" would also work but is not needed for a plain value.
//
//	63     62 .. 52     51 .. 0
//	sign   exponent     mantissa
type F64Bits uint64

const (
	F64ExponentBias  = 1023
	F64MantissaWidth = 52
	F64ExponentMask  = 0x7FF
	F64MantissaMask  = 1<<F64MantissaWidth - 1
	F64ImplicitBit   = 1 << F64MantissaWidth
)

func BitsOf(a float64) F64Bits {
	return F64Bits(math.Float64bits(a))
}

func (b F64Bits) Float() float64 {
	return math.Float64frombits(uint64(b))
}

// Returns 1 for a clear sign bit and -1 for a set one. Note that this means
// NaN and zero also have a sign.
func (b F64Bits) Sign() int64 {
	return 1 - int64(b>>62)&2
}

// This is the raw 11-bit field. It's 0 for zero and subnormal values and
// 0x7FF for infinities and NaN.
func (b F64Bits) BiasedExponent() int {
	return int(b>>F64MantissaWidth) & F64ExponentMask
}

func (b F64Bits) Mantissa() uint64 {
	return uint64(b) & F64MantissaMask
}

// The mantissa with the implicit leading bit restored. This is only
// meaningful for normal numbers.
func (b F64Bits) Significand() uint64 {
	return b.Mantissa() | F64ImplicitBit
}
