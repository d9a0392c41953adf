package conv

import (
	"math"
	"strconv"
	"sync"
)

// This is the output of a digit generator. The value it describes is
// "0.<Digits> * 10^Point", negated if "Negative" is set. So for 123.456 the
// digits are "123456" and the point is 3, and for 0.001 the digits are "1"
// and the point is -2.
//
// The generator owns the memory behind "Digits". Callers must hand it back
// with "Release" when done and must not hold on to the slice afterward.
type Digits struct {
	Digits   []byte
	Point    int
	Negative bool

	// This is whatever the generator needs to recycle the digit memory
	handle interface{}
}

// A digit generator produces the shortest decimal digit sequence that rounds
// back to the same double. It's only ever called with finite non-zero values.
type DigitGenerator interface {
	Generate(value float64) Digits
	Release(digits Digits)
}

// Borrows the digits for "value" for the duration of "fn". The digits are
// released exactly once no matter how "fn" exits.
func withDigits(gen DigitGenerator, value float64, fn func(Digits)) {
	digits := gen.Generate(value)
	defer gen.Release(digits)
	fn(digits)
}

// This is the default generator. The shortest-digits mode of "strconv" picks
// the shortest digit string that parses back to the same double and, when
// there's more than one, the one closest to the exact value. That's what
// Number::toString requires.
var ShortestDigits DigitGenerator = &shortestDigits{
	pool: sync.Pool{
		New: func() interface{} {
			buf := make([]byte, 0, 32)
			return &buf
		},
	},
}

type shortestDigits struct {
	pool sync.Pool
}

func (g *shortestDigits) Generate(value float64) Digits {
	buf := g.pool.Get().(*[]byte)

	// This looks like "1.2345e+02" or "5e-324"
	text := strconv.AppendFloat((*buf)[:0], math.Abs(value), 'e', -1, 64)
	*buf = text[:0]

	e := 1
	for text[e] != 'e' {
		e++
	}

	// Squeeze out the "." so the digits are contiguous
	k := 1
	if e > 1 {
		k += copy(text[1:], text[2:e])
	}

	return Digits{
		Digits:   text[:k],
		Point:    parseExponent(text[e+1:]) + 1,
		Negative: math.Signbit(value),
		handle:   buf,
	}
}

func (g *shortestDigits) Release(digits Digits) {
	if buf, ok := digits.handle.(*[]byte); ok {
		g.pool.Put(buf)
	}
}

// Parses the "+02" or "-324" part of the "strconv" output
func parseExponent(bytes []byte) int {
	wasNegative := bytes[0] == '-'
	n := 0
	for _, c := range bytes[1:] {
		n = n*10 + int(c-'0')
	}
	if wasNegative {
		return -n
	}
	return n
}
