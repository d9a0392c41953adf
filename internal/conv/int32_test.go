package conv

import (
	"fmt"
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/itsmethaqueenb/hermes/internal/test"
)

func expectInt32(t *testing.T, value float64, expected int32) {
	t.Helper()
	t.Run(fmt.Sprintf("%v", value), func(t *testing.T) {
		t.Helper()
		test.AssertEqual(t, TruncateToInt32(value), expected)
		test.AssertEqual(t, truncateToInt32SlowPath(value), expected)
		test.AssertEqual(t, TruncateToUint32(value), uint32(expected))
	})
}

// This is the straightforward way using floating-point remainder, which is
// exact. It only works for finite numbers.
func referenceToInt32(f float64) int32 {
	i := int32(uint32(math.Mod(math.Abs(f), 4294967296)))
	if math.Signbit(f) {
		return -i
	}
	return i
}

func TestTruncateToInt32(t *testing.T) {
	expectInt32(t, math.NaN(), 0)
	expectInt32(t, math.Inf(1), 0)
	expectInt32(t, math.Inf(-1), 0)
	expectInt32(t, 0, 0)
	expectInt32(t, math.Copysign(0, -1), 0)

	expectInt32(t, 1, 1)
	expectInt32(t, -1, -1)
	expectInt32(t, 1.5, 1)
	expectInt32(t, -1.5, -1)
	expectInt32(t, 0.9, 0)
	expectInt32(t, -0.9, 0)
	expectInt32(t, 5e-324, 0)
	expectInt32(t, -5e-324, 0)
	expectInt32(t, math.SmallestNonzeroFloat64*1e10, 0)

	expectInt32(t, 2147483647, 2147483647)
	expectInt32(t, 2147483648, -2147483648)
	expectInt32(t, 2147483648.5, -2147483648)
	expectInt32(t, -2147483648, -2147483648)
	expectInt32(t, -2147483649, 2147483647)
	expectInt32(t, 4294967295, -1)
	expectInt32(t, 4294967296, 0)
	expectInt32(t, 4294967297.5, 1)
	expectInt32(t, -4294967297, -1)

	// The low bits survive even when the value is far outside the range
	expectInt32(t, 9007199254740994, 2)
	expectInt32(t, -9007199254740994, -2)
	expectInt32(t, 1<<62+1<<31, -2147483648)
	expectInt32(t, 1<<63, 0)
	expectInt32(t, 1e300, 0)
	expectInt32(t, math.MaxFloat64, 0)
}

func TestTruncateToUint32(t *testing.T) {
	test.AssertEqual(t, TruncateToUint32(-1), uint32(4294967295))
	test.AssertEqual(t, TruncateToUint32(4294967295), uint32(4294967295))
	test.AssertEqual(t, TruncateToUint32(4294967296), uint32(0))
	test.AssertEqual(t, TruncateToUint32(2147483648), uint32(2147483648))
	test.AssertEqual(t, TruncateToUint32(-2147483648.9), uint32(2147483648))
	test.AssertEqual(t, TruncateToUint32(math.NaN()), uint32(0))
}

func TestTruncateToUint16(t *testing.T) {
	test.AssertEqual(t, TruncateToUint16(65), uint16(65))
	test.AssertEqual(t, TruncateToUint16(65535), uint16(65535))
	test.AssertEqual(t, TruncateToUint16(65536), uint16(0))
	test.AssertEqual(t, TruncateToUint16(65601.7), uint16(65))
	test.AssertEqual(t, TruncateToUint16(-1), uint16(65535))
	test.AssertEqual(t, TruncateToUint16(math.Inf(-1)), uint16(0))
}

func TestDoubleToArrayIndex(t *testing.T) {
	expect := func(value float64, index uint32, ok bool) {
		t.Helper()
		actualIndex, actualOk := DoubleToArrayIndex(value)
		require.Equal(t, ok, actualOk, "value %v", value)
		require.Equal(t, index, actualIndex, "value %v", value)
	}

	expect(0, 0, true)
	expect(math.Copysign(0, -1), 0, true)
	expect(1, 1, true)
	expect(4294967294, 4294967294, true)
	expect(4294967295, 0, false)
	expect(4294967296, 0, false)
	expect(-1, 0, false)
	expect(1.5, 0, false)
	expect(math.NaN(), 0, false)
	expect(math.Inf(1), 0, false)
}

func TestTruncateToInt32MatchesReference(t *testing.T) {
	f := fuzz.New()
	var bits uint64
	for i := 0; i < 100000; i++ {
		f.Fuzz(&bits)
		value := math.Float64frombits(bits)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			require.Zero(t, TruncateToInt32(value))
			continue
		}
		require.Equal(t, referenceToInt32(value), TruncateToInt32(value), "value %v", value)
		require.Equal(t, truncateToInt32SlowPath(value), TruncateToInt32(value), "value %v", value)
	}

	// Random bit patterns are mostly huge or tiny, so also try values near
	// the 32-bit range where the interesting bits are
	var whole int64
	var fraction float64
	for i := 0; i < 100000; i++ {
		f.Fuzz(&whole)
		f.Fuzz(&fraction)
		value := float64(whole>>20) + fraction
		require.Equal(t, referenceToInt32(value), TruncateToInt32(value), "value %v", value)
		require.Equal(t, truncateToInt32SlowPath(value), TruncateToInt32(value), "value %v", value)
	}
}

func TestTruncateToInt32Idempotent(t *testing.T) {
	f := fuzz.New()
	var bits uint64
	for i := 0; i < 100000; i++ {
		f.Fuzz(&bits)
		once := TruncateToInt32(math.Float64frombits(bits))
		require.Equal(t, once, TruncateToInt32(float64(once)))
	}
}
