package conv

import (
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func expectDigits(t *testing.T, value float64, digits string, point int, negative bool) {
	t.Helper()
	d := ShortestDigits.Generate(value)
	defer ShortestDigits.Release(d)
	require.Equal(t, digits, string(d.Digits), "value %v", value)
	require.Equal(t, point, d.Point, "value %v", value)
	require.Equal(t, negative, d.Negative, "value %v", value)
}

func TestShortestDigits(t *testing.T) {
	expectDigits(t, 1, "1", 1, false)
	expectDigits(t, 100, "1", 3, false)
	expectDigits(t, 123.456, "123456", 3, false)
	expectDigits(t, -123.456, "123456", 3, true)
	expectDigits(t, 0.001, "1", -2, false)
	expectDigits(t, 1e21, "1", 22, false)
	expectDigits(t, 1.5e-7, "15", -6, false)
	expectDigits(t, 5e-324, "5", -323, false)
	expectDigits(t, -math.MaxFloat64, "17976931348623157", 309, true)
}

func TestShortestDigitsConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := float64(i) + 0.25
			expected := strconv.FormatFloat(value, 'f', -1, 64)
			for j := 0; j < 1000; j++ {
				if FormatNumber(value) != expected {
					t.Errorf("Mismatch for %v", value)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestWithDigitsReleasesOnce(t *testing.T) {
	gen := &countingDigits{digits: "42", point: 2}
	withDigits(gen, 42, func(d Digits) {
		require.Equal(t, "42", string(d.Digits))
		require.Equal(t, 0, gen.released)
	})
	require.Equal(t, 1, gen.generated)
	require.Equal(t, 1, gen.released)
}
