package helpers

// Appends the decimal form of "n" without going through "strconv". This is
// used for exponents, which are always small.
func AppendSmallInt(dst []byte, n int) []byte {
	wasNegative := n < 0
	if wasNegative {
		// This assumes that -math.MinInt isn't a problem. This is fine because
		// these integers are floating-point exponents which never go up that high.
		n = -n
	}

	var temp [20]byte
	start := len(temp)

	// Write out the number from the end to the front
	for {
		start--
		temp[start] = '0' + byte(n%10)
		n /= 10
		if n == 0 {
			break
		}
	}

	// Stick a negative sign on the front if needed
	if wasNegative {
		start--
		temp[start] = '-'
	}

	return append(dst, temp[start:]...)
}
