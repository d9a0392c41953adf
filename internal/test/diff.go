package test

import (
	"strings"

	"github.com/itsmethaqueenb/hermes/internal/logger"
)

// Returns a line-by-line diff where removed lines start with "-", added lines
// start with "+", and unchanged lines start with " ".
func Diff(old string, new string, color bool) string {
	a := strings.Split(old, "\n")
	b := strings.Split(new, "\n")

	// lcs[i][j] is the length of the longest common subsequence of a[i:] and b[j:]
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var result []string
	line := func(prefix string, text string, c string) {
		if color {
			result = append(result, c+prefix+text+logger.TerminalColors.Reset)
		} else {
			result = append(result, prefix+text)
		}
	}

	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			line(" ", a[i], logger.TerminalColors.Dim)
			i++
			j++
		case j == len(b) || (i < len(a) && lcs[i+1][j] >= lcs[i][j+1]):
			line("-", a[i], logger.TerminalColors.Red)
			i++
		default:
			line("+", b[j], logger.TerminalColors.Green)
			j++
		}
	}

	return strings.Join(result, "\n")
}
