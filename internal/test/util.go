package test

import (
	"fmt"
	"os"
	"testing"

	"github.com/itsmethaqueenb/hermes/internal/logger"
)

func AssertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%v != %v", observed, expected)
	}
}

// Use this for multi-line text such as command output
func AssertEqualWithDiff(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		stringA := fmt.Sprintf("%v", observed)
		stringB := fmt.Sprintf("%v", expected)
		color := logger.GetTerminalInfo(os.Stdout).UseColorEscapes
		t.Fatal("\n" + Diff(stringB, stringA, color))
	}
}
