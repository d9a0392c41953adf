// This package runs the "hermesconv" command. It's kept separate from the
// binary in "cmd/hermesconv" so that it can be driven from tests.
package cli

import (
	"io"
	"os"

	"github.com/itsmethaqueenb/hermes/internal/logger"
)

// Runs the command with the given arguments (not including the program name)
// and returns the exit code.
func Run(osArgs []string) int {
	return RunWithIO(osArgs, os.Stdout, os.Stderr, logger.GetTerminalInfo(os.Stderr))
}

func RunWithIO(osArgs []string, stdout io.Writer, stderr io.Writer, terminalInfo logger.TerminalInfo) int {
	r := &runner{stderr: stderr, terminalInfo: terminalInfo}
	cmd := newRootCmd(r)
	cmd.SetArgs(osArgs)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		r.logger().AddError("", err.Error())
	}

	r.logger().Done()
	if r.logger().HasErrors() {
		return 1
	}
	return 0
}
