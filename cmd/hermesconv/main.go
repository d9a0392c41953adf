package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/itsmethaqueenb/hermes/internal/logger"
	"github.com/itsmethaqueenb/hermes/pkg/cli"
)

func main() {
	osArgs := os.Args[1:]
	cpuprofileFile := ""

	// Do an initial scan over the argument list
	argsEnd := 0
	for _, arg := range osArgs {
		switch {
		case strings.HasPrefix(arg, "--cpuprofile="):
			cpuprofileFile = arg[len("--cpuprofile="):]

		default:
			// Strip any arguments that were handled above
			osArgs[argsEnd] = arg
			argsEnd++
		}
	}
	osArgs = osArgs[:argsEnd]

	// Capture the defer statements below so the profile is flushed before exit
	exitCode := 1
	func() {
		if cpuprofileFile != "" {
			f, err := os.Create(cpuprofileFile)
			if err != nil {
				log := logger.NewStderrLog(logger.OutputOptions{})
				log.AddError("", fmt.Sprintf("Failed to create cpuprofile file: %s", err.Error()))
				log.Done()
				return
			}
			defer f.Close()
			pprof.StartCPUProfile(f)
			defer pprof.StopCPUProfile()
		}

		exitCode = cli.Run(osArgs)
	}()

	os.Exit(exitCode)
}
