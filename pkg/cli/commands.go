package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/itsmethaqueenb/hermes/internal/config"
	"github.com/itsmethaqueenb/hermes/internal/conv"
	"github.com/itsmethaqueenb/hermes/internal/logger"
)

type runner struct {
	options      config.Options
	stderr       io.Writer
	terminalInfo logger.TerminalInfo
	log          *logger.Log
}

// The log is created lazily because the flags that configure it are only
// known once cobra has parsed them. Errors from cobra itself (unknown flags
// and such) still need somewhere to go.
func (r *runner) logger() logger.Log {
	if r.log == nil {
		log := logger.NewWriterLog(r.stderr, r.terminalInfo, r.options.OutputOptions())
		r.log = &log
	}
	return *r.log
}

func newRootCmd(r *runner) *cobra.Command {
	var color string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "hermesconv",
		Short:         "Apply JavaScript number conversions to numbers given on the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if r.options.Color, err = config.ParseColor(color); err != nil {
				return fmt.Errorf("--color: %w", err)
			}
			if r.options.LogLevel, err = config.ParseLogLevel(logLevel); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&color, "color", "", "Force use of color terminal escapes (true or false)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Disable logging (info, warning, error, silent)")

	rootCmd.AddCommand(
		newConvertCmd(r, "int32", "Print ToInt32 of each number", func(value float64) string {
			return strconv.FormatInt(int64(conv.TruncateToInt32(value)), 10)
		}),
		newConvertCmd(r, "uint32", "Print ToUint32 of each number", func(value float64) string {
			return strconv.FormatUint(uint64(conv.TruncateToUint32(value)), 10)
		}),
		newConvertCmd(r, "uint16", "Print ToUint16 of each number", func(value float64) string {
			return strconv.FormatUint(uint64(conv.TruncateToUint16(value)), 10)
		}),
		newConvertCmd(r, "tostring", "Print the canonical string of each number", conv.FormatNumber),
		newConvertCmd(r, "index", "Print each number as an array index", func(value float64) string {
			if index, ok := conv.DoubleToArrayIndex(value); ok {
				return strconv.FormatUint(uint64(index), 10)
			}
			return "not an index"
		}),
	)
	return rootCmd
}

func newConvertCmd(r *runner, use string, short string, convert func(float64) string) *cobra.Command {
	return &cobra.Command{
		// Negative numbers look like flags, so they have to come after "--"
		Use:   use + " [--] <number>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := r.logger()
			for _, arg := range args {
				value, err := parseNumberArg(arg)
				if err != nil {
					if !errors.Is(err, strconv.ErrRange) {
						log.AddError(arg, "Invalid number")
						continue
					}
					log.AddWarning(arg, fmt.Sprintf("Number is out of range and was rounded to %s", conv.FormatNumber(value)))
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), convert(value)); err != nil {
					return fmt.Errorf("failed to write to stdout: %w", err)
				}
			}
			return nil
		},
	}
}

// Go's float parser already understands "NaN" and "Infinity" with an optional
// sign, which covers the names JavaScript uses for the special values.
// Out-of-range numbers come back rounded along with an error wrapping
// "strconv.ErrRange".
func parseNumberArg(arg string) (float64, error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return value, fmt.Errorf("parse %q: %w", arg, err)
	}
	return value, nil
}
