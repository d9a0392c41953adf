package config

import (
	"fmt"

	"github.com/itsmethaqueenb/hermes/internal/logger"
)

// These are the settings shared by every command. They come from the
// persistent command-line flags.
type Options struct {
	Color    logger.StderrColor
	LogLevel logger.LogLevel
}

func (options Options) OutputOptions() logger.OutputOptions {
	return logger.OutputOptions{
		Color:    options.Color,
		LogLevel: options.LogLevel,
	}
}

func ParseColor(text string) (logger.StderrColor, error) {
	switch text {
	case "":
		return logger.ColorIfTerminal, nil
	case "true":
		return logger.ColorAlways, nil
	case "false":
		return logger.ColorNever, nil
	default:
		return logger.ColorIfTerminal, fmt.Errorf("invalid color %q (valid: true, false)", text)
	}
}

func ParseLogLevel(text string) (logger.LogLevel, error) {
	switch text {
	case "", "info":
		return logger.LevelInfo, nil
	case "warning":
		return logger.LevelWarning, nil
	case "error":
		return logger.LevelError, nil
	case "silent":
		return logger.LevelSilent, nil
	default:
		return logger.LevelInfo, fmt.Errorf("invalid log level %q (valid: info, warning, error, silent)", text)
	}
}
