package logger

// Messages are printed as they are added, one per line, in the same
// "kind: text" format the rest of the toolchain uses. The full list is kept
// around so callers can inspect it once they are done.

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

type LogLevel int8

const (
	LevelNone LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelSilent
)

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
	Info
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		panic("Internal error")
	}
}

type Msg struct {
	Kind MsgKind
	Text string

	// This is the command-line argument the message is about, if any
	Arg string
}

type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
	Height          int
}

type Colors struct {
	Reset string
	Bold  string
	Dim   string

	Red     string
	Green   string
	Magenta string
}

var TerminalColors = Colors{
	Reset: "\033[0m",
	Bold:  "\033[1m",
	Dim:   "\033[37m",

	Red:     "\033[31m",
	Green:   "\033[32m",
	Magenta: "\033[35m",
}

type StderrColor uint8

const (
	ColorIfTerminal StderrColor = iota
	ColorNever
	ColorAlways
)

type OutputOptions struct {
	Color    StderrColor
	LogLevel LogLevel
}

func (options OutputOptions) shouldPrint(kind MsgKind) bool {
	switch kind {
	case Error:
		return options.LogLevel <= LevelError
	case Warning:
		return options.LogLevel <= LevelWarning
	default:
		return options.LogLevel <= LevelInfo
	}
}

func NewStderrLog(options OutputOptions) Log {
	return NewWriterLog(os.Stderr, GetTerminalInfo(os.Stderr), options)
}

// This is the same as "NewStderrLog" except that the output goes to "w".
// The terminal info is passed in because "w" might not be a file.
func NewWriterLog(w io.Writer, terminalInfo TerminalInfo, options OutputOptions) Log {
	var mutex sync.Mutex
	var msgs []Msg
	errors := 0
	warnings := 0

	switch options.Color {
	case ColorNever:
		terminalInfo.UseColorEscapes = false
	case ColorAlways:
		terminalInfo.UseColorEscapes = SupportsColorEscapes
	}

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			msgs = append(msgs, msg)

			switch msg.Kind {
			case Error:
				errors++
			case Warning:
				warnings++
			}

			if options.shouldPrint(msg.Kind) {
				writeStringWithColor(w, msg.String(terminalInfo))
			}
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return errors > 0
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()

			// Print out a summary
			if options.LogLevel <= LevelInfo && (warnings != 0 || errors != 0) {
				writeStringWithColor(w, fmt.Sprintf("%s\n", errorAndWarningSummary(errors, warnings)))
			}

			return msgs
		},
	}
}

func NewDeferLog() Log {
	var msgs []Msg
	var mutex sync.Mutex
	var hasErrors bool

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			if msg.Kind == Error {
				hasErrors = true
			}
			msgs = append(msgs, msg)
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()
			return msgs
		},
	}
}

func (log Log) AddError(arg string, text string) {
	log.AddMsg(Msg{Kind: Error, Arg: arg, Text: text})
}

func (log Log) AddWarning(arg string, text string) {
	log.AddMsg(Msg{Kind: Warning, Arg: arg, Text: text})
}

func (msg Msg) String(terminalInfo TerminalInfo) string {
	var sb strings.Builder

	if terminalInfo.UseColorEscapes {
		kindColor := TerminalColors.Red
		switch msg.Kind {
		case Warning:
			kindColor = TerminalColors.Magenta
		case Info:
			kindColor = TerminalColors.Green
		}
		fmt.Fprintf(&sb, "%s%s%s:%s %s%s%s", TerminalColors.Bold, kindColor, msg.Kind,
			TerminalColors.Reset, TerminalColors.Bold, msg.Text, TerminalColors.Reset)
		if msg.Arg != "" {
			fmt.Fprintf(&sb, " %s(argument %q)%s", TerminalColors.Dim, msg.Arg, TerminalColors.Reset)
		}
	} else {
		fmt.Fprintf(&sb, "%s: %s", msg.Kind, msg.Text)
		if msg.Arg != "" {
			fmt.Fprintf(&sb, " (argument %q)", msg.Arg)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func plural(prefix string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, prefix)
	}
	return fmt.Sprintf("%d %ss", count, prefix)
}

func errorAndWarningSummary(errors int, warnings int) string {
	switch {
	case errors == 0:
		return plural("warning", warnings)
	case warnings == 0:
		return plural("error", errors)
	default:
		return fmt.Sprintf("%s and %s",
			plural("warning", warnings),
			plural("error", errors))
	}
}

func hasNoColorEnvironmentVariable() bool {
	// https://no-color.org/
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func writeStringWithColor(w io.Writer, text string) {
	io.WriteString(w, text)
}
