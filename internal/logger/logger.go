package logger

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes, emitted only when stdout is a real terminal.
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
	bold   = "\033[1m"
)

func colorize(code, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return code + s + reset
}

func emit(code, tag, msg string) {
	fmt.Printf("%s %s\n", colorize(code, fmt.Sprintf("[%s]", tag)), msg)
}

// Info logs a neutral status message.
func Info(tag, msg string) { emit(cyan, tag, msg) }

// Success logs a completed operation.
func Success(tag, msg string) { emit(green, tag, msg) }

// Warn logs a recoverable problem.
func Warn(tag, msg string) { emit(yellow, tag, msg) }

// Error logs a failure.
func Error(tag, msg string) { emit(red, tag, msg) }

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println(colorize(bold+cyan, "  PrUn Star Map"))
	fmt.Println(colorize(gray, fmt.Sprintf("  version %s", version)))
}

// Section prints a visual divider for a named phase.
func Section(name string) {
	fmt.Println(colorize(gray, fmt.Sprintf("--- %s ---", name)))
}

// Stats prints a key/value statistic line.
func Stats(key string, value interface{}) {
	fmt.Printf("  %s: %v\n", colorize(gray, key), value)
}
