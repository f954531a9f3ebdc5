// Package logging provides the leveled logger used by the tint CLI.
//
// Messages carry a colored level prefix. All output goes to a single
// diagnostics writer (stderr by default) so that rendered text written to
// stdout is never interleaved with log lines.
//
//	log := logging.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("using default color %s", c)
//
// Infof is shown with Verbose or Debug, Debugf only with Debug. Warnf and
// Errorf are always shown.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled messages. The zero value logs warnings and errors to
// stderr.
type Logger struct {
	Verbose bool
	Debug   bool
	// NoColor disables the colored level prefixes.
	NoColor bool
	// Out receives all messages; nil means os.Stderr.
	Out io.Writer
}

func (l Logger) writer() io.Writer {
	if l.Out == nil {
		return os.Stderr
	}
	return l.Out
}

func (l Logger) prefix(attr color.Attribute, label string) string {
	c := color.New(attr)
	if l.NoColor {
		c.DisableColor()
	}
	return c.Sprint("[" + label + "] ")
}

func (l Logger) logf(attr color.Attribute, label, msg string, args ...any) {
	fmt.Fprintf(l.writer(), l.prefix(attr, label)+msg+"\n", args...)
}

// Infof logs when verbose or debug output is enabled.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		l.logf(color.FgGreen, "info", msg, args...)
	}
}

// Debugf logs only when debug output is enabled.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.logf(color.FgCyan, "debug", msg, args...)
	}
}

// Warnf logs a warning.
func (l Logger) Warnf(msg string, args ...any) {
	l.logf(color.FgYellow, "warn", msg, args...)
}

// Errorf logs an error.
func (l Logger) Errorf(msg string, args ...any) {
	l.logf(color.FgRed, "error", msg, args...)
}
