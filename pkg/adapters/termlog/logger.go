// Package termlog implements the console logging sink for interactive
// terminals, with termenv-based coloring.
package termlog

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Logger writes prompts and echoes to a terminal writer. All methods are
// fire-and-forget and return immediately.
type Logger struct {
	out     io.Writer
	profile termenv.Profile
}

// Option configures the Logger.
type Option func(*Logger)

// WithWriter redirects output away from os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
		l.profile = termenv.Ascii
	}
}

// New creates a terminal logger writing to os.Stdout by default.
func New(opts ...Option) *Logger {
	l := &Logger{
		out:     os.Stdout,
		profile: termenv.ColorProfile(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Prompt prints the prompt line without a trailing newline, so input is
// typed on the same line.
func (l *Logger) Prompt(text string) {
	fmt.Fprint(l.out, termenv.String(text).Foreground(l.profile.Color("#818cf8")).String())
}

// EchoTerminal reports an accepted terminal line.
func (l *Logger) EchoTerminal(text string) {
	fmt.Fprintln(l.out, text)
}

// EchoFile reports an accepted script node, visually distinct from typed input.
func (l *Logger) EchoFile(text string) {
	fmt.Fprintln(l.out, termenv.String(text).Foreground(l.profile.Color("#c084fc")).String())
}

// Error reports a failed read or import.
func (l *Logger) Error(err error) {
	fmt.Fprintln(l.out, termenv.String("error: "+err.Error()).Foreground(l.profile.Color("#f87171")).String())
}

// InvalidInputMessage returns the fixed message shown for rejected input.
func (l *Logger) InvalidInputMessage() string {
	return "invalid input."
}
