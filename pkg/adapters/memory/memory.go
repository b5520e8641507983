// Package memory provides in-memory implementations of the console ports.
// They back the test suites and the library examples, where no TTY or disk
// is available.
package memory

import (
	"context"
	"fmt"

	"github.com/conscript-cli/conscript/pkg/domain"
)

// Terminal serves a fixed sequence of lines, then fails like a closed stream.
type Terminal struct {
	lines []string
	next  int
}

// NewTerminal creates a scripted terminal.
func NewTerminal(lines ...string) *Terminal {
	return &Terminal{lines: lines}
}

// Push appends more lines to serve.
func (t *Terminal) Push(lines ...string) {
	t.lines = append(t.lines, lines...)
}

// ReadLine returns the next scripted line, or an ErrIo-wrapped failure once
// the sequence is spent.
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIo, err)
	}
	if t.next >= len(t.lines) {
		return "", fmt.Errorf("%w: no more scripted input", domain.ErrIo)
	}
	line := t.lines[t.next]
	t.next++
	return line, nil
}

// Filesystem serves file content from a map.
type Filesystem struct {
	files map[string][]byte
}

// NewFilesystem creates an in-memory filesystem from string content.
func NewFilesystem(files map[string]string) *Filesystem {
	fs := &Filesystem{files: make(map[string][]byte, len(files))}
	for path, content := range files {
		fs.files[path] = []byte(content)
	}
	return fs
}

// ReadFile returns the mapped content or an ErrIo-wrapped miss.
func (f *Filesystem) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: no such file %q", domain.ErrIo, path)
	}
	return data, nil
}

// Logger records every notification for later assertions.
type Logger struct {
	Prompts   []string
	Terminals []string
	Files     []string
	Errors    []error
}

// NewLogger creates a recording logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Prompt(text string)       { l.Prompts = append(l.Prompts, text) }
func (l *Logger) EchoTerminal(text string) { l.Terminals = append(l.Terminals, text) }
func (l *Logger) EchoFile(text string)     { l.Files = append(l.Files, text) }
func (l *Logger) Error(err error)          { l.Errors = append(l.Errors, err) }

// InvalidInputMessage returns the fixed invalid-input message.
func (l *Logger) InvalidInputMessage() string { return "invalid input." }
