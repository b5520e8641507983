// Package termio provides the default terminal adapter: blocking line reads
// from an io.Reader, normally os.Stdin.
package termio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/conscript-cli/conscript/pkg/domain"
)

// Terminal implements ports.Terminal over a buffered reader.
type Terminal struct {
	reader *bufio.Reader
}

// New creates a terminal adapter. A nil reader defaults to os.Stdin.
func New(r io.Reader) *Terminal {
	if r == nil {
		r = os.Stdin
	}
	return &Terminal{reader: bufio.NewReader(r)}
}

// ReadLine blocks until one full line is available. The trailing newline is
// kept; the console strips it together with any carriage return. A read that
// yields text alongside io.EOF still succeeds; a bare EOF is an I/O failure.
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIo, err)
	}

	text, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && text != "" {
			return text, nil
		}
		return "", fmt.Errorf("%w: terminal read: %v", domain.ErrIo, err)
	}
	return text, nil
}
