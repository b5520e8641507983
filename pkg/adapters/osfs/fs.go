// Package osfs implements the filesystem port against the host OS.
package osfs

import (
	"fmt"
	"os"

	"github.com/conscript-cli/conscript/pkg/domain"
)

// Filesystem reads automation files from the local disk.
type Filesystem struct{}

// New creates the OS filesystem adapter.
func New() *Filesystem {
	return &Filesystem{}
}

// ReadFile loads the whole file at path. Failures wrap domain.ErrIo so the
// console reports them as data-loss rather than schema errors.
func (f *Filesystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrIo, path, err)
	}
	return data, nil
}
