package ports

import "context"

// Terminal reads lines from the interactive operator. ReadLine blocks until a
// full line is available, the source fails, or ctx is done. The returned line
// may still carry its trailing newline; the console strips it.
type Terminal interface {
	ReadLine(ctx context.Context) (string, error)
}
