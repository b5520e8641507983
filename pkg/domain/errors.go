package domain

import (
	"errors"
	"fmt"
)

// ErrIo wraps a lower-level I/O fault from the terminal or filesystem collaborator.
var ErrIo = errors.New("i/o failure")

// ErrInvalidInput is returned when read text fails character validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrMalformed is returned when automation file content violates the script schema.
var ErrMalformed = errors.New("malformed automation file")

// ErrCorrupted is returned on a cursor contradiction or tree/index inconsistency.
var ErrCorrupted = errors.New("traversal corrupted")

// ErrExhausted is returned when no next node exists and no cycles remain.
var ErrExhausted = errors.New("automation script exhausted")

// ErrUnknown is the catch-all kind. It should be unreachable; observing it
// indicates a design gap.
var ErrUnknown = errors.New("unknown console error")

// InvalidInputError reports an expected/found mismatch from validation.
type InvalidInputError struct {
	Expected string // Description of the accepted character class
	Found    string // The offending input
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: expected %s, found %q", e.Expected, e.Found)
}

// Unwrap makes the error match ErrInvalidInput through errors.Is.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// MalformedScriptError reports a schema violation in an automation file,
// carrying a human-readable hint of the expected shape.
type MalformedScriptError struct {
	Hint string
	Err  error
}

func (e *MalformedScriptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed automation file: %v (expected: %s)", e.Err, e.Hint)
	}
	return fmt.Sprintf("malformed automation file (expected: %s)", e.Hint)
}

func (e *MalformedScriptError) Unwrap() error { return ErrMalformed }

// SchemaHint is the canonical description of a well-formed automation file,
// surfaced with every MalformedScriptError.
const SchemaHint = "at least one instruction; optional sub-commands and positive cycle count"
