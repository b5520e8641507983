package domain

// Status defines the current mode of the console mechanics.
type Status string

const (
	// StatusInvalid is the transient bootstrap/fallback state. It is resolved
	// to StatusAcquireTerminal within the same refresh and is never observable
	// between calls.
	StatusInvalid Status = "invalid"

	// StatusAcquireTerminal waits for a top-level instruction typed at the terminal.
	StatusAcquireTerminal Status = "acquire_terminal"
	// StatusAcquireFile waits for a top-level instruction from the automation script.
	StatusAcquireFile Status = "acquire_file"

	// StatusExecuteTerminal waits for a sub-command typed at the terminal.
	StatusExecuteTerminal Status = "execute_terminal"
	// StatusExecuteFile waits for a sub-command from the automation script.
	StatusExecuteFile Status = "execute_file"
)

// IsAcquisition reports whether the console is waiting for a top-level
// instruction rather than a sub-command.
func (s Status) IsAcquisition() bool {
	return s == StatusAcquireTerminal || s == StatusAcquireFile
}

// FromFile reports whether the next input is sourced from the automation
// script rather than the terminal.
func (s Status) FromFile() bool {
	return s == StatusAcquireFile || s == StatusExecuteFile
}
