package ports

// Logger is the logging capability the console consumes. Every method is a
// fire-and-forget notification; implementations must not block indefinitely,
// as the console holds no timeout around them. A single read may touch the
// logger several times (prompt, echo, error), but never across a blocking
// terminal or filesystem call.
type Logger interface {
	// Prompt presents the full prompt line (primary + breadcrumb + request).
	Prompt(text string)

	// EchoTerminal reports an accepted line read from the terminal.
	EchoTerminal(text string)

	// EchoFile reports an accepted node served from the automation script.
	EchoFile(text string)

	// Error reports a failed read or import.
	Error(err error)

	// InvalidInputMessage returns the sink's fixed invalid-input message.
	// The console queries it once at construction.
	InvalidInputMessage() string
}
