package conscript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conscript-cli/conscript/internal/machine"
	"github.com/conscript-cli/conscript/internal/traversal"
	"github.com/conscript-cli/conscript/internal/validate"
	"github.com/conscript-cli/conscript/pkg/domain"
	"github.com/conscript-cli/conscript/pkg/ports"
)

// Console is the façade over the input sources, the traversal engine and the
// status controller. It is not safe for concurrent use: one logical thread of
// control drives it, and each Read is a synchronous round-trip.
type Console struct {
	logger ports.Logger
	term   ports.Terminal
	fs     ports.Filesystem
	parser ports.ScriptParser
	log    *slog.Logger

	status   domain.Status
	previous domain.Status
	validity domain.Validity
	prompt   domain.Prompt

	script *domain.Script
	cursor domain.Cursor

	lastInstruction string
	lastCommand     string

	// invalidMsg is queried from the logging sink once, at construction.
	invalidMsg string
}

// New creates a console in the invalid bootstrap status with an empty script.
// Call Setup before the first Read. The logger is mandatory; the terminal,
// filesystem and parser default to the stdin, OS and YAML adapters.
func New(logger ports.Logger, opts ...Option) *Console {
	c := &Console{
		logger:   logger,
		status:   domain.StatusInvalid,
		previous: domain.StatusInvalid,
		prompt:   domain.NewPrompt(domain.DefaultPrompt),
	}
	for _, opt := range opts {
		opt(c)
	}
	applyDefaults(c)
	c.invalidMsg = logger.InvalidInputMessage()
	return c
}

// Setup forces the first transition out of the bootstrap status, landing on
// terminal acquisition.
func (c *Console) Setup() {
	c.refresh()
}

// Teardown drops the loaded script and returns the console to terminal
// acquisition through the same invalid-status normalization as Setup. The
// console remains usable afterwards.
func (c *Console) Teardown() {
	c.script = nil
	c.cursor.Clear()
	c.status = domain.StatusInvalid
	c.refresh()
}

// Status returns the current (always observable-valid) status.
func (c *Console) Status() domain.Status {
	return c.status
}

// LastInstruction returns the most recently accepted top-level instruction text.
func (c *Console) LastInstruction() string {
	return c.lastInstruction
}

// LastCommand returns the most recently accepted sub-command text.
func (c *Console) LastCommand() string {
	return c.lastCommand
}

// Read acquires one line of command text from whichever source the current
// status selects, validates it, and refreshes the status machine. A failed
// read is reported once to the logging sink and once to the caller, and the
// refresh still runs so the console self-heals into a valid acquisition
// state instead of wedging.
func (c *Console) Read(ctx context.Context, prompt string) (string, error) {
	var (
		text string
		err  error
	)
	if c.status.FromFile() {
		text, err = c.readScript()
	} else {
		text, err = c.readTerminal(ctx, prompt)
	}

	if err != nil {
		c.logger.Error(err)
	}
	c.refresh()
	if err != nil {
		return "", err
	}
	return text, nil
}

// ReadOrDefault is Read with the error swallowed: it returns the empty
// string on failure. The error has already been reported to the logging sink.
func (c *Console) ReadOrDefault(ctx context.Context, prompt string) string {
	text, err := c.Read(ctx, prompt)
	if err != nil {
		return ""
	}
	return text
}

// Import loads an automation script. It prompts for the file path on the
// terminal, reads and parses the file, primes the traversal cursor one step
// ahead of the first consumer read, and refreshes the status machine. Every
// failure hard-stops the sequence, leaves the script cleared (so the console
// falls back to terminal acquisition rather than a half-loaded script) and
// still refreshes before returning.
func (c *Console) Import(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			c.logger.Error(err)
		}
		c.refresh()
	}()

	c.script = nil
	c.cursor.Clear()

	// Path acquisition follows the full terminal read protocol. Its refresh
	// is the deferred one above, shared with the import flags, so the read
	// and file validity can drive a single transition together.
	path, err := c.readTerminal(ctx, "automation file path")
	if err != nil {
		return err
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return err
	}

	script, err := c.parser.Parse(data)
	if err != nil {
		return err
	}
	if script.Path == "" {
		script.Path = path
	}

	if _, err = traversal.Poll(script, &c.cursor); err != nil {
		return err
	}

	c.script = script
	c.validity.File = true
	c.validity.Import = true
	c.log.Debug("automation script imported",
		"path", script.Path,
		"instructions", len(script.Instructions),
		"cycles", script.Cycles)
	return nil
}

// ImportOrLog is Import with the error swallowed. The error has already been
// reported to the logging sink.
func (c *Console) ImportOrLog(ctx context.Context) {
	_ = c.Import(ctx)
}

// readTerminal performs one prompt/read/validate round-trip against the
// terminal port. It does not refresh; the caller does.
func (c *Console) readTerminal(ctx context.Context, prompt string) (string, error) {
	c.logger.Prompt(c.prompt.Render(prompt))

	line, err := c.term.ReadLine(ctx)
	if err != nil {
		// Validity flags are left untouched; the caller's refresh will
		// normalize the status.
		return "", err
	}

	text := strings.TrimRight(line, "\r\n")
	if err := validate.Check(text); err != nil {
		return "", fmt.Errorf("%s: %w", c.invalidMsg, err)
	}

	c.accept(text, false)
	return text, nil
}

// readScript serves the node currently staged by the traversal cursor:
// the instruction level in an acquisition status, the sub-command level in
// an execution status.
func (c *Console) readScript() (string, error) {
	var pos *domain.Position
	if c.status.IsAcquisition() {
		pos = c.cursor.Instruction
	} else {
		pos = c.cursor.SubCommand
	}
	if c.script == nil || pos == nil {
		return "", fmt.Errorf("%w: no executable node staged", domain.ErrExhausted)
	}
	text := pos.Value.String()

	// Advance before validating: a validation failure must not re-deliver
	// the same node. Exhaustion here only means this is the last node; the
	// cleared cursor routes the next refresh back to the terminal.
	if _, err := traversal.Poll(c.script, &c.cursor); err != nil && !errors.Is(err, domain.ErrExhausted) {
		return "", err
	}

	if err := validate.Check(text); err != nil {
		return "", fmt.Errorf("%s: %w", c.invalidMsg, err)
	}

	c.accept(text, true)
	return text, nil
}

// accept records a validated input: stores it under the level the status
// selects, marks the read valid, extends the breadcrumb and echoes it.
func (c *Console) accept(text string, fromFile bool) {
	if c.status.IsAcquisition() {
		c.lastInstruction = text
	} else {
		c.lastCommand = text
	}
	c.validity.Read = true
	c.prompt.Push(text)

	if fromFile {
		c.logger.EchoFile(text)
	} else {
		c.logger.EchoTerminal(text)
	}
}

// refresh runs the status machine once and applies its outcome: status pair,
// prompt reset, change notification, and the unconditional validity reset.
func (c *Console) refresh() {
	res := machine.Next(c.status, machine.View{
		ReadValid:      c.validity.Read,
		FileValid:      c.validity.File,
		ImportValid:    c.validity.Import,
		HasInstruction: c.cursor.HasInstruction(),
		HasSubCommand:  c.cursor.HasSubCommand(),
	})

	c.previous = c.status
	c.status = res.Next
	if res.ResetPrompt {
		c.prompt.Reset()
	}
	if c.previous != c.status {
		c.log.Debug("status changed", "from", c.previous, "to", c.status)
	}

	c.validity.Reset()
}
