package conscript

import (
	"log/slog"

	"github.com/conscript-cli/conscript/internal/logging"
	"github.com/conscript-cli/conscript/pkg/adapters/osfs"
	"github.com/conscript-cli/conscript/pkg/adapters/termio"
	"github.com/conscript-cli/conscript/pkg/adapters/yamlscript"
	"github.com/conscript-cli/conscript/pkg/domain"
	"github.com/conscript-cli/conscript/pkg/ports"
)

// Option defines a functional option for configuring the Console.
type Option func(*Console)

// WithTerminal injects a custom terminal port, bypassing the default stdin
// line reader.
func WithTerminal(t ports.Terminal) Option {
	return func(c *Console) {
		c.term = t
	}
}

// WithFilesystem injects a custom filesystem port.
func WithFilesystem(fs ports.Filesystem) Option {
	return func(c *Console) {
		c.fs = fs
	}
}

// WithParser injects a custom automation script parser.
func WithParser(p ports.ScriptParser) Option {
	return func(c *Console) {
		c.parser = p
	}
}

// WithSlogger sets the structured logger used for internal diagnostics such
// as status-change notifications. Defaults to a no-op logger.
func WithSlogger(log *slog.Logger) Option {
	return func(c *Console) {
		c.log = log
	}
}

// WithPrimaryPrompt overrides the default "> " primary prompt.
func WithPrimaryPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = domain.NewPrompt(prompt)
	}
}

// applyDefaults fills the ports left unset by the options.
func applyDefaults(c *Console) {
	if c.term == nil {
		c.term = termio.New(nil)
	}
	if c.fs == nil {
		c.fs = osfs.New()
	}
	if c.parser == nil {
		c.parser = yamlscript.New()
	}
	if c.log == nil {
		c.log = logging.NewNop()
	}
}
