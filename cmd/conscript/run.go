package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/conscript-cli/conscript"
	"github.com/conscript-cli/conscript/internal/logging"
	"github.com/conscript-cli/conscript/internal/presentation/tui"
	"github.com/conscript-cli/conscript/pkg/adapters/termlog"
	"github.com/conscript-cli/conscript/pkg/domain"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive console",
	Long: `Starts the console on the current terminal. Type commands directly, or
type 'import' (or 'r') to load an automation script file and let the console
replay its instructions. 'exit' or 'quit' leaves the session.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		runConsole(debug)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runConsole(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner(conscript.Version)
	}

	console := conscript.New(termlog.New(),
		conscript.WithSlogger(logging.New(level)),
	)
	console.Setup()
	defer console.Teardown()

	ctx := context.Background()
	for {
		cmdText, err := console.Read(ctx, "enter a command")
		if err != nil {
			// Already reported through the logging sink; the status machine
			// has normalized back to terminal acquisition.
			if errors.Is(err, domain.ErrIo) {
				// Terminal is gone (EOF or closed stream); nothing left to read.
				return
			}
			continue
		}

		switch strings.ToLower(cmdText) {
		case "import", "r":
			console.ImportOrLog(ctx)
		case "exit", "quit":
			return
		}
	}
}
