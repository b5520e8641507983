/*
Package conscript is an interactive command console that sources its next
command either from a human at a terminal or from a pre-loaded automation
script, governed by a strict state machine.

The console does not know what a command does. It only knows how to acquire
and validate command text: which source is legal in the current status, how a
two-level instruction/sub-command script is traversed (including repeated
cycles), and how the status advances after every read.

# Concept

A Console is always in exactly one of four observable statuses: acquiring an
instruction or a sub-command, from the terminal or from a script. A transient
invalid status exists internally but is always resolved to terminal
acquisition within the same refresh, so the console can never wedge.

I/O is kept behind injected ports (Hexagonal Architecture): the terminal, the
filesystem, the script parser and the logging sink are all collaborators a
host can replace.

# Usage

	package main

	import (
		"context"
		"strings"

		"github.com/conscript-cli/conscript"
		"github.com/conscript-cli/conscript/pkg/adapters/termlog"
	)

	func main() {
		console := conscript.New(termlog.New())
		console.Setup()
		defer console.Teardown()

		ctx := context.Background()
		for {
			cmd, err := console.Read(ctx, "enter a command")
			if err != nil {
				continue // already logged; status is normalized
			}
			switch strings.ToLower(cmd) {
			case "r":
				console.ImportOrLog(ctx) // load an automation script
			case "quit":
				return
			}
		}
	}
*/
package conscript
