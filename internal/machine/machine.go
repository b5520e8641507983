// Package machine implements the console's status transition table. It is a
// pure function of the current status, the per-cycle validity flags and the
// traversal cursor's occupancy; it performs no I/O and never blocks.
package machine

import "github.com/conscript-cli/conscript/pkg/domain"

// View is the snapshot of console state a transition is computed from.
type View struct {
	ReadValid   bool // last read passed character validation
	FileValid   bool // an automation file path has been obtained
	ImportValid bool // the file was parsed into a script

	HasInstruction bool // cursor holds a staged instruction
	HasSubCommand  bool // cursor holds a staged sub-command
}

// Result is the outcome of one refresh.
type Result struct {
	Next Status
	// ResetPrompt is true when a new instruction chain begins and the
	// breadcrumb prompt must be dropped.
	ResetPrompt bool
}

// Status aliases the domain status for brevity inside the table.
type Status = domain.Status

// Next computes the status following one read (or setup/teardown). The raw
// transition may land on StatusInvalid; a second pass immediately resolves it
// to StatusAcquireTerminal so an invalid status is never observable outside a
// refresh.
func Next(current Status, v View) Result {
	res := raw(current, v)
	if res.Next == domain.StatusInvalid {
		return Result{Next: domain.StatusAcquireTerminal, ResetPrompt: true}
	}
	return res
}

func raw(current Status, v View) Result {
	switch current {
	case domain.StatusInvalid:
		return Result{Next: domain.StatusAcquireTerminal, ResetPrompt: true}

	case domain.StatusAcquireFile, domain.StatusExecuteFile:
		// Both file-sourced states share the three-way cursor test.
		switch {
		case v.HasSubCommand:
			return Result{Next: domain.StatusExecuteFile}
		case v.HasInstruction:
			return Result{Next: domain.StatusAcquireFile, ResetPrompt: true}
		default:
			return Result{Next: domain.StatusInvalid}
		}

	case domain.StatusAcquireTerminal:
		if v.ReadValid {
			return Result{Next: domain.StatusExecuteTerminal}
		}
		return Result{Next: domain.StatusInvalid}

	case domain.StatusExecuteTerminal:
		switch {
		case v.ReadValid && v.FileValid && v.HasInstruction:
			return Result{Next: domain.StatusAcquireFile, ResetPrompt: true}
		case v.ReadValid && !v.FileValid:
			return Result{Next: domain.StatusExecuteTerminal}
		default:
			return Result{Next: domain.StatusInvalid}
		}
	}

	// Unknown status values cannot arise from this package's own outputs.
	return Result{Next: domain.StatusInvalid}
}
