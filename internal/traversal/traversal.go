// Package traversal implements the cursor-advance algorithm over an
// automation script. It maintains the illusion of a flat, possibly cyclic
// sequence over the two-level instruction/sub-command tree.
package traversal

import (
	"fmt"

	"github.com/conscript-cli/conscript/pkg/domain"
)

// Poll advances the cursor one step and returns the textual form of the node
// now staged, preferring the sub-command level over the instruction level.
// It never blocks and never reads from the terminal. Repeated calls keep
// advancing: calling twice yields two different nodes.
//
// On exhaustion of the instruction list the cycle policy applies: the
// script's remaining pass count is decremented and, while passes remain, the
// cursor is reseeded at the first instruction. Once no passes remain the
// cursor stays cleared and every further call returns ErrExhausted.
func Poll(script *domain.Script, cur *domain.Cursor) (string, error) {
	switch {
	case cur.Instruction == nil && cur.SubCommand != nil:
		// Contradiction: the engine is the sole mutator of the cursor, so
		// this state is unreachable unless the cursor was corrupted.
		cur.Clear()
		return "", fmt.Errorf("%w: sub-command staged without an instruction", domain.ErrCorrupted)

	case cur.Instruction == nil:
		if script.Cycles <= 0 {
			return "", domain.ErrExhausted
		}
		if err := seed(script, cur); err != nil {
			return "", err
		}

	case cur.SubCommand == nil:
		i := cur.Instruction.Index
		if i >= len(script.Instructions) {
			cur.Clear()
			return "", fmt.Errorf("%w: lost main instruction at index %d", domain.ErrCorrupted, i)
		}
		if subs := script.Instructions[i].SubCommands; len(subs) > 0 {
			cur.SubCommand = &domain.Position{Index: 0, Value: subs[0]}
		} else if err := advanceInstruction(script, cur, i); err != nil {
			return "", err
		}

	default:
		i, j := cur.Instruction.Index, cur.SubCommand.Index
		if i >= len(script.Instructions) {
			cur.Clear()
			return "", fmt.Errorf("%w: lost main instruction at index %d", domain.ErrCorrupted, i)
		}
		if subs := script.Instructions[i].SubCommands; j+1 < len(subs) {
			cur.SubCommand = &domain.Position{Index: j + 1, Value: subs[j+1]}
		} else if err := advanceInstruction(script, cur, i); err != nil {
			return "", err
		}
	}

	if cur.SubCommand != nil {
		return cur.SubCommand.Value.String(), nil
	}
	if cur.Instruction != nil {
		return cur.Instruction.Value.String(), nil
	}
	return "", domain.ErrExhausted
}

// advanceInstruction moves the instruction cursor to index i+1, clearing the
// sub-command cursor. Past the last instruction it applies the cycle policy.
func advanceInstruction(script *domain.Script, cur *domain.Cursor, i int) error {
	cur.SubCommand = nil
	if i+1 < len(script.Instructions) {
		cur.Instruction = &domain.Position{Index: i + 1, Value: script.Instructions[i+1].Value}
		return nil
	}

	// One full pass over the instruction list is complete.
	cur.Clear()
	script.Cycles--
	if script.Cycles > 0 {
		return seed(script, cur)
	}
	// Fully exhausted: the cursor stays cleared and the state machine will
	// route back to terminal acquisition.
	return nil
}

func seed(script *domain.Script, cur *domain.Cursor) error {
	if len(script.Instructions) == 0 {
		return fmt.Errorf("%w: script holds no instructions", domain.ErrCorrupted)
	}
	cur.Instruction = &domain.Position{Index: 0, Value: script.Instructions[0].Value}
	return nil
}
