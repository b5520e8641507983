package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conscript-cli/conscript/pkg/domain"
)

func TestNext_TransitionTable(t *testing.T) {
	cases := []struct {
		name        string
		current     domain.Status
		view        View
		next        domain.Status
		resetPrompt bool
	}{
		{
			name:        "invalid always normalizes to terminal acquisition",
			current:     domain.StatusInvalid,
			view:        View{},
			next:        domain.StatusAcquireTerminal,
			resetPrompt: true,
		},
		{
			name:    "acquire file with staged sub-command executes from file",
			current: domain.StatusAcquireFile,
			view:    View{HasInstruction: true, HasSubCommand: true},
			next:    domain.StatusExecuteFile,
		},
		{
			name:        "acquire file with only an instruction stays acquiring",
			current:     domain.StatusAcquireFile,
			view:        View{HasInstruction: true},
			next:        domain.StatusAcquireFile,
			resetPrompt: true,
		},
		{
			name:        "acquire file with empty cursor falls back to terminal",
			current:     domain.StatusAcquireFile,
			view:        View{},
			next:        domain.StatusAcquireTerminal,
			resetPrompt: true,
		},
		{
			name:    "terminal acquisition with a valid read starts execution",
			current: domain.StatusAcquireTerminal,
			view:    View{ReadValid: true},
			next:    domain.StatusExecuteTerminal,
		},
		{
			name:        "terminal acquisition with an invalid read self-heals",
			current:     domain.StatusAcquireTerminal,
			view:        View{},
			next:        domain.StatusAcquireTerminal,
			resetPrompt: true,
		},
		{
			name:    "execute file with staged sub-command keeps executing",
			current: domain.StatusExecuteFile,
			view:    View{HasInstruction: true, HasSubCommand: true},
			next:    domain.StatusExecuteFile,
		},
		{
			name:        "execute file moving to next instruction acquires again",
			current:     domain.StatusExecuteFile,
			view:        View{HasInstruction: true},
			next:        domain.StatusAcquireFile,
			resetPrompt: true,
		},
		{
			name:        "execute file exhausted falls back to terminal",
			current:     domain.StatusExecuteFile,
			view:        View{},
			next:        domain.StatusAcquireTerminal,
			resetPrompt: true,
		},
		{
			name:        "execute terminal hands over to a primed script",
			current:     domain.StatusExecuteTerminal,
			view:        View{ReadValid: true, FileValid: true, HasInstruction: true},
			next:        domain.StatusAcquireFile,
			resetPrompt: true,
		},
		{
			name:    "execute terminal without a file keeps reading sub-commands",
			current: domain.StatusExecuteTerminal,
			view:    View{ReadValid: true},
			next:    domain.StatusExecuteTerminal,
		},
		{
			name:        "execute terminal with an invalid read self-heals",
			current:     domain.StatusExecuteTerminal,
			view:        View{},
			next:        domain.StatusAcquireTerminal,
			resetPrompt: true,
		},
		{
			name:        "execute terminal with file but empty cursor self-heals",
			current:     domain.StatusExecuteTerminal,
			view:        View{ReadValid: true, FileValid: true},
			next:        domain.StatusAcquireTerminal,
			resetPrompt: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Next(tc.current, tc.view)
			assert.Equal(t, tc.next, res.Next)
			assert.Equal(t, tc.resetPrompt, res.ResetPrompt)
		})
	}
}

func TestNext_NeverReturnsInvalid(t *testing.T) {
	statuses := []domain.Status{
		domain.StatusInvalid,
		domain.StatusAcquireTerminal,
		domain.StatusAcquireFile,
		domain.StatusExecuteTerminal,
		domain.StatusExecuteFile,
	}

	// Exhaustive sweep over all flag/cursor combinations: StatusInvalid must
	// never leak out of a refresh.
	for _, s := range statuses {
		for mask := 0; mask < 32; mask++ {
			v := View{
				ReadValid:      mask&1 != 0,
				FileValid:      mask&2 != 0,
				ImportValid:    mask&4 != 0,
				HasInstruction: mask&8 != 0,
				HasSubCommand:  mask&16 != 0,
			}
			res := Next(s, v)
			assert.NotEqual(t, domain.StatusInvalid, res.Next,
				"status %s with view %+v", s, v)
		}
	}
}
