package ports

import "github.com/conscript-cli/conscript/pkg/domain"

// ScriptParser turns raw automation file content into a Script. A failure
// must surface as (or wrap) domain.ErrMalformed so the console can report
// the schema hint to the operator.
type ScriptParser interface {
	Parse(data []byte) (*domain.Script, error)
}
