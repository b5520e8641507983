// Package yamlscript parses YAML automation files into domain scripts.
//
// The accepted document shape:
//
//	path: smoke test          # optional display name
//	cycles: 2                 # optional, >= 1, total passes over the list
//	instructions:             # required, at least one entry
//	  - run: 10               # int-or-string instruction value
//	    sub: [status, reset]  # optional int-or-string sub-commands
//	  - run: verify
package yamlscript

import (
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/conscript-cli/conscript/pkg/domain"
)

// Parser implements ports.ScriptParser for YAML content.
type Parser struct {
	validate *validator.Validate
}

// New creates the YAML script parser.
func New() *Parser {
	return &Parser{validate: validator.New()}
}

type document struct {
	Path         string  `yaml:"path"`
	Cycles       *int    `yaml:"cycles" validate:"omitempty,min=1"`
	Instructions []entry `yaml:"instructions" validate:"required,min=1"`
}

type entry struct {
	Run scalar   `yaml:"run"`
	Sub []scalar `yaml:"sub"`
}

// scalar accepts either an integer or a string node.
type scalar struct {
	value domain.Value
	set   bool
}

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		s.value = domain.IntValue(n)
		s.set = true
		return nil
	}
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	s.value = domain.TextValue(text)
	s.set = true
	return nil
}

// Parse decodes and validates data, returning the script or a
// MalformedScriptError carrying the schema hint.
func (p *Parser) Parse(data []byte) (*domain.Script, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.MalformedScriptError{Hint: domain.SchemaHint, Err: err}
	}
	if err := p.validate.Struct(&doc); err != nil {
		return nil, &domain.MalformedScriptError{Hint: domain.SchemaHint, Err: err}
	}

	script := &domain.Script{
		Path:   doc.Path,
		Cycles: 1,
	}
	if doc.Cycles != nil {
		script.Cycles = *doc.Cycles
	}

	for _, e := range doc.Instructions {
		if !e.Run.set {
			return nil, &domain.MalformedScriptError{Hint: domain.SchemaHint}
		}
		ins := domain.Instruction{Value: e.Run.value}
		for _, sub := range e.Sub {
			ins.SubCommands = append(ins.SubCommands, sub.value)
		}
		script.Instructions = append(script.Instructions, ins)
	}
	return script, nil
}
