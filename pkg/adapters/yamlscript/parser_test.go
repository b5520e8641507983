package yamlscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conscript-cli/conscript/pkg/domain"
)

func TestParse_FullDocument(t *testing.T) {
	data := []byte(`path: smoke test
cycles: 2
instructions:
  - run: 10
    sub: [status, reset]
  - run: verify
  - run: 42
    sub: [7]
`)

	script, err := New().Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "smoke test", script.Path)
	assert.Equal(t, 2, script.Cycles)
	require.Len(t, script.Instructions, 3)

	first := script.Instructions[0]
	assert.Equal(t, domain.IntValue(10), first.Value)
	require.Len(t, first.SubCommands, 2)
	assert.Equal(t, "status", first.SubCommands[0].String())
	assert.Equal(t, "reset", first.SubCommands[1].String())

	assert.Equal(t, domain.TextValue("verify"), script.Instructions[1].Value)
	assert.Empty(t, script.Instructions[1].SubCommands)

	assert.Equal(t, domain.IntValue(42), script.Instructions[2].Value)
	assert.Equal(t, domain.IntValue(7), script.Instructions[2].SubCommands[0])
}

func TestParse_DefaultsToOnePass(t *testing.T) {
	script, err := New().Parse([]byte("instructions:\n  - run: once\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, script.Cycles)
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not yaml", "instructions: [unclosed"},
		{"no instructions", "path: empty\n"},
		{"empty instruction list", "instructions: []\n"},
		{"zero cycles", "cycles: 0\ninstructions:\n  - run: x\n"},
		{"negative cycles", "cycles: -2\ninstructions:\n  - run: x\n"},
		{"instruction without run", "instructions:\n  - sub: [a]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().Parse([]byte(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformed)

			var malformed *domain.MalformedScriptError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, domain.SchemaHint, malformed.Hint)
		})
	}
}

func TestParse_QuotedNumberStaysText(t *testing.T) {
	script, err := New().Parse([]byte("instructions:\n  - run: \"10\"\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.TextValue("10"), script.Instructions[0].Value)
}
