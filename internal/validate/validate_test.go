package validate

import (
	"errors"
	"testing"

	"github.com/conscript-cli/conscript/pkg/domain"
)

func TestCheck_Accepted(t *testing.T) {
	inputs := []string{
		"hello",
		"HELLO world",
		"0123456789",
		"a.b+c-d|e@f",
		"R",
		"10",
		"auto.yaml",
		"cmd with spaces",
	}
	for _, in := range inputs {
		if err := Check(in); err != nil {
			t.Errorf("Check(%q) = %v, want nil", in, err)
		}
	}
}

func TestCheck_Rejected(t *testing.T) {
	inputs := []string{
		"",
		"semi;colon",
		"new\nline",
		"tab\tbed",
		"slash/path",
		"uni¢ode",
		"quo\"te",
		"hash#tag",
	}
	for _, in := range inputs {
		err := Check(in)
		if err == nil {
			t.Errorf("Check(%q) = nil, want error", in)
			continue
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Check(%q) error = %v, want ErrInvalidInput class", in, err)
		}
	}
}

func TestCheck_ReportsExpectedClass(t *testing.T) {
	err := Check("bad;input")
	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *domain.InvalidInputError", err)
	}
	if invalid.Expected != Expected {
		t.Errorf("Expected field = %q, want %q", invalid.Expected, Expected)
	}
	if invalid.Found != "bad;input" {
		t.Errorf("Found field = %q, want the rejected input", invalid.Found)
	}
}
