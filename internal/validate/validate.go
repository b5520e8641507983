// Package validate implements the character-whitelist check applied to every
// line of input before it is accepted as an instruction or sub-command.
package validate

import "github.com/conscript-cli/conscript/pkg/domain"

// Expected describes the accepted character class, used in error reporting.
const Expected = "alphanumeric characters or one of '. + - | @ '"

// Check accepts non-empty strings made of alphanumerics plus the fixed set
// {. + - | @ space}. Anything else, including the empty string, is rejected
// with an InvalidInputError. Hard fail, no retries.
func Check(text string) error {
	if text == "" {
		return &domain.InvalidInputError{Expected: Expected, Found: text}
	}
	for _, r := range text {
		if !accepted(r) {
			return &domain.InvalidInputError{Expected: Expected, Found: text}
		}
	}
	return nil
}

func accepted(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	}
	switch r {
	case '.', '+', '-', '|', '@', ' ':
		return true
	}
	return false
}
