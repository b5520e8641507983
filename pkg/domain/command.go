package domain

import "strconv"

// ValueKind discriminates the two shapes an instruction or sub-command value
// can take in an automation script.
type ValueKind int

const (
	// ValueInt is a numeric command value.
	ValueInt ValueKind = iota
	// ValueText is a textual command value.
	ValueText
)

// Value is an int-or-text command payload. Exactly one of Int/Text is
// meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Int  int64
	Text string
}

// IntValue builds a numeric command value.
func IntValue(n int64) Value {
	return Value{Kind: ValueInt, Int: n}
}

// TextValue builds a textual command value.
func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// String renders the value in the form handed to validation and echoed to the
// operator.
func (v Value) String() string {
	if v.Kind == ValueInt {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Text
}
