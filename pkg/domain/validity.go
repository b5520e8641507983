package domain

// Validity holds the per-cycle flags that, together with cursor occupancy,
// drive the state machine. Each flag is set at most once per read cycle and
// all are zeroed unconditionally at the end of every refresh: a flag only
// ever influences the single transition immediately following it.
type Validity struct {
	// Read is true when the last read passed character validation.
	Read bool
	// File is true when an automation file path has been obtained.
	File bool
	// Import is true when the file was successfully parsed into a script.
	Import bool
}

// Reset zeroes all flags.
func (v *Validity) Reset() {
	*v = Validity{}
}
