package domain

// Instruction is one entry of the automation script: a mandatory top-level
// value plus an optional ordered list of sub-commands.
type Instruction struct {
	Value       Value
	SubCommands []Value
}

// Script is the loaded automation tree. It is owned exclusively by the
// Console: replaced wholesale on each successful import and never mutated
// node-by-node, except that the traversal engine decrements Cycles on
// wraparound.
type Script struct {
	// Path is the file the script was loaded from (display only).
	Path string

	// Instructions is the ordered top level of the tree. A valid script has
	// at least one entry.
	Instructions []Instruction

	// Cycles is the total number of passes over the instruction list.
	// A script file without an explicit cycle count gets exactly one.
	Cycles int
}

// Position is a pre-computed (index, value) pair pointing at the node the
// traversal engine will emit next.
type Position struct {
	Index int
	Value Value
}

// Cursor is the traversal engine's two-level lookahead into a Script.
// Invariant: SubCommand is only ever non-nil while Instruction is non-nil;
// the engine treats the opposite as corruption.
type Cursor struct {
	Instruction *Position
	SubCommand  *Position
}

// Clear resets both levels of the cursor.
func (c *Cursor) Clear() {
	c.Instruction = nil
	c.SubCommand = nil
}

// HasInstruction reports whether a top-level node is staged.
func (c *Cursor) HasInstruction() bool { return c.Instruction != nil }

// HasSubCommand reports whether a sub-command node is staged.
func (c *Cursor) HasSubCommand() bool { return c.SubCommand != nil }
