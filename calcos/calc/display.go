package calc

// Lines returns the two display lines: a status line (shift or memory
// indicator) and the live expression or result.
func (c *Calculator) Lines() (status, main string) {
	if c.state == StateError {
		return "Error:", c.errMsg
	}
	switch {
	case c.shift:
		status = "SHIFT"
	case c.memory != 0:
		status = "M:" + Format(c.memory, memoryTextLen)
	}
	return status, c.expression
}

// Snapshot is a copy of the calculator state, for logging and tests.
type Snapshot struct {
	State      State
	Expression string
	Input      string
	Operands   []float64
	Operators  []Operator
	Current    float64
	Memory     float64
	Shift      bool
	Error      string
}

// Snapshot copies the current state.
func (c *Calculator) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Expression: c.expression,
		Input:      c.input,
		Operands:   c.Operands(),
		Operators:  c.Operators(),
		Current:    c.current,
		Memory:     c.memory,
		Shift:      c.shift,
		Error:      c.errMsg,
	}
}
