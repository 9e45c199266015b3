package calc

// The memory register survives Clear. Every memory key is ignored unless a
// number is being typed or a result is shown.

func (c *Calculator) memoryReady() bool {
	return c.state == StateEnteringNumber || c.state == StateShowingResult
}

// MemoryStore (MS) overwrites the register with the current value.
func (c *Calculator) MemoryStore() {
	if c.memoryReady() {
		c.memory = c.current
	}
}

// MemoryRecall (MR) clears the calculation and shows the register as a result.
func (c *Calculator) MemoryRecall() {
	if !c.memoryReady() {
		return
	}
	c.Clear()
	c.current = c.memory
	c.expression = Format(c.memory, MaxExpressionLen)
	c.state = StateShowingResult
}

// MemoryClear (MC) zeroes the register.
func (c *Calculator) MemoryClear() {
	if c.memoryReady() {
		c.memory = 0
	}
}

// MemoryAdd (M+) adds the current value to the register.
func (c *Calculator) MemoryAdd() {
	if c.memoryReady() {
		c.memory += c.current
	}
}

// MemorySubtract (M-) subtracts the current value from the register.
func (c *Calculator) MemorySubtract() {
	if c.memoryReady() {
		c.memory -= c.current
	}
}
