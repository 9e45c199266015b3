package calc

// EnterDigit appends one decimal digit ('0'..'9') to the number being typed.
func (c *Calculator) EnterDigit(digit byte) {
	if digit < '0' || digit > '9' {
		return
	}
	if c.state == StateShowingResult {
		c.Clear()
	}
	if c.state != StateEnteringNumber {
		c.resetNumber("")
		c.state = StateEnteringNumber
	}

	// A lone "0" left by backspace or clear entry is replaced.
	if c.input == "0" {
		c.input = ""
	}
	if len(c.input) >= MaxInputLen-1 {
		c.syncExpression()
		return
	}
	c.input += string(digit)
	c.current, c.decimalPlaces = accumulate(c.current, c.hasDecimal, c.decimalPlaces, digit)
	c.syncExpression()
}

// EnterDecimal starts the fractional part of the number being typed. A second
// decimal point in the same number is ignored.
func (c *Calculator) EnterDecimal() {
	if c.state == StateShowingResult {
		c.Clear()
	}
	if c.state != StateEnteringNumber {
		c.resetNumber("0")
		c.state = StateEnteringNumber
	}
	if c.hasDecimal {
		return
	}
	if c.input == "" {
		c.input = "0"
	}
	if len(c.input) >= MaxInputLen-1 {
		return
	}
	c.hasDecimal = true
	c.decimalPlaces = 0
	c.input += "."
	c.syncExpression()
}

// Backspace removes the last typed character and re-derives the number from
// what is left. It only acts while a number is being entered.
func (c *Calculator) Backspace() {
	if c.state != StateEnteringNumber || c.input == "" {
		return
	}
	c.input = c.input[:len(c.input)-1]
	c.current, c.hasDecimal, c.decimalPlaces = parseInput(c.input)
	if c.input == "" {
		c.resetNumber("0")
	}
	c.syncExpression()
}

// EnterOperator queues op after the current number. Two operators in a row
// replace each other instead of stacking.
func (c *Calculator) EnterOperator(op Operator) {
	if c.state == StateError || op == OpNone {
		return
	}

	switch c.state {
	case StateEnteringNumber, StateShowingResult:
		c.pushOperand(c.current)
		c.resetNumber("")
	}

	// A full operator buffer drops the press, replacement included.
	if c.nOperator < MaxOperators {
		ch := string(op.Char())
		if c.state == StateEnteringOperator && c.nOperator > 0 {
			c.operators[c.nOperator-1] = op
			if n := len(c.expression); n > 0 && isOperatorChar(c.expression[n-1]) {
				c.expression = c.expression[:n-1] + ch
			}
		} else {
			c.operators[c.nOperator] = op
			c.nOperator++
			if len(c.expression) < MaxExpressionLen-1 {
				c.expression += ch
			}
		}
	}
	c.state = StateEnteringOperator
}

// Equals evaluates the expression and shows the result, or enters the error
// state on a fault.
func (c *Calculator) Equals() {
	if c.state == StateError {
		return
	}
	res, err := c.calculate()
	if err != nil {
		c.setError(err.Error())
		return
	}

	c.nOperands = 0
	c.nOperator = 0
	c.resetNumber("")
	c.current = res
	c.expression = Format(res, MaxExpressionLen)
	c.state = StateShowingResult
}

// calculate commits the number on display, if any, and evaluates the queued
// expression. Equals resets the buffers afterwards.
func (c *Calculator) calculate() (float64, error) {
	switch c.state {
	case StateError:
		return 0, ErrDivByZero
	case StateEnteringNumber, StateShowingResult:
		c.pushOperand(c.current)
	}
	return Evaluate(c.operands[:c.nOperands], c.operators[:c.nOperator])
}

// syncExpression rewrites the tail of the expression line after the last
// operator with the live input buffer.
func (c *Calculator) syncExpression() {
	last := -1
	for i := len(c.expression) - 1; i >= 0; i-- {
		if isOperatorChar(c.expression[i]) {
			last = i
			break
		}
	}
	if last >= 0 {
		c.expression = clip(c.expression[:last+1]+c.input, MaxExpressionLen)
		return
	}
	c.expression = clip(c.input, MaxExpressionLen)
}

// accumulate folds one digit into v: shifted in before the decimal point,
// added at the next fractional place after it.
func accumulate(v float64, hasDecimal bool, places int, digit byte) (float64, int) {
	d := float64(digit - '0')
	if !hasDecimal {
		return v*10 + d, places
	}
	divisor := 1.0
	for i := 0; i <= places; i++ {
		divisor *= 10
	}
	return v + d/divisor, places + 1
}

// parseInput replays an input buffer from scratch.
func parseInput(s string) (v float64, hasDecimal bool, places int) {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			hasDecimal = true
			continue
		}
		v, places = accumulate(v, hasDecimal, places, s[i])
	}
	return v, hasDecimal, places
}
