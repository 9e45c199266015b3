// Package calc implements the CalcSat keypad calculator engine.
//
// A Calculator consumes one keypad symbol at a time, keeps the operand and
// operator buffers of the expression being typed, and evaluates it with
// multiplicative operators binding tighter than additive ones. All buffers are
// fixed-capacity; overflow is dropped silently.
package calc

import "errors"

const (
	// MaxExpressionLen is the capacity of the expression line, terminator included.
	MaxExpressionLen = 32
	// MaxInputLen is the capacity of the number-entry buffer, terminator included.
	MaxInputLen = 16
	// MaxOperands is the number of operands kept for evaluation.
	MaxOperands = 9
	// MaxOperators is the number of operators kept for evaluation.
	MaxOperators = 8
	// MaxErrorLen is the capacity of the error message, terminator included.
	MaxErrorLen = 20

	memoryTextLen = 12
)

// ErrDivByZero is returned when a divisor operand is exactly zero.
var ErrDivByZero = errors.New("Div by 0")

// State is the input interpreter state.
type State uint8

const (
	StateEnteringNumber State = iota
	StateEnteringOperator
	StateShowingResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateEnteringNumber:
		return "entering_number"
	case StateEnteringOperator:
		return "entering_operator"
	case StateShowingResult:
		return "showing_result"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Operator is a binary operator queued between two operands.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	// OpPower10 multiplies the left operand by 10 raised to the right operand.
	OpPower10
)

// Char returns the display character of the operator.
func (op Operator) Char() byte {
	switch op {
	case OpAdd:
		return '+'
	case OpSubtract:
		return '-'
	case OpMultiply:
		return '*'
	case OpDivide:
		return '/'
	case OpPower10:
		return 'E'
	default:
		return ' '
	}
}

// Precedence returns 2 for multiplicative operators, 1 for additive ones.
func (op Operator) Precedence() int {
	switch op {
	case OpMultiply, OpDivide, OpPower10:
		return 2
	case OpAdd, OpSubtract:
		return 1
	default:
		return 0
	}
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpPower10:
		return "power10"
	default:
		return "none"
	}
}

func isOperatorChar(b byte) bool {
	switch b {
	case '+', '-', '*', '/', 'E':
		return true
	}
	return false
}

// Calculator holds all runtime state of the engine. The zero value is not
// ready for use; call New.
type Calculator struct {
	expression string
	input      string

	operands  [MaxOperands]float64
	nOperands int
	operators [MaxOperators]Operator
	nOperator int

	current       float64
	hasDecimal    bool
	decimalPlaces int

	state  State
	memory float64
	shift  bool
	errMsg string
}

// New returns a calculator in its power-on state.
func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Clear resets everything except the memory register.
func (c *Calculator) Clear() {
	mem := c.memory
	*c = Calculator{
		expression: "0",
		state:      StateEnteringNumber,
		memory:     mem,
	}
}

// ClearEntry resets the number being typed to "0". Outside number entry it
// behaves like Clear.
func (c *Calculator) ClearEntry() {
	if c.state != StateEnteringNumber {
		c.Clear()
		return
	}
	c.resetNumber("0")
	c.syncExpression()
}

// ToggleShift flips the one-shot shift modifier.
func (c *Calculator) ToggleShift() { c.shift = !c.shift }

func (c *Calculator) State() State         { return c.state }
func (c *Calculator) Expression() string   { return c.expression }
func (c *Calculator) Input() string        { return c.input }
func (c *Calculator) Current() float64     { return c.current }
func (c *Calculator) Memory() float64      { return c.memory }
func (c *Calculator) ShiftActive() bool    { return c.shift }
func (c *Calculator) ErrorMessage() string { return c.errMsg }

// Operands returns a copy of the committed operands.
func (c *Calculator) Operands() []float64 {
	return append([]float64(nil), c.operands[:c.nOperands]...)
}

// Operators returns a copy of the queued operators.
func (c *Calculator) Operators() []Operator {
	return append([]Operator(nil), c.operators[:c.nOperator]...)
}

func (c *Calculator) resetNumber(input string) {
	c.current = 0
	c.hasDecimal = false
	c.decimalPlaces = 0
	c.input = input
}

func (c *Calculator) pushOperand(v float64) {
	if c.nOperands >= MaxOperands {
		return
	}
	c.operands[c.nOperands] = v
	c.nOperands++
}

func (c *Calculator) setError(msg string) {
	c.state = StateError
	c.errMsg = clip(msg, MaxErrorLen)
}

// clip bounds s to a buffer of capacity n, terminator included.
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n-1 {
		return s[:n-1]
	}
	return s
}
