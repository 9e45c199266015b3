package calc

// Key is one symbol of the 4x4 keypad alphabet.
type Key rune

const (
	KeyNone Key = 0

	// KeyPlus is add, multiply when shifted.
	KeyPlus Key = 'A'
	// KeyMinus is subtract, divide when shifted.
	KeyMinus Key = 'B'
	// KeyPoint is the decimal point, power-of-ten when shifted.
	KeyPoint Key = 'C'
	// KeyShift toggles the one-shot shift modifier.
	KeyShift Key = 'D'
	// KeyEquals evaluates the expression.
	KeyEquals Key = '*'
	// KeyBackspace deletes one character, clears the entry when shifted.
	KeyBackspace Key = '#'
)

// Valid reports whether k belongs to the keypad alphabet.
func (k Key) Valid() bool {
	if k.IsDigit() {
		return true
	}
	switch k {
	case KeyPlus, KeyMinus, KeyPoint, KeyShift, KeyEquals, KeyBackspace:
		return true
	}
	return false
}

// IsDigit reports whether k is one of '0'..'9'.
func (k Key) IsDigit() bool { return k >= '0' && k <= '9' }

type action func(c *Calculator)

// unshiftedKeys and shiftedKeys are consulted in sequence by ProcessKey: a
// shifted key without an entry falls through to its unshifted meaning.
var (
	unshiftedKeys = map[Key]action{
		KeyPlus:      func(c *Calculator) { c.EnterOperator(OpAdd) },
		KeyMinus:     func(c *Calculator) { c.EnterOperator(OpSubtract) },
		KeyPoint:     (*Calculator).EnterDecimal,
		KeyEquals:    (*Calculator).Equals,
		KeyBackspace: (*Calculator).Backspace,
	}

	shiftedKeys = map[Key]action{
		KeyPlus:      func(c *Calculator) { c.EnterOperator(OpMultiply) },
		KeyMinus:     func(c *Calculator) { c.EnterOperator(OpDivide) },
		KeyPoint:     func(c *Calculator) { c.EnterOperator(OpPower10) },
		KeyBackspace: (*Calculator).ClearEntry,
		'1':          (*Calculator).MemoryStore,
		'2':          (*Calculator).MemoryRecall,
		'3':          (*Calculator).MemoryClear,
		'4':          (*Calculator).MemoryAdd,
		'5':          (*Calculator).MemorySubtract,
	}
)

func init() {
	for d := Key('0'); d <= '9'; d++ {
		digit := byte(d)
		unshiftedKeys[d] = func(c *Calculator) { c.EnterDigit(digit) }
	}
}

// ProcessKey handles a single key press.
//
// In the error state any key but shift first resets the calculator. Keys
// outside the keypad alphabet are ignored.
func (c *Calculator) ProcessKey(k Key) {
	if !k.Valid() {
		return
	}
	if c.state == StateError && k != KeyShift {
		c.Clear()
	}
	if k == KeyShift {
		c.ToggleShift()
		return
	}

	if c.shift {
		c.shift = false
		if fn, ok := shiftedKeys[k]; ok {
			fn(c)
			return
		}
	}
	if fn, ok := unshiftedKeys[k]; ok {
		fn(c)
	}
}
