package calc

// maxExponent bounds the power-of-ten loop; float64 saturates long before.
const maxExponent = 400

// Evaluate reduces operands and operators to a single value.
//
// Multiply, divide and power-of-ten are reduced first, left to right; add and
// subtract second. Operators without a right-hand operand are ignored. The
// input slices are not modified.
func Evaluate(operands []float64, operators []Operator) (float64, error) {
	switch len(operands) {
	case 0:
		return 0, nil
	case 1:
		return operands[0], nil
	}

	n := len(operands) - 1
	if len(operators) < n {
		n = len(operators)
	}
	vals := make([]float64, n+1)
	copy(vals, operands)
	ops := make([]Operator, n)
	copy(ops, operators)

	for i := 0; i < len(ops); {
		if ops[i].Precedence() != 2 {
			i++
			continue
		}
		r, err := apply(ops[i], vals[i], vals[i+1])
		if err != nil {
			return 0, err
		}
		vals, ops = splice(vals, ops, i, r)
	}

	for len(ops) > 0 {
		r, err := apply(ops[0], vals[0], vals[1])
		if err != nil {
			return 0, err
		}
		vals, ops = splice(vals, ops, 0, r)
	}
	return vals[0], nil
}

// splice replaces vals[i], vals[i+1] and ops[i] with r.
func splice(vals []float64, ops []Operator, i int, r float64) ([]float64, []Operator) {
	vals[i] = r
	vals = append(vals[:i+1], vals[i+2:]...)
	ops = append(ops[:i], ops[i+1:]...)
	return vals, ops
}

func apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivByZero
		}
		return a / b, nil
	case OpPower10:
		return a * pow10(b), nil
	default:
		return a, nil
	}
}

// pow10 computes 10^trunc(e) by repeated multiplication or division.
func pow10(e float64) float64 {
	switch {
	case e > maxExponent:
		e = maxExponent
	case e < -maxExponent:
		e = -maxExponent
	}
	exp := int(e)
	p := 1.0
	if exp >= 0 {
		for i := 0; i < exp; i++ {
			p *= 10
		}
		return p
	}
	for i := 0; i < -exp; i++ {
		p /= 10
	}
	return p
}
