package calculator

// ParseOperation reports whether s names a supported operation.
func ParseOperation(s string) (Operation, bool) {
	for _, op := range Operations {
		if string(op) == s {
			return op, true
		}
	}
	return "", false
}

// Apply computes a op b. Division by exactly zero, either sign, is rejected.
func (op Operation) Apply(a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrInvalidOperation
	}
}
