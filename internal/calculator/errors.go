package calculator

import "fmt"

// Kind classifies a client error. Every kind maps to HTTP 400.
type Kind int

const (
	MissingParameter Kind = iota + 1
	InvalidNumber
	InvalidOperation
	InvalidOperands
	DivisionByZero
)

func (k Kind) String() string {
	switch k {
	case MissingParameter:
		return "missing_parameter"
	case InvalidNumber:
		return "invalid_number"
	case InvalidOperation:
		return "invalid_operation"
	case InvalidOperands:
		return "invalid_operands"
	case DivisionByZero:
		return "division_by_zero"
	default:
		return "unknown"
	}
}

// Error is a request-level failure. Message is returned to the client as is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on Kind so callers can compare against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidOperation = &Error{Kind: InvalidOperation, Message: "Invalid or missing 'op'. Use: add/sub/mul/div"}
	ErrInvalidOperands  = &Error{Kind: InvalidOperands, Message: "Fields 'a' and 'b' must be numbers"}
	ErrDivisionByZero   = &Error{Kind: DivisionByZero, Message: "Division by zero is not allowed"}
)

func errMissingParameter(name string) *Error {
	return &Error{Kind: MissingParameter, Message: fmt.Sprintf("Missing query parameter: '%s'", name)}
}

func errInvalidNumber(name, raw string) *Error {
	return &Error{Kind: InvalidNumber, Message: fmt.Sprintf("Invalid number for '%s': '%s'", name, raw)}
}
