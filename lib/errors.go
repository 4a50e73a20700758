package lib

import "errors"

// The four failure kinds an evaluation can end in. DivisionByZero and
// Overflow carry no detail beyond their kind; the other two name the
// offending token or operation.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}

func newInvalidInput(msg string) *InvalidInputError {
	return &InvalidInputError{Message: msg}
}

type UnknownOperatorError struct {
	Token string
}

func (e *UnknownOperatorError) Error() string {
	return "unknown operator: " + e.Token
}

func newUnknownOperator(tok string) *UnknownOperatorError {
	return &UnknownOperatorError{Token: tok}
}
