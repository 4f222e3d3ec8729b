package calc

import (
	"errors"
	"strconv"
)

// Kinds of errors. Every error resulting from invalid input matches exactly
// one of these with errors.Is.
var (
	// ErrInvalidExpression means the input had no numbers or operators.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrMalformedExpression means the numbers and operators in the input
	// do not form an expression, e.g. an operator is missing an operand.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrDivisionByZero means a divisor was zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidInput means an argument was outside a function's domain.
	ErrInvalidInput = errors.New("invalid input")
)

// EmptyExpressionError is an error indicating an input with no tokens. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// OperandError is an error indicating an operator without enough operands,
// as in "5+" or "2++3". It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was missing operands.
	Operator string
	// Have is the number of operands that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// ExtraOperandError is an error indicating numbers with no operator between
// them, as in "2 3". It implements InputError.
type ExtraOperandError struct {
	// Col is the position of the last number in the expression.
	Col int
	// Count is the number of values left over after evaluation.
	Count int
}

func (err *ExtraOperandError) Error() string {
	return errpos(err.Col, strconv.Itoa(err.Count)+" values with no operator between them")
}

func (err *ExtraOperandError) Pos() int {
	return err.Col
}

func (err *ExtraOperandError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input to Parse or Context.Eval implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ExtraOperandError)(nil)
	_ InputError = DomainError{}
)
