package arrayfunc

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCount reports too few or too many arguments.
	ErrArgumentCount = errors.New("arrayfunc: wrong number of arguments")
	// ErrTypeMismatch reports an argument of the wrong Go type or kind.
	ErrTypeMismatch = errors.New("arrayfunc: argument type mismatch")
	// ErrEmptyContainer reports a zero-length input or output.
	ErrEmptyContainer = errors.New("arrayfunc: empty container")
	// ErrOutOfRange reports a value the element type cannot represent.
	ErrOutOfRange = errors.New("arrayfunc: value out of range")
	// ErrLengthMismatch reports arrays whose lengths differ.
	ErrLengthMismatch = errors.New("arrayfunc: array length mismatch")
	// ErrArithmeticOverflow reports an integer overflow or a non-finite
	// float result computed from finite inputs.
	ErrArithmeticOverflow = errors.New("arrayfunc: arithmetic overflow")
	// ErrZeroDivision reports division or modulo by zero.
	ErrZeroDivision = errors.New("arrayfunc: division by zero")
	// ErrMathDomain reports a math function evaluated outside its domain.
	ErrMathDomain = errors.New("arrayfunc: math domain error")
	// ErrInvalidOperator reports an unknown operator value.
	ErrInvalidOperator = errors.New("arrayfunc: invalid operator")
)

// ElementError records the element index at which an operation failed.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
