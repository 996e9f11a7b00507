package arrayfunc

import (
	"fmt"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

// BitOp selects a bitwise operation for integer arrays.
type BitOp uint8

const (
	OpAnd BitOp = iota
	OpOr
	OpXor
	OpLShift
	OpRShift

	numBitOps
)

var bitOpNames = [numBitOps]string{
	OpAnd:    "and",
	OpOr:     "or",
	OpXor:    "xor",
	OpLShift: "lshift",
	OpRShift: "rshift",
}

func (op BitOp) String() string {
	if op < numBitOps {
		return bitOpNames[op]
	}
	return fmt.Sprintf("BitOp(%d)", uint8(op))
}

func bitKernel[T Integer](op BitOp) (func(a, b T) (T, error), error) {
	bits := T(arraylimits.Of[T]().Bits())
	shift := func(b T) error {
		if b < 0 || b >= bits {
			return fmt.Errorf("shift count %v: %w", b, ErrOutOfRange)
		}
		return nil
	}

	switch op {
	case OpAnd:
		return func(a, b T) (T, error) { return a & b, nil }, nil
	case OpOr:
		return func(a, b T) (T, error) { return a | b, nil }, nil
	case OpXor:
		return func(a, b T) (T, error) { return a ^ b, nil }, nil
	case OpLShift:
		return func(a, b T) (T, error) {
			if err := shift(b); err != nil {
				return 0, err
			}
			return a << uint(b), nil
		}, nil
	case OpRShift:
		return func(a, b T) (T, error) {
			if err := shift(b); err != nil {
				return 0, err
			}
			return a >> uint(b), nil
		}, nil
	default:
		return nil, fmt.Errorf("%v: %w", op, ErrInvalidOperator)
	}
}

// Bitwise computes dst[i] = x[i] op y[i]. Shift counts must lie in
// [0, bits). dst may alias x or y.
func Bitwise[T Integer](op BitOp, dst, x, y []T, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	f, err := bitKernel[T](op)
	if err != nil {
		return err
	}
	if err := checkLengths(x, y, dst); err != nil {
		return fmt.Errorf("%v: %w", op, err)
	}

	return storeEach(cfg, dst, cfg.limit(len(x)), func(i int) (T, error) {
		return f(x[i], y[i])
	})
}

// BitwiseScalar computes dst[i] = x[i] op y. An invalid shift count is
// rejected before dst is written.
func BitwiseScalar[T Integer](op BitOp, dst, x []T, y T, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	f, err := bitKernel[T](op)
	if err != nil {
		return err
	}
	if err := checkLengths(x, dst); err != nil {
		return fmt.Errorf("%v: %w", op, err)
	}
	if _, err := f(0, y); err != nil {
		return fmt.Errorf("%v: %w", op, err)
	}

	return storeEach(cfg, dst, cfg.limit(len(x)), func(i int) (T, error) {
		return f(x[i], y)
	})
}

// Invert computes dst[i] = ^src[i].
func Invert[T Integer](dst, src []T, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	if err := checkLengths(src, dst); err != nil {
		return fmt.Errorf("invert: %w", err)
	}

	return forEach(cfg, cfg.limit(len(src)), func(i int) error {
		dst[i] = ^src[i]
		return nil
	})
}
