package arrayfunc

import "fmt"

// CmpOp selects a comparison.
type CmpOp uint8

const (
	CmpEq CmpOp = iota
	CmpNe
	CmpGt
	CmpGe
	CmpLt
	CmpLe

	numCmpOps
)

var cmpOpNames = [numCmpOps]string{
	CmpEq: "eq",
	CmpNe: "ne",
	CmpGt: "gt",
	CmpGe: "ge",
	CmpLt: "lt",
	CmpLe: "le",
}

func (op CmpOp) String() string {
	if op < numCmpOps {
		return cmpOpNames[op]
	}
	return fmt.Sprintf("CmpOp(%d)", uint8(op))
}

func (op CmpOp) valid() error {
	if op >= numCmpOps {
		return fmt.Errorf("%v: %w", op, ErrInvalidOperator)
	}
	return nil
}

// holds follows IEEE semantics: every comparison with NaN is false except Ne.
func holds[T Number](op CmpOp, a, b T) bool {
	switch op {
	case CmpEq:
		return a == b
	case CmpNe:
		return a != b
	case CmpGt:
		return a > b
	case CmpGe:
		return a >= b
	case CmpLt:
		return a < b
	default:
		return a <= b
	}
}

func prepareSearch[T Number](op CmpOp, x []T, opts []Option) (int, error) {
	if err := op.valid(); err != nil {
		return 0, err
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("%v: %w", op, ErrEmptyContainer)
	}
	return cfg.limit(len(x)), nil
}

// Compare reports whether x[i] op y[i] holds for every i.
func Compare[T Number](op CmpOp, x, y []T, opts ...Option) (bool, error) {
	n, err := prepareSearch(op, x, opts)
	if err != nil {
		return false, err
	}
	if len(y) != len(x) {
		return false, fmt.Errorf("%v: %d vs %d: %w", op, len(y), len(x), ErrLengthMismatch)
	}
	for i := 0; i < n; i++ {
		if !holds(op, x[i], y[i]) {
			return false, nil
		}
	}
	return true, nil
}

// All reports whether x[i] op v holds for every i.
func All[T Number](op CmpOp, x []T, v T, opts ...Option) (bool, error) {
	n, err := prepareSearch(op, x, opts)
	if err != nil {
		return false, err
	}
	for i := 0; i < n; i++ {
		if !holds(op, x[i], v) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether x[i] op v holds for at least one i.
func Any[T Number](op CmpOp, x []T, v T, opts ...Option) (bool, error) {
	i, err := FindIndex(op, x, v, opts...)
	return i >= 0, err
}

// FindIndex returns the first index i where x[i] op v holds, or -1.
func FindIndex[T Number](op CmpOp, x []T, v T, opts ...Option) (int, error) {
	n, err := prepareSearch(op, x, opts)
	if err != nil {
		return -1, err
	}
	for i := 0; i < n; i++ {
		if holds(op, x[i], v) {
			return i, nil
		}
	}
	return -1, nil
}

// FindIndices writes the indices where x[i] op v holds into dst and returns
// how many were written. The search stops once dst is full.
func FindIndices[T Number](op CmpOp, dst []int, x []T, v T, opts ...Option) (int, error) {
	n, err := prepareSearch(op, x, opts)
	if err != nil {
		return 0, err
	}
	if len(dst) == 0 {
		return 0, fmt.Errorf("%v: output: %w", op, ErrEmptyContainer)
	}
	count := 0
	for i := 0; i < n && count < len(dst); i++ {
		if holds(op, x[i], v) {
			dst[count] = i
			count++
		}
	}
	return count, nil
}
