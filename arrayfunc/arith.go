package arrayfunc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
	"github.com/cwbudde/algo-arrayfunc/internal/parallel"
)

// BinaryOp selects an element-wise arithmetic operation.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpTrueDiv  // float division; float element types only
	OpFloorDiv // quotient rounded towards negative infinity
	OpMod      // remainder with the sign of the divisor
	OpPow
	OpMin
	OpMax

	numBinaryOps
)

var binaryOpNames = [numBinaryOps]string{
	OpAdd:      "add",
	OpSub:      "sub",
	OpMul:      "mul",
	OpTrueDiv:  "truediv",
	OpFloorDiv: "floordiv",
	OpMod:      "mod",
	OpPow:      "pow",
	OpMin:      "min",
	OpMax:      "max",
}

func (op BinaryOp) String() string {
	if op < numBinaryOps {
		return binaryOpNames[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", uint8(op))
}

type binaryFunc[T Number] func(a, b T) (T, error)

// binaryKernel returns the per-element function for op. When check is false
// integer results wrap and float results are left as computed.
func binaryKernel[T Number](op BinaryOp, check bool) (binaryFunc[T], error) {
	if op >= numBinaryOps {
		return nil, fmt.Errorf("%v: %w", op, ErrInvalidOperator)
	}
	d := arraylimits.Of[T]()
	if d.Kind() == arraylimits.KindFloat {
		return floatBinaryKernel[T](op, check), nil
	}
	if op == OpTrueDiv {
		return nil, fmt.Errorf("%v on %s: %w", op, d.Name(), ErrTypeMismatch)
	}
	return intBinaryKernel(op, newIntInfo[T](d), check), nil
}

func intBinaryKernel[T Number](op BinaryOp, n intInfo[T], check bool) binaryFunc[T] {
	wrapErr := func(r T, overflow bool) (T, error) {
		if overflow && check {
			return r, ErrArithmeticOverflow
		}
		return r, nil
	}

	switch op {
	case OpAdd:
		return func(a, b T) (T, error) { return wrapErr(n.add(a, b)) }
	case OpSub:
		return func(a, b T) (T, error) { return wrapErr(n.sub(a, b)) }
	case OpMul:
		return func(a, b T) (T, error) { return wrapErr(n.mul(a, b)) }
	case OpFloorDiv:
		return func(a, b T) (T, error) {
			if b == 0 {
				return 0, ErrZeroDivision
			}
			return wrapErr(n.floorDiv(a, b))
		}
	case OpMod:
		return func(a, b T) (T, error) {
			if b == 0 {
				return 0, ErrZeroDivision
			}
			return n.mod(a, b), nil
		}
	case OpPow:
		return func(a, b T) (T, error) {
			if b < 0 {
				return 0, fmt.Errorf("negative exponent %v: %w", b, ErrOutOfRange)
			}
			return wrapErr(n.pow(a, b))
		}
	case OpMin:
		return func(a, b T) (T, error) { return min(a, b), nil }
	default:
		return func(a, b T) (T, error) { return max(a, b), nil }
	}
}

func floatBinaryKernel[T Number](op BinaryOp, check bool) binaryFunc[T] {
	// result validates r computed from finite a and b. NaN inputs propagate.
	result := func(a, b, r T) (T, error) {
		if !check {
			return r, nil
		}
		fa, fb, fr := float64(a), float64(b), float64(r)
		if isFinite(fa) && isFinite(fb) && !isFinite(fr) {
			if math.IsNaN(fr) {
				return r, ErrMathDomain
			}
			return r, ErrArithmeticOverflow
		}
		return r, nil
	}
	divisor := func(b T) error {
		if check && b == 0 {
			return ErrZeroDivision
		}
		return nil
	}

	switch op {
	case OpAdd:
		return func(a, b T) (T, error) { return result(a, b, a+b) }
	case OpSub:
		return func(a, b T) (T, error) { return result(a, b, a-b) }
	case OpMul:
		return func(a, b T) (T, error) { return result(a, b, a*b) }
	case OpTrueDiv:
		return func(a, b T) (T, error) {
			if err := divisor(b); err != nil {
				return 0, err
			}
			return result(a, b, a/b)
		}
	case OpFloorDiv:
		return func(a, b T) (T, error) {
			if err := divisor(b); err != nil {
				return 0, err
			}
			return result(a, b, T(math.Floor(float64(a)/float64(b))))
		}
	case OpMod:
		return func(a, b T) (T, error) {
			if err := divisor(b); err != nil {
				return 0, err
			}
			return result(a, b, T(floatMod(float64(a), float64(b))))
		}
	case OpPow:
		return func(a, b T) (T, error) {
			return result(a, b, T(math.Pow(float64(a), float64(b))))
		}
	case OpMin:
		return func(a, b T) (T, error) { return min(a, b), nil }
	default:
		return func(a, b T) (T, error) { return max(a, b), nil }
	}
}

// Apply computes dst[i] = x[i] op y[i]. dst may alias x or y.
//
// Argument errors leave dst untouched. When an element fails, dst[i] keeps
// its previous value and the error is an *ElementError for that index.
// Elements before it hold their results; with WithParallelism, elements in
// other chunks may hold results too. float64 OpAdd and OpMul run through
// the block kernels, which write every element before results are checked:
// on overflow the whole of dst holds the IEEE results, ±Inf at the failing
// index included.
func Apply[T Number](op BinaryOp, dst, x, y []T, opts ...Option) error {
	cfg, f, err := prepareBinary[T](op, opts)
	if err != nil {
		return err
	}
	if err := checkLengths(x, y, dst); err != nil {
		return fmt.Errorf("%v: %w", op, err)
	}
	n := cfg.limit(len(x))

	if done, err := applyFloat64Kernel(op, cfg, dst[:n], x[:n], y[:n]); done {
		return err
	}

	return storeEach(cfg, dst, n, func(i int) (T, error) {
		return f(x[i], y[i])
	})
}

// ApplyScalar computes dst[i] = x[i] op y. dst may alias x. Errors leave
// dst as described for Apply; float64 OpMul uses the block kernels.
func ApplyScalar[T Number](op BinaryOp, dst, x []T, y T, opts ...Option) error {
	cfg, f, err := prepareBinary[T](op, opts)
	if err != nil {
		return err
	}
	if err := checkLengths(x, dst); err != nil {
		return fmt.Errorf("%v: %w", op, err)
	}
	n := cfg.limit(len(x))

	if op == OpMul {
		if done, err := scaleFloat64Kernel(cfg, dst[:n], x[:n], y); done {
			return err
		}
	}

	return storeEach(cfg, dst, n, func(i int) (T, error) {
		return f(x[i], y)
	})
}

// ApplyScalarLeft computes dst[i] = x op y[i]. dst may alias y.
func ApplyScalarLeft[T Number](op BinaryOp, dst []T, x T, y []T, opts ...Option) error {
	cfg, f, err := prepareBinary[T](op, opts)
	if err != nil {
		return err
	}
	if err := checkLengths(y, dst); err != nil {
		return fmt.Errorf("%v: %w", op, err)
	}
	n := cfg.limit(len(y))

	return storeEach(cfg, dst, n, func(i int) (T, error) {
		return f(x, y[i])
	})
}

// Add computes dst[i] = x[i] + y[i].
func Add[T Number](dst, x, y []T, opts ...Option) error {
	return Apply(OpAdd, dst, x, y, opts...)
}

// Sub computes dst[i] = x[i] - y[i].
func Sub[T Number](dst, x, y []T, opts ...Option) error {
	return Apply(OpSub, dst, x, y, opts...)
}

// Mul computes dst[i] = x[i] * y[i].
func Mul[T Number](dst, x, y []T, opts ...Option) error {
	return Apply(OpMul, dst, x, y, opts...)
}

// TrueDiv computes dst[i] = x[i] / y[i] for float element types.
func TrueDiv[T Float](dst, x, y []T, opts ...Option) error {
	return Apply(OpTrueDiv, dst, x, y, opts...)
}

func prepareBinary[T Number](op BinaryOp, opts []Option) (config, binaryFunc[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return config{}, nil, err
	}
	f, err := binaryKernel[T](op, !cfg.ignoreErrors)
	if err != nil {
		return config{}, nil, err
	}
	return cfg, f, nil
}

// checkLengths requires a non-empty first array and equal lengths.
func checkLengths[T any](first []T, rest ...[]T) error {
	if len(first) == 0 {
		return ErrEmptyContainer
	}
	for _, r := range rest {
		if len(r) != len(first) {
			return fmt.Errorf("%d vs %d: %w", len(r), len(first), ErrLengthMismatch)
		}
	}
	return nil
}

// storeEach sets dst[i] to the result of fn(i) for every index in [0, n).
// A failing element is not stored.
func storeEach[T any](cfg config, dst []T, n int, fn func(i int) (T, error)) error {
	return forEach(cfg, n, func(i int) error {
		r, err := fn(i)
		if err != nil {
			return err
		}
		dst[i] = r
		return nil
	})
}

// forEach runs fn for every index in [0, n), splitting the range across
// goroutines when configured. Errors are annotated with their index.
func forEach(cfg config, n int, fn func(i int) error) error {
	return parallel.For(n, cfg.parallelism, minParallelChunk, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := fn(i); err != nil {
				return &ElementError{Index: i, Err: err}
			}
		}
		return nil
	})
}

// applyFloat64Kernel routes float64 add and mul through the SIMD kernels.
// It reports done=false when the generic path must run instead, which is the
// case for other types and ops, and for checked inputs containing non-finite
// values, whose results need per-element classification.
func applyFloat64Kernel[T Number](op BinaryOp, cfg config, dst, x, y []T) (done bool, err error) {
	if op != OpAdd && op != OpMul {
		return false, nil
	}
	d, ok := any(dst).([]float64)
	if !ok {
		return false, nil
	}
	a, b := any(x).([]float64), any(y).([]float64)
	check := !cfg.ignoreErrors
	if check && (firstNonFinite(a) >= 0 || firstNonFinite(b) >= 0) {
		return false, nil
	}

	err = parallel.For(len(d), cfg.parallelism, minParallelChunk, func(lo, hi int) error {
		if op == OpAdd {
			kernels.AddFloat64(d[lo:hi], a[lo:hi], b[lo:hi])
		} else {
			kernels.MulFloat64(d[lo:hi], a[lo:hi], b[lo:hi])
		}
		return nil
	})
	if err == nil && check {
		if i := firstNonFinite(d); i >= 0 {
			err = &ElementError{Index: i, Err: ErrArithmeticOverflow}
		}
	}
	return true, err
}

func scaleFloat64Kernel[T Number](cfg config, dst, x []T, y T) (done bool, err error) {
	d, ok := any(dst).([]float64)
	if !ok {
		return false, nil
	}
	a, s := any(x).([]float64), float64(y)
	check := !cfg.ignoreErrors
	if check && (!isFinite(s) || firstNonFinite(a) >= 0) {
		return false, nil
	}

	err = parallel.For(len(d), cfg.parallelism, minParallelChunk, func(lo, hi int) error {
		kernels.ScaleFloat64(d[lo:hi], a[lo:hi], s)
		return nil
	})
	if err == nil && check {
		if i := firstNonFinite(d); i >= 0 {
			err = &ElementError{Index: i, Err: ErrArithmeticOverflow}
		}
	}
	return true, err
}

func firstNonFinite(x []float64) int {
	for i, v := range x {
		if !isFinite(v) {
			return i
		}
	}
	return -1
}
