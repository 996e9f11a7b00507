package arrayfunc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

// Neg computes dst[i] = -src[i] for signed integer and float element types.
// Negating the minimum of a signed type overflows.
func Neg[T Number](dst, src []T, opts ...Option) error {
	return unary("neg", dst, src, opts, func(v T, n intInfo[T]) (T, bool) {
		return -v, n.signed && v == n.min
	})
}

// Abs computes dst[i] = |src[i]|. The absolute value of the minimum of a
// signed type overflows. For unsigned types Abs copies.
func Abs[T Number](dst, src []T, opts ...Option) error {
	return unary("abs", dst, src, opts, func(v T, n intInfo[T]) (T, bool) {
		if v < 0 {
			return -v, n.signed && v == n.min
		}
		return v, false
	})
}

func unary[T Number](name string, dst, src []T, opts []Option, f func(v T, n intInfo[T]) (T, bool)) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	d := arraylimits.Of[T]()
	if name == "neg" && d.Kind() == arraylimits.KindUnsigned {
		return fmt.Errorf("%s on %s: %w", name, d.Name(), ErrTypeMismatch)
	}
	if err := checkLengths(src, dst); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	info := newIntInfo[T](d)
	check := !cfg.ignoreErrors
	return storeEach(cfg, dst, cfg.limit(len(src)), func(i int) (T, error) {
		r, overflow := f(src[i], info)
		if overflow && check {
			return r, ErrArithmeticOverflow
		}
		return r, nil
	})
}

// MathFunc selects a float math function for Math.
type MathFunc uint8

const (
	Sqrt MathFunc = iota
	Exp
	Expm1
	Log
	Log10
	Log1p
	Log2
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Sinh
	Cosh
	Tanh
	Asinh
	Acosh
	Atanh
	Ceil
	Floor
	Trunc
	Fabs

	numMathFuncs
)

type mathEntry struct {
	name string
	fn   func(float64) float64
	// poleIsDomain reports an infinite result from a finite argument as a
	// domain error (log(0), atanh(1)) rather than an overflow.
	poleIsDomain bool
}

var mathFuncs = [numMathFuncs]mathEntry{
	Sqrt:  {name: "sqrt", fn: math.Sqrt},
	Exp:   {name: "exp", fn: math.Exp},
	Expm1: {name: "expm1", fn: math.Expm1},
	Log:   {name: "log", fn: math.Log, poleIsDomain: true},
	Log10: {name: "log10", fn: math.Log10, poleIsDomain: true},
	Log1p: {name: "log1p", fn: math.Log1p, poleIsDomain: true},
	Log2:  {name: "log2", fn: math.Log2, poleIsDomain: true},
	Sin:   {name: "sin", fn: math.Sin},
	Cos:   {name: "cos", fn: math.Cos},
	Tan:   {name: "tan", fn: math.Tan},
	Asin:  {name: "asin", fn: math.Asin},
	Acos:  {name: "acos", fn: math.Acos},
	Atan:  {name: "atan", fn: math.Atan},
	Sinh:  {name: "sinh", fn: math.Sinh},
	Cosh:  {name: "cosh", fn: math.Cosh},
	Tanh:  {name: "tanh", fn: math.Tanh},
	Asinh: {name: "asinh", fn: math.Asinh},
	Acosh: {name: "acosh", fn: math.Acosh},
	Atanh: {name: "atanh", fn: math.Atanh, poleIsDomain: true},
	Ceil:  {name: "ceil", fn: math.Ceil},
	Floor: {name: "floor", fn: math.Floor},
	Trunc: {name: "trunc", fn: math.Trunc},
	Fabs:  {name: "fabs", fn: math.Abs},
}

func (f MathFunc) String() string {
	if f < numMathFuncs {
		return mathFuncs[f].name
	}
	return fmt.Sprintf("MathFunc(%d)", uint8(f))
}

// Math computes dst[i] = fn(src[i]). With error checking enabled, a NaN
// result from a non-NaN argument is ErrMathDomain and an infinite result
// from a finite argument is ErrArithmeticOverflow (ErrMathDomain at the
// poles of the logarithms and atanh). For float32 the check applies after
// narrowing.
func Math[T Float](fn MathFunc, dst, src []T, opts ...Option) error {
	if fn >= numMathFuncs {
		return fmt.Errorf("%v: %w", fn, ErrInvalidOperator)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	if err := checkLengths(src, dst); err != nil {
		return fmt.Errorf("%v: %w", fn, err)
	}

	entry := mathFuncs[fn]
	check := !cfg.ignoreErrors
	return storeEach(cfg, dst, cfg.limit(len(src)), func(i int) (T, error) {
		in := float64(src[i])
		r := T(entry.fn(in))
		if !check {
			return r, nil
		}
		out := float64(r)
		switch {
		case math.IsNaN(out) && !math.IsNaN(in):
			return r, ErrMathDomain
		case math.IsInf(out, 0) && isFinite(in):
			if entry.poleIsDomain {
				return r, ErrMathDomain
			}
			return r, ErrArithmeticOverflow
		}
		return r, nil
	})
}
