package arrayfunc

import (
	"fmt"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

// Sum returns the sum of x. Integer overflow is an error unless errors are
// ignored, in which case the sum wraps. float32 sums accumulate in float64.
// A non-finite float sum of finite elements is ErrArithmeticOverflow.
func Sum[T Number](x []T, opts ...Option) (T, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("sum: %w", ErrEmptyContainer)
	}
	x = x[:cfg.limit(len(x))]
	check := !cfg.ignoreErrors

	d := arraylimits.Of[T]()
	if d.Kind() == arraylimits.KindFloat {
		var total float64
		if f, ok := any(x).([]float64); ok {
			total = kernels.SumFloat64(f)
		} else {
			for _, v := range x {
				total += float64(v)
			}
		}
		r := T(total)
		if check && !isFinite(float64(r)) && allFinite(x) {
			return r, fmt.Errorf("sum: %w", ErrArithmeticOverflow)
		}
		return r, nil
	}

	info := newIntInfo[T](d)
	var total T
	for i, v := range x {
		var overflow bool
		total, overflow = info.add(total, v)
		if overflow && check {
			return total, fmt.Errorf("sum: %w", &ElementError{Index: i, Err: ErrArithmeticOverflow})
		}
	}
	return total, nil
}

func allFinite[T Number](x []T) bool {
	for _, v := range x {
		if !isFinite(float64(v)) {
			return false
		}
	}
	return true
}

// Max returns the largest element of x. NaN elements propagate.
func Max[T Number](x []T, opts ...Option) (T, error) {
	return extreme("max", x, opts, func(a, b T) T { return max(a, b) })
}

// Min returns the smallest element of x. NaN elements propagate.
func Min[T Number](x []T, opts ...Option) (T, error) {
	return extreme("min", x, opts, func(a, b T) T { return min(a, b) })
}

func extreme[T Number](name string, x []T, opts []Option, pick func(a, b T) T) (T, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("%s: %w", name, ErrEmptyContainer)
	}
	n := cfg.limit(len(x))
	r := x[0]
	for i := 1; i < n; i++ {
		r = pick(r, x[i])
	}
	return r, nil
}
