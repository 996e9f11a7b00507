package arrayfunc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

// Count fills buf with start, start+step, start+2*step, ... The step is
// optional and defaults to 1. Passing more than one step is an error.
//
// Each element is derived from the previous stored element. When a value
// leaves the element type's range:
//
//   - integers wrap around: max+1 becomes min and min-1 becomes max;
//   - float32 becomes +Inf (non-negative step) or -Inf (negative step);
//   - float64 is stored as IEEE addition produced it.
//
// NaN and infinite values propagate by ordinary float addition. buf is not
// modified unless the call succeeds.
func Count[T Number](buf []T, start T, step ...T) error {
	if len(step) > 1 {
		return fmt.Errorf("count: %d step values: %w", len(step), ErrArgumentCount)
	}
	if len(buf) == 0 {
		return fmt.Errorf("count: %w", ErrEmptyContainer)
	}

	inc := T(1)
	if len(step) == 1 {
		inc = step[0]
	}
	fillCount(buf, start, inc)
	return nil
}

// CountAny is the untyped form of Count: CountAny(buf, start) or
// CountAny(buf, start, step). buf must be a slice of one of the twelve
// element types. start and step must be Go integer values for integer
// slices and Go float values for float slices, and must lie within the
// element type's range.
//
// The checks run in this order and all of them precede the first write:
// argument count, slice type, slice length, start, step.
func CountAny(buf any, args ...any) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("count: got %d arguments after the buffer, want 1 or 2: %w", len(args), ErrArgumentCount)
	}

	switch b := buf.(type) {
	case []int8:
		return countAny(b, args)
	case []uint8:
		return countAny(b, args)
	case []int16:
		return countAny(b, args)
	case []uint16:
		return countAny(b, args)
	case []int32:
		return countAny(b, args)
	case []uint32:
		return countAny(b, args)
	case []int:
		return countAny(b, args)
	case []uint:
		return countAny(b, args)
	case []int64:
		return countAny(b, args)
	case []uint64:
		return countAny(b, args)
	case []float32:
		return countAny(b, args)
	case []float64:
		return countAny(b, args)
	default:
		return fmt.Errorf("count: buffer has unsupported type %T: %w", buf, ErrTypeMismatch)
	}
}

func countAny[T Number](buf []T, args []any) error {
	if len(buf) == 0 {
		return fmt.Errorf("count: %w", ErrEmptyContainer)
	}

	start, err := scalarArg[T]("start", args[0])
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if len(args) == 1 {
		return Count(buf, start)
	}

	step, err := scalarArg[T]("step", args[1])
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	return Count(buf, start, step)
}

func fillCount[T Number](buf []T, start, step T) {
	d := arraylimits.Of[T]()
	buf[0] = start

	if d.Policy() == arraylimits.ClampInf {
		fillCountClamped(buf, float64(step), d.MaxFloat())
		return
	}

	// Go integer addition wraps modulo 2^bits, which is exactly the rollover
	// rule; float64 addition is left as IEEE defines it.
	for i := 1; i < len(buf); i++ {
		buf[i] = buf[i-1] + step
	}
}

// fillCountClamped advances in float64 so that crossing ±limit is detected
// before the narrowing store.
func fillCountClamped[T Number](buf []T, step, limit float64) {
	for i := 1; i < len(buf); i++ {
		next := float64(buf[i-1]) + step
		switch {
		case step >= 0 && next > limit:
			buf[i] = T(math.Inf(1))
		case step < 0 && next < -limit:
			buf[i] = T(math.Inf(-1))
		default:
			buf[i] = T(next)
		}
	}
}
