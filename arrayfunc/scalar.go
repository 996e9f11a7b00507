package arrayfunc

import (
	"fmt"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

// scalarKind classifies an untyped scalar argument.
type scalarKind uint8

const (
	scalarInvalid scalarKind = iota
	scalarInt
	scalarUint
	scalarFloat
)

// scalar is an untyped numeric argument widened to 64 bits.
type scalar struct {
	kind scalarKind
	i    int64
	u    uint64
	f    float64
}

func classify(v any) scalar {
	switch x := v.(type) {
	case int:
		return scalar{kind: scalarInt, i: int64(x)}
	case int8:
		return scalar{kind: scalarInt, i: int64(x)}
	case int16:
		return scalar{kind: scalarInt, i: int64(x)}
	case int32:
		return scalar{kind: scalarInt, i: int64(x)}
	case int64:
		return scalar{kind: scalarInt, i: x}
	case uint:
		return scalar{kind: scalarUint, u: uint64(x)}
	case uint8:
		return scalar{kind: scalarUint, u: uint64(x)}
	case uint16:
		return scalar{kind: scalarUint, u: uint64(x)}
	case uint32:
		return scalar{kind: scalarUint, u: uint64(x)}
	case uint64:
		return scalar{kind: scalarUint, u: x}
	case float32:
		return scalar{kind: scalarFloat, f: float64(x)}
	case float64:
		return scalar{kind: scalarFloat, f: x}
	default:
		return scalar{}
	}
}

// scalarArg converts an untyped argument to the element type T. Integer
// arguments are accepted only for integer element types and float arguments
// only for float element types.
func scalarArg[T Number](name string, v any) (T, error) {
	d := arraylimits.Of[T]()
	s := classify(v)

	switch s.kind {
	case scalarInt, scalarUint:
		if !d.Kind().IsInteger() {
			return 0, fmt.Errorf("%s %v (%T) for %s array: %w", name, v, v, d.Name(), ErrTypeMismatch)
		}
	case scalarFloat:
		if d.Kind() != arraylimits.KindFloat {
			return 0, fmt.Errorf("%s %v (%T) for %s array: %w", name, v, v, d.Name(), ErrTypeMismatch)
		}
	default:
		return 0, fmt.Errorf("%s has non-numeric type %T: %w", name, v, ErrTypeMismatch)
	}

	switch s.kind {
	case scalarInt:
		if !d.ContainsInt(s.i) {
			return 0, fmt.Errorf("%s %d outside %s range: %w", name, s.i, d.Name(), ErrOutOfRange)
		}
		return T(s.i), nil
	case scalarUint:
		if !d.ContainsUint(s.u) {
			return 0, fmt.Errorf("%s %d outside %s range: %w", name, s.u, d.Name(), ErrOutOfRange)
		}
		return T(s.u), nil
	default:
		if !d.ContainsFloat(s.f) {
			return 0, fmt.Errorf("%s %g outside %s range: %w", name, s.f, d.Name(), ErrOutOfRange)
		}
		return T(s.f), nil
	}
}
