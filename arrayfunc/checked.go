package arrayfunc

import (
	"math"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

// intInfo carries the constants needed for overflow checks in code that is
// generic over all Number types. It is only meaningful for integer T.
type intInfo[T Number] struct {
	signed bool
	min    T
	negOne T
}

func newIntInfo[T Number](d arraylimits.Descriptor) intInfo[T] {
	info := intInfo[T]{signed: d.Kind() == arraylimits.KindSigned}
	if info.signed {
		var zero T
		info.min = T(d.MinInt())
		info.negOne = zero - 1
	}
	return info
}

func (n intInfo[T]) add(a, b T) (T, bool) {
	r := a + b
	if n.signed {
		return r, (b > 0 && r < a) || (b < 0 && r > a)
	}
	return r, r < a
}

func (n intInfo[T]) sub(a, b T) (T, bool) {
	r := a - b
	if n.signed {
		return r, (b > 0 && r > a) || (b < 0 && r < a)
	}
	return r, b > a
}

func (n intInfo[T]) mul(a, b T) (T, bool) {
	r := a * b
	if a == 0 || b == 0 {
		return r, false
	}
	if n.signed && ((a == n.negOne && b == n.min) || (b == n.negOne && a == n.min)) {
		return r, true
	}
	return r, r/a != b
}

// floorDiv rounds the quotient towards negative infinity. b must be non-zero.
func (n intInfo[T]) floorDiv(a, b T) (T, bool) {
	if n.signed && a == n.min && b == n.negOne {
		return a, true
	}
	q := a / b
	if n.signed && q*b != a && (a < 0) != (b < 0) {
		q--
	}
	return q, false
}

// mod returns a remainder with the sign of b. b must be non-zero.
func (n intInfo[T]) mod(a, b T) T {
	r := a - (a/b)*b
	if n.signed && r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// pow raises a to a non-negative exponent by repeated squaring.
func (n intInfo[T]) pow(a, e T) (T, bool) {
	result := T(1)
	overflow := false
	for e > 0 {
		if e-(e/2)*2 == 1 {
			var o bool
			result, o = n.mul(result, a)
			overflow = overflow || o
		}
		e /= 2
		if e > 0 {
			var o bool
			a, o = n.mul(a, a)
			overflow = overflow || o
		}
	}
	return result, overflow
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// floatMod returns a remainder with the sign of b.
func floatMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
