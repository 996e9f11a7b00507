package arrayfunc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

// Convert copies src into dst, converting between element types.
//
// Values the destination type cannot represent are ErrOutOfRange unless
// errors are ignored, in which case Go's conversion result is stored. Floats
// are truncated towards zero when converted to integers; NaN and infinities
// can never be converted to an integer type. Converting float64 to float32
// rejects finite values beyond ±math.MaxFloat32 and passes NaN and
// infinities through.
func Convert[S, D Number](dst []D, src []S, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}
	if len(src) == 0 {
		return fmt.Errorf("convert: %w", ErrEmptyContainer)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("convert: %d vs %d: %w", len(dst), len(src), ErrLengthMismatch)
	}

	from, to := arraylimits.Of[S](), arraylimits.Of[D]()
	fits := fitsFunc[S](from, to)
	check := !cfg.ignoreErrors

	return forEach(cfg, cfg.limit(len(src)), func(i int) error {
		v := src[i]
		ok, always := fits(v)
		if !ok && (check || always) {
			return fmt.Errorf("%v to %s: %w", v, to.Name(), ErrOutOfRange)
		}
		dst[i] = D(v)
		return nil
	})
}

// fitsFunc returns a predicate reporting whether a source value fits the
// destination type. always is set when the failure cannot be ignored.
func fitsFunc[S Number](from, to arraylimits.Descriptor) func(v S) (ok, always bool) {
	switch from.Kind() {
	case arraylimits.KindSigned:
		if to.Kind() == arraylimits.KindFloat {
			return func(S) (bool, bool) { return true, false }
		}
		return func(v S) (bool, bool) { return to.ContainsInt(int64(v)), false }
	case arraylimits.KindUnsigned:
		if to.Kind() == arraylimits.KindFloat {
			return func(S) (bool, bool) { return true, false }
		}
		return func(v S) (bool, bool) { return to.ContainsUint(uint64(v)), false }
	default:
		if to.Kind() == arraylimits.KindFloat {
			return func(v S) (bool, bool) { return to.ContainsFloat(float64(v)), false }
		}
		lo, hi := to.MinFloat(), to.MaxFloat()+1
		return func(v S) (bool, bool) {
			f := float64(v)
			if !isFinite(f) {
				return false, true
			}
			f = math.Trunc(f)
			return f >= lo && f < hi, false
		}
	}
}
