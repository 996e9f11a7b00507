//go:build (amd64 || arm64) && !purego

package simd

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-arrayfunc/internal/kernels/arch/generic"
	"github.com/cwbudde/algo-arrayfunc/internal/testutil"
)

func TestMatchesGeneric(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 8, 16, 33, 257} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			a := testutil.DeterministicNoise(int64(n), 100, n)
			b := testutil.Ramp(n, float64(n)*1.5, -1.5)

			got := make([]float64, n)
			want := make([]float64, n)

			AddBlock(got, a, b)
			generic.AddBlock(want, a, b)
			testutil.RequireBitExact(t, "AddBlock", got, want)

			MulBlock(got, a, b)
			generic.MulBlock(want, a, b)
			testutil.RequireBitExact(t, "MulBlock", got, want)

			ScaleBlock(got, a, 2.5)
			generic.ScaleBlock(want, a, 2.5)
			testutil.RequireBitExact(t, "ScaleBlock", got, want)

			// Summation order differs between variants.
			if s, w := Sum(a), generic.Sum(a); math.Abs(s-w) > 1e-9*math.Max(1, math.Abs(w)) {
				t.Errorf("Sum = %v, want %v", s, w)
			}
		})
	}
}
