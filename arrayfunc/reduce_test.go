package arrayfunc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumIntegers(t *testing.T) {
	s, err := Sum([]int16{100, -20, 3})
	require.NoError(t, err)
	assert.Equal(t, int16(83), s)

	_, err = Sum([]int8{100, 27, 1})
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	var ee *ElementError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 2, ee.Index)

	s8, err := Sum([]int8{100, 27, 1}, WithIgnoreErrors())
	require.NoError(t, err)
	assert.Equal(t, int8(-128), s8)

	u, err := Sum([]uint8{200, 55})
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u)

	_, err = Sum([]uint8{200, 56})
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestSumFloats(t *testing.T) {
	x := make([]float64, 1001)
	for i := range x {
		x[i] = float64(i)
	}
	s, err := Sum(x)
	require.NoError(t, err)
	assert.Equal(t, 500500.0, s)

	f, err := Sum([]float32{0.5, 0.25, 0.125})
	require.NoError(t, err)
	assert.Equal(t, float32(0.875), f)

	_, err = Sum([]float32{math.MaxFloat32, math.MaxFloat32})
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = Sum([]float64{math.MaxFloat64, math.MaxFloat64})
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	inf, err := Sum([]float64{1, math.Inf(1)})
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf, 1))

	part, err := Sum([]float64{1, 2, 4}, WithMaxLen(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, part)
}

func TestMaxMin(t *testing.T) {
	x := []int32{3, -7, 12, 0}

	hi, err := Max(x)
	require.NoError(t, err)
	assert.Equal(t, int32(12), hi)

	lo, err := Min(x)
	require.NoError(t, err)
	assert.Equal(t, int32(-7), lo)

	hi, err = Max(x, WithMaxLen(2))
	require.NoError(t, err)
	assert.Equal(t, int32(3), hi)

	nan, err := Max([]float64{1, math.NaN(), 3})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))

	_, err = Min([]uint64{})
	assert.ErrorIs(t, err, ErrEmptyContainer)
}
