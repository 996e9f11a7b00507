package arrayfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitwise(t *testing.T) {
	x := []uint8{0b1100, 0b1010, 0xff}
	y := []uint8{0b1010, 0b0110, 0x0f}

	tests := []struct {
		op   BitOp
		want []uint8
	}{
		{OpAnd, []uint8{0b1000, 0b0010, 0x0f}},
		{OpOr, []uint8{0b1110, 0b1110, 0xff}},
		{OpXor, []uint8{0b0110, 0b1100, 0xf0}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			dst := make([]uint8, len(x))
			require.NoError(t, Bitwise(tt.op, dst, x, y))
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestBitwiseShifts(t *testing.T) {
	dst := make([]int16, 3)
	require.NoError(t, Bitwise(OpLShift, dst, []int16{1, 1, 3}, []int16{0, 4, 14}))
	assert.Equal(t, []int16{1, 16, -16384}, dst)

	require.NoError(t, Bitwise(OpRShift, dst, []int16{-16, 256, 7}, []int16{2, 8, 0}))
	assert.Equal(t, []int16{-4, 1, 7}, dst)

	assert.ErrorIs(t, Bitwise(OpLShift, dst, []int16{1, 1, 1}, []int16{0, 16, 0}), ErrOutOfRange)
	assert.ErrorIs(t, Bitwise(OpRShift, dst, []int16{1, 1, 1}, []int16{0, -1, 0}), ErrOutOfRange)

	x := []int16{1, 2, 3}
	require.ErrorIs(t, Bitwise(OpLShift, x, x, []int16{1, 99, 1}), ErrOutOfRange)
	assert.Equal(t, []int16{2, 2, 3}, x)
}

func TestBitwiseScalar(t *testing.T) {
	dst := []uint32{9, 9}
	require.NoError(t, BitwiseScalar(OpLShift, dst, []uint32{1, 3}, 31))
	assert.Equal(t, []uint32{1 << 31, 1 << 31}, dst)

	dst = []uint32{9, 9}
	err := BitwiseScalar(OpRShift, dst, []uint32{1, 3}, 32)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, []uint32{9, 9}, dst, "dst must be untouched")
}

func TestBitwiseInvalid(t *testing.T) {
	assert.ErrorIs(t, Bitwise(BitOp(9), make([]int8, 1), []int8{1}, []int8{1}), ErrInvalidOperator)
	assert.ErrorIs(t, Bitwise(OpAnd, make([]int8, 1), []int8{1, 2}, []int8{1, 2}), ErrLengthMismatch)
}

func TestInvert(t *testing.T) {
	s := make([]int8, 3)
	require.NoError(t, Invert(s, []int8{0, -1, 5}))
	assert.Equal(t, []int8{-1, 0, -6}, s)

	u := make([]uint16, 2)
	require.NoError(t, Invert(u, []uint16{0, 0xff00}))
	assert.Equal(t, []uint16{0xffff, 0x00ff}, u)

	assert.ErrorIs(t, Invert([]uint64{}, []uint64{}), ErrEmptyContainer)
}
