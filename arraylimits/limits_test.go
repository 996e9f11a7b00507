package arraylimits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableOrderAndSize(t *testing.T) {
	tbl := Table()
	require.Len(t, tbl, 12)
	for i, d := range tbl {
		assert.Equal(t, Code(i), d.Code(), "entry %d out of order", i)
		got, ok := Lookup(d.Code())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
}

func TestTableIsCopy(t *testing.T) {
	tbl := Table()
	tbl[0] = Descriptor{}
	d, _ := Lookup(Int8)
	assert.Equal(t, "int8", d.Name())
}

func TestLookupInvalid(t *testing.T) {
	_, ok := Lookup(Code(200))
	assert.False(t, ok)
	assert.Equal(t, "Code(200)", Code(200).String())
}

func TestIntegerBounds(t *testing.T) {
	tests := []struct {
		code    Code
		minInt  int64
		maxUint uint64
		kind    Kind
		bits    int
	}{
		{Int8, math.MinInt8, math.MaxInt8, KindSigned, 8},
		{Uint8, 0, math.MaxUint8, KindUnsigned, 8},
		{Int16, math.MinInt16, math.MaxInt16, KindSigned, 16},
		{Uint16, 0, math.MaxUint16, KindUnsigned, 16},
		{Int32, math.MinInt32, math.MaxInt32, KindSigned, 32},
		{Uint32, 0, math.MaxUint32, KindUnsigned, 32},
		{Int64, math.MinInt64, math.MaxInt64, KindSigned, 64},
		{Uint64, 0, math.MaxUint64, KindUnsigned, 64},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			d, ok := Lookup(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.minInt, d.MinInt())
			assert.Equal(t, tt.maxUint, d.MaxUint())
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.bits, d.Bits())
			assert.Equal(t, Wrap, d.Policy())
		})
	}
}

func TestFloatBounds(t *testing.T) {
	f32 := Of[float32]()
	assert.Equal(t, math.MaxFloat32, f32.MaxFloat())
	assert.Equal(t, -math.MaxFloat32, f32.MinFloat())
	assert.Equal(t, ClampInf, f32.Policy())

	f64 := Of[float64]()
	assert.Equal(t, math.MaxFloat64, f64.MaxFloat())
	assert.Equal(t, -math.MaxFloat64, f64.MinFloat())
	assert.Equal(t, Unbounded, f64.Policy())
}

func TestMaxIntSaturatesForUint64(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), Of[uint64]().MaxInt())
	assert.Equal(t, int64(math.MaxUint32), Of[uint32]().MaxInt())
}

func TestOfMatchesGoTypes(t *testing.T) {
	assert.Equal(t, Int8, Of[int8]().Code())
	assert.Equal(t, Uint8, Of[uint8]().Code())
	assert.Equal(t, Int16, Of[int16]().Code())
	assert.Equal(t, Uint16, Of[uint16]().Code())
	assert.Equal(t, Int32, Of[int32]().Code())
	assert.Equal(t, Uint32, Of[uint32]().Code())
	assert.Equal(t, Int, Of[int]().Code())
	assert.Equal(t, Uint, Of[uint]().Code())
	assert.Equal(t, Int64, Of[int64]().Code())
	assert.Equal(t, Uint64, Of[uint64]().Code())
	assert.Equal(t, Float32, Of[float32]().Code())
	assert.Equal(t, Float64, Of[float64]().Code())
}

func TestMinMaxNativeTypes(t *testing.T) {
	assert.Equal(t, int8(-128), Of[int8]().Min())
	assert.Equal(t, int8(127), Of[int8]().Max())
	assert.Equal(t, uint16(0), Of[uint16]().Min())
	assert.Equal(t, uint64(math.MaxUint64), Of[uint64]().Max())
	assert.Equal(t, float32(math.MaxFloat32), Of[float32]().Max())
	assert.Equal(t, -math.MaxFloat64, Of[float64]().Min())
}

func TestContains(t *testing.T) {
	i8 := Of[int8]()
	assert.True(t, i8.ContainsInt(127))
	assert.False(t, i8.ContainsInt(128))
	assert.True(t, i8.ContainsInt(-128))
	assert.False(t, i8.ContainsInt(-129))
	assert.True(t, i8.ContainsUint(127))
	assert.False(t, i8.ContainsUint(128))
	assert.False(t, i8.ContainsFloat(1))

	u8 := Of[uint8]()
	assert.False(t, u8.ContainsInt(-1))
	assert.True(t, u8.ContainsUint(255))
	assert.False(t, u8.ContainsUint(256))

	u64 := Of[uint64]()
	assert.True(t, u64.ContainsUint(math.MaxUint64))
	assert.True(t, u64.ContainsInt(math.MaxInt64))

	f32 := Of[float32]()
	assert.True(t, f32.ContainsFloat(math.MaxFloat32))
	assert.False(t, f32.ContainsFloat(math.MaxFloat32*1.1))
	assert.False(t, f32.ContainsFloat(-math.MaxFloat32*1.1))
	assert.True(t, f32.ContainsFloat(math.NaN()))
	assert.True(t, f32.ContainsFloat(math.Inf(1)))
	assert.False(t, f32.ContainsInt(0))

	f64 := Of[float64]()
	assert.True(t, f64.ContainsFloat(math.Inf(-1)))
	assert.True(t, f64.ContainsFloat(-math.MaxFloat64))
}

func TestParseCode(t *testing.T) {
	for _, d := range Table() {
		c, ok := ParseCode(d.Name())
		require.True(t, ok, d.Name())
		assert.Equal(t, d.Code(), c)
	}
	_, ok := ParseCode("complex128")
	assert.False(t, ok)
}

func TestKindAndPolicyStrings(t *testing.T) {
	assert.Equal(t, "signed", KindSigned.String())
	assert.Equal(t, "unsigned", KindUnsigned.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.True(t, KindUnsigned.IsInteger())
	assert.False(t, KindFloat.IsInteger())
	assert.Equal(t, "wrap", Wrap.String())
	assert.Equal(t, "clamp-inf", ClampInf.String())
	assert.Equal(t, "unbounded", Unbounded.String())
}
