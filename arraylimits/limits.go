package arraylimits

import (
	"fmt"
	"math"
	"math/bits"
)

// Code identifies one of the supported element types.
type Code uint8

const (
	Int8 Code = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int
	Uint
	Int64
	Uint64
	Float32
	Float64

	numCodes
)

// String returns the Go name of the element type.
func (c Code) String() string {
	if c < numCodes {
		return table[c].name
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// Valid reports whether c names a supported element type.
func (c Code) Valid() bool {
	return c < numCodes
}

// Kind classifies an element type.
type Kind uint8

const (
	KindSigned Kind = iota
	KindUnsigned
	KindFloat
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k == KindSigned || k == KindUnsigned
}

// OverflowPolicy says what happens when a generated value leaves the range.
type OverflowPolicy uint8

const (
	// Wrap rolls integers over modulo 2^bits.
	Wrap OverflowPolicy = iota
	// ClampInf saturates to positive or negative infinity.
	ClampInf
	// Unbounded stores the IEEE result unchanged.
	Unbounded
)

// String returns a lower-case name for the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case ClampInf:
		return "clamp-inf"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Descriptor describes one element type and its representable range.
type Descriptor struct {
	code   Code
	name   string
	kind   Kind
	bits   int
	policy OverflowPolicy

	minInt   int64   // signed types only
	maxInt   int64   // signed types only
	maxUint  uint64  // unsigned types only
	maxFloat float64 // float types only
}

var table = [numCodes]Descriptor{
	Int8:    signed(Int8, "int8", 8, math.MinInt8, math.MaxInt8),
	Uint8:   unsigned(Uint8, "uint8", 8, math.MaxUint8),
	Int16:   signed(Int16, "int16", 16, math.MinInt16, math.MaxInt16),
	Uint16:  unsigned(Uint16, "uint16", 16, math.MaxUint16),
	Int32:   signed(Int32, "int32", 32, math.MinInt32, math.MaxInt32),
	Uint32:  unsigned(Uint32, "uint32", 32, math.MaxUint32),
	Int:     signed(Int, "int", bits.UintSize, math.MinInt, math.MaxInt),
	Uint:    unsigned(Uint, "uint", bits.UintSize, math.MaxUint),
	Int64:   signed(Int64, "int64", 64, math.MinInt64, math.MaxInt64),
	Uint64:  unsigned(Uint64, "uint64", 64, math.MaxUint64),
	Float32: float(Float32, "float32", 32, ClampInf, math.MaxFloat32),
	Float64: float(Float64, "float64", 64, Unbounded, math.MaxFloat64),
}

func signed(c Code, name string, size int, lo, hi int64) Descriptor {
	return Descriptor{code: c, name: name, kind: KindSigned, bits: size, policy: Wrap, minInt: lo, maxInt: hi}
}

func unsigned(c Code, name string, size int, hi uint64) Descriptor {
	return Descriptor{code: c, name: name, kind: KindUnsigned, bits: size, policy: Wrap, maxUint: hi}
}

func float(c Code, name string, size int, p OverflowPolicy, hi float64) Descriptor {
	return Descriptor{code: c, name: name, kind: KindFloat, bits: size, policy: p, maxFloat: hi}
}

// Table returns all descriptors in Code order.
func Table() []Descriptor {
	out := make([]Descriptor, numCodes)
	copy(out, table[:])
	return out
}

// Lookup returns the descriptor for c.
func Lookup(c Code) (Descriptor, bool) {
	if !c.Valid() {
		return Descriptor{}, false
	}
	return table[c], true
}

// ParseCode maps a Go type name such as "int16" or "float32" to its Code.
func ParseCode(name string) (Code, bool) {
	for i := range table {
		if table[i].name == name {
			return table[i].code, true
		}
	}
	return 0, false
}

// Of returns the descriptor for the element type T.
func Of[T Number]() Descriptor {
	var zero T
	switch any(zero).(type) {
	case int8:
		return table[Int8]
	case uint8:
		return table[Uint8]
	case int16:
		return table[Int16]
	case uint16:
		return table[Uint16]
	case int32:
		return table[Int32]
	case uint32:
		return table[Uint32]
	case int:
		return table[Int]
	case uint:
		return table[Uint]
	case int64:
		return table[Int64]
	case uint64:
		return table[Uint64]
	case float32:
		return table[Float32]
	default:
		return table[Float64]
	}
}

func (d Descriptor) Code() Code             { return d.code }
func (d Descriptor) Name() string           { return d.name }
func (d Descriptor) Kind() Kind             { return d.kind }
func (d Descriptor) Bits() int              { return d.bits }
func (d Descriptor) Policy() OverflowPolicy { return d.policy }

// MinInt returns the smallest value of an integer type. It is 0 for unsigned
// and float types.
func (d Descriptor) MinInt() int64 {
	return d.minInt
}

// MaxInt returns the largest value of a signed type, or of an unsigned type
// saturated to math.MaxInt64. It is 0 for float types.
func (d Descriptor) MaxInt() int64 {
	switch d.kind {
	case KindSigned:
		return d.maxInt
	case KindUnsigned:
		if d.maxUint > math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(d.maxUint)
	default:
		return 0
	}
}

// MaxUint returns the largest value of an integer type as a uint64. It is 0
// for float types.
func (d Descriptor) MaxUint() uint64 {
	switch d.kind {
	case KindSigned:
		return uint64(d.maxInt)
	case KindUnsigned:
		return d.maxUint
	default:
		return 0
	}
}

// MinFloat returns the lower bound as a float64. Integer bounds that are not
// exactly representable are rounded.
func (d Descriptor) MinFloat() float64 {
	switch d.kind {
	case KindSigned:
		return float64(d.minInt)
	case KindUnsigned:
		return 0
	default:
		return -d.maxFloat
	}
}

// MaxFloat returns the upper bound as a float64. Integer bounds that are not
// exactly representable are rounded.
func (d Descriptor) MaxFloat() float64 {
	switch d.kind {
	case KindSigned:
		return float64(d.maxInt)
	case KindUnsigned:
		return float64(d.maxUint)
	default:
		return d.maxFloat
	}
}

// ContainsInt reports whether v is representable by an integer type.
// It is always false for float types.
func (d Descriptor) ContainsInt(v int64) bool {
	switch d.kind {
	case KindSigned:
		return v >= d.minInt && v <= d.maxInt
	case KindUnsigned:
		return v >= 0 && uint64(v) <= d.maxUint
	default:
		return false
	}
}

// ContainsUint reports whether v is representable by an integer type.
// It is always false for float types.
func (d Descriptor) ContainsUint(v uint64) bool {
	switch d.kind {
	case KindSigned:
		return v <= uint64(d.maxInt)
	case KindUnsigned:
		return v <= d.maxUint
	default:
		return false
	}
}

// ContainsFloat reports whether v is acceptable for a float type. NaN and
// the infinities are accepted; finite values must lie within the finite
// extremes. It is always false for integer types.
func (d Descriptor) ContainsFloat(v float64) bool {
	if d.kind != KindFloat {
		return false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return true
	}
	return v >= -d.maxFloat && v <= d.maxFloat
}

// Min returns the lower bound in the element's own Go type.
func (d Descriptor) Min() any {
	return d.bound(false)
}

// Max returns the upper bound in the element's own Go type.
func (d Descriptor) Max() any {
	return d.bound(true)
}

func (d Descriptor) bound(upper bool) any {
	switch d.code {
	case Int8:
		return pick(upper, int8(math.MinInt8), int8(math.MaxInt8))
	case Uint8:
		return pick(upper, uint8(0), uint8(math.MaxUint8))
	case Int16:
		return pick(upper, int16(math.MinInt16), int16(math.MaxInt16))
	case Uint16:
		return pick(upper, uint16(0), uint16(math.MaxUint16))
	case Int32:
		return pick(upper, int32(math.MinInt32), int32(math.MaxInt32))
	case Uint32:
		return pick(upper, uint32(0), uint32(math.MaxUint32))
	case Int:
		return pick(upper, int(math.MinInt), int(math.MaxInt))
	case Uint:
		return pick(upper, uint(0), uint(math.MaxUint))
	case Int64:
		return pick(upper, int64(math.MinInt64), int64(math.MaxInt64))
	case Uint64:
		return pick(upper, uint64(0), uint64(math.MaxUint64))
	case Float32:
		return pick(upper, float32(-math.MaxFloat32), float32(math.MaxFloat32))
	case Float64:
		return pick(upper, -math.MaxFloat64, math.MaxFloat64)
	default:
		return nil
	}
}

func pick[T any](upper bool, lo, hi T) any {
	if upper {
		return hi
	}
	return lo
}
