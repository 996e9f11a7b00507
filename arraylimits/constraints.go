package arraylimits

// Signed is the set of supported signed integer element types.
type Signed interface {
	int8 | int16 | int32 | int | int64
}

// Unsigned is the set of supported unsigned integer element types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint | uint64
}

// Integer is the set of supported integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of supported floating-point element types.
type Float interface {
	float32 | float64
}

// Number is the set of all twelve supported element types. Named types are
// deliberately excluded so that every T maps to exactly one Code.
type Number interface {
	Integer | Float
}
