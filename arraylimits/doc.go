// Package arraylimits describes the twelve numeric element types supported by
// arrayfunc and the range each one can represent.
//
// The table is built once at package initialization and never changes.
// Descriptors are plain values and may be shared freely between goroutines.
//
// Integer bounds are exact. Float bounds are the finite extremes
// (±math.MaxFloat32, ±math.MaxFloat64), not the infinities.
//
// # Overflow policies
//
// Each type carries the policy that sequence generators apply when a value
// leaves the representable range:
//
//   - Wrap: fixed-width integers roll over modulo 2^bits.
//   - ClampInf: float32 saturates to +Inf or -Inf.
//   - Unbounded: float64 keeps whatever IEEE 754 addition produced.
package arraylimits
