// Package arrayfunc provides element-wise numeric operations over typed
// slices of the twelve element types described by package arraylimits.
//
// # Sequence generation
//
// Count fills a slice with an arithmetic progression. Values that leave the
// element type's range follow the type's overflow policy: integers wrap
// around, float32 saturates to ±Inf and float64 keeps the IEEE result.
//
//	buf := make([]int8, 6)
//	_ = arrayfunc.Count(buf, 0, 127) // [0 127 -2 125 -4 123]
//
// CountAny accepts untyped arguments and performs the argument count, type
// and range checks that the typed form gets from the compiler.
//
// # Element-wise operations
//
// Apply, ApplyScalar and ApplyScalarLeft run a BinaryOp over arrays and
// scalars, writing into a destination that may alias an input. Integer
// overflow, division by zero and non-finite float results are reported as
// errors unless WithIgnoreErrors is given. Bitwise, Math, Neg and Abs cover
// the unary and bit-level operations; Compare, FindIndex and friends search;
// Sum, Min and Max reduce; Compress, Filter, TakeWhile, DropWhile, Repeat and
// Convert select and copy.
//
// # Errors
//
// All errors wrap one of the package's sentinel values and can be tested with
// errors.Is. Failures on a particular element are reported as *ElementError.
// Argument validation always completes before the destination is written.
// After an element error the failing element is left as it was and earlier
// elements hold their results; Apply documents the float64 kernel paths,
// which write every element before checking.
//
// # Concurrency
//
// Functions keep no state between calls and may be used concurrently on
// distinct slices. WithParallelism splits large element-wise operations
// across goroutines; Count is always sequential.
package arrayfunc
