//go:build (amd64 || arm64) && !purego

// Package simd adapts the SIMD kernels of github.com/cwbudde/algo-vecmath to
// the arrayfunc kernel registry.
package simd

import vecmath "github.com/cwbudde/algo-vecmath"

// AddBlock computes dst[i] = a[i] + b[i]. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernels: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.AddBlock(dst, a, b)
}

// MulBlock computes dst[i] = a[i] * b[i]. Panics if lengths differ.
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernels: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.MulBlock(dst, a, b)
}

// ScaleBlock computes dst[i] = src[i] * scalar. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scalar float64) {
	if len(dst) != len(src) {
		panic("kernels: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.ScaleBlock(dst, src, scalar)
}

// Sum returns the sum of x.
func Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return vecmath.Sum(x)
}
