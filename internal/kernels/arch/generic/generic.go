// Package generic provides the pure Go float64 block kernels.
package generic

// AddBlock computes dst[i] = a[i] + b[i]. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernels: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// MulBlock computes dst[i] = a[i] * b[i]. Panics if lengths differ.
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernels: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ScaleBlock computes dst[i] = src[i] * scalar. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scalar float64) {
	if len(dst) != len(src) {
		panic("kernels: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}

// Sum returns the sum of x, accumulated in four lanes.
func Sum(x []float64) float64 {
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(x); i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < len(x); i++ {
		s0 += x[i]
	}
	return (s0 + s1) + (s2 + s3)
}
