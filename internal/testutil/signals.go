package testutil

import (
	"math/rand"
)

// Ramp returns n values start, start+step, ... computed as start+i*step.
func Ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DeterministicNoise returns uniform values in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts returns length values of T drawn from a fixed seed,
// covering T's full bit pattern range.
func DeterministicInts[T ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int | ~uint | ~int64 | ~uint64](seed int64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(rng.Uint64())
	}
	return out
}
