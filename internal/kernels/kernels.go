// Package kernels dispatches float64 block operations to the best registered
// implementation for the running CPU.
//
// The selection is made on first use and cached. Reselect drops the cache so
// tests can switch implementations with cpu.SetForcedFeatures.
package kernels

import (
	"sync"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

var (
	selectMu sync.Mutex
	selected *registry.OpEntry
)

func current() *registry.OpEntry {
	selectMu.Lock()
	defer selectMu.Unlock()

	if selected == nil {
		entry := registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			panic("kernels: no implementation registered")
		}
		selected = entry
	}
	return selected
}

// Reselect forgets the cached selection. Intended for tests.
func Reselect() {
	selectMu.Lock()
	selected = nil
	selectMu.Unlock()
}

// Selected returns the name of the implementation in use.
func Selected() string {
	return current().Name
}

// AddFloat64 computes dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddFloat64(dst, a, b []float64) {
	current().AddBlock(dst, a, b)
}

// MulFloat64 computes dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulFloat64(dst, a, b []float64) {
	current().MulBlock(dst, a, b)
}

// ScaleFloat64 computes dst[i] = src[i] * scalar.
// Slices must have equal length. Panics if lengths differ.
func ScaleFloat64(dst, src []float64, scalar float64) {
	current().ScaleBlock(dst, src, scalar)
}

// SumFloat64 returns the sum of x, or 0 for an empty slice.
func SumFloat64(x []float64) float64 {
	return current().Sum(x)
}
