// Package registry holds the float64 block kernels available to arrayfunc.
//
// Kernel packages register an OpEntry from init(). At run time the entry with
// the highest priority whose SIMD level the CPU supports is selected. A
// generic entry at priority 0 is always registered, so Lookup never fails on
// a correctly linked binary.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
)

// OpEntry is one implementation variant of the block kernels.
//
// Every function requires equal slice lengths and panics otherwise; callers in
// arrayfunc validate lengths before dispatching.
type OpEntry struct {
	// Name identifies the variant ("generic", "vecmath").
	Name string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	//   - generic: 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// AddBlock computes dst[i] = a[i] + b[i].
	AddBlock func(dst, a, b []float64)

	// MulBlock computes dst[i] = a[i] * b[i].
	MulBlock func(dst, a, b []float64)

	// ScaleBlock computes dst[i] = src[i] * scalar.
	ScaleBlock func(dst, src []float64, scalar float64)

	// Sum returns the sum of all elements.
	Sum func(x []float64) float64
}

// Complete reports whether every kernel field is populated.
func (e *OpEntry) Complete() bool {
	return e.AddBlock != nil && e.MulBlock != nil && e.ScaleBlock != nil && e.Sum != nil
}

// OpRegistry stores registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry populated by the arch packages.
var Global = &OpRegistry{}

// Register adds a variant. It is safe for concurrent use, but registration
// is expected to finish (during init) before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority complete variant supported by
// features, or nil if none is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Complete() && cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority orders entries by descending priority. Insertion sort keeps
// registration order among equal priorities and the list is tiny.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every entry. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
