// Package cpu picks the SIMD capabilities used to select array kernels.
//
// Detection itself is done by github.com/cwbudde/algo-vecmath/cpu, the same
// package the vecmath kernels consult. This package adds the SIMD levels the
// kernel registry orders entries by and the ARRAYFUNC_FORCE_GENERIC
// environment override, which restricts selection to the pure Go kernels.
package cpu

import (
	"os"
	"strconv"
	"sync"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

// ForceGenericEnv names the environment variable that disables SIMD kernels.
const ForceGenericEnv = "ARRAYFUNC_FORCE_GENERIC"

// Features describes the CPU capabilities relevant to kernel selection.
type Features = vcpu.Features

// SIMDLevel identifies an instruction set extension a kernel depends on.
// Levels are not ordered across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone marks pure Go kernels that run everywhere.
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX2
	SIMDNEON
)

func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Levels lists every SIMD level a kernel can require, SIMDNone excluded.
var Levels = []SIMDLevel{SIMDSSE2, SIMDAVX2, SIMDNEON}

var (
	mu     sync.Mutex
	forced bool
)

// DetectFeatures returns the features of the current CPU, with ForceGeneric
// set when ARRAYFUNC_FORCE_GENERIC holds a true value. Features pinned with
// SetForcedFeatures are returned unchanged.
func DetectFeatures() Features {
	mu.Lock()
	pinned := forced
	mu.Unlock()

	f := vcpu.DetectFeatures()
	if !pinned && forceGenericFromEnv() {
		f.ForceGeneric = true
	}
	return f
}

func forceGenericFromEnv() bool {
	v, ok := os.LookupEnv(ForceGenericEnv)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// SetForcedFeatures overrides detection with f. Intended for tests.
func SetForcedFeatures(f Features) {
	mu.Lock()
	defer mu.Unlock()
	forced = true
	vcpu.SetForcedFeatures(f)
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	mu.Lock()
	defer mu.Unlock()
	forced = false
	vcpu.ResetDetection()
}

// Supports reports whether features can run kernels built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
