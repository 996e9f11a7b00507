//go:build (amd64 || arm64) && !purego

package kernels

// Linking the arch packages runs their init() registration.
import (
	_ "github.com/cwbudde/algo-arrayfunc/internal/kernels/arch/generic"
	_ "github.com/cwbudde/algo-arrayfunc/internal/kernels/arch/simd"
)
