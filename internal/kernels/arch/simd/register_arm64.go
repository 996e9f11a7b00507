//go:build arm64 && !purego

package simd

import (
	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		AddBlock:   AddBlock,
		MulBlock:   MulBlock,
		ScaleBlock: ScaleBlock,
		Sum:        Sum,
	})
}
