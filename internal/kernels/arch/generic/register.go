package generic

import (
	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

// init registers the fallback used when no SIMD variant applies.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddBlock:   AddBlock,
		MulBlock:   MulBlock,
		ScaleBlock: ScaleBlock,
		Sum:        Sum,
	})
}
