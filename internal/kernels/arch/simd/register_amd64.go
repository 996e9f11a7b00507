//go:build amd64 && !purego

package simd

import (
	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

// init registers the algo-vecmath kernels. They pick AVX2 themselves when
// present, so SSE2 is the only requirement here.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		AddBlock:   AddBlock,
		MulBlock:   MulBlock,
		ScaleBlock: ScaleBlock,
		Sum:        Sum,
	})
}
