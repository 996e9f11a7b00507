package kernels

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

func TestGenericAlwaysRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, e := range registry.Global.ListEntries() {
		names[e.Name] = true
	}
	assert.True(t, names["generic"], "generic implementation not registered")
}

func TestForceGeneric(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: runtime.GOARCH})
	Reselect()
	defer func() {
		cpu.ResetDetection()
		Reselect()
	}()

	require.Equal(t, "generic", Selected())

	dst := make([]float64, 5)
	AddFloat64(dst, []float64{1, 2, 3, 4, 5}, []float64{10, 20, 30, 40, 50})
	assert.Equal(t, []float64{11, 22, 33, 44, 55}, dst)
}

func TestSelectedOnHost(t *testing.T) {
	cpu.ResetDetection()
	Reselect()
	defer Reselect()

	name := Selected()
	switch runtime.GOARCH {
	case "amd64", "arm64":
		assert.Contains(t, []string{"generic", "vecmath"}, name)
	default:
		assert.Equal(t, "generic", name)
	}
}

func TestDispatchedOps(t *testing.T) {
	Reselect()
	defer Reselect()

	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	dst := make([]float64, len(a))

	MulFloat64(dst, a, b)
	assert.Equal(t, []float64{9, 16, 21, 24, 25, 24, 21, 16, 9}, dst)

	ScaleFloat64(dst, a, 2)
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12, 14, 16, 18}, dst)

	assert.Equal(t, 45.0, SumFloat64(a))
	assert.Equal(t, 0.0, SumFloat64(nil))
}
