//go:build purego || !(amd64 || arm64)

package kernels

import (
	_ "github.com/cwbudde/algo-arrayfunc/internal/kernels/arch/generic"
)
