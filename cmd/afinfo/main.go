// Command afinfo inspects the arrayfunc element types and kernels and runs
// the count generator from the command line.
//
// Usage:
//
//	afinfo limits
//	afinfo kernels
//	afinfo count <type> <len> <start> [step]
//
// Examples:
//
//	afinfo count int8 6 0 127
//	afinfo count float32 4 3.4e38 1e38
//	ARRAYFUNC_FORCE_GENERIC=1 afinfo kernels
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "afinfo",
		Short:        "Inspect arrayfunc element types and kernels",
		SilenceUsage: true,
	}
	root.AddCommand(newLimitsCmd(), newKernelsCmd(), newCountCmd())
	return root
}
