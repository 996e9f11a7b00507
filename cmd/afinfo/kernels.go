package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List the float64 block kernels and the one selected for this CPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printKernels(cmd.OutOrStdout())
		},
	}
}

func printKernels(w io.Writer) error {
	features := cpu.DetectFeatures()
	selected := kernels.Selected()
	entries := registry.Global.ListEntries()

	levels := lo.Filter(cpu.Levels, func(l cpu.SIMDLevel, _ int) bool { return cpu.Supports(features, l) })
	levelNames := lo.Map(levels, func(l cpu.SIMDLevel, _ int) string { return l.String() })
	if len(levelNames) == 0 {
		levelNames = []string{"none"}
	}

	if _, err := fmt.Fprintf(w, "arch: %s  simd: %s  force-generic: %t\n\n",
		features.Architecture, strings.Join(levelNames, ","), features.ForceGeneric); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tSIMD\tPriority\tUsable\tSelected\n"); err != nil {
		return err
	}
	for _, e := range entries {
		mark := lo.Ternary(e.Name == selected, "*", "")
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, cpu.Supports(features, e.SIMDLevel), mark); err != nil {
			return err
		}
	}
	return tw.Flush()
}
