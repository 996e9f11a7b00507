package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Print the element type limit table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printLimits(cmd.OutOrStdout())
		},
	}
}

func printLimits(w io.Writer) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Type\tKind\tBits\tOverflow\tMin\tMax\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t----\t--------\t---\t---\n"); err != nil {
		return err
	}

	for _, d := range arraylimits.Table() {
		var lo, hi string
		switch d.Kind() {
		case arraylimits.KindSigned:
			lo, hi = p.Sprintf("%d", d.MinInt()), p.Sprintf("%d", d.MaxInt())
		case arraylimits.KindUnsigned:
			lo, hi = "0", p.Sprintf("%d", d.MaxUint())
		default:
			lo, hi = fmt.Sprintf("%g", d.MinFloat()), fmt.Sprintf("%g", d.MaxFloat())
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			d.Name(), d.Kind(), d.Bits(), d.Policy(), lo, hi); err != nil {
			return err
		}
	}
	return tw.Flush()
}
