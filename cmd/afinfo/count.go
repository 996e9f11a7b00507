package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-arrayfunc/arrayfunc"
	"github.com/cwbudde/algo-arrayfunc/arraylimits"
)

// maxCountLen bounds the buffer the count command allocates.
const maxCountLen = 1 << 20

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <type> <len> <start> [step]",
		Short: "Fill a buffer with an arithmetic progression and print it",
		Long: `Fill a buffer of the given element type and length with start,
start+step, start+2*step, ... and print it. Values leaving the type's range
follow its overflow policy (see "afinfo limits").`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, ok := arraylimits.ParseCode(args[0])
			if !ok {
				return fmt.Errorf("unknown element type %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 || n > maxCountLen {
				return fmt.Errorf("invalid length %q", args[1])
			}
			d, _ := arraylimits.Lookup(code)

			countArgs := make([]any, 0, 2)
			for _, s := range args[2:] {
				v, err := parseScalar(d, s)
				if err != nil {
					return err
				}
				countArgs = append(countArgs, v)
			}

			buf := newBuffer(code, n)
			if err := arrayfunc.CountAny(buf, countArgs...); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), buf)
			return err
		},
	}
	// Flags end at the type name so negative start and step values parse as
	// arguments.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// parseScalar parses s as a value of d's kind. Integers that only fit in
// uint64 are returned as uint64, other integers as int64.
func parseScalar(d arraylimits.Descriptor, s string) (any, error) {
	if d.Kind() == arraylimits.KindFloat {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s value %q: %w", d.Name(), s, err)
		}
		return f, nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("%s value %q: %w", d.Name(), s, err)
	}
	return u, nil
}

func newBuffer(code arraylimits.Code, n int) any {
	switch code {
	case arraylimits.Int8:
		return make([]int8, n)
	case arraylimits.Uint8:
		return make([]uint8, n)
	case arraylimits.Int16:
		return make([]int16, n)
	case arraylimits.Uint16:
		return make([]uint16, n)
	case arraylimits.Int32:
		return make([]int32, n)
	case arraylimits.Uint32:
		return make([]uint32, n)
	case arraylimits.Int:
		return make([]int, n)
	case arraylimits.Uint:
		return make([]uint, n)
	case arraylimits.Int64:
		return make([]int64, n)
	case arraylimits.Uint64:
		return make([]uint64, n)
	case arraylimits.Float32:
		return make([]float32, n)
	default:
		return make([]float64, n)
	}
}
