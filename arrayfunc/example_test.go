package arrayfunc_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-arrayfunc/arrayfunc"
)

func ExampleCount() {
	buf := make([]int8, 6)
	if err := arrayfunc.Count(buf, 0, 127); err != nil {
		panic(err)
	}
	fmt.Println(buf)

	f := make([]float32, 3)
	_ = arrayfunc.Count(f, math.MaxFloat32, math.MaxFloat32)
	fmt.Println(f[1:])

	// Output:
	// [0 127 -2 125 -4 123]
	// [+Inf +Inf]
}

func ExampleCountAny() {
	buf := make([]uint8, 4)
	if err := arrayfunc.CountAny(buf, 254); err != nil {
		panic(err)
	}
	fmt.Println(buf)

	err := arrayfunc.CountAny(buf, 256)
	fmt.Println(errors.Is(err, arrayfunc.ErrOutOfRange))

	err = arrayfunc.CountAny(buf, 1.5)
	fmt.Println(errors.Is(err, arrayfunc.ErrTypeMismatch))

	// Output:
	// [254 255 0 1]
	// true
	// true
}

func ExampleApply() {
	x := []int32{7, -7}
	y := []int32{2, 2}
	dst := make([]int32, 2)

	_ = arrayfunc.Apply(arrayfunc.OpFloorDiv, dst, x, y)
	fmt.Println(dst)

	_ = arrayfunc.Apply(arrayfunc.OpMod, dst, x, y)
	fmt.Println(dst)

	// Output:
	// [3 -4]
	// [1 1]
}

func ExampleWithIgnoreErrors() {
	dst := make([]uint8, 1)

	err := arrayfunc.Add(dst, []uint8{250}, []uint8{10})
	fmt.Println(errors.Is(err, arrayfunc.ErrArithmeticOverflow))

	_ = arrayfunc.Add(dst, []uint8{250}, []uint8{10}, arrayfunc.WithIgnoreErrors())
	fmt.Println(dst)

	// Output:
	// true
	// [4]
}

func ExampleFindIndices() {
	x := []float64{0.5, -1, 2, -3}
	idx := make([]int, len(x))

	n, _ := arrayfunc.FindIndices(arrayfunc.CmpLt, idx, x, 0)
	fmt.Println(idx[:n])

	// Output:
	// [1 3]
}
