package arrayfunc

import "fmt"

// Repeat sets every element of buf to v.
func Repeat[T Number](buf []T, v T) error {
	if len(buf) == 0 {
		return fmt.Errorf("repeat: %w", ErrEmptyContainer)
	}
	for i := range buf {
		buf[i] = v
	}
	return nil
}

// Compress copies src[i] to dst when selectors[i] is non-zero. A selectors
// array shorter than src is reused cyclically. Copying stops when dst is
// full; the number of elements written is returned.
func Compress[T Number](dst, src, selectors []T, opts ...Option) (int, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}
	switch {
	case len(src) == 0:
		return 0, fmt.Errorf("compress: %w", ErrEmptyContainer)
	case len(selectors) == 0:
		return 0, fmt.Errorf("compress: selectors: %w", ErrEmptyContainer)
	case len(dst) == 0:
		return 0, fmt.Errorf("compress: output: %w", ErrEmptyContainer)
	}

	n := cfg.limit(len(src))
	count := 0
	for i := 0; i < n && count < len(dst); i++ {
		if selectors[i%len(selectors)] != 0 {
			dst[count] = src[i]
			count++
		}
	}
	return count, nil
}

// Filter copies the elements of src for which src[i] op v holds into dst
// and returns how many were written. Copying stops when dst is full.
func Filter[T Number](op CmpOp, dst, src []T, v T, opts ...Option) (int, error) {
	n, err := prepareCopy(op, dst, src, opts)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := 0; i < n && count < len(dst); i++ {
		if holds(op, src[i], v) {
			dst[count] = src[i]
			count++
		}
	}
	return count, nil
}

// TakeWhile copies the leading elements of src for which src[i] op v holds.
func TakeWhile[T Number](op CmpOp, dst, src []T, v T, opts ...Option) (int, error) {
	n, err := prepareCopy(op, dst, src, opts)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := 0; i < n && count < len(dst); i++ {
		if !holds(op, src[i], v) {
			break
		}
		dst[count] = src[i]
		count++
	}
	return count, nil
}

// DropWhile skips the leading elements of src for which src[i] op v holds
// and copies the rest.
func DropWhile[T Number](op CmpOp, dst, src []T, v T, opts ...Option) (int, error) {
	n, err := prepareCopy(op, dst, src, opts)
	if err != nil {
		return 0, err
	}
	i := 0
	for i < n && holds(op, src[i], v) {
		i++
	}
	return copy(dst, src[i:n]), nil
}

func prepareCopy[T Number](op CmpOp, dst, src []T, opts []Option) (int, error) {
	n, err := prepareSearch(op, src, opts)
	if err != nil {
		return 0, err
	}
	if len(dst) == 0 {
		return 0, fmt.Errorf("%v: output: %w", op, ErrEmptyContainer)
	}
	return n, nil
}
