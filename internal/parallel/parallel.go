// Package parallel splits index ranges across goroutines.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// For calls fn on disjoint [lo, hi) ranges covering [0, n).
//
// At most workers goroutines run at once and no range is shorter than
// minChunk, except the last one. With workers <= 1 or n < 2*minChunk, fn is
// called once on the calling goroutine. The first error returned by any call
// is returned; the remaining ranges still run to completion.
func For(n, workers, minChunk int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if minChunk < 1 {
		minChunk = 1
	}
	chunks := n / minChunk
	if workers <= 1 || chunks < 2 {
		return fn(0, n)
	}
	if chunks > workers {
		chunks = workers
	}

	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}
