package algorithms

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEachRow calls fn for every row in [0, height), spreading bands of rows
// over GOMAXPROCS workers. fn must only write to its own row.
func forEachRow(height int, fn func(y int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers <= 1 || height < 2 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	band := height / (workers * 4)
	if band < 1 {
		band = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < height; start += band {
		start := start
		end := min(start+band, height)
		g.Go(func() error {
			for y := start; y < end; y++ {
				fn(y)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// clampIndex implements edge replication for one axis
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
