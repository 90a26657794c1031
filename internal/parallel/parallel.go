// Package parallel provides a chunked parallel for-each over an index
// range. Workers receive disjoint contiguous chunks, so callers may write
// results into a shared slice by index without locking; output order is
// the index order regardless of worker count.
package parallel

import (
	"sync"
	"sync/atomic"
)

// ForEach invokes fn for every i in [0, n), partitioned into contiguous
// chunks across at most workers goroutines. workers <= 1 runs sequentially.
//
// If fn returns an error, remaining work is abandoned, every worker is
// joined, and the first recorded error is returned.
func ForEach(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
		abort atomic.Bool
	)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if abort.Load() {
					return
				}
				if err := fn(i); err != nil {
					mu.Lock()
					if first == nil {
						first = err
						abort.Store(true)
					}
					mu.Unlock()
					return
				}
			}
		}(start, end)
	}

	wg.Wait()
	return first
}
