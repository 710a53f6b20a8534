package pixel

import (
	"runtime"
	"sync"
)

// Parallel splits n units of row-oriented work across one goroutine per CPU
// and blocks until every worker has finished. Each worker receives a disjoint
// half-open range [lo, hi), so destination writes never overlap.
//
// Small workloads run serially on the calling goroutine; the goroutine and
// scheduling overhead is not worth it below a couple of rows per worker.
func Parallel(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if n < workers*2 {
		fn(0, n)
		return
	}

	part := n / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		lo := i * part
		hi := lo + part
		if i == workers-1 {
			hi = n
		}
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
