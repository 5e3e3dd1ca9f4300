package sweep

import "sync"

// runCells executes fn(i) for every cell index 0..cells-1, either inline
// (workers < 2) or on a bounded worker pool. Each fn writes only its own
// result slot and derives its own RNG stream, so output order and content
// never depend on scheduling.
// Complexity: O(cells) dispatch overhead.
func runCells(cells, workers int, fn func(i int)) {
	if workers < 2 || cells < 2 {
		for i := 0; i < cells; i++ {
			fn(i)
		}

		return
	}
	if workers > cells {
		workers = cells
	}

	var wg sync.WaitGroup
	idx := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				fn(i)
			}
		}()
	}
	for i := 0; i < cells; i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()
}
