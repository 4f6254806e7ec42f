// Package parallel splits index ranges across goroutines for the CPU kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is partitioned.
type Config struct {
	Workers  int // Maximum goroutines per call; 1 or less runs inline
	MinChunk int // Smallest range handed to a goroutine
}

// DefaultConfig uses one worker per schedulable CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: 64,
	}
}

// Sequential returns a config that always runs inline.
func Sequential() Config {
	return Config{Workers: 1}
}

// Chunks returns the [start, end) ranges that For hands out for n items.
// The ranges are contiguous, ordered and cover [0, n) exactly.
func Chunks(n int, cfg Config) [][2]int {
	if n <= 0 {
		return nil
	}
	if cfg.Workers <= 1 || n < 2*max(cfg.MinChunk, 1) {
		return [][2]int{{0, n}}
	}

	size := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk, 1)
	chunks := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		chunks = append(chunks, [2]int{start, min(start+size, n)})
	}
	return chunks
}

// For calls f once per chunk of [0, n) and waits for all calls to return.
// A single chunk runs on the calling goroutine.
func For(n int, cfg Config, f func(start, end int)) {
	chunks := Chunks(n, cfg)
	if len(chunks) == 1 {
		f(chunks[0][0], chunks[0][1])
		return
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			f(start, end)
		}(c[0], c[1])
	}
	wg.Wait()
}
