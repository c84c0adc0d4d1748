// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workgroup provides a persistent, reusable goroutine pool that
// stands in for hardware workgroup scheduling: each call to RunIndexed
// dispatches one logical "workgroup" per index to a long-lived worker,
// instead of spawning and tearing down goroutines per dispatch.
//
// This is adapted from a general-purpose parallel-for worker pool; the
// persistent-pool design matters here for the same reason it mattered in
// its origin: a radix sort runs five kernels per pass across four passes,
// the two sweep kernels once per stride level, and per-dispatch goroutine
// spawn overhead would otherwise
// dominate for small and medium N.
package workgroup

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many kernel dispatches.
// Workers are spawned once at creation and persist until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one unit of work handed to a persistent worker goroutine.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers. If numWorkers <= 0,
// runtime.GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of persistent workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Safe to call multiple times.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// RunIndexed dispatches fn(ctx, i) for every i in [0, n) using atomic work
// stealing across the persistent workers, and blocks until all of them
// complete, the context is canceled, or one invocation returns an error.
//
// On a canceled context or error, in-flight work items still run to
// completion but no new index is claimed; RunIndexed returns the first
// error observed (ctx.Err() takes priority only when no kernel error beat
// it to the race).
func (p *Pool) RunIndexed(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.closed.Load() {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	var nextIdx atomic.Int64
	var mu sync.Mutex
	var firstErr error
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					if ctx.Err() != nil {
						return
					}
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					if err := fn(ctx, idx); err != nil {
						mu.Lock()
						if firstErr == nil {
							firstErr = err
						}
						mu.Unlock()
						return
					}
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	mu.Lock()
	defer mu.Unlock()
	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
