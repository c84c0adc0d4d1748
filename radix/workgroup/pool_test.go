// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workgroup

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestRunIndexed(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	err := pool.RunIndexed(context.Background(), n, func(_ context.Context, i int) error {
		results[i] = i * 2
		return nil
	})
	if err != nil {
		t.Fatalf("RunIndexed returned %v", err)
	}

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestRunIndexedEmpty(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if err := pool.RunIndexed(context.Background(), 0, func(context.Context, int) error {
		t.Fatal("fn should not be called for n=0")
		return nil
	}); err != nil {
		t.Errorf("RunIndexed(0) returned %v, want nil", err)
	}
}

func TestRunIndexedPropagatesError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	wantErr := errors.New("boom")
	err := pool.RunIndexed(context.Background(), 50, func(_ context.Context, i int) error {
		if i == 10 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("RunIndexed error = %v, want %v", err, wantErr)
	}
}

func TestRunIndexedCanceledContext(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.RunIndexed(ctx, 10, func(context.Context, int) error {
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunIndexed error = %v, want context.Canceled", err)
	}
}

// TestRunIndexedWaitsForEveryWorker dispatches far more items than workers
// so every worker claims many items from the shared index cursor, and
// checks that RunIndexed does not return until every item has actually
// completed. A spurious extra WaitGroup.Done() per item (one from the
// dispatched closure, one from worker()) would let wg.Wait() return after
// only numWorkers items finish, so this would observe completed < n right
// after RunIndexed returns, and the surplus Done() calls would eventually
// drive the counter negative and panic as the remaining workers finish.
func TestRunIndexedWaitsForEveryWorker(t *testing.T) {
	const workers = 8
	pool := New(workers)
	defer pool.Close()

	n := 5000
	var completed atomic.Int64

	err := pool.RunIndexed(context.Background(), n, func(_ context.Context, _ int) error {
		completed.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("RunIndexed returned %v", err)
	}

	if got := completed.Load(); got != int64(n) {
		t.Fatalf("RunIndexed returned after only %d/%d items completed", got, n)
	}
}

func TestRunIndexedAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 20
	results := make([]int, n)
	err := pool.RunIndexed(context.Background(), n, func(_ context.Context, i int) error {
		results[i] = i + 1
		return nil
	})
	if err != nil {
		t.Fatalf("RunIndexed after Close returned %v", err)
	}
	for i := range n {
		if results[i] != i+1 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i+1)
		}
	}
}
