// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gpu

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-radixsort/radix/workgroup"
)

// MaxDispatchDimension is the largest workgroup count a single dispatch
// dimension can carry on the hardware this design targets (a common real
// limit is 65535). Grids larger than this are split by the device.
const MaxDispatchDimension = 65535

// Device is a compute-capable backend that executes kernels one workgroup
// at a time. The reference backend in this module runs every workgroup as
// a function call scheduled onto a persistent goroutine pool; a real
// compute-API backend would instead record and submit a pipeline dispatch,
// but satisfies the same Dispatch contract.
type Device struct {
	caps Capabilities
	pool *workgroup.Pool
}

// NewDevice creates a reference device advertising caps, backed by a
// persistent pool of numWorkers goroutines (0 selects GOMAXPROCS).
func NewDevice(caps Capabilities, numWorkers int) *Device {
	return &Device{
		caps: caps,
		pool: workgroup.New(numWorkers),
	}
}

// Capabilities reports what this device supports.
func (d *Device) Capabilities() Capabilities {
	return d.caps
}

// Close releases the device's worker pool.
func (d *Device) Close() {
	d.pool.Close()
}

// splitGrid decomposes a logical 1-D workgroup count into a maximal 2-D
// grid honoring MaxDispatchDimension, plus a linear remainder, exactly as
// a real dispatch-limited queue requires: a (x, y, 1) grid covering
// full = x*y workgroups, then a remainder dispatch of total-full
// workgroups with workgroup_offset = full.
func splitGrid(total uint32) (full, rem uint32) {
	if total <= MaxDispatchDimension {
		return total, 0
	}
	x := uint32(MaxDispatchDimension)
	y := total / x
	full = x * y
	rem = total - full
	return full, rem
}

// Dispatch runs fn once per workgroup index in [0, total), splitting the
// grid when total exceeds the hardware dispatch-dimension limit. The two
// resulting sub-dispatches (the maximal grid and the linear remainder) run
// concurrently via errgroup since they touch disjoint output ranges; fn
// receives the reconstructed linear workgroup index, including the
// workgroup_offset a split remainder dispatch would carry as a push
// constant.
func (d *Device) Dispatch(ctx context.Context, total uint32, fn func(ctx context.Context, workgroupIndex uint32) error) error {
	if total == 0 {
		return nil
	}
	if err := d.caps.Validate(); err != nil {
		return err
	}

	full, rem := splitGrid(total)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.pool.RunIndexed(gctx, int(full), func(ctx context.Context, i int) error {
			return fn(ctx, uint32(i))
		})
	})
	if rem > 0 {
		g.Go(func() error {
			return d.pool.RunIndexed(gctx, int(rem), func(ctx context.Context, i int) error {
				return fn(ctx, full+uint32(i))
			})
		})
	}
	return g.Wait()
}
