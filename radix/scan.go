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

package radix

import (
	"context"

	"github.com/ajroetker/go-radixsort/gpu"
)

// row returns the K-wide slice for block row b of a B_pow2*K matrix.
func row(blocks []uint32, b uint32) []uint32 {
	return blocks[b*RadixCount : b*RadixCount+RadixCount]
}

// upSweepPass is C4: the up-sweep (reduce) half of an in-place
// Brent-Kung inclusive scan over the block axis, independently per radix
// column. For each stride, workgroup i adds column r of source row
// i*stride + sweepSize - 1 into destination row i*stride + stride - 1,
// where sweepSize = stride/2. The stride is computed locally; no push
// constant is set.
func upSweepPass(ctx context.Context, dev *gpu.Device, bPow2 uint32, blocks []uint32) error {
	for stride := uint32(2); stride <= bPow2; stride <<= 1 {
		sweepSize := stride / 2
		groups := bPow2 / stride
		err := dev.Dispatch(ctx, groups, func(_ context.Context, i uint32) error {
			srcRow := i*stride + sweepSize - 1
			destRow := i*stride + stride - 1
			dst, src := row(blocks, destRow), row(blocks, srcRow)
			for r := range dst {
				dst[r] += src[r]
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// downSweepPass is C5: the down-sweep half of the Brent-Kung inclusive
// scan, run for strides in reverse. At each stride, workgroup i (i in
// [1, B_pow2/stride)) fills the "hole" at row i*stride + sweepSize - 1 by
// adding in the already-correct prefix at row i*stride - 1; i=0 is skipped
// because its hole was already made correct by a smaller-stride up-sweep
// step (or is the array's first row, trivially correct).
func downSweepPass(ctx context.Context, dev *gpu.Device, bPow2 uint32, blocks []uint32) error {
	for stride := bPow2; stride >= 2; stride >>= 1 {
		sweepSize := stride / 2
		groups := bPow2 / stride
		if groups <= 1 {
			continue
		}
		err := dev.Dispatch(ctx, groups-1, func(_ context.Context, idx uint32) error {
			i := idx + 1
			destRow := i*stride + sweepSize - 1
			srcRow := i*stride - 1
			dst, src := row(blocks, destRow), row(blocks, srcRow)
			for r := range dst {
				dst[r] += src[r]
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// lastBlockScan is C6: a single workgroup reads row bPow2-1 (the column
// totals produced by C4+C5) and overwrites it with the exclusive prefix
// sum across the 256 radix bins -- the global starting offset of each
// radix across the whole array. The scan is two-level: each subgroup
// computes an inclusive add over its slice, the last lane of each
// subgroup contributes its total to a small subgroup-sums array which is
// itself exclusive-scanned, and each thread combines the two to produce
// its exclusive result.
func lastBlockScan(ctx context.Context, dev *gpu.Device, tn Tuning, bPow2 uint32, blocks []uint32) error {
	return dev.Dispatch(ctx, 1, func(_ context.Context, _ uint32) error {
		last := row(blocks, bPow2-1)
		s := tn.SubgroupSize
		numSubgroups := ThreadsPerWorkgroup / s

		subgroupTotals := make([]uint32, numSubgroups)
		inclusive := make([]uint32, RadixCount)
		for sg := uint32(0); sg < numSubgroups; sg++ {
			var running uint32
			for lane := uint32(0); lane < s; lane++ {
				idx := sg*s + lane
				running += last[idx]
				inclusive[idx] = running
			}
			subgroupTotals[sg] = running
		}

		subgroupExclusive := make([]uint32, numSubgroups)
		var acc uint32
		for sg := range subgroupTotals {
			subgroupExclusive[sg] = acc
			acc += subgroupTotals[sg]
		}

		exclusive := make([]uint32, RadixCount)
		for sg := uint32(0); sg < numSubgroups; sg++ {
			for lane := uint32(0); lane < s; lane++ {
				idx := sg*s + lane
				exclusive[idx] = subgroupExclusive[sg] + inclusive[idx] - last[idx]
			}
		}
		copy(last, exclusive)
		return nil
	})
}
