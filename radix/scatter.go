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
	"github.com/ajroetker/go-radixsort/gpu/simd"
	"github.com/ajroetker/go-radixsort/radix/bitpack"
)

// scatterPass is C7: one workgroup per real block writes every key (and its
// riding value) to its final position for this pass. A block-local rank
// among same-radix keys ("order") is combined with two prefix tables
// already sitting in blocks -- this block's prior-block running count
// (row b-1, still the inclusive per-radix count left by C4/C5) and the
// whole-array starting offset for the radix (row bPow2-1, rewritten into
// an exclusive prefix by C6) -- to land the key at
// blocks[bPow2-1][radix] + blocks[b-1][radix] + order.
//
// Ranking runs in two steps per row: Phase B/C partitions each row's T
// lanes into subgroups of S and uses a subgroup ballot to rank a lane
// among its same-radix peers within the subgroup; Phase D folds each
// subgroup's peer count into a running per-radix counter carried across
// the whole block, in lane order, so later subgroups and rows see the
// correct base rank. When tn.PackedOrder is set the per-lane (order,
// local index) pair is round-tripped through bitpack.PackOrderIndex
// before the write phase, mirroring the single packed shared-memory word
// a real workgroup would use in place of two parallel arrays.
func scatterPass(ctx context.Context, dev *gpu.Device, tn Tuning, bPow2 uint32, keysIn, valsIn []uint32, pc gpu.PushConstants, blocks []uint32, keysOut, valsOut []uint32) error {
	l := tn.BlockLen()
	t := ThreadsPerWorkgroup
	s := tn.SubgroupSize
	numSubgroups := t / s
	shift := pc.PassIndex * RadixBits
	globalOffset := row(blocks, bPow2-1)

	return dev.Dispatch(ctx, pc.NumberOfBlocks, func(_ context.Context, b uint32) error {
		base := b * l
		count := min(l, pc.NumberOfKeys-base)

		var prior [RadixCount]uint32
		if b > 0 {
			copy(prior[:], row(blocks, b-1))
		}

		packed := make([]uint32, count)
		var running [RadixCount]uint32

		for r := uint32(0); r < tn.RowsPerWorkgroup; r++ {
			rowBase := r * t
			if rowBase >= count {
				break
			}
			for sg := uint32(0); sg < numSubgroups; sg++ {
				subBase := rowBase + sg*s
				if subBase >= count {
					continue
				}
				radixOf := func(lane uint32) uint32 {
					return simd.Radix(keysIn[base+subBase+lane], shift)
				}
				active := func(lane uint32) bool {
					return subBase+lane < count
				}
				sb := newSubgroupBallots(s, radixOf, active)

				order := make([]uint32, s)
				rankInSub := make([]uint32, s)
				peerCount := make([]uint32, s)
				for lane := uint32(0); lane < s; lane++ {
					if !active(lane) {
						continue
					}
					radix := radixOf(lane)
					peers := sb.radixPeerMask(radix)
					rankInSub[lane] = peers.and(lowerMask(lane)).popCount()
					peerCount[lane] = peers.popCount()
					order[lane] = running[radix] + rankInSub[lane]
				}
				for lane := uint32(0); lane < s; lane++ {
					if !active(lane) {
						continue
					}
					if rankInSub[lane]+1 == peerCount[lane] {
						running[radixOf(lane)] += peerCount[lane]
					}
					local := subBase + lane
					if tn.PackedOrder {
						packed[local] = bitpack.PackOrderIndex(order[lane], local)
					} else {
						packed[local] = order[lane]
					}
				}
			}
		}

		for local := uint32(0); local < count; local++ {
			idx := base + local
			radix := simd.Radix(keysIn[idx], shift)

			var ord uint32
			if tn.PackedOrder {
				ord, _ = bitpack.UnpackOrderIndex(packed[local])
			} else {
				ord = packed[local]
			}

			dest := globalOffset[radix] + prior[radix] + ord
			keysOut[dest] = keysIn[idx]
			if pc.InitIndex == 1 {
				valsOut[dest] = idx
			} else {
				valsOut[dest] = valsIn[idx]
			}
		}
		return nil
	})
}
