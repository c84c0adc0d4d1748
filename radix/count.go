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
)

// countPass dispatches one workgroup per real block (C3): each workgroup
// zero-initializes a 256-bin shared histogram, strides over its slice of
// the input extracting the pass's radix byte, and writes the finished
// histogram into blocks[b*K : b*K+K]. Out-of-range indices in the last,
// short block are never read.
func countPass(ctx context.Context, dev *gpu.Device, tn Tuning, keys []uint32, pc gpu.PushConstants, blocks []uint32) error {
	l := tn.BlockLen()
	shift := pc.PassIndex * RadixBits

	return dev.Dispatch(ctx, pc.NumberOfBlocks, func(_ context.Context, b uint32) error {
		base := b * l
		count := min(l, pc.NumberOfKeys-base)

		radices := make([]uint32, count)
		simd.ExtractRadices(keys[base:base+count], shift, radices)

		row := blocks[b*RadixCount : b*RadixCount+RadixCount]
		for i := range row {
			row[i] = 0
		}
		for _, r := range radices {
			row[r]++
		}
		return nil
	})
}
