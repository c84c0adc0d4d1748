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
	"github.com/ajroetker/go-radixsort/gpu"
	"github.com/ajroetker/go-radixsort/radix/bitpack"
)

// RadixBits is R, the number of bits consumed per pass.
const RadixBits = 8

// RadixCount is K = 2^RadixBits, the number of histogram bins per block
// and the required thread-per-workgroup count for the count and scatter
// kernels (one thread maps to one radix bin in several phases).
const RadixCount = 1 << RadixBits

// ThreadsPerWorkgroup is T, fixed at RadixCount so a single thread can own
// one radix bin during histogram zeroing, scanning, and the last-block scan.
const ThreadsPerWorkgroup = RadixCount

// Passes is the number of LSD radix passes needed to cover a 32-bit key.
const Passes = 32 / RadixBits

// Tuning holds the device/workload-dependent knobs: rows per scatter
// workgroup (W) and the probed subgroup size (S). Unlike RadixBits,
// RadixCount, and ThreadsPerWorkgroup -- which are fixed by the kernel
// design -- W and S vary per device and workload, so they live in a struct
// a caller constructs at runtime instead of being compile-time constants.
type Tuning struct {
	// RowsPerWorkgroup is W: how many rows of T keys each scatter
	// workgroup processes. Typical values are 8-16.
	RowsPerWorkgroup uint32

	// SubgroupSize is S, probed from the device via gpu.ProbeSubgroupSize.
	SubgroupSize uint32

	// PackedOrder selects whether the scatter kernel's block-reorder phase
	// packs (order, local index within the block) into one shared word (via
	// radix/bitpack) or keeps them in two parallel arrays. Packing is the
	// default; see DESIGN.md for the performance-anomaly open question
	// this toggle resolves.
	PackedOrder bool
}

// DefaultTuning returns a Tuning with W=8 rows per workgroup, the given
// probed subgroup size, and packed order words enabled.
func DefaultTuning(subgroupSize uint32) Tuning {
	return Tuning{
		RowsPerWorkgroup: 8,
		SubgroupSize:     subgroupSize,
		PackedOrder:      true,
	}
}

// BlockLen returns L = T * W, the number of keys one scatter/count
// workgroup owns.
func (t Tuning) BlockLen() uint32 {
	return ThreadsPerWorkgroup * t.RowsPerWorkgroup
}

// Validate checks the constraints tying T, K, and S together: T must equal
// K (enforced by construction), T must be a multiple of S, K must be a
// multiple of S, L must fit in 32 bits, and, when PackedOrder is set, L
// must fit in the 16-bit order/local-index fields bitpack.PackOrderIndex
// packs it into (see that function's doc comment).
func (t Tuning) Validate() error {
	if t.SubgroupSize == 0 {
		return gpu.ErrInvalidTuning
	}
	if ThreadsPerWorkgroup%t.SubgroupSize != 0 {
		return gpu.ErrInvalidTuning
	}
	if RadixCount%t.SubgroupSize != 0 {
		return gpu.ErrInvalidTuning
	}
	if t.RowsPerWorkgroup == 0 {
		return gpu.ErrInvalidTuning
	}
	l := uint64(ThreadsPerWorkgroup) * uint64(t.RowsPerWorkgroup)
	if l > 1<<32-1 {
		return gpu.ErrInvalidTuning
	}
	// Design Notes: the intra-subgroup ballot mask is a 4-lane 32-bit
	// vector (128 bits), covering subgroup sizes up to 128.
	if t.SubgroupSize > 128 {
		return gpu.ErrInvalidTuning
	}
	// scatterPass packs order and local-within-block index into the two
	// 16-bit fields of one word whenever PackedOrder is set; both values
	// range over [0, L), so L must not exceed what those fields hold.
	if t.PackedOrder && l > uint64(bitpack.OrderIndexMask)+1 {
		return gpu.ErrInvalidTuning
	}
	return nil
}

// NumBlocks returns B, the real (unpadded) block count for n keys.
func (t Tuning) NumBlocks(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	l := t.BlockLen()
	return (n + l - 1) / l
}

// NumBlocksPow2 returns B rounded up to the next power of two (B_pow2),
// the shape the block-axis scan kernels require.
func (t Tuning) NumBlocksPow2(n uint32) uint32 {
	b := t.NumBlocks(n)
	if b <= 1 {
		return 1
	}
	p := uint32(1)
	for p < b {
		p <<= 1
	}
	return p
}
