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

// PushConstants is the fixed-order, all-u32 push-constant block every
// kernel in the radix sort pipeline is parameterized by. Total size is
// 24 bytes (6 * 4), matching the hardware push-constant budget this design
// targets.
type PushConstants struct {
	// WorkgroupOffset is added to the linear workgroup index reconstructed
	// from a split dispatch's 2-D grid coordinates.
	WorkgroupOffset uint32

	// NumberOfKeys is N, the total key/value pair count.
	NumberOfKeys uint32

	// NumberOfBlocks is B, the real (unpadded) block count.
	NumberOfBlocks uint32

	// PassIndex selects which byte of the key this pass buckets on, in [0,3].
	PassIndex uint32

	// SweepSize is the stride `s` for the up-sweep/down-sweep scan kernels.
	SweepSize uint32

	// InitIndex is 1 on pass 0 when the caller supplied no values buffer,
	// instructing the scatter kernel to synthesize the identity permutation.
	InitIndex uint32
}

// PushConstantsSize is the push-constant block size in bytes.
const PushConstantsSize = 6 * 4
