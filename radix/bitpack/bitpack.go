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

// Package bitpack provides tight bit packing for small integer fields into
// a single machine word. The scatter kernel's block-reorder phase uses
// PackOrderIndex to carry both a thread's rank-within-radix ("order") and
// its position within the block (the local index) through one shared
// word instead of two parallel shared arrays, the same tradeoff a packed
// bitfield in a GPU shader's shared memory would make.
package bitpack

// OrderIndexBits is the width in bits of each of the two 16-bit fields
// packed into one 32-bit order word. 16 bits covers block sizes up to
// 65536, comfortably above any realistic T*W.
const OrderIndexBits = 16

// OrderIndexMask masks one 16-bit field out of a packed word.
const OrderIndexMask = (1 << OrderIndexBits) - 1

// PackOrderIndex packs order into the low 16 bits and localIndex into the
// high 16 bits of a single uint32, matching the scatter kernel's
// high-bits(local index) | low-bits(order) layout. Both inputs must
// fit in 16 bits; callers enforce that by construction (block sizes are
// bounded by T*W, which is validated at tuning time).
func PackOrderIndex(order, localIndex uint32) uint32 {
	return (localIndex&OrderIndexMask)<<OrderIndexBits | (order & OrderIndexMask)
}

// UnpackOrderIndex splits a word packed by PackOrderIndex back into its
// order and localIndex fields.
func UnpackOrderIndex(packed uint32) (order, localIndex uint32) {
	return packed & OrderIndexMask, (packed >> OrderIndexBits) & OrderIndexMask
}
