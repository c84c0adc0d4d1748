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

// Package simd provides the bulk uint32 lane operations the count and
// scatter kernels use to pull an 8-bit radix slice out of a run of keys.
// It is a uint32-only trim of a portable SIMD vector abstraction down to
// the one lane type and the handful of operations (shift, mask, load) this
// module's kernels need; the unrolled-by-4 loop shape stands in for a
// hardware vector register the way the reference compute device stands in
// for a real GPU queue.
package simd

// Lane is the fixed lane width this package processes per unrolled step.
// A real compute-capable build would size this to the host's native
// vector width (8 for AVX2 uint32, 16 for AVX-512); the reference backend
// fixes it at a modest width that still exercises batched extraction.
const Lane = 4

// ExtractRadices computes ((keys[i] >> shift) & 0xFF) for every key in
// keys, writing the result to dst (which must be at least len(keys) long),
// processing Lane keys per unrolled iteration with a scalar tail.
func ExtractRadices(keys []uint32, shift uint32, dst []uint32) {
	const mask = 0xFF
	n := len(keys)
	i := 0
	for ; i+Lane <= n; i += Lane {
		dst[i+0] = (keys[i+0] >> shift) & mask
		dst[i+1] = (keys[i+1] >> shift) & mask
		dst[i+2] = (keys[i+2] >> shift) & mask
		dst[i+3] = (keys[i+3] >> shift) & mask
	}
	for ; i < n; i++ {
		dst[i] = (keys[i] >> shift) & mask
	}
}

// Radix returns the 8-bit radix of a single key for the given shift.
func Radix(key, shift uint32) uint32 {
	return (key >> shift) & 0xFF
}
