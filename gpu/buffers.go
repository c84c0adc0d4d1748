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

import "fmt"

// Buffers is bind group 0: the five storage buffers every kernel binds.
// ValsIn may be nil on pass 0 to request identity-value initialization.
type Buffers struct {
	KeysIn  []uint32
	ValsIn  []uint32
	Blocks  []uint32
	KeysOut []uint32
	ValsOut []uint32
}

// ValidatePlan checks every buffer in bind group 0 against the sizes a sort
// of n keys over bPow2 padded blocks with k radix bins requires. It returns
// before any dispatch is issued, per the "reject before dispatch" contract.
func ValidatePlan(n uint32, bPow2, k uint32, bufs Buffers) error {
	if uint32(len(bufs.KeysIn)) < n {
		return fmt.Errorf("%w: keys_in has %d elements, need >= %d", ErrBufferTooSmall, len(bufs.KeysIn), n)
	}
	if bufs.ValsIn != nil && uint32(len(bufs.ValsIn)) < n {
		return fmt.Errorf("%w: vals_in has %d elements, need >= %d", ErrBufferTooSmall, len(bufs.ValsIn), n)
	}
	if uint32(len(bufs.KeysOut)) < n {
		return fmt.Errorf("%w: keys_out has %d elements, need >= %d", ErrBufferTooSmall, len(bufs.KeysOut), n)
	}
	if uint32(len(bufs.ValsOut)) < n {
		return fmt.Errorf("%w: vals_out has %d elements, need >= %d", ErrBufferTooSmall, len(bufs.ValsOut), n)
	}
	needBlocks := bPow2 * k
	if uint32(len(bufs.Blocks)) < needBlocks {
		return fmt.Errorf("%w: blocks has %d elements, need >= %d (B_pow2=%d * K=%d)", ErrBufferTooSmall, len(bufs.Blocks), needBlocks, bPow2, k)
	}
	return nil
}
