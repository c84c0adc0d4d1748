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

import "math/bits"

// ballotMask represents a subgroup ballot result as a 4-lane 32-bit vector,
// covering subgroup sizes up to 128 lanes (Design Notes: "devices report
// S in {8,16,32,64,128}... a 4-lane 32-bit vector to cover S <= 128").
// Bit i of the mask (0-indexed across the 4 lanes) corresponds to lane i
// of the subgroup.
type ballotMask [4]uint32

// ballot builds the mask of lanes in [0, subgroupSize) for which pred(lane)
// is true, mirroring a hardware subgroup ballot intrinsic.
func ballot(subgroupSize uint32, pred func(lane uint32) bool) ballotMask {
	var m ballotMask
	for lane := range subgroupSize {
		if pred(lane) {
			m[lane/32] |= 1 << (lane % 32)
		}
	}
	return m
}

// and returns the bitwise AND of two masks.
func (m ballotMask) and(o ballotMask) ballotMask {
	return ballotMask{m[0] & o[0], m[1] & o[1], m[2] & o[2], m[3] & o[3]}
}

// not returns the bitwise complement of m, restricted to the low
// subgroupSize bits (bits at or beyond subgroupSize are cleared so they
// never contribute to a later AND or popcount).
func (m ballotMask) not(subgroupSize uint32) ballotMask {
	r := ballotMask{^m[0], ^m[1], ^m[2], ^m[3]}
	return r.and(fullMask(subgroupSize))
}

// fullMask returns a mask with bits [0, subgroupSize) set.
func fullMask(subgroupSize uint32) ballotMask {
	var m ballotMask
	for lane := range subgroupSize {
		m[lane/32] |= 1 << (lane % 32)
	}
	return m
}

// lowerMask returns a mask with bits [0, lane) set: "lanes strictly below
// me", used to compute a thread's rank among same-radix peers.
func lowerMask(lane uint32) ballotMask {
	var m ballotMask
	for l := range lane {
		m[l/32] |= 1 << (l % 32)
	}
	return m
}

// popCount sums popcount across all four lanes of the vector (Phase C:
// "popcount is summed over the vector").
func (m ballotMask) popCount() uint32 {
	return uint32(bits.OnesCount32(m[0]) + bits.OnesCount32(m[1]) + bits.OnesCount32(m[2]) + bits.OnesCount32(m[3]))
}

// subgroupBallots holds the per-bit ballots for one subgroup, computed
// once per subgroup and reused for every lane's radixPeerMask (Phase B):
// "start with ballot(is_active), then for each radix bit i, form
// ballot(bit_i of radix)".
type subgroupBallots struct {
	size   uint32
	active ballotMask
	bits   [RadixBits]ballotMask
}

// newSubgroupBallots computes the active-lane ballot and one ballot per
// radix bit for a subgroup of subgroupSize lanes.
func newSubgroupBallots(subgroupSize uint32, radixOf func(lane uint32) uint32, active func(lane uint32) bool) subgroupBallots {
	sb := subgroupBallots{size: subgroupSize, active: ballot(subgroupSize, active)}
	for bit := range uint32(RadixBits) {
		sb.bits[bit] = ballot(subgroupSize, func(l uint32) bool {
			return radixOf(l)&(1<<bit) != 0
		})
	}
	return sb
}

// radixPeerMask returns the mask of lanes sharing the given lane's radix
// value, by ANDing the active mask with each per-bit ballot or its
// complement according to whether myRadix's corresponding bit is set
// (Phase B). After RadixBits iterations the remaining set bits mark
// exactly the peers with identical radix.
func (sb subgroupBallots) radixPeerMask(myRadix uint32) ballotMask {
	mask := sb.active
	for bit := range uint32(RadixBits) {
		if myRadix&(1<<bit) != 0 {
			mask = mask.and(sb.bits[bit])
		} else {
			mask = mask.and(sb.bits[bit].not(sb.size))
		}
	}
	return mask
}
