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

// Capabilities describes what a compute device can do. The kernel suite in
// package radix requires all of HasBallot, HasInclusiveAdd, and
// HasPushConstants; SubgroupSize must be one of the hardware wave sizes the
// scatter kernel's ballot representation was designed for.
type Capabilities struct {
	// SubgroupSize is the number of lanes in one hardware wave (warp).
	// Observed values in the wild are 8, 16, 32, 64, and 128.
	SubgroupSize uint32

	// HasBallot reports subgroup ballot support: each lane can obtain a
	// bitmask of which lanes in its subgroup satisfy a predicate.
	HasBallot bool

	// HasInclusiveAdd reports subgroup inclusive-add support, used by the
	// last-block exclusive scan kernel's two-level scan.
	HasInclusiveAdd bool

	// HasPushConstants reports whether the device can deliver the 24-byte
	// push-constant block the kernel suite is parameterized by.
	HasPushConstants bool
}

// SupportedSubgroupSizes enumerates the wave sizes the scatter kernel's
// ballot mask (a 4-lane 32-bit vector, 128 bits total) can represent.
var SupportedSubgroupSizes = [...]uint32{8, 16, 32, 64, 128}

// Validate reports ErrUnsupportedDevice if caps is missing any capability
// the kernel suite requires, or carries a subgroup size this implementation
// cannot represent.
func (caps Capabilities) Validate() error {
	if !caps.HasBallot || !caps.HasInclusiveAdd || !caps.HasPushConstants {
		return ErrUnsupportedDevice
	}
	for _, s := range SupportedSubgroupSizes {
		if caps.SubgroupSize == s {
			return nil
		}
	}
	return ErrUnsupportedDevice
}
