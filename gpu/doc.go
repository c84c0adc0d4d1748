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

// Package gpu provides a portable compute-device abstraction with
// runtime-probed capabilities.
//
// It follows the same design philosophy as a hardware compute runtime:
// a caller submits work over a 1-D range of workgroups, the device decides
// how to schedule it, and a hardware 2-D dispatch-dimension limit is
// transparently worked around by splitting oversized grids into a maximal
// rectangle plus a linear remainder.
//
// Basic usage:
//
//	dev := gpu.NewDevice(gpu.Capabilities{SubgroupSize: 32, HasBallot: true, HasInclusiveAdd: true, HasPushConstants: true}, 0)
//	defer dev.Close()
//
//	err := dev.Dispatch(ctx, numWorkgroups, func(ctx context.Context, workgroup uint32) error {
//	    // kernel body for one workgroup
//	    return nil
//	})
package gpu
