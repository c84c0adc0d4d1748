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

import "context"

// ProbeSubgroupSize runs the one-workgroup subgroup-size probe kernel: a
// single workgroup whose first invocation writes the device's subgroup size
// into a one-element output buffer, mirroring how a real compute backend
// would read this value back after dispatching a tiny specialization probe.
//
// The host uses the result to pick a specialized kernel variant; a device
// that cannot report a supported subgroup size (or lacks ballot / push
// constants) returns ErrUnsupportedDevice before any dispatch is attempted.
func ProbeSubgroupSize(ctx context.Context, d *Device) (uint32, error) {
	if err := d.Capabilities().Validate(); err != nil {
		return 0, err
	}

	out := make([]uint32, 1)
	err := d.Dispatch(ctx, 1, func(_ context.Context, workgroupIndex uint32) error {
		if workgroupIndex == 0 {
			out[0] = d.caps.SubgroupSize
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
