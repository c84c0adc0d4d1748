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

// Package radix implements a GPU-resident least-significant-digit radix
// sort over gpu.Device: four 8-bit passes over 32-bit keys, each made of a
// count kernel (C3), a block-axis scan split across an up-sweep, a
// down-sweep, and a last-block exclusive scan (C4-C6), and a scatter
// kernel (C7) that writes every key to its final position for the pass.
// Sort (C8) drives the four passes, ping-ponging keys and an optional
// riding values buffer between two backing arrays.
//
//	dev := gpu.NewDevice(caps, 0)
//	tn := radix.DefaultTuning(subgroupSize)
//	keys, vals, err := radix.Sort(ctx, dev, tn, uint32(len(keys)), keys, vals)
package radix
